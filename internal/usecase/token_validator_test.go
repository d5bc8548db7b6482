//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"employee-discount/internal/domain/staff"
	"employee-discount/internal/pkg/jwt"
	"employee-discount/internal/usecase"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret-key-for-jwt-signing"

func TestTokenValidator(t *testing.T) {
	svc := jwt.NewService(secret)
	validator := usecase.NewTokenValidator(svc)

	t.Run("valid cashier token", func(t *testing.T) {
		userID := uuid.New()
		token, err := svc.GenerateToken(userID, staff.RoleCashier, time.Minute)
		require.NoError(t, err)

		gotID, role, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, gotID)
		assert.Equal(t, staff.RoleCashier, role)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		claims := jwt.Claims{
			UserID: uuid.New(),
			Role:   "manager",
			RegisteredClaims: gojwt.RegisteredClaims{
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, staff.ErrInvalidRole)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), staff.RoleEmployee, -time.Minute)
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
