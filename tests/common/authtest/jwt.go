//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"employee-discount/internal/domain/staff"
	"employee-discount/internal/pkg/config"
	"employee-discount/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const tokenTTL = 15 * time.Minute

// JWTHelper mints tokens the way the identity provider would.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role staff.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, role, tokenTTL)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role staff.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, role, -time.Minute)
	require.NoError(t, err)
	return token
}
