//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"employee-discount/internal/domain/discountcode"
	"employee-discount/internal/infra"
	sqlc "employee-discount/internal/infra/sqlc/generated"
	"employee-discount/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDiscountCodeWriteQueries struct {
	mock.Mock
}

func (m *MockDiscountCodeWriteQueries) CreateDiscountCode(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDiscountCodeParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDiscountCodeWriteQueries) ExpireActiveDiscountCodesForEmployee(ctx context.Context, db sqlc.DBTX, employeeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, employeeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDiscountCodeWriteQueries) MarkDiscountCodeUsed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkDiscountCodeUsedParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDiscountCodeWriteQueries) MarkDiscountCodeExpired(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestDiscountCodeRepository_Create(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	code, err := discountcode.New(uuid.New(), uuid.New(), decimal.NewFromInt(15), "ABC123", now, 5*time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name         string
		rows         int64
		mockErr      error
		wantInserted bool
		wantErr      bool
		wantKind     infra.RepositoryErrorKind
	}{
		{name: "success", rows: 1, wantInserted: true},
		{name: "manual code held by another active code", rows: 0},
		{name: "employee already has an active code", mockErr: &pgconn.PgError{Code: "23505"}, wantErr: true, wantKind: infra.KindDuplicateKey},
		{name: "database error", mockErr: assert.AnError, wantErr: true, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockDiscountCodeWriteQueries)
			q.On("CreateDiscountCode", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateDiscountCodeParams) bool {
				return p.ID == code.ID() &&
					p.ManualCode == "ABC123" &&
					p.Status == "active" &&
					p.QrPayload == "EDC1.payload" &&
					p.ExpiresAt.Time.Equal(now.Add(5*time.Minute))
			})).Return(tt.rows, tt.mockErr)

			repo := NewDiscountCodeRepository(q, nil)
			inserted, err := repo.Create(context.Background(), code, "EDC1.payload")

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantInserted, inserted)
			q.AssertExpectations(t)
		})
	}
}

func TestDiscountCodeRepository_Create_StoresPercentageExactly(t *testing.T) {
	now := time.Now().UTC()
	pct := decimal.RequireFromString("12.50")
	code, err := discountcode.New(uuid.New(), uuid.New(), pct, "ZZZ999", now, time.Minute)
	require.NoError(t, err)

	q := new(MockDiscountCodeWriteQueries)
	q.On("CreateDiscountCode", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil).Run(func(args mock.Arguments) {
		p := args.Get(2).(sqlc.CreateDiscountCodeParams)
		got, convErr := pgconv.DecimalFromNumeric(p.DiscountPercentage)
		require.NoError(t, convErr)
		assert.True(t, pct.Equal(got))
	})

	inserted, err := NewDiscountCodeRepository(q, nil).Create(context.Background(), code, "qr")
	require.NoError(t, err)
	assert.True(t, inserted)
}

func TestDiscountCodeRepository_MarkUsed(t *testing.T) {
	id := uuid.New()
	usedAt := time.Date(2025, 3, 10, 12, 1, 0, 0, time.UTC)

	tests := []struct {
		name        string
		rows        int64
		mockErr     error
		wantChanged bool
		wantErr     bool
	}{
		{name: "active code is consumed", rows: 1, wantChanged: true},
		{name: "already consumed by a concurrent request", rows: 0, wantChanged: false},
		{name: "database error", mockErr: assert.AnError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockDiscountCodeWriteQueries)
			q.On("MarkDiscountCodeUsed", mock.Anything, mock.Anything, sqlc.MarkDiscountCodeUsedParams{
				ID:     id,
				UsedAt: pgconv.TimeToPgtype(usedAt),
			}).Return(tt.rows, tt.mockErr)

			changed, err := NewDiscountCodeRepository(q, nil).MarkUsed(context.Background(), id, usedAt)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, changed)
			q.AssertExpectations(t)
		})
	}
}

func TestDiscountCodeRepository_MarkExpired(t *testing.T) {
	id := uuid.New()

	q := new(MockDiscountCodeWriteQueries)
	q.On("MarkDiscountCodeExpired", mock.Anything, mock.Anything, id).Return(int64(0), nil).Once()

	changed, err := NewDiscountCodeRepository(q, nil).MarkExpired(context.Background(), id)

	require.NoError(t, err)
	assert.False(t, changed)
	q.AssertExpectations(t)
}

func TestDiscountCodeRepository_ExpireActiveForEmployee(t *testing.T) {
	employeeID := uuid.New()

	q := new(MockDiscountCodeWriteQueries)
	q.On("ExpireActiveDiscountCodesForEmployee", mock.Anything, mock.Anything, employeeID).Return(int64(1), nil)

	n, err := NewDiscountCodeRepository(q, nil).ExpireActiveForEmployee(context.Background(), employeeID)

	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
