//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"employee-discount/internal/domain/ledger"
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

type MockTransactionWriteQueries struct {
	mock.Mock
}

func (m *MockTransactionWriteQueries) CreateTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTransactionParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func TestTransactionRepository_Create(t *testing.T) {
	location := "  Store 12  "
	breakdown := ledger.CalculateDiscount(decimal.NewFromInt(100), decimal.NewFromInt(10))
	txn := ledger.NewTransaction(uuid.New(), uuid.New(), uuid.New(), breakdown, &location, uuid.New(), time.Now().UTC())

	tests := []struct {
		name     string
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "code already has a ledger row", mockErr: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindDuplicateKey},
		{name: "unknown employee", mockErr: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockTransactionWriteQueries)
			q.On("CreateTransaction", mock.Anything, mock.Anything, mock.Anything).Return(tt.mockErr).Run(func(args mock.Arguments) {
				p := args.Get(2).(sqlc.CreateTransactionParams)
				assert.Equal(t, txn.DiscountCodeID(), p.DiscountCodeID)
				assert.Equal(t, "Store 12", p.Location.String)

				final, err := pgconv.DecimalFromNumeric(p.FinalAmount)
				require.NoError(t, err)
				assert.True(t, decimal.NewFromInt(90).Equal(final))
			})

			err := NewTransactionRepository(q, nil).Create(context.Background(), txn)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			}
			q.AssertExpectations(t)
		})
	}
}
