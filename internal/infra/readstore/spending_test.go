//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"employee-discount/internal/domain/limit"
	"employee-discount/internal/infra"
	"employee-discount/internal/infra/readstore"
	sqlc "employee-discount/internal/infra/sqlc/generated"
	"employee-discount/internal/pkg/pgconv"
	"employee-discount/tests/common/builder"
	readstoremock "employee-discount/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var june = limit.MonthOf(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), time.UTC)

func TestSpendingReadStore_Totals(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	params := sqlc.SumEmployeeSpendingParams{
		EmployeeID:  employeeID,
		PeriodStart: pgconv.TimeToPgtype(june.Start),
		PeriodEnd:   pgconv.TimeToPgtype(june.End),
	}

	testCases := []struct {
		name       string
		row        sqlc.SumEmployeeSpendingRow
		queryErr   error
		expectKind infra.RepositoryErrorKind
		original   string
		final      string
		count      int64
	}{
		{
			name: "success: sums both columns",
			row: sqlc.SumEmployeeSpendingRow{
				OriginalTotal:    pgconv.DecimalToNumeric(dec("500.00")),
				FinalTotal:       pgconv.DecimalToNumeric(dec("450.00")),
				TransactionCount: 3,
			},
			original: "500", final: "450", count: 3,
		},
		{
			name: "success: no rows yet",
			row: sqlc.SumEmployeeSpendingRow{
				OriginalTotal: pgconv.DecimalToNumeric(dec("0")),
				FinalTotal:    pgconv.DecimalToNumeric(dec("0")),
			},
			original: "0", final: "0",
		},
		{
			name: "error: NaN total",
			row: sqlc.SumEmployeeSpendingRow{
				OriginalTotal: pgtype.Numeric{NaN: true, Valid: true},
				FinalTotal:    pgconv.DecimalToNumeric(dec("0")),
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "error: database error",
			queryErr:   errDBConnectionLost,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockSpendingReadQueries(ctrl)
			mockQueries.EXPECT().SumEmployeeSpending(ctx, gomock.Any(), params).Return(tc.row, tc.queryErr)
			store := readstore.NewSpendingReadStore(mockQueries, &mockDBTX{})

			totals, err := store.Totals(ctx, employeeID, june)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.True(t, dec(tc.original).Equal(totals.Original))
			assert.True(t, dec(tc.final).Equal(totals.Final))
			assert.Equal(t, tc.count, totals.Count)
		})
	}
}

func TestSpendingReadStore_ListTransactions(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	location := "Store 12"
	txn := builder.NewTransactionBuilder().With(func(b *builder.TransactionBuilder) {
		b.Location = &location
	})
	infraRow := txn.BuildInfra()
	rows := []sqlc.ListEmployeeTransactionsRow{{
		ID:                 infraRow.ID,
		DiscountCodeID:     infraRow.DiscountCodeID,
		DivisionID:         infraRow.DivisionID,
		DivisionName:       "Electronics",
		OriginalAmount:     infraRow.OriginalAmount,
		DiscountPercentage: infraRow.DiscountPercentage,
		DiscountAmount:     infraRow.DiscountAmount,
		FinalAmount:        infraRow.FinalAmount,
		Location:           infraRow.Location,
		CreatedAt:          infraRow.CreatedAt,
	}}

	mockQueries := readstoremock.NewMockSpendingReadQueries(ctrl)
	mockQueries.EXPECT().ListEmployeeTransactions(ctx, gomock.Any(), sqlc.ListEmployeeTransactionsParams{
		EmployeeID:  txn.EmployeeID,
		PeriodStart: pgconv.TimeToPgtype(june.Start),
		PeriodEnd:   pgconv.TimeToPgtype(june.End),
	}).Return(rows, nil)
	store := readstore.NewSpendingReadStore(mockQueries, &mockDBTX{})

	views, err := store.ListTransactions(ctx, txn.EmployeeID, june)
	require.NoError(t, err)
	require.Len(t, views, 1)

	v := views[0]
	assert.Equal(t, txn.ID, v.ID)
	assert.Equal(t, "Electronics", v.DivisionName)
	assert.True(t, dec("100").Equal(v.OriginalAmount))
	assert.True(t, dec("10").Equal(v.DiscountAmount))
	assert.True(t, dec("90").Equal(v.FinalAmount))
	require.NotNil(t, v.Location)
	assert.Equal(t, location, *v.Location)
}

func TestSpendingReadStore_EmployeeByID(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	row := builder.NewEmployeeBuilder().WithLimit("300").BuildInfra()
	mockQueries := readstoremock.NewMockSpendingReadQueries(ctrl)
	mockQueries.EXPECT().GetEmployeeByID(ctx, gomock.Any(), row.ID).Return(row, nil)
	store := readstore.NewSpendingReadStore(mockQueries, &mockDBTX{})

	view, err := store.EmployeeByID(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, row.FullName, view.FullName)
	require.NotNil(t, view.MonthlyLimit)
	assert.True(t, dec("300").Equal(*view.MonthlyLimit))
}
