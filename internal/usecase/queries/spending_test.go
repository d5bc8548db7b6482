//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"employee-discount/internal/domain/limit"
	"employee-discount/internal/infra"
	"employee-discount/internal/pkg/clock"
	"employee-discount/internal/pkg/errs"
	"employee-discount/internal/usecase/queries"
	queriesmock "employee-discount/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newSpendingQueries(t *testing.T, store queries.SpendingReadStore) queries.SpendingQueries {
	t.Helper()
	policy, err := limit.NewPolicy(decimal.NewFromInt(500), limit.BasisFinalAmount, time.UTC)
	require.NoError(t, err)
	return queries.NewSpendingQueries(store, policy, clock.NewMockClock(now))
}

func TestSpendingQueries_Summary(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	june := limit.MonthOf(now, time.UTC)

	t.Run("success: default limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSpendingReadStore(ctrl)
		store.EXPECT().EmployeeByID(ctx, employeeID).Return(&queries.EmployeeView{ID: employeeID, IsActive: true}, nil)
		store.EXPECT().Totals(ctx, employeeID, june).Return(limit.Totals{
			Original: decimal.RequireFromString("500"),
			Final:    decimal.RequireFromString("450"),
			Count:    2,
		}, nil)

		got, err := newSpendingQueries(t, store).Summary(ctx, employeeID)
		require.NoError(t, err)

		want := &queries.SpendingSummaryView{
			EmployeeID:       employeeID,
			MonthlyLimit:     decimal.RequireFromString("500"),
			CurrentSpent:     decimal.RequireFromString("450"),
			Remaining:        decimal.RequireFromString("50"),
			PercentageUsed:   decimal.RequireFromString("90"),
			TransactionCount: 2,
			PeriodStart:      june.Start,
			PeriodEnd:        june.End,
			SpentBasis:       "final_amount",
		}
		decimalEqual := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
		if diff := cmp.Diff(want, got, decimalEqual); diff != "" {
			t.Errorf("summary mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("success: override limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		override := decimal.RequireFromString("1000")
		store := queriesmock.NewMockSpendingReadStore(ctrl)
		store.EXPECT().EmployeeByID(ctx, employeeID).Return(&queries.EmployeeView{ID: employeeID, MonthlyLimit: &override}, nil)
		store.EXPECT().Totals(ctx, employeeID, june).Return(limit.Totals{Original: decimal.Zero, Final: decimal.Zero}, nil)

		got, err := newSpendingQueries(t, store).Summary(ctx, employeeID)
		require.NoError(t, err)
		assert.True(t, override.Equal(got.MonthlyLimit))
		assert.True(t, override.Equal(got.Remaining))
		assert.True(t, got.PercentageUsed.IsZero())
	})

	t.Run("error: unknown employee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSpendingReadStore(ctrl)
		store.EXPECT().EmployeeByID(ctx, employeeID).Return(nil, infra.WrapRepoErr("employee not found", nil, infra.KindNotFound))

		_, err := newSpendingQueries(t, store).Summary(ctx, employeeID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, queries.ErrEmployeeNotFound))
	})

	t.Run("error: totals failure is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		boom := errors.New("boom")
		store := queriesmock.NewMockSpendingReadStore(ctrl)
		store.EXPECT().EmployeeByID(ctx, employeeID).Return(&queries.EmployeeView{ID: employeeID}, nil)
		store.EXPECT().Totals(ctx, employeeID, gomock.Any()).Return(limit.Totals{}, boom)

		_, err := newSpendingQueries(t, store).Summary(ctx, employeeID)
		assert.ErrorIs(t, err, boom)
	})
}

func TestSpendingQueries_Transactions(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("success: explicit month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		march, err := limit.ParseMonth("2025-03", time.UTC)
		require.NoError(t, err)
		items := []*queries.TransactionView{{ID: uuid.New(), DivisionName: "Electronics"}}

		store := queriesmock.NewMockSpendingReadStore(ctrl)
		store.EXPECT().EmployeeByID(ctx, employeeID).Return(&queries.EmployeeView{ID: employeeID}, nil)
		store.EXPECT().ListTransactions(ctx, employeeID, march).Return(items, nil)

		got, err := newSpendingQueries(t, store).Transactions(ctx, employeeID, "2025-03")
		require.NoError(t, err)
		assert.Equal(t, march.Start, got.PeriodStart)
		assert.Equal(t, items, got.Transactions)
	})

	t.Run("success: empty month means current, never nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSpendingReadStore(ctrl)
		store.EXPECT().EmployeeByID(ctx, employeeID).Return(&queries.EmployeeView{ID: employeeID}, nil)
		store.EXPECT().ListTransactions(ctx, employeeID, limit.MonthOf(now, time.UTC)).Return(nil, nil)

		got, err := newSpendingQueries(t, store).Transactions(ctx, employeeID, "")
		require.NoError(t, err)
		assert.NotNil(t, got.Transactions)
		assert.Empty(t, got.Transactions)
	})

	t.Run("error: malformed month never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSpendingReadStore(ctrl)

		_, err := newSpendingQueries(t, store).Transactions(ctx, employeeID, "June")
		require.Error(t, err)
		assert.True(t, errs.Is(err, queries.ErrInvalidMonth))
	})
}
