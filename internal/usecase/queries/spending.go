package queries

import (
	"context"

	"employee-discount/internal/domain/limit"
	"employee-discount/internal/infra"
	"employee-discount/internal/pkg/clock"
	"employee-discount/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmployeeNotFound = errs.New("employee not found")
	ErrInvalidMonth     = errs.New("month must be formatted as YYYY-MM")
)

type SpendingReadStore interface {
	EmployeeByID(ctx context.Context, id uuid.UUID) (*EmployeeView, error)
	Totals(ctx context.Context, employeeID uuid.UUID, period limit.Period) (limit.Totals, error)
	ListTransactions(ctx context.Context, employeeID uuid.UUID, period limit.Period) ([]*TransactionView, error)
}

type SpendingQueries interface {
	// Summary reports the employee's position against the cap for the
	// current calendar month.
	Summary(ctx context.Context, employeeID uuid.UUID) (*SpendingSummaryView, error)
	// Transactions lists ledger rows for month (YYYY-MM); an empty month
	// means the current one.
	Transactions(ctx context.Context, employeeID uuid.UUID, month string) (*TransactionListView, error)
}

type spendingQueriesImpl struct {
	store  SpendingReadStore
	policy limit.Policy
	clock  clock.Clock
}

func NewSpendingQueries(store SpendingReadStore, policy limit.Policy, clk clock.Clock) SpendingQueries {
	return &spendingQueriesImpl{store: store, policy: policy, clock: clk}
}

func (q *spendingQueriesImpl) Summary(ctx context.Context, employeeID uuid.UUID) (*SpendingSummaryView, error) {
	emp, err := q.store.EmployeeByID(ctx, employeeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrEmployeeNotFound)
		}
		return nil, err
	}

	period := q.policy.PeriodAt(q.clock.Now())
	totals, err := q.store.Totals(ctx, employeeID, period)
	if err != nil {
		return nil, err
	}

	s := q.policy.Evaluate(emp.MonthlyLimit, totals)
	return &SpendingSummaryView{
		EmployeeID:       employeeID,
		MonthlyLimit:     s.Limit,
		CurrentSpent:     s.Spent,
		Remaining:        s.Remaining,
		PercentageUsed:   s.Percentage,
		TransactionCount: totals.Count,
		PeriodStart:      period.Start,
		PeriodEnd:        period.End,
		SpentBasis:       string(q.policy.Basis()),
	}, nil
}

func (q *spendingQueriesImpl) Transactions(ctx context.Context, employeeID uuid.UUID, month string) (*TransactionListView, error) {
	period := q.policy.PeriodAt(q.clock.Now())
	if month != "" {
		p, err := limit.ParseMonth(month, q.policy.Location())
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidMonth)
		}
		period = p
	}

	if _, err := q.store.EmployeeByID(ctx, employeeID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrEmployeeNotFound)
		}
		return nil, err
	}

	items, err := q.store.ListTransactions(ctx, employeeID, period)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*TransactionView{}
	}

	return &TransactionListView{
		PeriodStart:  period.Start,
		PeriodEnd:    period.End,
		Transactions: items,
	}, nil
}
