package readstore

import (
	"context"

	"employee-discount/internal/domain/limit"
	"employee-discount/internal/infra"
	sqlc "employee-discount/internal/infra/sqlc/generated"
	"employee-discount/internal/pkg/pgconv"
	"employee-discount/internal/usecase/queries"

	"github.com/google/uuid"
)

type SpendingReadQueries interface {
	GetEmployeeByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Employees, error)
	SumEmployeeSpending(ctx context.Context, db sqlc.DBTX, arg sqlc.SumEmployeeSpendingParams) (sqlc.SumEmployeeSpendingRow, error)
	ListEmployeeTransactions(ctx context.Context, db sqlc.DBTX, arg sqlc.ListEmployeeTransactionsParams) ([]sqlc.ListEmployeeTransactionsRow, error)
}

// SpendingReadStore serves the ledger aggregates for both the limit check
// during validation and the read-only summary endpoints.
type SpendingReadStore struct {
	queries SpendingReadQueries
	db      sqlc.DBTX
}

func NewSpendingReadStore(queries SpendingReadQueries, db sqlc.DBTX) *SpendingReadStore {
	return &SpendingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SpendingReadStore) EmployeeByID(ctx context.Context, id uuid.UUID) (*queries.EmployeeView, error) {
	row, err := r.queries.GetEmployeeByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("employee not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find employee by ID", err)
	}

	monthlyLimit, err := pgconv.DecimalPtrFromNumeric(row.MonthlySpendingLimit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert employee spending limit", err)
	}

	return &queries.EmployeeView{
		ID:           row.ID,
		FullName:     row.FullName,
		Email:        row.Email,
		IsActive:     row.IsActive,
		MonthlyLimit: monthlyLimit,
	}, nil
}

func (r *SpendingReadStore) Totals(ctx context.Context, employeeID uuid.UUID, period limit.Period) (limit.Totals, error) {
	row, err := r.queries.SumEmployeeSpending(ctx, r.db, sqlc.SumEmployeeSpendingParams{
		EmployeeID:  employeeID,
		PeriodStart: pgconv.TimeToPgtype(period.Start),
		PeriodEnd:   pgconv.TimeToPgtype(period.End),
	})
	if err != nil {
		return limit.Totals{}, infra.WrapRepoErr("failed to sum employee spending", err)
	}

	original, err := pgconv.DecimalFromNumeric(row.OriginalTotal)
	if err != nil {
		return limit.Totals{}, infra.WrapRepoErr("failed to convert original total", err)
	}
	final, err := pgconv.DecimalFromNumeric(row.FinalTotal)
	if err != nil {
		return limit.Totals{}, infra.WrapRepoErr("failed to convert final total", err)
	}

	return limit.Totals{Original: original, Final: final, Count: row.TransactionCount}, nil
}

func (r *SpendingReadStore) ListTransactions(ctx context.Context, employeeID uuid.UUID, period limit.Period) ([]*queries.TransactionView, error) {
	rows, err := r.queries.ListEmployeeTransactions(ctx, r.db, sqlc.ListEmployeeTransactionsParams{
		EmployeeID:  employeeID,
		PeriodStart: pgconv.TimeToPgtype(period.Start),
		PeriodEnd:   pgconv.TimeToPgtype(period.End),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list employee transactions", err)
	}

	views := make([]*queries.TransactionView, 0, len(rows))
	for _, row := range rows {
		view, err := toTransactionView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert transaction row", err)
		}
		views = append(views, view)
	}
	return views, nil
}

func toTransactionView(row sqlc.ListEmployeeTransactionsRow) (*queries.TransactionView, error) {
	view := &queries.TransactionView{
		ID:             row.ID,
		DiscountCodeID: row.DiscountCodeID,
		DivisionID:     row.DivisionID,
		DivisionName:   row.DivisionName,
		Location:       pgconv.StringPtrFromPgtype(row.Location),
		CreatedAt:      row.CreatedAt.Time,
	}

	var err error
	if view.OriginalAmount, err = pgconv.DecimalFromNumeric(row.OriginalAmount); err != nil {
		return nil, err
	}
	if view.DiscountPercentage, err = pgconv.DecimalFromNumeric(row.DiscountPercentage); err != nil {
		return nil, err
	}
	if view.DiscountAmount, err = pgconv.DecimalFromNumeric(row.DiscountAmount); err != nil {
		return nil, err
	}
	if view.FinalAmount, err = pgconv.DecimalFromNumeric(row.FinalAmount); err != nil {
		return nil, err
	}
	return view, nil
}
