package readstore

import (
	"context"

	"employee-discount/internal/infra"
	sqlc "employee-discount/internal/infra/sqlc/generated"
	"employee-discount/internal/pkg/pgconv"
	"employee-discount/internal/usecase/shared"

	"github.com/google/uuid"
)

type EmployeeReadQueries interface {
	GetEmployeeByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Employees, error)
	GetEmployeeByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Employees, error)
}

type EmployeeReadStore struct {
	queries EmployeeReadQueries
	db      sqlc.DBTX
}

func NewEmployeeReadStore(queries EmployeeReadQueries, db sqlc.DBTX) *EmployeeReadStore {
	return &EmployeeReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EmployeeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.EmployeeSnapshot, error) {
	row, err := r.queries.GetEmployeeByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("employee not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find employee by ID", err)
	}
	return toEmployeeSnapshot(row)
}

// FindByIDForUpdate must run inside a transaction; the row lock serializes
// concurrent issuance for the same employee.
func (r *EmployeeReadStore) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.EmployeeSnapshot, error) {
	row, err := r.queries.GetEmployeeByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("employee not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock employee", err)
	}
	return toEmployeeSnapshot(row)
}

func toEmployeeSnapshot(row sqlc.Employees) (*shared.EmployeeSnapshot, error) {
	monthlyLimit, err := pgconv.DecimalPtrFromNumeric(row.MonthlySpendingLimit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert employee spending limit", err)
	}

	return &shared.EmployeeSnapshot{
		ID:           row.ID,
		FullName:     row.FullName,
		Email:        row.Email,
		IsActive:     row.IsActive,
		MonthlyLimit: monthlyLimit,
	}, nil
}
