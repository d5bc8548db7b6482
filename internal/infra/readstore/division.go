package readstore

import (
	"context"

	"employee-discount/internal/infra"
	sqlc "employee-discount/internal/infra/sqlc/generated"
	"employee-discount/internal/pkg/pgconv"
	"employee-discount/internal/usecase/shared"

	"github.com/google/uuid"
)

type DivisionReadQueries interface {
	GetDivisionWithRule(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetDivisionWithRuleRow, error)
}

type DivisionReadStore struct {
	queries DivisionReadQueries
	db      sqlc.DBTX
}

func NewDivisionReadStore(queries DivisionReadQueries, db sqlc.DBTX) *DivisionReadStore {
	return &DivisionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DivisionReadStore) FindWithRule(ctx context.Context, id uuid.UUID) (*shared.DivisionSnapshot, error) {
	row, err := r.queries.GetDivisionWithRule(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("division not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find division", err)
	}

	snap := &shared.DivisionSnapshot{
		ID:       row.ID,
		Name:     row.Name,
		IsActive: row.IsActive,
	}

	// LEFT JOIN: no rule row leaves both columns NULL
	if row.DiscountPercentage.Valid {
		pct, err := pgconv.DecimalFromNumeric(row.DiscountPercentage)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert discount percentage", err)
		}
		snap.Rule = &shared.DiscountRule{
			Percentage: pct,
			IsActive:   row.RuleIsActive.Valid && row.RuleIsActive.Bool,
		}
	}

	return snap, nil
}
