//go:build unit || e2e

package builder

import (
	sqlc "employee-discount/internal/infra/sqlc/generated"
	"employee-discount/internal/pkg/pgconv"
	"employee-discount/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type DivisionBuilder struct {
	ID           uuid.UUID
	Name         string
	IsActive     bool
	HasRule      bool
	Percentage   decimal.Decimal
	RuleIsActive bool
}

func NewDivisionBuilder() *DivisionBuilder {
	return &DivisionBuilder{
		ID:           uuid.New(),
		Name:         "Electronics",
		IsActive:     true,
		HasRule:      true,
		Percentage:   decimal.NewFromInt(10),
		RuleIsActive: true,
	}
}

func (b *DivisionBuilder) With(mutate func(*DivisionBuilder)) *DivisionBuilder {
	mutate(b)
	return b
}

func (b *DivisionBuilder) BuildSnapshot() shared.DivisionSnapshot {
	snap := shared.DivisionSnapshot{ID: b.ID, Name: b.Name, IsActive: b.IsActive}
	if b.HasRule {
		snap.Rule = &shared.DiscountRule{Percentage: b.Percentage, IsActive: b.RuleIsActive}
	}
	return snap
}

// BuildInfra mirrors the LEFT JOIN row; a missing rule has NULL columns.
func (b *DivisionBuilder) BuildInfra() sqlc.GetDivisionWithRuleRow {
	row := sqlc.GetDivisionWithRuleRow{ID: b.ID, Name: b.Name, IsActive: b.IsActive}
	if b.HasRule {
		row.DiscountPercentage = pgconv.DecimalToNumeric(b.Percentage)
		row.RuleIsActive = pgtype.Bool{Bool: b.RuleIsActive, Valid: true}
	}
	return row
}
