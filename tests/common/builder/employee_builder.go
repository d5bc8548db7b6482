//go:build unit || e2e

package builder

import (
	"time"

	sqlc "employee-discount/internal/infra/sqlc/generated"
	"employee-discount/internal/pkg/pgconv"
	"employee-discount/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EmployeeBuilder struct {
	ID           uuid.UUID
	FullName     string
	Email        string
	IsActive     bool
	MonthlyLimit *decimal.Decimal
	CreatedAt    time.Time
}

func NewEmployeeBuilder() *EmployeeBuilder {
	return &EmployeeBuilder{
		ID:        uuid.New(),
		FullName:  "Dana Employee",
		Email:     "dana@example.com",
		IsActive:  true,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *EmployeeBuilder) With(mutate func(*EmployeeBuilder)) *EmployeeBuilder {
	mutate(b)
	return b
}

// WithLimit overrides the default monthly limit.
func (b *EmployeeBuilder) WithLimit(amount string) *EmployeeBuilder {
	d := decimal.RequireFromString(amount)
	b.MonthlyLimit = &d
	return b
}

func (b *EmployeeBuilder) BuildSnapshot() shared.EmployeeSnapshot {
	return shared.EmployeeSnapshot{
		ID:           b.ID,
		FullName:     b.FullName,
		Email:        b.Email,
		IsActive:     b.IsActive,
		MonthlyLimit: b.MonthlyLimit,
	}
}

func (b *EmployeeBuilder) BuildInfra() sqlc.Employees {
	return sqlc.Employees{
		ID:                   b.ID,
		FullName:             b.FullName,
		Email:                b.Email,
		IsActive:             b.IsActive,
		MonthlySpendingLimit: pgconv.DecimalPtrToNumeric(b.MonthlyLimit),
		CreatedAt:            pgconv.TimeToPgtype(b.CreatedAt),
	}
}
