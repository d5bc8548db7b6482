//go:build unit || e2e

package builder

import (
	"time"

	"employee-discount/internal/domain/ledger"
	sqlc "employee-discount/internal/infra/sqlc/generated"
	"employee-discount/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionBuilder struct {
	ID             uuid.UUID
	DiscountCodeID uuid.UUID
	EmployeeID     uuid.UUID
	DivisionID     uuid.UUID
	Original       decimal.Decimal
	Percentage     decimal.Decimal
	Location       *string
	ValidatedBy    uuid.UUID
	CreatedAt      time.Time
}

func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		ID:             uuid.New(),
		DiscountCodeID: uuid.New(),
		EmployeeID:     uuid.New(),
		DivisionID:     uuid.New(),
		Original:       decimal.NewFromInt(100),
		Percentage:     decimal.NewFromInt(10),
		ValidatedBy:    uuid.New(),
		CreatedAt:      time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC),
	}
}

func (b *TransactionBuilder) With(mutate func(*TransactionBuilder)) *TransactionBuilder {
	mutate(b)
	return b
}

func (b *TransactionBuilder) Breakdown() ledger.Breakdown {
	return ledger.CalculateDiscount(b.Original, b.Percentage)
}

func (b *TransactionBuilder) BuildDomain() *ledger.Transaction {
	return ledger.Reconstruct(b.ID, b.DiscountCodeID, b.EmployeeID, b.DivisionID,
		b.Breakdown(), b.Location, b.ValidatedBy, b.CreatedAt)
}

func (b *TransactionBuilder) BuildInfra() sqlc.Transactions {
	bd := b.Breakdown()
	return sqlc.Transactions{
		ID:                 b.ID,
		DiscountCodeID:     b.DiscountCodeID,
		EmployeeID:         b.EmployeeID,
		DivisionID:         b.DivisionID,
		OriginalAmount:     pgconv.DecimalToNumeric(bd.Original),
		DiscountPercentage: pgconv.DecimalToNumeric(bd.Percentage),
		DiscountAmount:     pgconv.DecimalToNumeric(bd.Discount),
		FinalAmount:        pgconv.DecimalToNumeric(bd.Final),
		Location:           pgconv.StringPtrToPgtype(b.Location),
		ValidatedBy:        b.ValidatedBy,
		CreatedAt:          pgconv.TimeToPgtype(b.CreatedAt),
	}
}
