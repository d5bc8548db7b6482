//go:build unit || e2e

package builder

import (
	"time"

	"employee-discount/internal/domain/discountcode"
	sqlc "employee-discount/internal/infra/sqlc/generated"
	"employee-discount/internal/pkg/pgconv"
	"employee-discount/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type DiscountCodeBuilder struct {
	ID         uuid.UUID
	EmployeeID uuid.UUID
	DivisionID uuid.UUID
	Percentage decimal.Decimal
	ManualCode string
	QRPayload  string
	Status     discountcode.Status
	CreatedAt  time.Time
	ExpiresAt  time.Time
	UsedAt     *time.Time
}

func NewDiscountCodeBuilder() *DiscountCodeBuilder {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	return &DiscountCodeBuilder{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		DivisionID: uuid.New(),
		Percentage: decimal.NewFromInt(10),
		ManualCode: "ABC123",
		QRPayload:  "EDC1.ABC123",
		Status:     discountcode.StatusActive,
		CreatedAt:  now,
		ExpiresAt:  now.Add(5 * time.Minute),
	}
}

func (b *DiscountCodeBuilder) With(mutate func(*DiscountCodeBuilder)) *DiscountCodeBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *DiscountCodeBuilder) BuildDomain() *discountcode.DiscountCode {
	return discountcode.Reconstruct(b.ID, b.EmployeeID, b.DivisionID, b.Percentage,
		discountcode.ManualCode(b.ManualCode), b.Status, b.ExpiresAt, b.CreatedAt, b.UsedAt)
}

func (b *DiscountCodeBuilder) BuildInfra() sqlc.DiscountCodes {
	usedAt := pgtype.Timestamptz{}
	if b.UsedAt != nil {
		usedAt = pgconv.TimeToPgtype(*b.UsedAt)
	}
	return sqlc.DiscountCodes{
		ID:                 b.ID,
		EmployeeID:         b.EmployeeID,
		DivisionID:         b.DivisionID,
		DiscountPercentage: pgconv.DecimalToNumeric(b.Percentage),
		ManualCode:         b.ManualCode,
		QrPayload:          b.QRPayload,
		Status:             b.Status.String(),
		ExpiresAt:          pgconv.TimeToPgtype(b.ExpiresAt),
		CreatedAt:          pgconv.TimeToPgtype(b.CreatedAt),
		UsedAt:             usedAt,
	}
}

func (b *DiscountCodeBuilder) BuildRow() memstore.CodeRow {
	return memstore.CodeRow{
		ID:         b.ID,
		EmployeeID: b.EmployeeID,
		DivisionID: b.DivisionID,
		Percentage: b.Percentage,
		ManualCode: b.ManualCode,
		QRPayload:  b.QRPayload,
		Status:     b.Status,
		ExpiresAt:  b.ExpiresAt,
		CreatedAt:  b.CreatedAt,
		UsedAt:     b.UsedAt,
	}
}
