//go:build unit || e2e

package builder

import (
	reqdto "employee-discount/internal/handler/dto/request"
	"employee-discount/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ValidationBuilder struct {
	Code           string
	Amount         string
	Location       *string
	ValidatedBy    uuid.UUID
	IdempotencyKey *uuid.UUID
}

func NewValidationBuilder() *ValidationBuilder {
	location := "Store 12"
	return &ValidationBuilder{
		Code:        "ABC123",
		Amount:      "100.00",
		Location:    &location,
		ValidatedBy: uuid.New(),
	}
}

func (b *ValidationBuilder) With(mutate func(*ValidationBuilder)) *ValidationBuilder {
	mutate(b)
	return b
}

func (b *ValidationBuilder) BuildCommand() commands.ValidateCodeRequest {
	return commands.ValidateCodeRequest{
		Code:           b.Code,
		PurchaseAmount: decimal.RequireFromString(b.Amount),
		Location:       b.Location,
		ValidatedBy:    b.ValidatedBy,
		IdempotencyKey: b.IdempotencyKey,
	}
}

func (b *ValidationBuilder) BuildRequestDTO() reqdto.ValidateCodeRequest {
	amount := decimal.RequireFromString(b.Amount)
	return reqdto.ValidateCodeRequest{
		Code:           b.Code,
		PurchaseAmount: &amount,
		Location:       b.Location,
	}
}
