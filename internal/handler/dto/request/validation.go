package request

import (
	"employee-discount/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ValidateCodeRequest accepts the amount as a JSON number or a numeric string.
type ValidateCodeRequest struct {
	Code           string           `json:"code" binding:"required,max=128"`
	PurchaseAmount *decimal.Decimal `json:"purchase_amount" binding:"required"`
	Location       *string          `json:"location" binding:"omitempty,max=200"`
}

func (r *ValidateCodeRequest) ToCommand(validatedBy uuid.UUID, idempotencyKey *uuid.UUID) commands.ValidateCodeRequest {
	return commands.ValidateCodeRequest{
		Code:           r.Code,
		PurchaseAmount: *r.PurchaseAmount,
		Location:       r.Location,
		ValidatedBy:    validatedBy,
		IdempotencyKey: idempotencyKey,
	}
}
