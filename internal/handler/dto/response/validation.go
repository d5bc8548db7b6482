package response

import (
	"time"

	"employee-discount/internal/usecase/commands"

	"github.com/google/uuid"
)

type LimitDetailsResponse struct {
	Limit     string `json:"limit"`
	Spent     string `json:"spent"`
	Remaining string `json:"remaining"`
	Requested string `json:"requested"`
}

type ReceiptResponse struct {
	TransactionID      uuid.UUID `json:"transaction_id"`
	DiscountCodeID     uuid.UUID `json:"discount_code_id"`
	EmployeeID         uuid.UUID `json:"employee_id"`
	EmployeeName       string    `json:"employee_name"`
	DivisionName       string    `json:"division_name"`
	DiscountPercentage string    `json:"discount_percentage"`
	OriginalAmount     string    `json:"original_amount"`
	DiscountAmount     string    `json:"discount_amount"`
	FinalAmount        string    `json:"final_amount"`
	RemainingLimit     string    `json:"remaining_limit"`
	ValidatedAt        time.Time `json:"validated_at"`
}

// ValidationResponse is the tagged result: a receipt when success is true,
// otherwise an error kind and, for over_limit only, the limit details.
type ValidationResponse struct {
	Success bool                  `json:"success"`
	Error   string                `json:"error,omitempty"`
	Message string                `json:"message,omitempty"`
	Details *LimitDetailsResponse `json:"details,omitempty"`
	Receipt *ReceiptResponse      `json:"receipt,omitempty"`
}

func FromValidationResult(r *commands.ValidationResult) (*ValidationResponse, error) {
	res := &ValidationResponse{
		Success: r.Success,
		Error:   string(r.Error),
		Message: r.Message,
	}
	if r.Details != nil {
		res.Details = &LimitDetailsResponse{}
		if err := copyInto(res.Details, r.Details); err != nil {
			return nil, err
		}
	}
	if r.Receipt != nil {
		res.Receipt = &ReceiptResponse{}
		if err := copyInto(res.Receipt, r.Receipt); err != nil {
			return nil, err
		}
	}
	return res, nil
}
