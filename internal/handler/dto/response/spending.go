package response

import (
	"time"

	"employee-discount/internal/usecase/queries"

	"github.com/google/uuid"
)

type SpendingSummaryResponse struct {
	EmployeeID       uuid.UUID `json:"employee_id"`
	MonthlyLimit     string    `json:"limit"`
	CurrentSpent     string    `json:"spent"`
	Remaining        string    `json:"remaining"`
	PercentageUsed   string    `json:"percentage"`
	TransactionCount int64     `json:"transaction_count"`
	PeriodStart      time.Time `json:"period_start"`
	PeriodEnd        time.Time `json:"period_end"`
	SpentBasis       string    `json:"spent_basis"`
}

func FromSpendingSummaryView(v *queries.SpendingSummaryView) (*SpendingSummaryResponse, error) {
	res := &SpendingSummaryResponse{}
	if err := copyInto(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

type TransactionResponse struct {
	ID                 uuid.UUID `json:"id"`
	DiscountCodeID     uuid.UUID `json:"discount_code_id"`
	DivisionName       string    `json:"division_name"`
	OriginalAmount     string    `json:"original_amount"`
	DiscountPercentage string    `json:"discount_percentage"`
	DiscountAmount     string    `json:"discount_amount"`
	FinalAmount        string    `json:"final_amount"`
	Location           *string   `json:"location,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

type TransactionListResponse struct {
	PeriodStart  time.Time              `json:"period_start"`
	PeriodEnd    time.Time              `json:"period_end"`
	Transactions []*TransactionResponse `json:"transactions"`
}

func FromTransactionListView(v *queries.TransactionListView) (*TransactionListResponse, error) {
	res := &TransactionListResponse{
		PeriodStart:  v.PeriodStart,
		PeriodEnd:    v.PeriodEnd,
		Transactions: make([]*TransactionResponse, len(v.Transactions)),
	}
	for i, t := range v.Transactions {
		res.Transactions[i] = &TransactionResponse{}
		if err := copyInto(res.Transactions[i], t); err != nil {
			return nil, err
		}
	}
	return res, nil
}
