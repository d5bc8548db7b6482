package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EmployeeView struct {
	ID           uuid.UUID
	FullName     string
	Email        string
	IsActive     bool
	MonthlyLimit *decimal.Decimal
}

type SpendingSummaryView struct {
	EmployeeID       uuid.UUID       `json:"employee_id"`
	MonthlyLimit     decimal.Decimal `json:"monthly_limit"`
	CurrentSpent     decimal.Decimal `json:"current_spent"`
	Remaining        decimal.Decimal `json:"remaining"`
	PercentageUsed   decimal.Decimal `json:"percentage_used"`
	TransactionCount int64           `json:"transaction_count"`
	PeriodStart      time.Time       `json:"period_start"`
	PeriodEnd        time.Time       `json:"period_end"`
	SpentBasis       string          `json:"spent_basis"`
}

type TransactionView struct {
	ID                 uuid.UUID       `json:"id"`
	DiscountCodeID     uuid.UUID       `json:"discount_code_id"`
	DivisionID         uuid.UUID       `json:"division_id"`
	DivisionName       string          `json:"division_name"`
	OriginalAmount     decimal.Decimal `json:"original_amount"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	FinalAmount        decimal.Decimal `json:"final_amount"`
	Location           *string         `json:"location,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

type TransactionListView struct {
	PeriodStart  time.Time          `json:"period_start"`
	PeriodEnd    time.Time          `json:"period_end"`
	Transactions []*TransactionView `json:"transactions"`
}

// ActiveCodeView is what the employee's device needs to display a code and
// its countdown.
type ActiveCodeView struct {
	ID               uuid.UUID       `json:"id"`
	EmployeeID       uuid.UUID       `json:"employee_id"`
	DivisionID       uuid.UUID       `json:"division_id"`
	ManualCode       string          `json:"manual_code"`
	DisplayCode      string          `json:"display_code"`
	QRPayload        string          `json:"qr_payload"`
	Percentage       decimal.Decimal `json:"discount_percentage"`
	ExpiresAt        time.Time       `json:"expires_at"`
	CreatedAt        time.Time       `json:"created_at"`
	RemainingSeconds int64           `json:"remaining_seconds"`
}
