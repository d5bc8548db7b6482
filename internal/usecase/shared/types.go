package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EmployeeSnapshot struct {
	ID       uuid.UUID
	FullName string
	Email    string
	IsActive bool
	// MonthlyLimit is nil when the employee uses the default cap.
	MonthlyLimit *decimal.Decimal
}

type DivisionSnapshot struct {
	ID       uuid.UUID
	Name     string
	IsActive bool
	// Rule is nil when the division has no discount rule configured.
	Rule *DiscountRule
}

type DiscountRule struct {
	Percentage decimal.Decimal
	IsActive   bool
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyClaim struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	ExpiresAt   time.Time
}

type IdempotencyRecord struct {
	Key          uuid.UUID
	UserID       uuid.UUID
	Endpoint     string
	Status       string
	RequestHash  string
	ResponseBody []byte
	ExpiresAt    time.Time
}

func (r *IdempotencyRecord) IsCompleted() bool {
	return r.Status == IdempotencyStatusCompleted
}

func (r *IdempotencyRecord) IsExpiredAt(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}
