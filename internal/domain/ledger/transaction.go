package ledger

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("purchase amount is out of range")

const currencyPlaces = 2

// Decoded amounts can carry any exponent; comparing or rounding one rescales
// the coefficient to that many digits, so the shape is bounded first.
const (
	minAmountExponent  = -10
	maxAmountExponent  = 10
	maxCoefficientBits = 64
)

var hundred = decimal.NewFromInt(100)

// AmountRule bounds what a cashier may submit as a purchase amount.
type AmountRule struct {
	Max decimal.Decimal
}

func (r AmountRule) Check(amount decimal.Decimal) error {
	if exp := amount.Exponent(); exp < minAmountExponent || exp > maxAmountExponent {
		return ErrInvalidAmount
	}
	if amount.Coefficient().BitLen() > maxCoefficientBits {
		return ErrInvalidAmount
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(r.Max) {
		return ErrInvalidAmount
	}
	if !amount.Equal(amount.Round(currencyPlaces)) {
		return ErrInvalidAmount
	}
	return nil
}

// Breakdown is the money side of one redemption. Discount+Final always equals
// Original because Final is derived by subtraction after rounding.
type Breakdown struct {
	Original   decimal.Decimal
	Percentage decimal.Decimal
	Discount   decimal.Decimal
	Final      decimal.Decimal
}

func CalculateDiscount(original, percentage decimal.Decimal) Breakdown {
	discount := original.Mul(percentage).Div(hundred).Round(currencyPlaces)
	return Breakdown{
		Original:   original,
		Percentage: percentage,
		Discount:   discount,
		Final:      original.Sub(discount),
	}
}

// Transaction is an immutable ledger row written once per redeemed code.
type Transaction struct {
	id             uuid.UUID
	discountCodeID uuid.UUID
	employeeID     uuid.UUID
	divisionID     uuid.UUID
	breakdown      Breakdown
	location       *string
	validatedBy    uuid.UUID
	createdAt      time.Time
}

func NewTransaction(discountCodeID, employeeID, divisionID uuid.UUID, breakdown Breakdown, location *string, validatedBy uuid.UUID, now time.Time) *Transaction {
	return &Transaction{
		id:             uuid.New(),
		discountCodeID: discountCodeID,
		employeeID:     employeeID,
		divisionID:     divisionID,
		breakdown:      breakdown,
		location:       cleanLocation(location),
		validatedBy:    validatedBy,
		createdAt:      now,
	}
}

func Reconstruct(id, discountCodeID, employeeID, divisionID uuid.UUID, breakdown Breakdown, location *string, validatedBy uuid.UUID, createdAt time.Time) *Transaction {
	return &Transaction{
		id:             id,
		discountCodeID: discountCodeID,
		employeeID:     employeeID,
		divisionID:     divisionID,
		breakdown:      breakdown,
		location:       location,
		validatedBy:    validatedBy,
		createdAt:      createdAt,
	}
}

func cleanLocation(location *string) *string {
	if location == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*location)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (t *Transaction) ID() uuid.UUID             { return t.id }
func (t *Transaction) DiscountCodeID() uuid.UUID { return t.discountCodeID }
func (t *Transaction) EmployeeID() uuid.UUID     { return t.employeeID }
func (t *Transaction) DivisionID() uuid.UUID     { return t.divisionID }
func (t *Transaction) Breakdown() Breakdown      { return t.breakdown }
func (t *Transaction) Location() *string         { return t.location }
func (t *Transaction) ValidatedBy() uuid.UUID    { return t.validatedBy }
func (t *Transaction) CreatedAt() time.Time      { return t.createdAt }
