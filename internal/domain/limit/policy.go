package limit

import (
	"errors"
	"time"

	"employee-discount/internal/domain/ledger"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidSpentBasis = errors.New("spent basis must be final_amount or original_amount")
	ErrNegativeLimit     = errors.New("spending limit must not be negative")
)

const percentageScale int32 = 2

var hundred = decimal.NewFromInt(100)

// SpentBasis selects which ledger column counts toward the monthly cap.
type SpentBasis string

const (
	BasisFinalAmount    SpentBasis = "final_amount"
	BasisOriginalAmount SpentBasis = "original_amount"
)

func ParseSpentBasis(s string) (SpentBasis, error) {
	switch b := SpentBasis(s); b {
	case BasisFinalAmount, BasisOriginalAmount:
		return b, nil
	default:
		return "", ErrInvalidSpentBasis
	}
}

// Totals are the ledger sums for one employee over one period.
type Totals struct {
	Original decimal.Decimal
	Final    decimal.Decimal
	Count    int64
}

func (t Totals) Spent(basis SpentBasis) decimal.Decimal {
	if basis == BasisOriginalAmount {
		return t.Original
	}
	return t.Final
}

type Summary struct {
	Limit      decimal.Decimal
	Spent      decimal.Decimal
	Remaining  decimal.Decimal
	Percentage decimal.Decimal
}

// Allows reports whether amount fits in what is left; equality is allowed.
func (s Summary) Allows(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(s.Remaining)
}

type Policy struct {
	defaultLimit decimal.Decimal
	basis        SpentBasis
	location     *time.Location
}

func NewPolicy(defaultLimit decimal.Decimal, basis SpentBasis, location *time.Location) (Policy, error) {
	if defaultLimit.IsNegative() {
		return Policy{}, ErrNegativeLimit
	}
	if _, err := ParseSpentBasis(string(basis)); err != nil {
		return Policy{}, err
	}
	if location == nil {
		location = time.UTC
	}
	return Policy{defaultLimit: defaultLimit, basis: basis, location: location}, nil
}

func (p Policy) Basis() SpentBasis             { return p.basis }
func (p Policy) Location() *time.Location      { return p.location }
func (p Policy) DefaultLimit() decimal.Decimal { return p.defaultLimit }

func (p Policy) PeriodAt(t time.Time) Period {
	return MonthOf(t, p.location)
}

// LimitFor prefers the employee override and falls back to the default.
func (p Policy) LimitFor(override *decimal.Decimal) decimal.Decimal {
	if override != nil {
		return *override
	}
	return p.defaultLimit
}

func (p Policy) Evaluate(override *decimal.Decimal, totals Totals) Summary {
	return summarize(p.LimitFor(override), totals.Spent(p.basis))
}

// Charge is how much of a redemption counts against the cap.
func (p Policy) Charge(b ledger.Breakdown) decimal.Decimal {
	if p.basis == BasisOriginalAmount {
		return b.Original
	}
	return b.Final
}

// After returns the summary once charge has been recorded.
func (s Summary) After(charge decimal.Decimal) Summary {
	return summarize(s.Limit, s.Spent.Add(charge))
}

func summarize(limitValue, spent decimal.Decimal) Summary {
	remaining := limitValue.Sub(spent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	percentage := decimal.Zero
	if !limitValue.IsZero() {
		percentage = spent.Div(limitValue).Mul(hundred).Round(percentageScale)
	}

	return Summary{
		Limit:      limitValue,
		Spent:      spent,
		Remaining:  remaining,
		Percentage: percentage,
	}
}
