package discountcode

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus     = errors.New("invalid discount code status")
	ErrInvalidTransition = errors.New("discount code is no longer active")
	ErrInvalidPercentage = errors.New("discount percentage must be greater than 0 and at most 100")
	ErrInvalidTTL        = errors.New("code ttl must be positive")
)

var hundred = decimal.NewFromInt(100)

type DiscountCode struct {
	id         uuid.UUID
	employeeID uuid.UUID
	divisionID uuid.UUID
	percentage decimal.Decimal
	manualCode ManualCode
	status     Status
	expiresAt  time.Time
	createdAt  time.Time
	usedAt     *time.Time
}

// New issues a fresh active code. The percentage is the division rule at the
// time of issuance and does not follow later rule changes.
func New(employeeID, divisionID uuid.UUID, percentage decimal.Decimal, manualCode ManualCode, now time.Time, ttl time.Duration) (*DiscountCode, error) {
	if err := ValidatePercentage(percentage); err != nil {
		return nil, err
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	if manualCode == "" {
		return nil, ErrMalformedCode
	}

	return &DiscountCode{
		id:         uuid.New(),
		employeeID: employeeID,
		divisionID: divisionID,
		percentage: percentage,
		manualCode: manualCode,
		status:     StatusActive,
		expiresAt:  now.Add(ttl),
		createdAt:  now,
	}, nil
}

func Reconstruct(
	id, employeeID, divisionID uuid.UUID,
	percentage decimal.Decimal,
	manualCode ManualCode,
	status Status,
	expiresAt, createdAt time.Time,
	usedAt *time.Time,
) *DiscountCode {
	return &DiscountCode{
		id:         id,
		employeeID: employeeID,
		divisionID: divisionID,
		percentage: percentage,
		manualCode: manualCode,
		status:     status,
		expiresAt:  expiresAt,
		createdAt:  createdAt,
		usedAt:     usedAt,
	}
}

func ValidatePercentage(p decimal.Decimal) error {
	if !p.IsPositive() || p.GreaterThan(hundred) {
		return ErrInvalidPercentage
	}
	return nil
}

// IsExpiredAt treats the exact expiry instant as expired.
func (c *DiscountCode) IsExpiredAt(now time.Time) bool {
	return !now.Before(c.expiresAt)
}

// IsRedeemableAt is true only for an active code whose TTL has not elapsed.
func (c *DiscountCode) IsRedeemableAt(now time.Time) bool {
	return c.status == StatusActive && !c.IsExpiredAt(now)
}

func (c *DiscountCode) Expire() error {
	if c.status != StatusActive {
		return ErrInvalidTransition
	}
	c.status = StatusExpired
	return nil
}

func (c *DiscountCode) MarkUsed(now time.Time) error {
	if c.status != StatusActive {
		return ErrInvalidTransition
	}
	c.status = StatusUsed
	c.usedAt = &now
	return nil
}

func (c *DiscountCode) RemainingTTL(now time.Time) time.Duration {
	if c.IsExpiredAt(now) {
		return 0
	}
	return c.expiresAt.Sub(now)
}

func (c *DiscountCode) ID() uuid.UUID               { return c.id }
func (c *DiscountCode) EmployeeID() uuid.UUID       { return c.employeeID }
func (c *DiscountCode) DivisionID() uuid.UUID       { return c.divisionID }
func (c *DiscountCode) Percentage() decimal.Decimal { return c.percentage }
func (c *DiscountCode) ManualCode() ManualCode      { return c.manualCode }
func (c *DiscountCode) Status() Status              { return c.status }
func (c *DiscountCode) ExpiresAt() time.Time        { return c.expiresAt }
func (c *DiscountCode) CreatedAt() time.Time        { return c.createdAt }
func (c *DiscountCode) UsedAt() *time.Time          { return c.usedAt }
