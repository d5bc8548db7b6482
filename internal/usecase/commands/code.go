package commands

import (
	"context"
	"log/slog"
	"time"

	"employee-discount/internal/domain/discountcode"
	"employee-discount/internal/domain/limit"
	"employee-discount/internal/infra"
	"employee-discount/internal/pkg/clock"
	"employee-discount/internal/pkg/errs"
	"employee-discount/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmployeeNotFound        = errs.New("employee not found")
	ErrEmployeeInactive        = errs.New("employee is inactive")
	ErrDivisionNotFound        = errs.New("division not found")
	ErrDivisionInactive        = errs.New("division is inactive")
	ErrNoDiscountRule          = errs.New("division has no active discount rule")
	ErrLimitReached            = errs.New("monthly spending limit reached")
	ErrCodeGenerationExhausted = errs.New("could not generate a unique discount code")
)

const maxGenerationAttempts = 5

// CodeGenerator draws a candidate manual code. discountcode.Format is the
// production implementation.
type CodeGenerator interface {
	Generate() (discountcode.ManualCode, error)
}

type IssuedCode struct {
	ID              uuid.UUID
	EmployeeID      uuid.UUID
	DivisionID      uuid.UUID
	ManualCode      string
	DisplayCode     string
	QRPayload       string
	Percentage      decimal.Decimal
	Status          discountcode.Status
	ExpiresAt       time.Time
	CreatedAt       time.Time
	SupersededCount int64
}

type CodeCommands interface {
	Issue(ctx context.Context, employeeID, divisionID uuid.UUID) (*IssuedCode, error)
}

type CodeSettings struct {
	Format discountcode.Format
	TTL    time.Duration
}

type codeUseCaseImpl struct {
	uow       shared.UnitOfWork
	policy    limit.Policy
	generator CodeGenerator
	qr        *discountcode.QRCodec
	settings  CodeSettings
	clock     clock.Clock
	logger    *slog.Logger
}

func NewCodeUseCase(
	uow shared.UnitOfWork,
	policy limit.Policy,
	generator CodeGenerator,
	qr *discountcode.QRCodec,
	settings CodeSettings,
	clk clock.Clock,
	logger *slog.Logger,
) CodeCommands {
	return &codeUseCaseImpl{
		uow:       uow,
		policy:    policy,
		generator: generator,
		qr:        qr,
		settings:  settings,
		clock:     clk,
		logger:    logger,
	}
}

func (uc *codeUseCaseImpl) Issue(ctx context.Context, employeeID, divisionID uuid.UUID) (*IssuedCode, error) {
	var issued *IssuedCode
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		emp, err := tx.Reads().EmployeeForUpdate(ctx, employeeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrEmployeeNotFound)
			}
			return err
		}
		if !emp.IsActive {
			return ErrEmployeeInactive
		}

		percentage, err := uc.discountFor(ctx, tx, divisionID)
		if err != nil {
			return err
		}

		totals, err := tx.Reads().SpendingTotals(ctx, emp.ID, uc.policy.PeriodAt(now))
		if err != nil {
			return err
		}
		if summary := uc.policy.Evaluate(emp.MonthlyLimit, totals); !summary.Remaining.IsPositive() {
			return ErrLimitReached
		}

		superseded, err := tx.DiscountCodes().ExpireActiveForEmployee(ctx, emp.ID)
		if err != nil {
			return err
		}

		code, payload, err := uc.insertWithFreshCode(ctx, tx, emp.ID, divisionID, percentage, now)
		if err != nil {
			return err
		}

		issued = &IssuedCode{
			ID:              code.ID(),
			EmployeeID:      code.EmployeeID(),
			DivisionID:      code.DivisionID(),
			ManualCode:      code.ManualCode().String(),
			DisplayCode:     uc.settings.Format.Display(code.ManualCode()),
			QRPayload:       payload,
			Percentage:      code.Percentage(),
			Status:          code.Status(),
			ExpiresAt:       code.ExpiresAt(),
			CreatedAt:       code.CreatedAt(),
			SupersededCount: superseded,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("discount code issued",
		"code_id", issued.ID,
		"employee_id", issued.EmployeeID,
		"division_id", issued.DivisionID,
		"superseded", issued.SupersededCount)
	return issued, nil
}

func (uc *codeUseCaseImpl) discountFor(ctx context.Context, tx shared.Tx, divisionID uuid.UUID) (decimal.Decimal, error) {
	div, err := tx.Reads().DivisionRule(ctx, divisionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return decimal.Zero, errs.Mark(err, ErrDivisionNotFound)
		}
		return decimal.Zero, err
	}
	if !div.IsActive {
		return decimal.Zero, ErrDivisionInactive
	}
	if div.Rule == nil || !div.Rule.IsActive || !div.Rule.Percentage.IsPositive() {
		return decimal.Zero, ErrNoDiscountRule
	}
	return div.Rule.Percentage, nil
}

// insertWithFreshCode draws manual codes until the insert wins. The insert
// itself is the uniqueness check, so two issuances that draw the same code
// concurrently leave the loser to redraw instead of failing.
func (uc *codeUseCaseImpl) insertWithFreshCode(
	ctx context.Context,
	tx shared.Tx,
	employeeID, divisionID uuid.UUID,
	percentage decimal.Decimal,
	now time.Time,
) (*discountcode.DiscountCode, string, error) {
	for attempt := 1; attempt <= maxGenerationAttempts; attempt++ {
		manual, err := uc.generator.Generate()
		if err != nil {
			return nil, "", errs.Wrap(err, "failed to generate manual code")
		}

		code, err := discountcode.New(employeeID, divisionID, percentage, manual, now, uc.settings.TTL)
		if err != nil {
			return nil, "", err
		}
		payload := uc.qr.Encode(code)

		inserted, err := tx.DiscountCodes().Create(ctx, code, payload)
		if err != nil {
			return nil, "", err
		}
		if inserted {
			return code, payload, nil
		}
		uc.logger.Warn("manual code collision, regenerating", "attempt", attempt)
	}
	return nil, "", ErrCodeGenerationExhausted
}
