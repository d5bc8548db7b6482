package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"employee-discount/internal/domain/discountcode"
	"employee-discount/internal/domain/ledger"
	"employee-discount/internal/domain/limit"
	"employee-discount/internal/infra"
	"employee-discount/internal/pkg/clock"
	"employee-discount/internal/pkg/errs"
	"employee-discount/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrIdempotencyKeyReused  = errs.New("idempotency key reused with a different request")
	ErrIdempotencyInProgress = errs.New("idempotency in progress")
)

const validationEndpoint = "POST /api/validations"

// ErrorKind enumerates the business outcomes a cashier terminal must branch on.
type ErrorKind string

const (
	ErrorInvalidCode      ErrorKind = "invalid_code"
	ErrorAlreadyUsed      ErrorKind = "already_used"
	ErrorExpired          ErrorKind = "expired"
	ErrorInactiveEmployee ErrorKind = "inactive_employee"
	ErrorOverLimit        ErrorKind = "over_limit"
	ErrorInvalidAmount    ErrorKind = "invalid_amount"
)

var errorMessages = map[ErrorKind]string{
	ErrorInvalidCode:      "This code does not exist. Check the characters and try again.",
	ErrorAlreadyUsed:      "This code has already been used.",
	ErrorExpired:          "This code has expired. Ask the employee to generate a new one.",
	ErrorInactiveEmployee: "This employee is no longer eligible for discounts.",
	ErrorOverLimit:        "The purchase exceeds the employee's remaining monthly limit.",
	ErrorInvalidAmount:    "The purchase amount must be positive with at most two decimals.",
}

type LimitDetails struct {
	Limit     decimal.Decimal `json:"limit"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
	Requested decimal.Decimal `json:"requested"`
}

type RedemptionReceipt struct {
	TransactionID      uuid.UUID       `json:"transaction_id"`
	DiscountCodeID     uuid.UUID       `json:"discount_code_id"`
	EmployeeID         uuid.UUID       `json:"employee_id"`
	EmployeeName       string          `json:"employee_name"`
	DivisionName       string          `json:"division_name"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	OriginalAmount     decimal.Decimal `json:"original_amount"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	FinalAmount        decimal.Decimal `json:"final_amount"`
	RemainingLimit     decimal.Decimal `json:"remaining_limit"`
	ValidatedAt        time.Time       `json:"validated_at"`
}

// ValidationResult is either a receipt (Success) or exactly one ErrorKind.
// Details is only set for over_limit.
type ValidationResult struct {
	Success  bool               `json:"success"`
	Error    ErrorKind          `json:"error,omitempty"`
	Message  string             `json:"message,omitempty"`
	Details  *LimitDetails      `json:"details,omitempty"`
	Receipt  *RedemptionReceipt `json:"receipt,omitempty"`
	Replayed bool               `json:"-"`
}

func succeeded(receipt *RedemptionReceipt) *ValidationResult {
	return &ValidationResult{Success: true, Receipt: receipt}
}

func failed(kind ErrorKind) *ValidationResult {
	return &ValidationResult{Error: kind, Message: errorMessages[kind]}
}

func overLimit(details LimitDetails) *ValidationResult {
	r := failed(ErrorOverLimit)
	r.Details = &details
	return r
}

type ValidateCodeRequest struct {
	Code           string
	PurchaseAmount decimal.Decimal
	Location       *string
	ValidatedBy    uuid.UUID
	IdempotencyKey *uuid.UUID
}

type ValidationCommands interface {
	// Validate returns a Go error only for infrastructure failures and
	// idempotency key misuse; every business outcome is a ValidationResult.
	Validate(ctx context.Context, req ValidateCodeRequest) (*ValidationResult, error)
}

type ValidationSettings struct {
	Amounts        ledger.AmountRule
	IdempotencyTTL time.Duration
}

type validationUseCaseImpl struct {
	uow      shared.UnitOfWork
	policy   limit.Policy
	qr       *discountcode.QRCodec
	settings ValidationSettings
	clock    clock.Clock
	logger   *slog.Logger
}

func NewValidationUseCase(
	uow shared.UnitOfWork,
	policy limit.Policy,
	qr *discountcode.QRCodec,
	settings ValidationSettings,
	clk clock.Clock,
	logger *slog.Logger,
) ValidationCommands {
	return &validationUseCaseImpl{
		uow:      uow,
		policy:   policy,
		qr:       qr,
		settings: settings,
		clock:    clk,
		logger:   logger,
	}
}

func (uc *validationUseCaseImpl) Validate(ctx context.Context, req ValidateCodeRequest) (*ValidationResult, error) {
	if err := uc.settings.Amounts.Check(req.PurchaseAmount); err != nil {
		return failed(ErrorInvalidAmount), nil
	}

	ref, err := uc.qr.Decode(req.Code)
	if err != nil {
		uc.logger.Info("rejected unreadable code", "validated_by", req.ValidatedBy, "reason", err.Error())
		return failed(ErrorInvalidCode), nil
	}

	requestHash := calculateRequestHash(req)

	var result *ValidationResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil
		now := uc.clock.Now()

		if req.IdempotencyKey != nil {
			replay, err := uc.claimIdempotencyKey(ctx, tx, *req.IdempotencyKey, req.ValidatedBy, requestHash, now)
			if err != nil {
				return err
			}
			if replay != nil {
				result = replay
				return nil
			}
		}

		res, err := uc.redeem(ctx, tx, ref, req, now)
		if err != nil {
			return err
		}

		if req.IdempotencyKey != nil {
			body, err := json.Marshal(res)
			if err != nil {
				return errs.Wrap(err, "failed to encode validation result")
			}
			if err := tx.Idempotency().Complete(ctx, *req.IdempotencyKey, req.ValidatedBy, body); err != nil {
				return err
			}
		}

		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logOutcome(req, result)
	return result, nil
}

// redeem walks the checks in order; the first failing one decides the outcome.
func (uc *validationUseCaseImpl) redeem(ctx context.Context, tx shared.Tx, ref discountcode.CodeRef, req ValidateCodeRequest, now time.Time) (*ValidationResult, error) {
	code, err := uc.lookup(ctx, tx.Reads(), ref)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return failed(ErrorInvalidCode), nil
		}
		return nil, err
	}
	if code.ManualCode() != ref.Manual {
		return failed(ErrorInvalidCode), nil
	}

	switch code.Status() {
	case discountcode.StatusUsed:
		return failed(ErrorAlreadyUsed), nil
	case discountcode.StatusExpired:
		return failed(ErrorExpired), nil
	}

	if code.IsExpiredAt(now) {
		if _, err := tx.DiscountCodes().MarkExpired(ctx, code.ID()); err != nil {
			return nil, err
		}
		return failed(ErrorExpired), nil
	}

	emp, err := tx.Reads().EmployeeByID(ctx, code.EmployeeID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return failed(ErrorInactiveEmployee), nil
		}
		return nil, err
	}
	if !emp.IsActive {
		return failed(ErrorInactiveEmployee), nil
	}

	totals, err := tx.Reads().SpendingTotals(ctx, emp.ID, uc.policy.PeriodAt(now))
	if err != nil {
		return nil, err
	}
	summary := uc.policy.Evaluate(emp.MonthlyLimit, totals)
	if !summary.Allows(req.PurchaseAmount) {
		return overLimit(LimitDetails{
			Limit:     summary.Limit,
			Spent:     summary.Spent,
			Remaining: summary.Remaining,
			Requested: req.PurchaseAmount,
		}), nil
	}

	consumed, err := tx.DiscountCodes().MarkUsed(ctx, code.ID(), now)
	if err != nil {
		return nil, err
	}
	if !consumed {
		// a concurrent validation flipped the code first
		return failed(ErrorAlreadyUsed), nil
	}

	div, err := tx.Reads().DivisionRule(ctx, code.DivisionID())
	if err != nil {
		return nil, err
	}

	breakdown := ledger.CalculateDiscount(req.PurchaseAmount, code.Percentage())
	txn := ledger.NewTransaction(code.ID(), emp.ID, code.DivisionID(), breakdown, req.Location, req.ValidatedBy, now)
	if err := tx.Transactions().Create(ctx, txn); err != nil {
		return nil, err
	}

	after := summary.After(uc.policy.Charge(breakdown))
	return succeeded(&RedemptionReceipt{
		TransactionID:      txn.ID(),
		DiscountCodeID:     code.ID(),
		EmployeeID:         emp.ID,
		EmployeeName:       emp.FullName,
		DivisionName:       div.Name,
		DiscountPercentage: breakdown.Percentage,
		OriginalAmount:     breakdown.Original,
		DiscountAmount:     breakdown.Discount,
		FinalAmount:        breakdown.Final,
		RemainingLimit:     after.Remaining,
		ValidatedAt:        now,
	}), nil
}

// lookup goes by ID when the input was a signed envelope, by manual code otherwise.
func (uc *validationUseCaseImpl) lookup(ctx context.Context, reads shared.CommandReads, ref discountcode.CodeRef) (*discountcode.DiscountCode, error) {
	if ref.ID != nil {
		return reads.DiscountCodeByID(ctx, *ref.ID)
	}
	return reads.DiscountCodeByManual(ctx, ref.Manual)
}

// claimIdempotencyKey returns a stored result to replay, or nil when this
// request owns the key and should run.
func (uc *validationUseCaseImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key, userID uuid.UUID,
	requestHash string,
	now time.Time,
) (*ValidationResult, error) {
	claim := shared.IdempotencyClaim{
		Key:         key,
		UserID:      userID,
		Endpoint:    validationEndpoint,
		RequestHash: requestHash,
		ExpiresAt:   now.Add(uc.settings.IdempotencyTTL),
	}

	inserted, err := tx.Idempotency().TryInsert(ctx, claim)
	if err != nil {
		return nil, err
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, err
	}

	if existing.IsExpiredAt(now) {
		claimed, err := tx.Idempotency().ClaimExpired(ctx, claim)
		if err != nil {
			return nil, err
		}
		if !claimed {
			return nil, ErrIdempotencyInProgress
		}
		return nil, nil
	}

	if existing.RequestHash != requestHash || existing.Endpoint != validationEndpoint {
		return nil, ErrIdempotencyKeyReused
	}
	if !existing.IsCompleted() {
		return nil, ErrIdempotencyInProgress
	}

	var stored ValidationResult
	if err := json.Unmarshal(existing.ResponseBody, &stored); err != nil {
		return nil, errs.Wrap(err, "failed to decode stored validation result")
	}
	stored.Replayed = true
	return &stored, nil
}

func (uc *validationUseCaseImpl) logOutcome(req ValidateCodeRequest, result *ValidationResult) {
	if result.Success {
		uc.logger.Info("discount code redeemed",
			"transaction_id", result.Receipt.TransactionID,
			"code_id", result.Receipt.DiscountCodeID,
			"validated_by", req.ValidatedBy,
			"replayed", result.Replayed)
		return
	}
	uc.logger.Info("discount code rejected",
		"outcome", string(result.Error),
		"validated_by", req.ValidatedBy,
		"replayed", result.Replayed)
}

func calculateRequestHash(req ValidateCodeRequest) string {
	payload := struct {
		Code     string  `json:"code"`
		Amount   string  `json:"amount"`
		Location *string `json:"location,omitempty"`
	}{
		Code:     req.Code,
		Amount:   req.PurchaseAmount.StringFixed(2),
		Location: req.Location,
	}
	data, _ := json.Marshal(payload)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
