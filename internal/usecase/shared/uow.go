package shared

import (
	"context"
	"time"

	"employee-discount/internal/domain/discountcode"
	"employee-discount/internal/domain/ledger"
	"employee-discount/internal/domain/limit"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	DiscountCodes() DiscountCodeRepository
	Transactions() TransactionRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
}

type CommandReads interface {
	EmployeeByID(ctx context.Context, id uuid.UUID) (*EmployeeSnapshot, error)
	// EmployeeForUpdate locks the employee row until the surrounding transaction ends.
	EmployeeForUpdate(ctx context.Context, id uuid.UUID) (*EmployeeSnapshot, error)
	DivisionRule(ctx context.Context, divisionID uuid.UUID) (*DivisionSnapshot, error)
	DiscountCodeByID(ctx context.Context, id uuid.UUID) (*discountcode.DiscountCode, error)
	// DiscountCodeByManual prefers the active row, then the most recent one.
	DiscountCodeByManual(ctx context.Context, code discountcode.ManualCode) (*discountcode.DiscountCode, error)
	SpendingTotals(ctx context.Context, employeeID uuid.UUID, period limit.Period) (limit.Totals, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type DiscountCodeRepository interface {
	// Create returns false, and writes nothing, when the manual code is
	// already held by an active code.
	Create(ctx context.Context, code *discountcode.DiscountCode, qrPayload string) (bool, error)
	// ExpireActiveForEmployee supersedes every active code of the employee.
	ExpireActiveForEmployee(ctx context.Context, employeeID uuid.UUID) (int64, error)
	// MarkUsed and MarkExpired only move active codes and report whether a row changed.
	MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) (bool, error)
	MarkExpired(ctx context.Context, id uuid.UUID) (bool, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, txn *ledger.Transaction) error
}

type IdempotencyRepository interface {
	// TryInsert returns false when the key already exists for the user.
	TryInsert(ctx context.Context, claim IdempotencyClaim) (bool, error)
	// ClaimExpired takes over a key whose previous claim has lapsed.
	ClaimExpired(ctx context.Context, claim IdempotencyClaim) (bool, error)
	Complete(ctx context.Context, key, userID uuid.UUID, responseBody []byte) error
}
