package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"employee-discount/internal/domain/discountcode"
	"employee-discount/internal/domain/limit"
	"employee-discount/internal/infra/cache"
	"employee-discount/internal/infra/readstore"
	"employee-discount/internal/infra/repository"
	sqlc "employee-discount/internal/infra/sqlc/generated"
	"employee-discount/internal/pkg/errs"
	"employee-discount/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *sqlc.Queries
	rules cache.DivisionRuleCache
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, rules cache.DivisionRuleCache) shared.UnitOfWork {
	return &PostgresUoW{
		pool:  pool,
		q:     q,
		rules: rules,
	}
}

// ReadCommitted is enough here: every contended write is a conditional
// UPDATE or sits behind a row lock, and the partial unique indexes back it up.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return shared.IsRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to 63 bits above
	return int64(uval) % n
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	discountCodeRepo shared.DiscountCodeRepository
	transactionRepo  shared.TransactionRepository
	idempotencyRepo  shared.IdempotencyRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DiscountCodes() shared.DiscountCodeRepository {
	if t.discountCodeRepo == nil {
		t.discountCodeRepo = repository.NewDiscountCodeRepository(t.uow.q, t.dbtx)
	}
	return t.discountCodeRepo
}

func (t *pgTx) Transactions() shared.TransactionRepository {
	if t.transactionRepo == nil {
		t.transactionRepo = repository.NewTransactionRepository(t.uow.q, t.dbtx)
	}
	return t.transactionRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	employeeStore    *readstore.EmployeeReadStore
	divisionStore    *readstore.DivisionReadStore
	codeStore        *readstore.DiscountCodeReadStore
	spendingStore    *readstore.SpendingReadStore
	idempotencyStore *readstore.IdempotencyReadStore
}

func (r *commandReads) employees() *readstore.EmployeeReadStore {
	if r.employeeStore == nil {
		r.employeeStore = readstore.NewEmployeeReadStore(r.uow.q, r.dbtx)
	}
	return r.employeeStore
}

func (r *commandReads) codes() *readstore.DiscountCodeReadStore {
	if r.codeStore == nil {
		r.codeStore = readstore.NewDiscountCodeReadStore(r.uow.q, r.dbtx)
	}
	return r.codeStore
}

func (r *commandReads) EmployeeByID(ctx context.Context, id uuid.UUID) (*shared.EmployeeSnapshot, error) {
	return r.employees().FindByID(ctx, id)
}

func (r *commandReads) EmployeeForUpdate(ctx context.Context, id uuid.UUID) (*shared.EmployeeSnapshot, error) {
	return r.employees().FindByIDForUpdate(ctx, id)
}

func (r *commandReads) DivisionRule(ctx context.Context, divisionID uuid.UUID) (*shared.DivisionSnapshot, error) {
	if r.divisionStore == nil {
		r.divisionStore = readstore.NewDivisionReadStore(r.uow.q, r.dbtx)
	}
	return r.uow.rules.Get(ctx, divisionID, func(ctx context.Context) (*shared.DivisionSnapshot, error) {
		return r.divisionStore.FindWithRule(ctx, divisionID)
	})
}

func (r *commandReads) DiscountCodeByID(ctx context.Context, id uuid.UUID) (*discountcode.DiscountCode, error) {
	return r.codes().FindByID(ctx, id)
}

func (r *commandReads) DiscountCodeByManual(ctx context.Context, code discountcode.ManualCode) (*discountcode.DiscountCode, error) {
	return r.codes().FindByManualCode(ctx, code)
}

func (r *commandReads) SpendingTotals(ctx context.Context, employeeID uuid.UUID, period limit.Period) (limit.Totals, error) {
	if r.spendingStore == nil {
		r.spendingStore = readstore.NewSpendingReadStore(r.uow.q, r.dbtx)
	}
	return r.spendingStore.Totals(ctx, employeeID, period)
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	if r.idempotencyStore == nil {
		r.idempotencyStore = readstore.NewIdempotencyReadStore(r.uow.q, r.dbtx)
	}
	return r.idempotencyStore.Get(ctx, key, userID)
}
