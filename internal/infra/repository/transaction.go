package repository

import (
	"context"

	"employee-discount/internal/domain/ledger"
	"employee-discount/internal/infra"
	sqlc "employee-discount/internal/infra/sqlc/generated"
	"employee-discount/internal/pkg/pgconv"
)

type TransactionWriteQueries interface {
	CreateTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTransactionParams) error
}

// TransactionRepository only appends; ledger rows are never updated.
type TransactionRepository struct {
	queries TransactionWriteQueries
	db      sqlc.DBTX
}

func NewTransactionRepository(queries TransactionWriteQueries, db sqlc.DBTX) *TransactionRepository {
	return &TransactionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, txn *ledger.Transaction) error {
	b := txn.Breakdown()
	params := sqlc.CreateTransactionParams{
		ID:                 txn.ID(),
		DiscountCodeID:     txn.DiscountCodeID(),
		EmployeeID:         txn.EmployeeID(),
		DivisionID:         txn.DivisionID(),
		OriginalAmount:     pgconv.DecimalToNumeric(b.Original),
		DiscountPercentage: pgconv.DecimalToNumeric(b.Percentage),
		DiscountAmount:     pgconv.DecimalToNumeric(b.Discount),
		FinalAmount:        pgconv.DecimalToNumeric(b.Final),
		Location:           pgconv.StringPtrToPgtype(txn.Location()),
		ValidatedBy:        txn.ValidatedBy(),
		CreatedAt:          pgconv.TimeToPgtype(txn.CreatedAt()),
	}

	if err := r.queries.CreateTransaction(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to record transaction", err)
	}
	return nil
}
