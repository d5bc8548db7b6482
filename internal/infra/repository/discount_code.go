package repository

import (
	"context"
	"time"

	"employee-discount/internal/domain/discountcode"
	"employee-discount/internal/infra"
	sqlc "employee-discount/internal/infra/sqlc/generated"
	"employee-discount/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DiscountCodeWriteQueries interface {
	CreateDiscountCode(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDiscountCodeParams) (int64, error)
	ExpireActiveDiscountCodesForEmployee(ctx context.Context, db sqlc.DBTX, employeeID uuid.UUID) (int64, error)
	MarkDiscountCodeUsed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkDiscountCodeUsedParams) (int64, error)
	MarkDiscountCodeExpired(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type DiscountCodeRepository struct {
	queries DiscountCodeWriteQueries
	db      sqlc.DBTX
}

func NewDiscountCodeRepository(queries DiscountCodeWriteQueries, db sqlc.DBTX) *DiscountCodeRepository {
	return &DiscountCodeRepository{
		queries: queries,
		db:      db,
	}
}

// Create reports false when another active code already holds the manual
// code. Any other unique violation is returned as a duplicate-key error.
func (r *DiscountCodeRepository) Create(ctx context.Context, code *discountcode.DiscountCode, qrPayload string) (bool, error) {
	params := sqlc.CreateDiscountCodeParams{
		ID:                 code.ID(),
		EmployeeID:         code.EmployeeID(),
		DivisionID:         code.DivisionID(),
		DiscountPercentage: pgconv.DecimalToNumeric(code.Percentage()),
		ManualCode:         code.ManualCode().String(),
		QrPayload:          qrPayload,
		Status:             code.Status().String(),
		ExpiresAt:          pgconv.TimeToPgtype(code.ExpiresAt()),
		CreatedAt:          pgconv.TimeToPgtype(code.CreatedAt()),
	}

	n, err := r.queries.CreateDiscountCode(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to create discount code", err)
	}
	return n == 1, nil
}

func (r *DiscountCodeRepository) ExpireActiveForEmployee(ctx context.Context, employeeID uuid.UUID) (int64, error) {
	n, err := r.queries.ExpireActiveDiscountCodesForEmployee(ctx, r.db, employeeID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire active discount codes", err)
	}
	return n, nil
}

func (r *DiscountCodeRepository) MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) (bool, error) {
	n, err := r.queries.MarkDiscountCodeUsed(ctx, r.db, sqlc.MarkDiscountCodeUsedParams{
		ID:     id,
		UsedAt: pgconv.TimeToPgtype(usedAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark discount code used", err)
	}
	return n == 1, nil
}

func (r *DiscountCodeRepository) MarkExpired(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.queries.MarkDiscountCodeExpired(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark discount code expired", err)
	}
	return n == 1, nil
}
