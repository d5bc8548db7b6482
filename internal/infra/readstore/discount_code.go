package readstore

import (
	"context"
	"time"

	"employee-discount/internal/domain/discountcode"
	"employee-discount/internal/infra"
	sqlc "employee-discount/internal/infra/sqlc/generated"
	"employee-discount/internal/pkg/pgconv"
	"employee-discount/internal/usecase/queries"

	"github.com/google/uuid"
)

type DiscountCodeReadQueries interface {
	GetDiscountCodeByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.DiscountCodes, error)
	GetDiscountCodeByManualCode(ctx context.Context, db sqlc.DBTX, manualCode string) (sqlc.DiscountCodes, error)
	GetActiveDiscountCodeByEmployee(ctx context.Context, db sqlc.DBTX, arg sqlc.GetActiveDiscountCodeByEmployeeParams) (sqlc.DiscountCodes, error)
}

type DiscountCodeReadStore struct {
	queries DiscountCodeReadQueries
	db      sqlc.DBTX
}

func NewDiscountCodeReadStore(queries DiscountCodeReadQueries, db sqlc.DBTX) *DiscountCodeReadStore {
	return &DiscountCodeReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DiscountCodeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*discountcode.DiscountCode, error) {
	row, err := r.queries.GetDiscountCodeByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("discount code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find discount code by ID", err)
	}
	return toDiscountCode(row)
}

func (r *DiscountCodeReadStore) FindByManualCode(ctx context.Context, code discountcode.ManualCode) (*discountcode.DiscountCode, error) {
	row, err := r.queries.GetDiscountCodeByManualCode(ctx, r.db, code.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("discount code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find discount code by manual code", err)
	}
	return toDiscountCode(row)
}

func (r *DiscountCodeReadStore) ActiveByEmployee(ctx context.Context, employeeID uuid.UUID, now time.Time) (*queries.ActiveCodeView, error) {
	row, err := r.queries.GetActiveDiscountCodeByEmployee(ctx, r.db, sqlc.GetActiveDiscountCodeByEmployeeParams{
		EmployeeID: employeeID,
		ExpiresAt:  pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no active discount code", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active discount code", err)
	}

	pct, err := pgconv.DecimalFromNumeric(row.DiscountPercentage)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert discount percentage", err)
	}

	return &queries.ActiveCodeView{
		ID:         row.ID,
		EmployeeID: row.EmployeeID,
		DivisionID: row.DivisionID,
		ManualCode: row.ManualCode,
		QRPayload:  row.QrPayload,
		Percentage: pct,
		ExpiresAt:  row.ExpiresAt.Time,
		CreatedAt:  row.CreatedAt.Time,
	}, nil
}

func toDiscountCode(row sqlc.DiscountCodes) (*discountcode.DiscountCode, error) {
	pct, err := pgconv.DecimalFromNumeric(row.DiscountPercentage)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert discount percentage", err)
	}
	status, err := discountcode.ParseStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("unexpected discount code status", err)
	}

	return discountcode.Reconstruct(
		row.ID,
		row.EmployeeID,
		row.DivisionID,
		pct,
		discountcode.ManualCode(row.ManualCode),
		status,
		row.ExpiresAt.Time,
		row.CreatedAt.Time,
		pgconv.TimePtrFromPgtype(row.UsedAt),
	), nil
}
