package queries

import (
	"context"
	"time"

	"employee-discount/internal/domain/discountcode"
	"employee-discount/internal/infra"
	"employee-discount/internal/pkg/clock"
	"employee-discount/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNoActiveCode = errs.New("no active discount code")

type CodeReadStore interface {
	ActiveByEmployee(ctx context.Context, employeeID uuid.UUID, now time.Time) (*ActiveCodeView, error)
}

type CodeQueries interface {
	ActiveCode(ctx context.Context, employeeID uuid.UUID) (*ActiveCodeView, error)
}

type codeQueriesImpl struct {
	store  CodeReadStore
	format discountcode.Format
	clock  clock.Clock
}

func NewCodeQueries(store CodeReadStore, format discountcode.Format, clk clock.Clock) CodeQueries {
	return &codeQueriesImpl{store: store, format: format, clock: clk}
}

// ActiveCode does not expire anything; a code past its TTL is simply not
// returned.
func (q *codeQueriesImpl) ActiveCode(ctx context.Context, employeeID uuid.UUID) (*ActiveCodeView, error) {
	now := q.clock.Now()
	view, err := q.store.ActiveByEmployee(ctx, employeeID, now)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNoActiveCode)
		}
		return nil, err
	}

	view.DisplayCode = q.format.Display(discountcode.ManualCode(view.ManualCode))
	view.RemainingSeconds = int64(view.ExpiresAt.Sub(now) / time.Second)
	return view, nil
}
