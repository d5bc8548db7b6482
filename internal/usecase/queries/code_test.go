//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"employee-discount/internal/domain/discountcode"
	"employee-discount/internal/infra"
	"employee-discount/internal/pkg/clock"
	"employee-discount/internal/pkg/errs"
	"employee-discount/internal/usecase/queries"
	queriesmock "employee-discount/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCodeQueries_ActiveCode(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("success: adds display form and countdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCodeReadStore(ctrl)
		store.EXPECT().ActiveByEmployee(ctx, employeeID, now).Return(&queries.ActiveCodeView{
			ID:         uuid.New(),
			EmployeeID: employeeID,
			ManualCode: "ABC123",
			ExpiresAt:  now.Add(3*time.Minute + 500*time.Millisecond),
		}, nil)

		q := queries.NewCodeQueries(store, discountcode.DefaultFormat(), clock.NewMockClock(now))
		view, err := q.ActiveCode(ctx, employeeID)
		require.NoError(t, err)
		assert.Equal(t, "EDC-ABC123", view.DisplayCode)
		assert.Equal(t, int64(180), view.RemainingSeconds)
	})

	t.Run("error: no active code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCodeReadStore(ctrl)
		store.EXPECT().ActiveByEmployee(ctx, employeeID, now).Return(nil, infra.WrapRepoErr("no active discount code", nil, infra.KindNotFound))

		q := queries.NewCodeQueries(store, discountcode.DefaultFormat(), clock.NewMockClock(now))
		_, err := q.ActiveCode(ctx, employeeID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, queries.ErrNoActiveCode))
	})
}
