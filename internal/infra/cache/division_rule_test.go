//go:build unit

package cache

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"employee-discount/internal/usecase/shared"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleDivision() *shared.DivisionSnapshot {
	return &shared.DivisionSnapshot{
		ID:       uuid.New(),
		Name:     "Grocery",
		IsActive: true,
		Rule:     &shared.DiscountRule{Percentage: decimal.RequireFromString("12.5"), IsActive: true},
	}
}

func TestRedisDivisionRuleCache_Miss_LoadsAndStores(t *testing.T) {
	client, rmock := redismock.NewClientMock()
	div := sampleDivision()
	key := divisionKey(div.ID)
	data, err := json.Marshal(toCached(div))
	require.NoError(t, err)

	rmock.ExpectGet(key).RedisNil()
	rmock.ExpectSet(key, data, time.Minute).SetVal("OK")

	c := NewRedisDivisionRuleCache(client, time.Minute, discardLogger())
	calls := 0
	got, err := c.Get(context.Background(), div.ID, func(context.Context) (*shared.DivisionSnapshot, error) {
		calls++
		return div, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, div, got)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestRedisDivisionRuleCache_Hit_SkipsLoader(t *testing.T) {
	client, rmock := redismock.NewClientMock()
	div := sampleDivision()
	data, err := json.Marshal(toCached(div))
	require.NoError(t, err)

	rmock.ExpectGet(divisionKey(div.ID)).SetVal(string(data))

	c := NewRedisDivisionRuleCache(client, time.Minute, discardLogger())
	got, err := c.Get(context.Background(), div.ID, func(context.Context) (*shared.DivisionSnapshot, error) {
		t.Fatal("loader must not run on a cache hit")
		return nil, nil
	})

	require.NoError(t, err)
	assert.Equal(t, div.Name, got.Name)
	require.NotNil(t, got.Rule)
	assert.True(t, div.Rule.Percentage.Equal(got.Rule.Percentage))
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestRedisDivisionRuleCache_RedisDown_FallsBackToLoader(t *testing.T) {
	client, rmock := redismock.NewClientMock()
	div := sampleDivision()
	key := divisionKey(div.ID)

	// the write-back is not expected either, so it fails too
	rmock.ExpectGet(key).SetErr(assert.AnError)

	c := NewRedisDivisionRuleCache(client, time.Minute, discardLogger())
	got, err := c.Get(context.Background(), div.ID, func(context.Context) (*shared.DivisionSnapshot, error) {
		return div, nil
	})

	require.NoError(t, err)
	assert.Equal(t, div, got)
}

func TestRedisDivisionRuleCache_LoaderError_NotCached(t *testing.T) {
	client, rmock := redismock.NewClientMock()
	id := uuid.New()

	rmock.ExpectGet(divisionKey(id)).RedisNil()

	c := NewRedisDivisionRuleCache(client, time.Minute, discardLogger())
	_, err := c.Get(context.Background(), id, func(context.Context) (*shared.DivisionSnapshot, error) {
		return nil, assert.AnError
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestRedisDivisionRuleCache_Invalidate(t *testing.T) {
	client, rmock := redismock.NewClientMock()
	id := uuid.New()
	rmock.ExpectDel(divisionKey(id)).SetVal(1)

	c := NewRedisDivisionRuleCache(client, time.Minute, discardLogger())

	require.NoError(t, c.Invalidate(context.Background(), id))
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestNoopDivisionRuleCache(t *testing.T) {
	div := sampleDivision()
	got, err := NoopDivisionRuleCache{}.Get(context.Background(), div.ID, func(context.Context) (*shared.DivisionSnapshot, error) {
		return div, nil
	})

	require.NoError(t, err)
	assert.Same(t, div, got)
	assert.NoError(t, NoopDivisionRuleCache{}.Invalidate(context.Background(), div.ID))
}
