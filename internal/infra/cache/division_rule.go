package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"employee-discount/internal/pkg/config"
	"employee-discount/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const divisionKeyPrefix = "division-rule:"

type DivisionLoader func(ctx context.Context) (*shared.DivisionSnapshot, error)

// DivisionRuleCache sits in front of the division/rule lookup done during
// issuance. Lookups never fail because of the cache itself.
type DivisionRuleCache interface {
	Get(ctx context.Context, divisionID uuid.UUID, load DivisionLoader) (*shared.DivisionSnapshot, error)
	Invalidate(ctx context.Context, divisionID uuid.UUID) error
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

type RedisDivisionRuleCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisDivisionRuleCache(client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *RedisDivisionRuleCache {
	return &RedisDivisionRuleCache{client: client, ttl: ttl, logger: logger}
}

type cachedRule struct {
	Percentage decimal.Decimal `json:"percentage"`
	IsActive   bool            `json:"is_active"`
}

type cachedDivision struct {
	ID       uuid.UUID   `json:"id"`
	Name     string      `json:"name"`
	IsActive bool        `json:"is_active"`
	Rule     *cachedRule `json:"rule,omitempty"`
}

func (c *RedisDivisionRuleCache) Get(ctx context.Context, divisionID uuid.UUID, load DivisionLoader) (*shared.DivisionSnapshot, error) {
	key := divisionKey(divisionID)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached cachedDivision
		if uerr := json.Unmarshal(raw, &cached); uerr == nil {
			return fromCached(cached), nil
		}
		c.logger.Warn("discarding undecodable division cache entry", "key", key)
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn("division cache read failed", "key", key, "error", err.Error())
	}

	snap, err := load(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(toCached(snap))
	if err != nil {
		return snap, nil
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("division cache write failed", "key", key, "error", err.Error())
	}
	return snap, nil
}

func (c *RedisDivisionRuleCache) Invalidate(ctx context.Context, divisionID uuid.UUID) error {
	return c.client.Del(ctx, divisionKey(divisionID)).Err()
}

func (c *RedisDivisionRuleCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// NoopDivisionRuleCache always loads; used when REDIS_ADDR is unset.
type NoopDivisionRuleCache struct{}

func (NoopDivisionRuleCache) Get(ctx context.Context, _ uuid.UUID, load DivisionLoader) (*shared.DivisionSnapshot, error) {
	return load(ctx)
}

func (NoopDivisionRuleCache) Invalidate(context.Context, uuid.UUID) error {
	return nil
}

func divisionKey(id uuid.UUID) string {
	return divisionKeyPrefix + id.String()
}

func toCached(s *shared.DivisionSnapshot) cachedDivision {
	c := cachedDivision{ID: s.ID, Name: s.Name, IsActive: s.IsActive}
	if s.Rule != nil {
		c.Rule = &cachedRule{Percentage: s.Rule.Percentage, IsActive: s.Rule.IsActive}
	}
	return c
}

func fromCached(c cachedDivision) *shared.DivisionSnapshot {
	s := &shared.DivisionSnapshot{ID: c.ID, Name: c.Name, IsActive: c.IsActive}
	if c.Rule != nil {
		s.Rule = &shared.DiscountRule{Percentage: c.Rule.Percentage, IsActive: c.Rule.IsActive}
	}
	return s
}
