package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"employee-discount/cmd/bootstrap"
	"employee-discount/internal/infra/cache"
	"employee-discount/internal/infra/db"
	sqlc "employee-discount/internal/infra/sqlc/generated"
	"employee-discount/internal/pkg/config"
	"employee-discount/internal/pkg/pgconv"
	"employee-discount/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
)

const seedTimeout = 30 * time.Second

func main() {
	path := flag.String("file", "configs/seed.example.yaml", "YAML fixture to load")
	flag.Parse()

	logger, err := bootstrap.NewCommandLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := run(*path, logger); err != nil {
		logger.Error("Seeding failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(path string, logger *slog.Logger) error {
	fixture, err := LoadFixture(path)
	if err != nil {
		return err
	}

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		return err
	}
	var redisCfg config.RedisConfig
	if err := envconfig.Process("", &redisCfg); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer cleanup()

	q := sqlc.New()
	divisionIDs, err := shared.WithDefaultRetry(ctx, pool, func(tx sqlc.DBTX) ([]uuid.UUID, error) {
		return apply(ctx, q, tx, fixture)
	})
	if err != nil {
		return err
	}

	// Rule changes must not wait out the cache TTL.
	if redisCfg.Addr != "" {
		client := cache.NewRedisClient(redisCfg)
		defer client.Close()
		rules := cache.NewRedisDivisionRuleCache(client, redisCfg.RuleTTL, logger)
		for _, id := range divisionIDs {
			if err := rules.Invalidate(ctx, id); err != nil {
				logger.Warn("Failed to invalidate cached division rule", "division_id", id, "error", err.Error())
			}
		}
	}

	logger.Info("Seed applied", "divisions", len(fixture.Divisions), "employees", len(fixture.Employees))
	return nil
}

func apply(ctx context.Context, q *sqlc.Queries, tx sqlc.DBTX, f *Fixture) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(f.Divisions))
	for _, d := range f.Divisions {
		if err := q.UpsertDivision(ctx, tx, sqlc.UpsertDivisionParams{
			ID:       d.ID,
			Name:     d.Name,
			IsActive: enabled(d.Active),
		}); err != nil {
			return nil, err
		}
		if d.Rule != nil {
			if err := q.UpsertDivisionDiscountRule(ctx, tx, sqlc.UpsertDivisionDiscountRuleParams{
				DivisionID:         d.ID,
				DiscountPercentage: pgconv.DecimalToNumeric(d.Rule.Percentage),
				IsActive:           enabled(d.Rule.Active),
			}); err != nil {
				return nil, err
			}
		}
		ids = append(ids, d.ID)
	}

	for _, e := range f.Employees {
		if err := q.UpsertEmployee(ctx, tx, sqlc.UpsertEmployeeParams{
			ID:                   e.ID,
			FullName:             e.FullName,
			Email:                e.Email,
			IsActive:             enabled(e.Active),
			MonthlySpendingLimit: pgconv.DecimalPtrToNumeric(e.MonthlyLimit),
		}); err != nil {
			return nil, err
		}
	}
	return ids, nil
}
