package components

import (
	"employee-discount/internal/infra/readstore"
	sqlc "employee-discount/internal/infra/sqlc/generated"
	"employee-discount/internal/infra/uow"
	"employee-discount/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

// Command-side repositories and readstores are built per transaction inside
// the unit of work; only the query side is wired here.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Spending
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SpendingReadQueries)),
		),
		fx.Annotate(
			readstore.NewSpendingReadStore,
			fx.As(new(queries.SpendingReadStore)),
		),
		// DiscountCode
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DiscountCodeReadQueries)),
		),
		fx.Annotate(
			readstore.NewDiscountCodeReadStore,
			fx.As(new(queries.CodeReadStore)),
		),
	),
)

var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
