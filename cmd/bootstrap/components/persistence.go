package components

import (
	"cafe-reservation/internal/infra/cache"
	"cafe-reservation/internal/infra/db"
	"cafe-reservation/internal/infra/readstore"
	"cafe-reservation/internal/infra/uow"
	"cafe-reservation/internal/pkg/config"
	"cafe-reservation/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Read stores
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		NewCatalogReadStore,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

// NewCatalogReadStore fronts the SQL catalog reads with the redis TTL cache.
func NewCatalogReadStore(dbtx db.DBTX, client *redis.Client, cfg config.Config) queries.CatalogReadStore {
	inner := readstore.NewCatalogReadStore(dbtx)
	return cache.NewCatalogCache(inner, client, cfg.Redis.CacheTTL)
}
