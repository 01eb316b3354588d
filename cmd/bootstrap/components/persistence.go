package components

import (
	"club-booking/internal/infra/readstore"
	sqlc "club-booking/internal/infra/sqlc/generated"
	"club-booking/internal/infra/uow"
	"club-booking/internal/usecase/queries"
	"club-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	fx.Annotate(
		uow.NewPostgresUoW,
		fx.As(new(shared.UnitOfWork)),
	),
)

var registryPersistenceModule = fx.Module("persistence/registry",
	baseOption,
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MemberReadQueries)),
		),
		fx.Annotate(
			readstore.NewMemberReadStore,
			fx.As(new(queries.MemberReadStore)),
		),
	),
)

var ledgerPersistenceModule = fx.Module("persistence/ledger",
	baseOption,
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.FieldReadStore)),
			fx.As(new(queries.PoolReadStore)),
			fx.As(new(queries.MemberBookingReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
