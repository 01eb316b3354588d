package components

import (
	"club-booking/internal/handler"
	"club-booking/internal/handler/api"
	"club-booking/internal/handler/graph"

	graphql "github.com/graph-gophers/graphql-go"
	"go.uber.org/fx"
)

var registryHandlerModule = fx.Module("handler/registry",
	fx.Provide(
		api.NewMemberHandler,
		graph.NewRegistryResolver,
		graph.NewRegistrySchema,
		func(member *api.MemberHandler, schema *graphql.Schema) handler.RegistryHandlers {
			return handler.RegistryHandlers{Member: member, Schema: schema}
		},
	),
	fx.Invoke(handler.NewRegistryRouter),
)

var ledgerHandlerModule = fx.Module("handler/ledger",
	fx.Provide(
		api.NewFieldHandler,
		api.NewPoolHandler,
		api.NewBookingsHandler,
		graph.NewLedgerResolver,
		graph.NewLedgerSchema,
		func(field *api.FieldHandler, pool *api.PoolHandler, bookings *api.BookingsHandler, schema *graphql.Schema) handler.LedgerHandlers {
			return handler.LedgerHandlers{Field: field, Pool: pool, Bookings: bookings, Schema: schema}
		},
	),
	fx.Invoke(handler.NewLedgerRouter),
)

var RegistryModule = fx.Options(
	registryPersistenceModule,
	registryUseCaseModule,
	registryHandlerModule,
)

var LedgerModule = fx.Options(
	ledgerPersistenceModule,
	ledgerUseCaseModule,
	ledgerHandlerModule,
)
