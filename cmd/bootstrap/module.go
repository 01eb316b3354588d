package bootstrap

import (
	"club-booking/cmd/bootstrap/components"
	"club-booking/migrations"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	ServerModule,
)

var RegistryModule = fx.Options(
	Module,
	MigrationModule(MigrationSource{FS: migrations.FS, Dir: migrations.RegistryDir, Table: migrations.RegistryTable}),
	components.RegistryModule,
	fx.Invoke(StartServer),
)

var LedgerModule = fx.Options(
	Module,
	MigrationModule(MigrationSource{FS: migrations.FS, Dir: migrations.LedgerDir, Table: migrations.LedgerTable}),
	components.LedgerModule,
	fx.Invoke(StartServer),
)
