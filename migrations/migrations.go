package migrations

import "embed"

const (
	RegistryDir = "registry"
	LedgerDir   = "ledger"

	RegistryTable = "registry_schema_migrations"
	LedgerTable   = "ledger_schema_migrations"
)

//go:embed registry/*.sql ledger/*.sql
var FS embed.FS
