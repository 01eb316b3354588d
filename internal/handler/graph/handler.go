package graph

import (
	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

// Schemas are parsed at construction; a resolver that does not satisfy its
// schema panics at startup.
func NewRegistrySchema(r *RegistryResolver) *graphql.Schema {
	return graphql.MustParseSchema(registrySchema, r)
}

func NewLedgerSchema(r *LedgerResolver) *graphql.Schema {
	return graphql.MustParseSchema(ledgerSchema, r)
}

func Handler(schema *graphql.Schema) gin.HandlerFunc {
	return gin.WrapH(&relay.Handler{Schema: schema})
}
