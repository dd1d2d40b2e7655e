package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// NewGraphQLHandler mounts the schema on a gin handler. GraphiQL is only
// served when enabled, so production deployments keep the endpoint bare.
func NewGraphQLHandler(schema graphql.Schema, graphiql bool) gin.HandlerFunc {
	h := handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: graphiql,
	})
	return gin.WrapH(h)
}
