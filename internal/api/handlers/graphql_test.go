package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aniketmandloi/mini-project-management-system/internal/api/handlers"
	"github.com/aniketmandloi/mini-project-management-system/internal/testutils"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// GraphQLHandlerTestSuite defines the test suite for the GraphQL endpoint
// handler, using a one-field schema so only the transport is under test
type GraphQLHandlerTestSuite struct {
	suite.Suite
	schema graphql.Schema
}

func (suite *GraphQLHandlerTestSuite) SetupTest() {
	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"ping": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return "pong", nil
					},
				},
			},
		}),
	})
	suite.Require().NoError(err)
	suite.schema = schema
}

func (suite *GraphQLHandlerTestSuite) newHTTPSuite(graphiql bool) *testutils.HTTPTestSuite {
	httpSuite := testutils.SetupHTTPTest()
	h := handlers.NewGraphQLHandler(suite.schema, graphiql)
	httpSuite.Router.POST("/graphql", h)
	httpSuite.Router.GET("/graphql", h)
	return httpSuite
}

func (suite *GraphQLHandlerTestSuite) TestPostQuery() {
	httpSuite := suite.newHTTPSuite(false)

	w := httpSuite.MakeRequest(http.MethodPost, "/graphql", map[string]string{"query": "{ ping }"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var resp struct {
		Data map[string]string `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "pong", resp.Data["ping"])
}

func (suite *GraphQLHandlerTestSuite) TestGetQuery() {
	httpSuite := suite.newHTTPSuite(false)

	w := httpSuite.MakeRequest(http.MethodGet, "/graphql?query={ping}", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "pong")
}

func (suite *GraphQLHandlerTestSuite) TestGraphiQLServedOnlyWhenEnabled() {
	headers := map[string]string{"Accept": "text/html"}

	w := suite.newHTTPSuite(true).MakeRequestWithHeaders(http.MethodGet, "/graphql", nil, headers)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "graphiql")

	w = suite.newHTTPSuite(false).MakeRequestWithHeaders(http.MethodGet, "/graphql", nil, headers)
	assert.NotContains(suite.T(), w.Body.String(), "graphiql")
}

func TestGraphQLHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GraphQLHandlerTestSuite))
}
