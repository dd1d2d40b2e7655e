package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aniketmandloi/mini-project-management-system/internal/api/middleware"
	"github.com/aniketmandloi/mini-project-management-system/internal/config"
	"github.com/aniketmandloi/mini-project-management-system/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type MiddlewareTestSuite struct {
	suite.Suite
}

func (suite *MiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
}

func (suite *MiddlewareTestSuite) serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func (suite *MiddlewareTestSuite) TestRequestIDGenerated() {
	router := gin.New()
	router.Use(middleware.RequestID())

	var seen string
	router.GET("/", func(c *gin.Context) {
		seen, _ = c.Request.Context().Value(logger.ContextKeyRequestID).(string)
		c.Status(http.StatusOK)
	})

	w := suite.serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

	echoed := w.Header().Get("X-Request-ID")
	assert.NotEmpty(suite.T(), echoed)
	assert.Equal(suite.T(), echoed, seen)
	_, err := uuid.Parse(echoed)
	assert.NoError(suite.T(), err)
}

func (suite *MiddlewareTestSuite) TestRequestIDHonored() {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "trace-me-42")
	w := suite.serve(router, req)

	assert.Equal(suite.T(), "trace-me-42", w.Header().Get("X-Request-ID"))
}

func (suite *MiddlewareTestSuite) TestRecoveryConvertsPanic() {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.GET("/boom", func(c *gin.Context) { panic("unexpected") })

	w := suite.serve(router, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "internal server error")
}

func (suite *MiddlewareTestSuite) TestLoggerPassesThrough() {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger())
	router.GET("/", func(c *gin.Context) { c.String(http.StatusTeapot, "short and stout") })

	w := suite.serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(suite.T(), http.StatusTeapot, w.Code)
	assert.Equal(suite.T(), "short and stout", w.Body.String())
}

func (suite *MiddlewareTestSuite) TestCORSAllowedOrigin() {
	cfg := &config.Config{AllowedOrigins: []string{"https://app.example.com"}}
	router := gin.New()
	router.Use(middleware.CORS(cfg))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := suite.serve(router, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
	assert.Equal(suite.T(), "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func (suite *MiddlewareTestSuite) TestCORSForeignOriginDenied() {
	cfg := &config.Config{AllowedOrigins: []string{"https://app.example.com"}}
	router := gin.New()
	router.Use(middleware.CORS(cfg))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := suite.serve(router, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *MiddlewareTestSuite) TestCORSWildcard() {
	cfg := &config.Config{AllowedOrigins: []string{"*"}}
	router := gin.New()
	router.Use(middleware.CORS(cfg))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://anywhere.example.com")
	w := suite.serve(router, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}
