package tenant

import (
	"github.com/aniketmandloi/mini-project-management-system/internal/auth"

	"github.com/gin-gonic/gin"
)

// Middleware installs a fresh tenant context on every request. Resolution is
// lazy, so the middleware itself never hits the database; unauthenticated
// requests to public operations pass through untouched.
func Middleware(tokens *auth.TokenService, loader Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		tc := NewContext(c.GetHeader("Authorization"), c.GetHeader(TenantHeader), tokens, loader)
		c.Request = c.Request.WithContext(WithContext(c.Request.Context(), tc))
		c.Next()
	}
}
