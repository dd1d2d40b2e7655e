// Package tenant implements the organization isolation layer: a per-request
// context resolving the caller's identity and active organization, a
// composable permission policy set, and the scoped query filters that keep
// every data access inside the caller's tenant.
package tenant

import (
	"context"
	"strings"
	"sync"

	"github.com/aniketmandloi/mini-project-management-system/internal/auth"
	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"
	apperrors "github.com/aniketmandloi/mini-project-management-system/internal/errors"

	"github.com/google/uuid"
)

// TenantHeader selects the active organization by slug. Absent, the
// principal's own organization is used.
const TenantHeader = "X-Organization"

type contextKey struct{}

// Loader provides the lookups the context needs to turn token claims and
// header values into model instances.
type Loader interface {
	UserByID(id uuid.UUID) (*models.User, error)
	OrganizationByID(id uuid.UUID) (*models.Organization, error)
	OrganizationBySlug(slug string) (*models.Organization, error)
}

// Context carries the caller's identity and active organization for the
// lifetime of one request. It is constructed once at the start of request
// handling and never mutated afterwards; identity and tenant are resolved
// lazily and memoized, so consulting the context from many resolvers costs at
// most one identity lookup and one tenant lookup.
type Context struct {
	authHeader   string
	tenantHeader string
	tokens       *auth.TokenService
	loader       Loader

	principalOnce sync.Once
	principal     *models.User
	principalErr  error

	orgOnce sync.Once
	org     *models.Organization
	orgErr  error
}

// NewContext builds a request context from the raw header values
func NewContext(authHeader, tenantHeader string, tokens *auth.TokenService, loader Loader) *Context {
	return &Context{
		authHeader:   authHeader,
		tenantHeader: tenantHeader,
		tokens:       tokens,
		loader:       loader,
	}
}

// WithContext attaches the tenant context to a request context
func WithContext(ctx context.Context, tc *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// FromContext extracts the tenant context from a request context
func FromContext(ctx context.Context) (*Context, bool) {
	tc, ok := ctx.Value(contextKey{}).(*Context)
	return tc, ok
}

// Principal resolves the authenticated user. A missing Authorization header
// yields (nil, nil), the anonymous principal. Invalid, expired or malformed
// credentials fail with an authentication error; a resolved but deactivated
// account fails with ErrAccountDisabled.
func (c *Context) Principal() (*models.User, error) {
	c.principalOnce.Do(func() {
		c.principal, c.principalErr = c.resolvePrincipal()
	})
	return c.principal, c.principalErr
}

func (c *Context) resolvePrincipal() (*models.User, error) {
	if c.authHeader == "" {
		return nil, nil
	}

	tokenString := strings.TrimPrefix(c.authHeader, "Bearer ")
	if tokenString == c.authHeader {
		return nil, apperrors.ErrUnauthenticated
	}

	claims, err := c.tokens.ValidateAccess(tokenString)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := c.loader.UserByID(userID)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	return user, nil
}

// Organization resolves the active tenant for this request. With a tenant
// header present the named organization is loaded and the principal's
// membership verified (superusers may select any active organization);
// without one the principal's own organization is used. Inactive
// organizations resolve to nil.
func (c *Context) Organization() (*models.Organization, error) {
	c.orgOnce.Do(func() {
		c.org, c.orgErr = c.resolveOrganization()
	})
	return c.org, c.orgErr
}

func (c *Context) resolveOrganization() (*models.Organization, error) {
	principal, err := c.Principal()
	if err != nil {
		return nil, err
	}
	if principal == nil {
		return nil, nil
	}

	if c.tenantHeader != "" {
		org, err := c.loader.OrganizationBySlug(c.tenantHeader)
		if err != nil {
			return nil, apperrors.ErrOrganizationNotFound
		}
		if !org.IsActive {
			return nil, apperrors.ErrOrganizationNotFound
		}
		if !principal.IsSuperuser && !principal.BelongsTo(org.ID) {
			return nil, apperrors.ErrTenantAccessDenied
		}
		return org, nil
	}

	if principal.OrganizationID == nil {
		return nil, nil
	}
	org, err := c.loader.OrganizationByID(*principal.OrganizationID)
	if err != nil {
		return nil, nil
	}
	if !org.IsActive {
		return nil, nil
	}
	return org, nil
}

// RequireOrganization resolves the tenant and fails with
// ErrTenantContextRequired when none is available.
func (c *Context) RequireOrganization() (*models.Organization, error) {
	org, err := c.Organization()
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, apperrors.ErrTenantContextRequired
	}
	return org, nil
}
