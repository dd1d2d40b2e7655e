package tenant

import (
	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"
	apperrors "github.com/aniketmandloi/mini-project-management-system/internal/errors"
)

// Policy is one reusable permission predicate. Check receives the resolved
// principal, the active organization (nil when no tenant is in effect) and
// the object under access (nil for collection-level operations). Policies
// never touch the database; everything they need is resolved up front.
type Policy interface {
	Check(principal *models.User, org *models.Organization, obj any) bool
	// NeedsTenant reports whether the policy is meaningless without an
	// active organization, so a nil tenant fails with a dedicated error
	// instead of a generic denial.
	NeedsTenant() bool
	Reason() string
}

// Authenticated requires an active signed-in user.
var Authenticated Policy = authenticated{}

// TenantMember requires membership in the active organization. Superusers
// pass for any active organization.
var TenantMember Policy = tenantMember{}

// TenantAdmin requires organization admin rights within the active
// organization.
var TenantAdmin Policy = tenantAdmin{}

// TaskOwnerOrAdmin allows the task's assignee, an organization admin, or a
// superuser.
var TaskOwnerOrAdmin Policy = taskOwnerOrAdmin{}

// CommentOwnerOrAdmin allows the comment's author, an organization admin, or
// a superuser.
var CommentOwnerOrAdmin Policy = commentOwnerOrAdmin{}

type authenticated struct{}

func (authenticated) Check(principal *models.User, _ *models.Organization, _ any) bool {
	return principal != nil && principal.IsActive
}

func (authenticated) NeedsTenant() bool { return false }
func (authenticated) Reason() string    { return "authentication required" }

type tenantMember struct{}

func isMember(principal *models.User, org *models.Organization) bool {
	if principal == nil || org == nil || !org.IsActive {
		return false
	}
	if principal.IsSuperuser {
		return true
	}
	return principal.BelongsTo(org.ID)
}

func isAdmin(principal *models.User, org *models.Organization) bool {
	if !isMember(principal, org) {
		return false
	}
	return principal.IsSuperuser || principal.IsOrganizationAdmin
}

func (tenantMember) Check(principal *models.User, org *models.Organization, _ any) bool {
	return isMember(principal, org)
}

func (tenantMember) NeedsTenant() bool { return true }
func (tenantMember) Reason() string    { return "organization membership required" }

type tenantAdmin struct{}

func (tenantAdmin) Check(principal *models.User, org *models.Organization, _ any) bool {
	return isAdmin(principal, org)
}

func (tenantAdmin) NeedsTenant() bool { return true }
func (tenantAdmin) Reason() string    { return "organization admin rights required" }

type taskOwnerOrAdmin struct{}

func (taskOwnerOrAdmin) Check(principal *models.User, org *models.Organization, obj any) bool {
	if !isMember(principal, org) {
		return false
	}
	if isAdmin(principal, org) {
		return true
	}
	task, ok := obj.(*models.Task)
	return ok && task.AssigneeEmail == principal.Email
}

func (taskOwnerOrAdmin) NeedsTenant() bool { return true }
func (taskOwnerOrAdmin) Reason() string {
	return "only the assignee or an organization admin may modify this task"
}

type commentOwnerOrAdmin struct{}

func (commentOwnerOrAdmin) Check(principal *models.User, org *models.Organization, obj any) bool {
	if !isMember(principal, org) {
		return false
	}
	if isAdmin(principal, org) {
		return true
	}
	comment, ok := obj.(*models.TaskComment)
	return ok && comment.AuthorEmail == principal.Email
}

func (commentOwnerOrAdmin) NeedsTenant() bool { return true }
func (commentOwnerOrAdmin) Reason() string {
	return "only the author or an organization admin may modify this comment"
}

// Require evaluates policies in order against the request context and returns
// the first failure. Identity is resolved before anything else, so anonymous
// callers are rejected with an authentication error before tenant resolution
// is attempted. A policy that needs a tenant failing with none available
// yields ErrTenantContextRequired rather than a permission denial.
func Require(c *Context, obj any, policies ...Policy) error {
	principal, err := c.Principal()
	if err != nil {
		return err
	}
	if principal == nil {
		return apperrors.ErrUnauthenticated
	}

	org, err := c.Organization()
	if err != nil {
		return err
	}

	for _, p := range policies {
		if p.Check(principal, org, obj) {
			continue
		}
		if p.NeedsTenant() && org == nil {
			return apperrors.ErrTenantContextRequired
		}
		if _, ok := p.(authenticated); ok {
			return apperrors.ErrUnauthenticated
		}
		return &apperrors.PermissionDeniedError{Reason: p.Reason()}
	}
	return nil
}
