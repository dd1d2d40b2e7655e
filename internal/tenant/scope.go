package tenant

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kind names a scopable model family. Scoping dispatches on this tag rather
// than on model introspection, so adding a model without teaching the scope
// about it keeps its queries empty instead of unfiltered.
type Kind int

const (
	KindOrganization Kind = iota
	KindUser
	KindProject
	KindTask
	KindTaskComment
)

// Scoped restricts a query to rows visible inside the given organization.
// Unknown kinds match nothing: a model the scope does not recognize must
// never leak across tenants.
func Scoped(db *gorm.DB, kind Kind, orgID uuid.UUID) *gorm.DB {
	switch kind {
	case KindOrganization:
		return db.Where("organizations.id = ? AND organizations.is_active = ?", orgID, true)
	case KindUser:
		return db.Where("users.organization_id = ?", orgID)
	case KindProject:
		return db.Where("projects.organization_id = ?", orgID)
	case KindTask:
		return db.Joins("JOIN projects ON projects.id = tasks.project_id").
			Where("projects.organization_id = ?", orgID)
	case KindTaskComment:
		return db.Joins("JOIN tasks ON tasks.id = task_comments.task_id").
			Joins("JOIN projects ON projects.id = tasks.project_id").
			Where("projects.organization_id = ?", orgID)
	default:
		return db.Where("1 = 0")
	}
}
