package models

import (
	"github.com/google/uuid"
)

// User represents an authenticated principal. Users belong to at most one
// organization; the organization reference is nullable so freshly registered
// users can exist before joining a tenant.
type User struct {
	BaseModel
	Email               string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash        string     `json:"-" gorm:"not null;size:255"`
	FirstName           string     `json:"first_name" gorm:"not null;size:150" validate:"required,max=150"`
	LastName            string     `json:"last_name" gorm:"not null;size:150" validate:"required,max=150"`
	OrganizationID      *uuid.UUID `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	IsOrganizationAdmin bool       `json:"is_organization_admin" gorm:"not null;default:false"`
	IsSuperuser         bool       `json:"is_superuser" gorm:"not null;default:false"`
	IsActive            bool       `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// FullName returns the user's full name
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// BelongsTo reports whether the user is a member of the given organization
func (u *User) BelongsTo(orgID uuid.UUID) bool {
	return u.OrganizationID != nil && *u.OrganizationID == orgID
}
