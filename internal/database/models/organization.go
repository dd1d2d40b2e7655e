package models

// Organization represents the root entity for multi-tenancy.
// Every other entity in the system is owned, directly or transitively,
// by exactly one organization.
type Organization struct {
	BaseModel
	Name         string `json:"name" gorm:"not null;size:100" validate:"required,min=2,max=100"`
	Slug         string `json:"slug" gorm:"uniqueIndex;not null;size:50" validate:"required,min=2,max=50"`
	ContactEmail string `json:"contact_email" gorm:"not null;size:255" validate:"required,email,max=255"`
	Description  string `json:"description" gorm:"type:text" validate:"max=1000"`
	IsActive     bool   `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	Users    []User    `json:"users,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
