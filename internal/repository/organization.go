package repository

import (
	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"
	"github.com/aniketmandloi/mini-project-management-system/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(org *models.Organization) error {
	return r.db.Create(org).Error
}

// GetByID retrieves an organization by ID. Unscoped: used only during tenant
// resolution, before a tenant exists to scope by.
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetBySlug retrieves an organization by slug. Unscoped: used only during
// tenant resolution.
func (r *OrganizationRepository) GetBySlug(slug string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetScoped retrieves the active organization visible inside the given tenant
func (r *OrganizationRepository) GetScoped(orgID uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := tenant.Scoped(r.db, tenant.KindOrganization, orgID).First(&org).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// SlugExists checks whether a slug is already taken
func (r *OrganizationRepository) SlugExists(slug string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Organization{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// Update updates an organization
func (r *OrganizationRepository) Update(org *models.Organization) error {
	return r.db.Save(org).Error
}
