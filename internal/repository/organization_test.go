package repository

import (
	"testing"

	"github.com/aniketmandloi/mini-project-management-system/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganizationRepositoryTestSuite tests the OrganizationRepository
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetBySlug tests the create/lookup round trip
func (suite *OrganizationRepositoryTestSuite) TestCreateAndGetBySlug() {
	org := suite.factories.Organization.WithSlug("acme")
	suite.Require().NoError(suite.repo.Create(org))

	found, err := suite.repo.GetBySlug("acme")
	suite.Require().NoError(err)
	suite.Equal(org.ID, found.ID)

	_, err = suite.repo.GetBySlug("initech")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestSlugUniqueness tests the unique index on slugs
func (suite *OrganizationRepositoryTestSuite) TestSlugUniqueness() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Organization.WithSlug("acme")))

	dup := suite.factories.Organization.Create()
	dup.Slug = "acme"
	suite.Error(suite.repo.Create(dup))
}

// TestSlugExists tests the existence check with and without exclusion
func (suite *OrganizationRepositoryTestSuite) TestSlugExists() {
	org := suite.factories.Organization.WithSlug("acme")
	suite.Require().NoError(suite.repo.Create(org))

	taken, err := suite.repo.SlugExists("acme", nil)
	suite.Require().NoError(err)
	suite.True(taken)

	taken, err = suite.repo.SlugExists("acme", &org.ID)
	suite.Require().NoError(err)
	suite.False(taken)

	taken, err = suite.repo.SlugExists("initech", nil)
	suite.Require().NoError(err)
	suite.False(taken)
}

// TestGetScopedHidesInactive tests that the scoped lookup skips deactivated
// organizations
func (suite *OrganizationRepositoryTestSuite) TestGetScopedHidesInactive() {
	org := suite.factories.Organization.Inactive()
	suite.Require().NoError(suite.repo.Create(org))

	_, err := suite.repo.GetScoped(org.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// The unscoped lookup used during tenant resolution still sees it
	found, err := suite.repo.GetByID(org.ID)
	suite.Require().NoError(err)
	suite.False(found.IsActive)
}

// TestUpdate tests persisting field changes
func (suite *OrganizationRepositoryTestSuite) TestUpdate() {
	org := suite.factories.Organization.WithSlug("acme")
	suite.Require().NoError(suite.repo.Create(org))

	org.Description = "updated"
	suite.Require().NoError(suite.repo.Update(org))

	found, err := suite.repo.GetByID(org.ID)
	suite.Require().NoError(err)
	suite.Equal("updated", found.Description)
}

// TestOrganizationRepositoryTestSuite runs the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
