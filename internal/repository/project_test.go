package repository

import (
	"testing"

	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"
	"github.com/aniketmandloi/mini-project-management-system/internal/tenant"
	"github.com/aniketmandloi/mini-project-management-system/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectRepositoryTestSuite tests the ProjectRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProjectRepository
	factories     *testutils.FactorySet

	acme   *models.Organization
	globex *models.Organization
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.acme = suite.factories.Organization.WithSlug("acme")
	suite.globex = suite.factories.Organization.WithSlug("globex")
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.acme).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.globex).Error)
}

// TearDownTest runs after each test
func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGet tests the create/get round trip within one tenant
func (suite *ProjectRepositoryTestSuite) TestCreateAndGet() {
	project := suite.factories.Project.Create(suite.acme.ID)
	suite.Require().NoError(suite.repo.Create(project))

	found, err := suite.repo.GetByID(suite.acme.ID, project.ID)
	suite.Require().NoError(err)
	suite.Equal(project.Name, found.Name)
	suite.Equal(suite.acme.ID, found.OrganizationID)
}

// TestGetCrossTenant tests that another tenant's project reads as absent
func (suite *ProjectRepositoryTestSuite) TestGetCrossTenant() {
	project := suite.factories.Project.Create(suite.acme.ID)
	suite.Require().NoError(suite.repo.Create(project))

	_, err := suite.repo.GetByID(suite.globex.ID, project.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListIsolation tests that listing never leaks across tenants
func (suite *ProjectRepositoryTestSuite) TestListIsolation() {
	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.repo.Create(suite.factories.Project.Create(suite.acme.ID)))
	}
	suite.Require().NoError(suite.repo.Create(suite.factories.Project.Create(suite.globex.ID)))

	projects, total, err := suite.repo.List(suite.acme.ID, ProjectFilter{}, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	for _, p := range projects {
		suite.Equal(suite.acme.ID, p.OrganizationID)
	}
}

// TestListStatusFilter tests filtering by status
func (suite *ProjectRepositoryTestSuite) TestListStatusFilter() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Project.WithStatus(suite.acme.ID, models.ProjectStatusActive)))
	suite.Require().NoError(suite.repo.Create(suite.factories.Project.WithStatus(suite.acme.ID, models.ProjectStatusCompleted)))

	status := models.ProjectStatusCompleted
	projects, total, err := suite.repo.List(suite.acme.ID, ProjectFilter{Status: &status}, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(models.ProjectStatusCompleted, projects[0].Status)
}

// TestListSortWhitelist tests that unknown sort columns fall back safely
func (suite *ProjectRepositoryTestSuite) TestListSortWhitelist() {
	first := suite.factories.Project.Create(suite.acme.ID)
	first.Name = "Alpha"
	second := suite.factories.Project.Create(suite.acme.ID)
	second.Name = "Beta"
	suite.Require().NoError(suite.repo.Create(second))
	suite.Require().NoError(suite.repo.Create(first))

	projects, _, err := suite.repo.List(suite.acme.ID, ProjectFilter{SortBy: "name", SortOrder: "asc"}, 10, 0)
	suite.Require().NoError(err)
	suite.Equal("Alpha", projects[0].Name)

	// A column that is not whitelisted must not end up in the query
	_, _, err = suite.repo.List(suite.acme.ID, ProjectFilter{SortBy: "name; DROP TABLE projects"}, 10, 0)
	suite.NoError(err)
}

// TestNameExistsPerTenant tests that name uniqueness is per organization
func (suite *ProjectRepositoryTestSuite) TestNameExistsPerTenant() {
	project := suite.factories.Project.Create(suite.acme.ID)
	project.Name = "Website Redesign"
	suite.Require().NoError(suite.repo.Create(project))

	taken, err := suite.repo.NameExists(suite.acme.ID, "Website Redesign", nil)
	suite.Require().NoError(err)
	suite.True(taken)

	taken, err = suite.repo.NameExists(suite.globex.ID, "Website Redesign", nil)
	suite.Require().NoError(err)
	suite.False(taken)

	taken, err = suite.repo.NameExists(suite.acme.ID, "Website Redesign", &project.ID)
	suite.Require().NoError(err)
	suite.False(taken)
}

// TestDeleteCrossTenant tests that deletion cannot reach across tenants
func (suite *ProjectRepositoryTestSuite) TestDeleteCrossTenant() {
	project := suite.factories.Project.Create(suite.acme.ID)
	suite.Require().NoError(suite.repo.Create(project))

	err := suite.repo.Delete(suite.globex.ID, project.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// Still there for its owner
	_, err = suite.repo.GetByID(suite.acme.ID, project.ID)
	suite.NoError(err)

	suite.NoError(suite.repo.Delete(suite.acme.ID, project.ID))
	_, err = suite.repo.GetByID(suite.acme.ID, project.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestScopedUnknownKindFailsClosed tests that an unrecognized scope kind
// matches nothing instead of everything
func (suite *ProjectRepositoryTestSuite) TestScopedUnknownKindFailsClosed() {
	project := suite.factories.Project.Create(suite.acme.ID)
	suite.Require().NoError(suite.repo.Create(project))

	var projects []models.Project
	err := tenant.Scoped(suite.baseTestSuite.DB.Model(&models.Project{}), tenant.Kind(99), suite.acme.ID).
		Find(&projects).Error
	suite.Require().NoError(err)
	suite.Empty(projects)
}

// TestScopedNilOrganization tests that the zero organization id matches nothing
func (suite *ProjectRepositoryTestSuite) TestScopedNilOrganization() {
	project := suite.factories.Project.Create(suite.acme.ID)
	suite.Require().NoError(suite.repo.Create(project))

	_, err := suite.repo.GetByID(uuid.Nil, project.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestProjectRepositoryTestSuite runs the test suite
func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
