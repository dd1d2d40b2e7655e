package repository

import (
	"testing"

	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"
	"github.com/aniketmandloi/mini-project-management-system/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet

	acme   *models.Organization
	globex *models.Organization
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.acme = suite.factories.Organization.WithSlug("acme")
	suite.globex = suite.factories.Organization.WithSlug("globex")
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.acme).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.globex).Error)
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByEmail tests the create/lookup round trip
func (suite *UserRepositoryTestSuite) TestCreateAndGetByEmail() {
	user := suite.factories.User.InOrganization(suite.acme.ID)
	suite.Require().NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByEmail(user.Email)
	suite.Require().NoError(err)
	suite.Equal(user.ID, found.ID)
}

// TestGetScopedCrossTenant tests that users are invisible outside their tenant
func (suite *UserRepositoryTestSuite) TestGetScopedCrossTenant() {
	user := suite.factories.User.InOrganization(suite.acme.ID)
	suite.Require().NoError(suite.repo.Create(user))

	found, err := suite.repo.GetScoped(suite.acme.ID, user.ID)
	suite.Require().NoError(err)
	suite.Equal(user.ID, found.ID)

	_, err = suite.repo.GetScoped(suite.globex.ID, user.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListByOrganization tests tenant isolation and pagination of listings
func (suite *UserRepositoryTestSuite) TestListByOrganization() {
	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.repo.Create(suite.factories.User.InOrganization(suite.acme.ID)))
	}
	suite.Require().NoError(suite.repo.Create(suite.factories.User.InOrganization(suite.globex.ID)))

	users, total, err := suite.repo.ListByOrganization(suite.acme.ID, 2, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(users, 2)

	users, _, err = suite.repo.ListByOrganization(suite.acme.ID, 2, 2)
	suite.Require().NoError(err)
	suite.Len(users, 1)
}

// TestEmailExists tests the duplicate email check
func (suite *UserRepositoryTestSuite) TestEmailExists() {
	user := suite.factories.User.InOrganization(suite.acme.ID)
	suite.Require().NoError(suite.repo.Create(user))

	exists, err := suite.repo.EmailExists(user.Email)
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repo.EmailExists("nobody@test.example")
	suite.Require().NoError(err)
	suite.False(exists)
}

// TestUpdatePromoteToAdmin tests persisting the admin flag
func (suite *UserRepositoryTestSuite) TestUpdatePromoteToAdmin() {
	user := suite.factories.User.InOrganization(suite.acme.ID)
	suite.Require().NoError(suite.repo.Create(user))

	user.IsOrganizationAdmin = true
	suite.Require().NoError(suite.repo.Update(user))

	found, err := suite.repo.GetByID(user.ID)
	suite.Require().NoError(err)
	suite.True(found.IsOrganizationAdmin)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
