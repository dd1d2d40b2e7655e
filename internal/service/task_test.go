package service_test

import (
	"testing"
	"time"

	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"
	apperrors "github.com/aniketmandloi/mini-project-management-system/internal/errors"
	"github.com/aniketmandloi/mini-project-management-system/internal/mocks"
	"github.com/aniketmandloi/mini-project-management-system/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TaskServiceTestSuite defines the test suite for TaskService
type TaskServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockTasks    *mocks.MockTaskRepositoryInterface
	mockProjects *mocks.MockProjectRepositoryInterface
	taskService  *service.TaskService
	orgID        uuid.UUID
	projectID    uuid.UUID
}

// SetupTest sets up the test suite
func (suite *TaskServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTasks = mocks.NewMockTaskRepositoryInterface(suite.ctrl)
	suite.mockProjects = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.taskService = service.NewTaskService(suite.mockTasks, suite.mockProjects, validator.New())
	suite.orgID = uuid.New()
	suite.projectID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *TaskServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TaskServiceTestSuite) project() *models.Project {
	return &models.Project{
		BaseModel:      models.BaseModel{ID: suite.projectID},
		OrganizationID: suite.orgID,
		Name:           "Website Redesign",
		Status:         models.ProjectStatusActive,
	}
}

// TestCreateSuccess tests creating a task in a visible project
func (suite *TaskServiceTestSuite) TestCreateSuccess() {
	suite.mockProjects.EXPECT().GetByID(suite.orgID, suite.projectID).Return(suite.project(), nil)
	suite.mockTasks.EXPECT().Create(gomock.Any()).DoAndReturn(func(task *models.Task) error {
		suite.Equal(suite.projectID, task.ProjectID)
		suite.Equal(models.TaskStatusTodo, task.Status)
		return nil
	})

	task, err := suite.taskService.Create(suite.orgID, &service.CreateTaskRequest{
		ProjectID: suite.projectID,
		Title:     "Draft homepage copy",
	})
	suite.Require().NoError(err)
	suite.Equal("Draft homepage copy", task.Title)
}

// TestCreateForeignProject tests that a project outside the tenant reads as
// absent rather than forbidden
func (suite *TaskServiceTestSuite) TestCreateForeignProject() {
	suite.mockProjects.EXPECT().GetByID(suite.orgID, suite.projectID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.taskService.Create(suite.orgID, &service.CreateTaskRequest{
		ProjectID: suite.projectID,
		Title:     "Draft homepage copy",
	})
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

// TestCreateInvalidStatus tests rejection of unknown status values
func (suite *TaskServiceTestSuite) TestCreateInvalidStatus() {
	_, err := suite.taskService.Create(suite.orgID, &service.CreateTaskRequest{
		ProjectID: suite.projectID,
		Title:     "Draft homepage copy",
		Status:    "BLOCKED",
	})
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
}

// TestCreateInvalidAssigneeEmail tests assignee email validation
func (suite *TaskServiceTestSuite) TestCreateInvalidAssigneeEmail() {
	_, err := suite.taskService.Create(suite.orgID, &service.CreateTaskRequest{
		ProjectID:     suite.projectID,
		Title:         "Draft homepage copy",
		AssigneeEmail: "not-an-email",
	})
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(apperrors.ValidationMessages(err), "assignee_email must be a valid email address")
}

// TestMarkDoneIsIdempotent tests that re-marking a done task done succeeds
func (suite *TaskServiceTestSuite) TestMarkDoneIsIdempotent() {
	id := uuid.New()
	existing := &models.Task{
		BaseModel: models.BaseModel{ID: id},
		ProjectID: suite.projectID,
		Title:     "Draft homepage copy",
		Status:    models.TaskStatusDone,
	}

	suite.mockTasks.EXPECT().GetByID(suite.orgID, id).Return(existing, nil)
	suite.mockTasks.EXPECT().Update(existing).Return(nil)

	status := string(models.TaskStatusDone)
	task, err := suite.taskService.Update(suite.orgID, id, &service.UpdateTaskRequest{Status: &status})
	suite.Require().NoError(err)
	suite.Equal(models.TaskStatusDone, task.Status)
}

// TestUpdateReassign tests changing the assignee
func (suite *TaskServiceTestSuite) TestUpdateReassign() {
	id := uuid.New()
	existing := &models.Task{
		BaseModel:     models.BaseModel{ID: id},
		ProjectID:     suite.projectID,
		Title:         "Draft homepage copy",
		Status:        models.TaskStatusInProgress,
		AssigneeEmail: "alice@acme.test",
	}

	suite.mockTasks.EXPECT().GetByID(suite.orgID, id).Return(existing, nil)
	suite.mockTasks.EXPECT().Update(existing).Return(nil)

	assignee := "dave@acme.test"
	task, err := suite.taskService.Update(suite.orgID, id, &service.UpdateTaskRequest{AssigneeEmail: &assignee})
	suite.Require().NoError(err)
	suite.Equal("dave@acme.test", task.AssigneeEmail)
}

// TestUpdateClearDueDate tests removing a task's due date
func (suite *TaskServiceTestSuite) TestUpdateClearDueDate() {
	id := uuid.New()
	due := time.Now().Add(48 * time.Hour)
	existing := &models.Task{
		BaseModel: models.BaseModel{ID: id},
		ProjectID: suite.projectID,
		Title:     "Draft homepage copy",
		Status:    models.TaskStatusTodo,
		DueDate:   &due,
	}

	suite.mockTasks.EXPECT().GetByID(suite.orgID, id).Return(existing, nil)
	suite.mockTasks.EXPECT().Update(existing).Return(nil)

	task, err := suite.taskService.Update(suite.orgID, id, &service.UpdateTaskRequest{ClearDueDate: true})
	suite.Require().NoError(err)
	suite.Nil(task.DueDate)
}

// TestGetNotFound tests that a foreign task reads as not found
func (suite *TaskServiceTestSuite) TestGetNotFound() {
	id := uuid.New()
	suite.mockTasks.EXPECT().GetByID(suite.orgID, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.taskService.Get(suite.orgID, id)
	suite.ErrorIs(err, apperrors.ErrTaskNotFound)
}

// TestDeleteNotFound tests deleting a missing or foreign task
func (suite *TaskServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()
	suite.mockTasks.EXPECT().Delete(suite.orgID, id).Return(gorm.ErrRecordNotFound)

	err := suite.taskService.Delete(suite.orgID, id)
	suite.ErrorIs(err, apperrors.ErrTaskNotFound)
}

// TestIsOverdue tests the overdue predicate on the model
func (suite *TaskServiceTestSuite) TestIsOverdue() {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	overdue := &models.Task{Status: models.TaskStatusInProgress, DueDate: &past}
	suite.True(overdue.IsOverdue(now))

	done := &models.Task{Status: models.TaskStatusDone, DueDate: &past}
	suite.False(done.IsOverdue(now))

	upcoming := &models.Task{Status: models.TaskStatusTodo, DueDate: &future}
	suite.False(upcoming.IsOverdue(now))

	undated := &models.Task{Status: models.TaskStatusTodo}
	suite.False(undated.IsOverdue(now))
}

// TestTaskServiceTestSuite runs the test suite
func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
