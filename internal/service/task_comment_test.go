package service_test

import (
	"testing"

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

// TaskCommentServiceTestSuite defines the test suite for TaskCommentService
type TaskCommentServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockComments   *mocks.MockTaskCommentRepositoryInterface
	mockTasks      *mocks.MockTaskRepositoryInterface
	commentService *service.TaskCommentService
	orgID          uuid.UUID
	taskID         uuid.UUID
}

// SetupTest sets up the test suite
func (suite *TaskCommentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockComments = mocks.NewMockTaskCommentRepositoryInterface(suite.ctrl)
	suite.mockTasks = mocks.NewMockTaskRepositoryInterface(suite.ctrl)
	suite.commentService = service.NewTaskCommentService(suite.mockComments, suite.mockTasks, validator.New())
	suite.orgID = uuid.New()
	suite.taskID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *TaskCommentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TaskCommentServiceTestSuite) task() *models.Task {
	return &models.Task{
		BaseModel: models.BaseModel{ID: suite.taskID},
		Title:     "Draft homepage copy",
		Status:    models.TaskStatusInProgress,
	}
}

// TestCreateSuccess tests commenting on a visible task
func (suite *TaskCommentServiceTestSuite) TestCreateSuccess() {
	suite.mockTasks.EXPECT().GetByID(suite.orgID, suite.taskID).Return(suite.task(), nil)
	suite.mockComments.EXPECT().Create(gomock.Any()).DoAndReturn(func(comment *models.TaskComment) error {
		suite.Equal(suite.taskID, comment.TaskID)
		suite.Equal("alice@acme.test", comment.AuthorEmail)
		return nil
	})

	comment, err := suite.commentService.Create(suite.orgID, "alice@acme.test", &service.CreateTaskCommentRequest{
		TaskID:  suite.taskID,
		Content: "First draft is up for review.",
	})
	suite.Require().NoError(err)
	suite.Equal("First draft is up for review.", comment.Content)
}

// TestCreateForeignTask tests that a task outside the tenant reads as absent
func (suite *TaskCommentServiceTestSuite) TestCreateForeignTask() {
	suite.mockTasks.EXPECT().GetByID(suite.orgID, suite.taskID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.commentService.Create(suite.orgID, "alice@acme.test", &service.CreateTaskCommentRequest{
		TaskID:  suite.taskID,
		Content: "First draft is up for review.",
	})
	suite.ErrorIs(err, apperrors.ErrTaskNotFound)
}

// TestCreateEmptyContent tests content validation
func (suite *TaskCommentServiceTestSuite) TestCreateEmptyContent() {
	_, err := suite.commentService.Create(suite.orgID, "alice@acme.test", &service.CreateTaskCommentRequest{
		TaskID: suite.taskID,
	})
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(apperrors.ValidationMessages(err), "content is required")
}

// TestListByTaskForeignTask tests that listing comments of a foreign task
// fails before touching the comment store
func (suite *TaskCommentServiceTestSuite) TestListByTaskForeignTask() {
	suite.mockTasks.EXPECT().GetByID(suite.orgID, suite.taskID).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := suite.commentService.ListByTask(suite.orgID, suite.taskID, 20, 0)
	suite.ErrorIs(err, apperrors.ErrTaskNotFound)
}

// TestListByTask tests the oldest-first listing passthrough
func (suite *TaskCommentServiceTestSuite) TestListByTask() {
	expected := []models.TaskComment{
		{Content: "older"},
		{Content: "newer"},
	}

	suite.mockTasks.EXPECT().GetByID(suite.orgID, suite.taskID).Return(suite.task(), nil)
	suite.mockComments.EXPECT().ListByTask(suite.orgID, suite.taskID, 20, 0).Return(expected, int64(2), nil)

	comments, total, err := suite.commentService.ListByTask(suite.orgID, suite.taskID, 20, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Equal("older", comments[0].Content)
}

// TestUpdateSuccess tests replacing comment content
func (suite *TaskCommentServiceTestSuite) TestUpdateSuccess() {
	id := uuid.New()
	existing := &models.TaskComment{
		BaseModel:   models.BaseModel{ID: id},
		TaskID:      suite.taskID,
		Content:     "First draft is up for review.",
		AuthorEmail: "alice@acme.test",
	}

	suite.mockComments.EXPECT().GetByID(suite.orgID, id).Return(existing, nil)
	suite.mockComments.EXPECT().Update(existing).Return(nil)

	comment, err := suite.commentService.Update(suite.orgID, id, &service.UpdateTaskCommentRequest{
		Content: "Second draft is up for review.",
	})
	suite.Require().NoError(err)
	suite.Equal("Second draft is up for review.", comment.Content)
}

// TestDeleteNotFound tests deleting a missing or foreign comment
func (suite *TaskCommentServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()
	suite.mockComments.EXPECT().Delete(suite.orgID, id).Return(gorm.ErrRecordNotFound)

	err := suite.commentService.Delete(suite.orgID, id)
	suite.ErrorIs(err, apperrors.ErrCommentNotFound)
}

// TestTaskCommentServiceTestSuite runs the test suite
func TestTaskCommentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskCommentServiceTestSuite))
}
