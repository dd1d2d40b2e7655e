package repository

import (
	"time"

	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"
	"github.com/aniketmandloi/mini-project-management-system/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectCounts aggregates a tenant's projects by status
type ProjectCounts struct {
	Total     int64
	ByStatus  map[models.ProjectStatus]int64
	Overdue   int64
	Completed int64
}

// TaskCounts aggregates tasks by status, org-wide or for one project
type TaskCounts struct {
	Total      int64
	Todo       int64
	InProgress int64
	Done       int64
	Overdue    int64
}

// StatisticsRepository handles aggregate queries for dashboards
type StatisticsRepository struct {
	db *gorm.DB
}

// NewStatisticsRepository creates a new statistics repository
func NewStatisticsRepository(db *gorm.DB) *StatisticsRepository {
	return &StatisticsRepository{db: db}
}

// ProjectCounts returns the tenant's project totals grouped by status
func (r *StatisticsRepository) ProjectCounts(orgID uuid.UUID) (ProjectCounts, error) {
	counts := ProjectCounts{ByStatus: make(map[models.ProjectStatus]int64)}

	var rows []struct {
		Status models.ProjectStatus
		Count  int64
	}
	err := tenant.Scoped(r.db.Model(&models.Project{}), tenant.KindProject, orgID).
		Select("projects.status AS status, COUNT(*) AS count").
		Group("projects.status").
		Scan(&rows).Error
	if err != nil {
		return counts, err
	}

	for _, row := range rows {
		counts.ByStatus[row.Status] = row.Count
		counts.Total += row.Count
	}
	counts.Completed = counts.ByStatus[models.ProjectStatusCompleted]

	today := time.Now().Truncate(24 * time.Hour)
	err = tenant.Scoped(r.db.Model(&models.Project{}), tenant.KindProject, orgID).
		Where("projects.due_date < ? AND projects.status IN ?", today,
			[]models.ProjectStatus{models.ProjectStatusActive, models.ProjectStatusOnHold}).
		Count(&counts.Overdue).Error
	if err != nil {
		return counts, err
	}

	return counts, nil
}

// TaskCounts returns the tenant's task totals, optionally limited to one project
func (r *StatisticsRepository) TaskCounts(orgID uuid.UUID, projectID *uuid.UUID) (TaskCounts, error) {
	var counts TaskCounts

	base := func() *gorm.DB {
		query := tenant.Scoped(r.db.Model(&models.Task{}), tenant.KindTask, orgID)
		if projectID != nil {
			query = query.Where("tasks.project_id = ?", *projectID)
		}
		return query
	}

	var rows []struct {
		Status models.TaskStatus
		Count  int64
	}
	err := base().
		Select("tasks.status AS status, COUNT(*) AS count").
		Group("tasks.status").
		Scan(&rows).Error
	if err != nil {
		return counts, err
	}

	for _, row := range rows {
		counts.Total += row.Count
		switch row.Status {
		case models.TaskStatusTodo:
			counts.Todo = row.Count
		case models.TaskStatusInProgress:
			counts.InProgress = row.Count
		case models.TaskStatusDone:
			counts.Done = row.Count
		}
	}

	err = base().
		Where("tasks.due_date < ? AND tasks.status != ?", time.Now(), models.TaskStatusDone).
		Count(&counts.Overdue).Error
	if err != nil {
		return counts, err
	}

	return counts, nil
}

// UserCount returns the number of users in the organization
func (r *StatisticsRepository) UserCount(orgID uuid.UUID) (int64, error) {
	var count int64
	err := tenant.Scoped(r.db.Model(&models.User{}), tenant.KindUser, orgID).Count(&count).Error
	return count, err
}

// RecentActivityCount counts projects, tasks and comments created since the
// given time inside the organization
func (r *StatisticsRepository) RecentActivityCount(orgID uuid.UUID, since time.Time) (int64, error) {
	var projects, tasks, comments int64

	err := tenant.Scoped(r.db.Model(&models.Project{}), tenant.KindProject, orgID).
		Where("projects.created_at >= ?", since).
		Count(&projects).Error
	if err != nil {
		return 0, err
	}

	err = tenant.Scoped(r.db.Model(&models.Task{}), tenant.KindTask, orgID).
		Where("tasks.created_at >= ?", since).
		Count(&tasks).Error
	if err != nil {
		return 0, err
	}

	err = tenant.Scoped(r.db.Model(&models.TaskComment{}), tenant.KindTaskComment, orgID).
		Where("task_comments.created_at >= ?", since).
		Count(&comments).Error
	if err != nil {
		return 0, err
	}

	return projects + tasks + comments, nil
}
