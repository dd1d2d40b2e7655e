package service

import (
	"fmt"
	"math"
	"time"

	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"
	"github.com/aniketmandloi/mini-project-management-system/internal/repository"

	"github.com/google/uuid"
)

// recentActivityWindow is how far back organization dashboards look when
// counting newly created projects, tasks and comments.
const recentActivityWindow = 7 * 24 * time.Hour

// ProjectStatistics summarizes a tenant's projects
type ProjectStatistics struct {
	Total          int64
	Planning       int64
	Active         int64
	Completed      int64
	OnHold         int64
	Cancelled      int64
	Overdue        int64
	CompletionRate float64
}

// TaskStatistics summarizes tasks, org-wide or for one project
type TaskStatistics struct {
	Total          int64
	Todo           int64
	InProgress     int64
	Done           int64
	Overdue        int64
	CompletionRate float64
}

// OrganizationStatistics is the tenant-wide dashboard summary
type OrganizationStatistics struct {
	Projects            ProjectStatistics
	Tasks               TaskStatistics
	UserCount           int64
	RecentActivityCount int64
}

// StatisticsService computes dashboard aggregates
type StatisticsService struct {
	stats repository.StatisticsRepositoryInterface
}

// NewStatisticsService creates a new statistics service
func NewStatisticsService(stats repository.StatisticsRepositoryInterface) *StatisticsService {
	return &StatisticsService{stats: stats}
}

// ProjectStatistics returns the tenant's project summary
func (s *StatisticsService) ProjectStatistics(orgID uuid.UUID) (*ProjectStatistics, error) {
	counts, err := s.stats.ProjectCounts(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute project statistics: %w", err)
	}

	stats := &ProjectStatistics{
		Total:          counts.Total,
		Planning:       counts.ByStatus[models.ProjectStatusPlanning],
		Active:         counts.ByStatus[models.ProjectStatusActive],
		Completed:      counts.ByStatus[models.ProjectStatusCompleted],
		OnHold:         counts.ByStatus[models.ProjectStatusOnHold],
		Cancelled:      counts.ByStatus[models.ProjectStatusCancelled],
		Overdue:        counts.Overdue,
		CompletionRate: completionRate(counts.Completed, counts.Total),
	}
	return stats, nil
}

// TaskStatistics returns the task summary, org-wide when projectID is nil
func (s *StatisticsService) TaskStatistics(orgID uuid.UUID, projectID *uuid.UUID) (*TaskStatistics, error) {
	counts, err := s.stats.TaskCounts(orgID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute task statistics: %w", err)
	}

	stats := &TaskStatistics{
		Total:          counts.Total,
		Todo:           counts.Todo,
		InProgress:     counts.InProgress,
		Done:           counts.Done,
		Overdue:        counts.Overdue,
		CompletionRate: completionRate(counts.Done, counts.Total),
	}
	return stats, nil
}

// OrganizationStatistics returns the tenant-wide dashboard summary
func (s *StatisticsService) OrganizationStatistics(orgID uuid.UUID) (*OrganizationStatistics, error) {
	projectStats, err := s.ProjectStatistics(orgID)
	if err != nil {
		return nil, err
	}

	taskStats, err := s.TaskStatistics(orgID, nil)
	if err != nil {
		return nil, err
	}

	userCount, err := s.stats.UserCount(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	recent, err := s.stats.RecentActivityCount(orgID, time.Now().Add(-recentActivityWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to count recent activity: %w", err)
	}

	return &OrganizationStatistics{
		Projects:            *projectStats,
		Tasks:               *taskStats,
		UserCount:           userCount,
		RecentActivityCount: recent,
	}, nil
}

// completionRate returns done/total as a percentage rounded to two decimals.
// An empty set reads as zero, not a division error.
func completionRate(done, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(done)/float64(total)*10000) / 100
}
