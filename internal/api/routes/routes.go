package routes

import (
	"fmt"
	"time"

	"github.com/aniketmandloi/mini-project-management-system/internal/api/handlers"
	"github.com/aniketmandloi/mini-project-management-system/internal/api/middleware"
	"github.com/aniketmandloi/mini-project-management-system/internal/auth"
	"github.com/aniketmandloi/mini-project-management-system/internal/config"
	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"
	gql "github.com/aniketmandloi/mini-project-management-system/internal/graphql"
	"github.com/aniketmandloi/mini-project-management-system/internal/repository"
	"github.com/aniketmandloi/mini-project-management-system/internal/service"
	"github.com/aniketmandloi/mini-project-management-system/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// tenantLoader adapts the repositories to the tenant context's lookups
type tenantLoader struct {
	users *repository.UserRepository
	orgs  *repository.OrganizationRepository
}

func (l *tenantLoader) UserByID(id uuid.UUID) (*models.User, error) {
	return l.users.GetByID(id)
}

func (l *tenantLoader) OrganizationByID(id uuid.UUID) (*models.Organization, error) {
	return l.orgs.GetByID(id)
}

func (l *tenantLoader) OrganizationBySlug(slug string) (*models.Organization, error) {
	return l.orgs.GetBySlug(slug)
}

// SetupRoutes configures the middleware chain, the GraphQL endpoint and the
// health endpoints
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	validate := validator.New()

	orgRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewTaskCommentRepository(db)
	statsRepo := repository.NewStatisticsRepository(db)

	tokens := auth.NewTokenService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLHours)*time.Hour,
	)

	schema, err := gql.NewSchema(gql.Services{
		Auth:       service.NewAuthService(userRepo, orgRepo, tokens, validate),
		Orgs:       service.NewOrganizationService(orgRepo, userRepo, validate),
		Users:      service.NewUserService(userRepo),
		Projects:   service.NewProjectService(projectRepo, validate),
		Tasks:      service.NewTaskService(taskRepo, projectRepo, validate),
		Comments:   service.NewTaskCommentService(commentRepo, taskRepo, validate),
		Statistics: service.NewStatisticsService(statsRepo),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build schema: %w", err)
	}

	loader := &tenantLoader{users: userRepo, orgs: orgRepo}

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(tenant.Middleware(tokens, loader))

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	graphqlHandler := handlers.NewGraphQLHandler(schema, cfg.EnableGraphQLPlayground)
	router.POST("/graphql", graphqlHandler)
	router.GET("/graphql", graphqlHandler)

	return router, nil
}
