// Seeds the database with demo organizations, users, projects, tasks and
// comments from scripts/seed_data.yaml. Safe to re-run: existing rows are
// matched by their natural keys and left in place.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aniketmandloi/mini-project-management-system/internal/auth"
	"github.com/aniketmandloi/mini-project-management-system/internal/config"
	"github.com/aniketmandloi/mini-project-management-system/internal/database"
	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type seedFile struct {
	Organizations []organizationData `yaml:"organizations"`
}

type organizationData struct {
	Name         string        `yaml:"name"`
	Slug         string        `yaml:"slug"`
	ContactEmail string        `yaml:"contact_email"`
	Description  string        `yaml:"description"`
	Users        []userData    `yaml:"users"`
	Projects     []projectData `yaml:"projects"`
}

type userData struct {
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	IsAdmin   bool   `yaml:"is_admin"`
}

type projectData struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Status      string     `yaml:"status"`
	DueInDays   *int       `yaml:"due_in_days"`
	Tasks       []taskData `yaml:"tasks"`
}

type taskData struct {
	Title         string        `yaml:"title"`
	Description   string        `yaml:"description"`
	Status        string        `yaml:"status"`
	AssigneeEmail string        `yaml:"assignee_email"`
	DueInDays     *int          `yaml:"due_in_days"`
	Comments      []commentData `yaml:"comments"`
}

type commentData struct {
	Content     string `yaml:"content"`
	AuthorEmail string `yaml:"author_email"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	path := "scripts/seed_data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal("Failed to read seed file:", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		log.Fatal("Failed to parse seed file:", err)
	}

	if err := load(db, &seed); err != nil {
		log.Fatal("Seeding failed:", err)
	}
	log.Println("Seeding completed")
}

func load(db *gorm.DB, seed *seedFile) error {
	for _, orgData := range seed.Organizations {
		org := models.Organization{
			Name:         orgData.Name,
			Slug:         orgData.Slug,
			ContactEmail: orgData.ContactEmail,
			Description:  orgData.Description,
			IsActive:     true,
		}
		if err := db.Where("slug = ?", orgData.Slug).FirstOrCreate(&org).Error; err != nil {
			return fmt.Errorf("organization %s: %w", orgData.Slug, err)
		}

		for _, u := range orgData.Users {
			hash, err := auth.HashPassword(u.Password)
			if err != nil {
				return fmt.Errorf("user %s: %w", u.Email, err)
			}
			user := models.User{
				Email:               u.Email,
				PasswordHash:        hash,
				FirstName:           u.FirstName,
				LastName:            u.LastName,
				OrganizationID:      &org.ID,
				IsOrganizationAdmin: u.IsAdmin,
				IsActive:            true,
			}
			if err := db.Where("email = ?", u.Email).FirstOrCreate(&user).Error; err != nil {
				return fmt.Errorf("user %s: %w", u.Email, err)
			}
		}

		for _, p := range orgData.Projects {
			status := models.ProjectStatusPlanning
			if p.Status != "" {
				status = models.ProjectStatus(p.Status)
			}
			project := models.Project{
				OrganizationID: org.ID,
				Name:           p.Name,
				Description:    p.Description,
				Status:         status,
				DueDate:        dueDate(p.DueInDays),
			}
			err := db.Where("organization_id = ? AND name = ?", org.ID, p.Name).
				FirstOrCreate(&project).Error
			if err != nil {
				return fmt.Errorf("project %s: %w", p.Name, err)
			}

			for _, t := range p.Tasks {
				taskStatus := models.TaskStatusTodo
				if t.Status != "" {
					taskStatus = models.TaskStatus(t.Status)
				}
				task := models.Task{
					ProjectID:     project.ID,
					Title:         t.Title,
					Description:   t.Description,
					Status:        taskStatus,
					AssigneeEmail: t.AssigneeEmail,
					DueDate:       dueDate(t.DueInDays),
				}
				err := db.Where("project_id = ? AND title = ?", project.ID, t.Title).
					FirstOrCreate(&task).Error
				if err != nil {
					return fmt.Errorf("task %s: %w", t.Title, err)
				}

				for _, cd := range t.Comments {
					comment := models.TaskComment{
						TaskID:      task.ID,
						Content:     cd.Content,
						AuthorEmail: cd.AuthorEmail,
					}
					err := db.Where("task_id = ? AND content = ?", task.ID, cd.Content).
						FirstOrCreate(&comment).Error
					if err != nil {
						return fmt.Errorf("comment on %s: %w", t.Title, err)
					}
				}
			}
		}
	}
	return nil
}

func dueDate(days *int) *time.Time {
	if days == nil {
		return nil
	}
	due := time.Now().AddDate(0, 0, *days)
	return &due
}
