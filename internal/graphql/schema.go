// Package graphql exposes the project management API as a GraphQL schema.
// Every resolver runs its permission chain explicitly before touching a
// service; tenant scoping below the services makes cross-organization reads
// come back empty rather than forbidden.
package graphql

import (
	"context"
	"time"

	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"
	apperrors "github.com/aniketmandloi/mini-project-management-system/internal/errors"
	"github.com/aniketmandloi/mini-project-management-system/internal/repository"
	"github.com/aniketmandloi/mini-project-management-system/internal/service"
	"github.com/aniketmandloi/mini-project-management-system/internal/tenant"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
)

// Services bundles everything the resolvers call into
type Services struct {
	Auth       *service.AuthService
	Orgs       *service.OrganizationService
	Users      *service.UserService
	Projects   *service.ProjectService
	Tasks      *service.TaskService
	Comments   *service.TaskCommentService
	Statistics *service.StatisticsService
}

type schemaBuilder struct {
	svc Services

	userType    *graphql.Object
	orgType     *graphql.Object
	projectType *graphql.Object
	taskType    *graphql.Object
	commentType *graphql.Object

	userConnection    *graphql.Object
	projectConnection *graphql.Object
	taskConnection    *graphql.Object
	commentConnection *graphql.Object
}

// NewSchema builds the executable schema over the given services
func NewSchema(svc Services) (graphql.Schema, error) {
	b := &schemaBuilder{svc: svc}
	b.buildTypes()

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    b.queryType(),
		Mutation: b.mutationType(),
	})
}

// requestContext pulls the tenant context installed by the HTTP middleware
func requestContext(ctx context.Context) (*tenant.Context, error) {
	tc, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, apperrors.ErrUnauthenticated
	}
	return tc, nil
}

// authorize runs the policy chain and returns the principal and active
// organization for the request. Every tenant-scoped resolver goes through
// here first.
func (b *schemaBuilder) authorize(ctx context.Context, obj any, policies ...tenant.Policy) (*models.User, *models.Organization, error) {
	tc, err := requestContext(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := tenant.Require(tc, obj, policies...); err != nil {
		return nil, nil, err
	}
	principal, err := tc.Principal()
	if err != nil {
		return nil, nil, err
	}
	org, err := tc.RequireOrganization()
	if err != nil {
		return nil, nil, err
	}
	return principal, org, nil
}

func parseID(p graphql.ResolveParams, name string) (uuid.UUID, error) {
	raw, _ := p.Args[name].(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.NewValidationError(name + " must be a valid UUID")
	}
	return id, nil
}

func idField(get func(src any) string) *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewNonNull(graphql.ID),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return get(p.Source), nil
		},
	}
}

func (b *schemaBuilder) buildTypes() {
	b.userType = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id": idField(func(src any) string { return src.(*models.User).ID.String() }),
			"organizationId": &graphql.Field{
				Type: graphql.ID,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user := p.Source.(*models.User)
					if user.OrganizationID == nil {
						return nil, nil
					}
					return user.OrganizationID.String(), nil
				},
			},
			"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"firstName": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"lastName":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"fullName": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.User).FullName(), nil
				},
			},
			"isOrganizationAdmin": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"isActive":            &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"createdAt":           &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"updatedAt":           &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	b.orgType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Organization",
		Fields: graphql.Fields{
			"id":           idField(func(src any) string { return src.(*models.Organization).ID.String() }),
			"name":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"slug":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"contactEmail": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"isActive":     &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"createdAt":    &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"updatedAt":    &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	b.commentType = graphql.NewObject(graphql.ObjectConfig{
		Name: "TaskComment",
		Fields: graphql.Fields{
			"id":          idField(func(src any) string { return src.(*models.TaskComment).ID.String() }),
			"taskId":      idField(func(src any) string { return src.(*models.TaskComment).TaskID.String() }),
			"content":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"authorEmail": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"updatedAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	b.taskType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Task",
		Fields: graphql.Fields{
			"id":          idField(func(src any) string { return src.(*models.Task).ID.String() }),
			"projectId":   idField(func(src any) string { return src.(*models.Task).ProjectID.String() }),
			"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"status": &graphql.Field{
				Type: graphql.NewNonNull(taskStatusEnum),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return string(p.Source.(*models.Task).Status), nil
				},
			},
			"assigneeEmail": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"dueDate":       &graphql.Field{Type: graphql.DateTime},
			"isOverdue": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Task).IsOverdue(time.Now()), nil
				},
			},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"updatedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	b.projectType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Project",
		Fields: graphql.Fields{
			"id":             idField(func(src any) string { return src.(*models.Project).ID.String() }),
			"organizationId": idField(func(src any) string { return src.(*models.Project).OrganizationID.String() }),
			"name":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"status": &graphql.Field{
				Type: graphql.NewNonNull(projectStatusEnum),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return string(p.Source.(*models.Project).Status), nil
				},
			},
			"dueDate": &graphql.Field{Type: graphql.DateTime},
			"isOverdue": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Project).IsOverdue(time.Now()), nil
				},
			},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"updatedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	b.userConnection = connectionType("User", b.userType)
	b.projectConnection = connectionType("Project", b.projectType)
	b.taskConnection = connectionType("Task", b.taskType)
	b.commentConnection = connectionType("TaskComment", b.commentType)

	// Relationship fields are attached after all node types exist.
	b.taskType.AddFieldConfig("project", &graphql.Field{
		Type: b.projectType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			_, org, err := b.authorize(p.Context, nil, tenant.Authenticated, tenant.TenantMember)
			if err != nil {
				return nil, err
			}
			return b.svc.Projects.Get(org.ID, p.Source.(*models.Task).ProjectID)
		},
	})

	b.taskType.AddFieldConfig("comments", &graphql.Field{
		Type: graphql.NewNonNull(b.commentConnection),
		Args: graphql.FieldConfigArgument{
			"first": &graphql.ArgumentConfig{Type: graphql.Int},
			"after": &graphql.ArgumentConfig{Type: graphql.String},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			_, org, err := b.authorize(p.Context, nil, tenant.Authenticated, tenant.TenantMember)
			if err != nil {
				return nil, err
			}
			limit, offset := pageArgs(p)
			comments, total, err := b.svc.Comments.ListByTask(org.ID, p.Source.(*models.Task).ID, limit, offset)
			if err != nil {
				return nil, err
			}
			return makeConnection(commentNodes(comments), total, offset), nil
		},
	})

	b.projectType.AddFieldConfig("tasks", &graphql.Field{
		Type: graphql.NewNonNull(b.taskConnection),
		Args: graphql.FieldConfigArgument{
			"first": &graphql.ArgumentConfig{Type: graphql.Int},
			"after": &graphql.ArgumentConfig{Type: graphql.String},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			_, org, err := b.authorize(p.Context, nil, tenant.Authenticated, tenant.TenantMember)
			if err != nil {
				return nil, err
			}
			limit, offset := pageArgs(p)
			projectID := p.Source.(*models.Project).ID
			tasks, total, err := b.svc.Tasks.List(org.ID, repository.TaskFilter{ProjectID: &projectID}, limit, offset)
			if err != nil {
				return nil, err
			}
			return makeConnection(taskNodes(tasks), total, offset), nil
		},
	})
}

func userNodes(users []models.User) []any {
	nodes := make([]any, len(users))
	for i := range users {
		nodes[i] = &users[i]
	}
	return nodes
}

func projectNodes(projects []models.Project) []any {
	nodes := make([]any, len(projects))
	for i := range projects {
		nodes[i] = &projects[i]
	}
	return nodes
}

func taskNodes(tasks []models.Task) []any {
	nodes := make([]any, len(tasks))
	for i := range tasks {
		nodes[i] = &tasks[i]
	}
	return nodes
}

func commentNodes(comments []models.TaskComment) []any {
	nodes := make([]any, len(comments))
	for i := range comments {
		nodes[i] = &comments[i]
	}
	return nodes
}
