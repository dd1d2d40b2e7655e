package graphql

import (
	"time"

	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"
	apperrors "github.com/aniketmandloi/mini-project-management-system/internal/errors"
	"github.com/aniketmandloi/mini-project-management-system/internal/repository"
	"github.com/aniketmandloi/mini-project-management-system/internal/tenant"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
)

func (b *schemaBuilder) queryType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type: b.userType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					tc, err := requestContext(p.Context)
					if err != nil {
						return nil, err
					}
					principal, err := tc.Principal()
					if err != nil {
						return nil, err
					}
					if principal == nil {
						return nil, apperrors.ErrUnauthenticated
					}
					return principal, nil
				},
			},

			"users": &graphql.Field{
				Type: graphql.NewNonNull(b.userConnection),
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
					users, total, err := b.svc.Users.List(org.ID, limit, offset)
					if err != nil {
						return nil, err
					}
					return makeConnection(userNodes(users), total, offset), nil
				},
			},

			"user": &graphql.Field{
				Type: b.userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					_, org, err := b.authorize(p.Context, nil, tenant.Authenticated, tenant.TenantMember)
					if err != nil {
						return nil, err
					}
					id, err := parseID(p, "id")
					if err != nil {
						return nil, err
					}
					return b.svc.Users.Get(org.ID, id)
				},
			},

			"organization": &graphql.Field{
				Type: b.orgType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					_, org, err := b.authorize(p.Context, nil, tenant.Authenticated, tenant.TenantMember)
					if err != nil {
						return nil, err
					}
					return b.svc.Orgs.Get(org.ID)
				},
			},

			"projects": &graphql.Field{
				Type: graphql.NewNonNull(b.projectConnection),
				Args: graphql.FieldConfigArgument{
					"filters":   &graphql.ArgumentConfig{Type: projectFilterInput},
					"sortBy":    &graphql.ArgumentConfig{Type: graphql.String},
					"sortOrder": &graphql.ArgumentConfig{Type: sortOrderEnum},
					"first":     &graphql.ArgumentConfig{Type: graphql.Int},
					"after":     &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					_, org, err := b.authorize(p.Context, nil, tenant.Authenticated, tenant.TenantMember)
					if err != nil {
						return nil, err
					}
					filter := projectFilterFromArgs(p)
					limit, offset := pageArgs(p)
					projects, total, err := b.svc.Projects.List(org.ID, filter, limit, offset)
					if err != nil {
						return nil, err
					}
					return makeConnection(projectNodes(projects), total, offset), nil
				},
			},

			"project": &graphql.Field{
				Type: b.projectType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					_, org, err := b.authorize(p.Context, nil, tenant.Authenticated, tenant.TenantMember)
					if err != nil {
						return nil, err
					}
					id, err := parseID(p, "id")
					if err != nil {
						return nil, err
					}
					return b.svc.Projects.Get(org.ID, id)
				},
			},

			"tasks": &graphql.Field{
				Type: graphql.NewNonNull(b.taskConnection),
				Args: graphql.FieldConfigArgument{
					"filters":   &graphql.ArgumentConfig{Type: taskFilterInput},
					"sortBy":    &graphql.ArgumentConfig{Type: graphql.String},
					"sortOrder": &graphql.ArgumentConfig{Type: sortOrderEnum},
					"first":     &graphql.ArgumentConfig{Type: graphql.Int},
					"after":     &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					_, org, err := b.authorize(p.Context, nil, tenant.Authenticated, tenant.TenantMember)
					if err != nil {
						return nil, err
					}
					filter, err := taskFilterFromArgs(p)
					if err != nil {
						return nil, err
					}
					limit, offset := pageArgs(p)
					tasks, total, err := b.svc.Tasks.List(org.ID, filter, limit, offset)
					if err != nil {
						return nil, err
					}
					return makeConnection(taskNodes(tasks), total, offset), nil
				},
			},

			"task": &graphql.Field{
				Type: b.taskType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					_, org, err := b.authorize(p.Context, nil, tenant.Authenticated, tenant.TenantMember)
					if err != nil {
						return nil, err
					}
					id, err := parseID(p, "id")
					if err != nil {
						return nil, err
					}
					return b.svc.Tasks.Get(org.ID, id)
				},
			},

			"taskComments": &graphql.Field{
				Type: graphql.NewNonNull(b.commentConnection),
				Args: graphql.FieldConfigArgument{
					"taskId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"first":  &graphql.ArgumentConfig{Type: graphql.Int},
					"after":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					_, org, err := b.authorize(p.Context, nil, tenant.Authenticated, tenant.TenantMember)
					if err != nil {
						return nil, err
					}
					taskID, err := parseID(p, "taskId")
					if err != nil {
						return nil, err
					}
					limit, offset := pageArgs(p)
					comments, total, err := b.svc.Comments.ListByTask(org.ID, taskID, limit, offset)
					if err != nil {
						return nil, err
					}
					return makeConnection(commentNodes(comments), total, offset), nil
				},
			},

			"organizationStatistics": &graphql.Field{
				Type: organizationStatisticsType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					_, org, err := b.authorize(p.Context, nil, tenant.Authenticated, tenant.TenantMember)
					if err != nil {
						return nil, err
					}
					return b.svc.Statistics.OrganizationStatistics(org.ID)
				},
			},

			"projectStatistics": &graphql.Field{
				Type: projectStatisticsType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					_, org, err := b.authorize(p.Context, nil, tenant.Authenticated, tenant.TenantMember)
					if err != nil {
						return nil, err
					}
					return b.svc.Statistics.ProjectStatistics(org.ID)
				},
			},

			"taskStatistics": &graphql.Field{
				Type: taskStatisticsType,
				Args: graphql.FieldConfigArgument{
					"projectId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					_, org, err := b.authorize(p.Context, nil, tenant.Authenticated, tenant.TenantMember)
					if err != nil {
						return nil, err
					}
					var projectID *uuid.UUID
					if _, ok := p.Args["projectId"]; ok {
						id, err := parseID(p, "projectId")
						if err != nil {
							return nil, err
						}
						projectID = &id
					}
					return b.svc.Statistics.TaskStatistics(org.ID, projectID)
				},
			},
		},
	})
}

func projectFilterFromArgs(p graphql.ResolveParams) repository.ProjectFilter {
	filter := repository.ProjectFilter{}
	if sortBy, ok := p.Args["sortBy"].(string); ok {
		filter.SortBy = sortBy
	}
	if sortOrder, ok := p.Args["sortOrder"].(string); ok {
		filter.SortOrder = sortOrder
	}
	raw, ok := p.Args["filters"].(map[string]interface{})
	if !ok {
		return filter
	}
	if status, ok := raw["status"].(string); ok {
		s := models.ProjectStatus(status)
		filter.Status = &s
	}
	if name, ok := raw["nameContains"].(string); ok {
		filter.NameContains = &name
	}
	filter.CreatedAfter = timeArg(raw, "createdAfter")
	filter.CreatedBefore = timeArg(raw, "createdBefore")
	filter.DueAfter = timeArg(raw, "dueAfter")
	filter.DueBefore = timeArg(raw, "dueBefore")
	return filter
}

func taskFilterFromArgs(p graphql.ResolveParams) (repository.TaskFilter, error) {
	filter := repository.TaskFilter{}
	if sortBy, ok := p.Args["sortBy"].(string); ok {
		filter.SortBy = sortBy
	}
	if sortOrder, ok := p.Args["sortOrder"].(string); ok {
		filter.SortOrder = sortOrder
	}
	raw, ok := p.Args["filters"].(map[string]interface{})
	if !ok {
		return filter, nil
	}
	if rawID, ok := raw["projectId"].(string); ok {
		id, err := uuid.Parse(rawID)
		if err != nil {
			return filter, apperrors.NewValidationError("projectId must be a valid UUID")
		}
		filter.ProjectID = &id
	}
	if status, ok := raw["status"].(string); ok {
		s := models.TaskStatus(status)
		filter.Status = &s
	}
	if title, ok := raw["titleContains"].(string); ok {
		filter.TitleContains = &title
	}
	if assignee, ok := raw["assigneeEmail"].(string); ok {
		filter.AssigneeEmail = &assignee
	}
	filter.CreatedAfter = timeArg(raw, "createdAfter")
	filter.CreatedBefore = timeArg(raw, "createdBefore")
	filter.DueAfter = timeArg(raw, "dueAfter")
	filter.DueBefore = timeArg(raw, "dueBefore")
	return filter, nil
}

func timeArg(raw map[string]interface{}, name string) *time.Time {
	if value, ok := raw[name].(time.Time); ok {
		return &value
	}
	return nil
}
