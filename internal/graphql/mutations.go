package graphql

import (
	"time"

	"github.com/aniketmandloi/mini-project-management-system/internal/auth"
	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"
	apperrors "github.com/aniketmandloi/mini-project-management-system/internal/errors"
	"github.com/aniketmandloi/mini-project-management-system/internal/service"
	"github.com/aniketmandloi/mini-project-management-system/internal/tenant"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
)

type authPayload struct {
	Success bool         `json:"success"`
	Errors  []string     `json:"errors"`
	User    *models.User `json:"user"`
	Tokens  *auth.TokenPair
}

type organizationPayload struct {
	Success      bool     `json:"success"`
	Errors       []string `json:"errors"`
	Organization *models.Organization
}

type projectPayload struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
	Project *models.Project
}

type taskPayload struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
	Task    *models.Task
}

type commentPayload struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
	Comment *models.TaskComment
}

type deletePayload struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

// recoverable reports whether an operation error belongs in the payload's
// errors list rather than in the GraphQL errors array. Validation problems,
// conflicts and missing targets are facts about the input; auth, tenancy and
// permission failures stay top-level errors.
func recoverable(err error) ([]string, bool) {
	switch {
	case apperrors.IsValidation(err):
		return apperrors.ValidationMessages(err), true
	case apperrors.IsAlreadyExists(err), apperrors.IsNotFound(err):
		return []string{err.Error()}, true
	}
	return nil, false
}

func inputArg(p graphql.ResolveParams) map[string]interface{} {
	input, _ := p.Args["input"].(map[string]interface{})
	return input
}

func stringInput(input map[string]interface{}, name string) string {
	value, _ := input[name].(string)
	return value
}

func stringPtrInput(input map[string]interface{}, name string) *string {
	if value, ok := input[name].(string); ok {
		return &value
	}
	return nil
}

func boolPtrInput(input map[string]interface{}, name string) *bool {
	if value, ok := input[name].(bool); ok {
		return &value
	}
	return nil
}

func timePtrInput(input map[string]interface{}, name string) *time.Time {
	if value, ok := input[name].(time.Time); ok {
		return &value
	}
	return nil
}

// nullInput reports whether the field was supplied as an explicit null,
// which is how clients clear a stored value.
func nullInput(input map[string]interface{}, name string) bool {
	value, present := input[name]
	return present && value == nil
}

func uuidInput(input map[string]interface{}, name string) (uuid.UUID, error) {
	raw := stringInput(input, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.NewValidationError(name + " must be a valid UUID")
	}
	return id, nil
}

var registerInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "RegisterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"email":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"firstName":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"lastName":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"organizationId": &graphql.InputObjectFieldConfig{Type: graphql.ID},
	},
})

var loginInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "LoginInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"email":            &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"organizationSlug": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var createOrganizationInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateOrganizationInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"contactEmail": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"description":  &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var updateOrganizationInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateOrganizationInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":         &graphql.InputObjectFieldConfig{Type: graphql.String},
		"contactEmail": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"description":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"isActive":     &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
	},
})

var createProjectInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateProjectInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"status":      &graphql.InputObjectFieldConfig{Type: projectStatusEnum},
		"dueDate":     &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
	},
})

var updateProjectInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateProjectInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"status":      &graphql.InputObjectFieldConfig{Type: projectStatusEnum},
		"dueDate":     &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
	},
})

var createTaskInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateTaskInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"projectId":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"title":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"description":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"status":        &graphql.InputObjectFieldConfig{Type: taskStatusEnum},
		"assigneeEmail": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"dueDate":       &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
	},
})

var updateTaskInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateTaskInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":         &graphql.InputObjectFieldConfig{Type: graphql.String},
		"description":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"status":        &graphql.InputObjectFieldConfig{Type: taskStatusEnum},
		"assigneeEmail": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"dueDate":       &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
	},
})

var createTaskCommentInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateTaskCommentInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"taskId":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"content": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var updateTaskCommentInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateTaskCommentInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"content": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

func (b *schemaBuilder) mutationType() *graphql.Object {
	authPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"errors":  &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
			"user":    &graphql.Field{Type: b.userType},
			"tokens":  &graphql.Field{Type: tokenPairType},
		},
	})

	organizationPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "OrganizationPayload",
		Fields: graphql.Fields{
			"success":      &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"errors":       &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
			"organization": &graphql.Field{Type: b.orgType},
		},
	})

	projectPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ProjectPayload",
		Fields: graphql.Fields{
			"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"errors":  &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
			"project": &graphql.Field{Type: b.projectType},
		},
	})

	taskPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "TaskPayload",
		Fields: graphql.Fields{
			"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"errors":  &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
			"task":    &graphql.Field{Type: b.taskType},
		},
	})

	commentPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "TaskCommentPayload",
		Fields: graphql.Fields{
			"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"errors":  &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
			"comment": &graphql.Field{Type: b.commentType},
		},
	})

	deletePayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "DeletePayload",
		Fields: graphql.Fields{
			"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"errors":  &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
		},
	})

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"register": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(registerInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := inputArg(p)
					req := &service.RegisterRequest{
						Email:     stringInput(input, "email"),
						Password:  stringInput(input, "password"),
						FirstName: stringInput(input, "firstName"),
						LastName:  stringInput(input, "lastName"),
					}
					if _, ok := input["organizationId"]; ok {
						orgID, err := uuidInput(input, "organizationId")
						if err != nil {
							return authPayload{Errors: apperrors.ValidationMessages(err)}, nil
						}
						req.OrganizationID = &orgID
					}
					user, err := b.svc.Auth.Register(req)
					if err != nil {
						if messages, ok := recoverable(err); ok {
							return authPayload{Errors: messages}, nil
						}
						return nil, err
					}
					return authPayload{Success: true, User: user}, nil
				},
			},

			"login": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(loginInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := inputArg(p)
					result, err := b.svc.Auth.Login(&service.LoginRequest{
						Email:            stringInput(input, "email"),
						Password:         stringInput(input, "password"),
						OrganizationSlug: stringInput(input, "organizationSlug"),
					})
					if err != nil {
						if messages, ok := recoverable(err); ok {
							return authPayload{Errors: messages}, nil
						}
						return nil, err
					}
					return authPayload{Success: true, User: result.User, Tokens: result.Tokens}, nil
				},
			},

			"refreshToken": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"refreshToken": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					token, _ := p.Args["refreshToken"].(string)
					result, err := b.svc.Auth.Refresh(token)
					if err != nil {
						return nil, err
					}
					return authPayload{Success: true, User: result.User, Tokens: result.Tokens}, nil
				},
			},

			"logout": &graphql.Field{
				Type: graphql.NewNonNull(deletePayloadType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					tc, err := requestContext(p.Context)
					if err != nil {
						return nil, err
					}
					if err := tenant.Require(tc, nil, tenant.Authenticated); err != nil {
						return nil, err
					}
					// Tokens are stateless; the client discards its pair.
					return deletePayload{Success: true}, nil
				},
			},

			"createOrganization": &graphql.Field{
				Type: graphql.NewNonNull(organizationPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createOrganizationInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					tc, err := requestContext(p.Context)
					if err != nil {
						return nil, err
					}
					if err := tenant.Require(tc, nil, tenant.Authenticated); err != nil {
						return nil, err
					}
					principal, err := tc.Principal()
					if err != nil {
						return nil, err
					}
					input := inputArg(p)
					org, err := b.svc.Orgs.Create(principal, &service.CreateOrganizationRequest{
						Name:         stringInput(input, "name"),
						ContactEmail: stringInput(input, "contactEmail"),
						Description:  stringInput(input, "description"),
					})
					if err != nil {
						if messages, ok := recoverable(err); ok {
							return organizationPayload{Errors: messages}, nil
						}
						return nil, err
					}
					return organizationPayload{Success: true, Organization: org}, nil
				},
			},

			"updateOrganization": &graphql.Field{
				Type: graphql.NewNonNull(organizationPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateOrganizationInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					_, org, err := b.authorize(p.Context, nil, tenant.Authenticated, tenant.TenantAdmin)
					if err != nil {
						return nil, err
					}
					input := inputArg(p)
					updated, err := b.svc.Orgs.Update(org.ID, &service.UpdateOrganizationRequest{
						Name:         stringPtrInput(input, "name"),
						ContactEmail: stringPtrInput(input, "contactEmail"),
						Description:  stringPtrInput(input, "description"),
						IsActive:     boolPtrInput(input, "isActive"),
					})
					if err != nil {
						if messages, ok := recoverable(err); ok {
							return organizationPayload{Errors: messages}, nil
						}
						return nil, err
					}
					return organizationPayload{Success: true, Organization: updated}, nil
				},
			},

			"createProject": &graphql.Field{
				Type: graphql.NewNonNull(projectPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createProjectInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					_, org, err := b.authorize(p.Context, nil, tenant.Authenticated, tenant.TenantMember)
					if err != nil {
						return nil, err
					}
					input := inputArg(p)
					project, err := b.svc.Projects.Create(org.ID, &service.CreateProjectRequest{
						Name:        stringInput(input, "name"),
						Description: stringInput(input, "description"),
						Status:      stringInput(input, "status"),
						DueDate:     timePtrInput(input, "dueDate"),
					})
					if err != nil {
						if messages, ok := recoverable(err); ok {
							return projectPayload{Errors: messages}, nil
						}
						return nil, err
					}
					return projectPayload{Success: true, Project: project}, nil
				},
			},

			"updateProject": &graphql.Field{
				Type: graphql.NewNonNull(projectPayloadType),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateProjectInput)},
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
					input := inputArg(p)
					project, err := b.svc.Projects.Update(org.ID, id, &service.UpdateProjectRequest{
						Name:         stringPtrInput(input, "name"),
						Description:  stringPtrInput(input, "description"),
						Status:       stringPtrInput(input, "status"),
						DueDate:      timePtrInput(input, "dueDate"),
						ClearDueDate: nullInput(input, "dueDate"),
					})
					if err != nil {
						if messages, ok := recoverable(err); ok {
							return projectPayload{Errors: messages}, nil
						}
						return nil, err
					}
					return projectPayload{Success: true, Project: project}, nil
				},
			},

			"deleteProject": &graphql.Field{
				Type: graphql.NewNonNull(deletePayloadType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					_, org, err := b.authorize(p.Context, nil, tenant.Authenticated, tenant.TenantAdmin)
					if err != nil {
						return nil, err
					}
					id, err := parseID(p, "id")
					if err != nil {
						return nil, err
					}
					if err := b.svc.Projects.Delete(org.ID, id); err != nil {
						if messages, ok := recoverable(err); ok {
							return deletePayload{Errors: messages}, nil
						}
						return nil, err
					}
					return deletePayload{Success: true}, nil
				},
			},

			"createTask": &graphql.Field{
				Type: graphql.NewNonNull(taskPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createTaskInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					_, org, err := b.authorize(p.Context, nil, tenant.Authenticated, tenant.TenantMember)
					if err != nil {
						return nil, err
					}
					input := inputArg(p)
					projectID, err := uuidInput(input, "projectId")
					if err != nil {
						return taskPayload{Errors: apperrors.ValidationMessages(err)}, nil
					}
					task, err := b.svc.Tasks.Create(org.ID, &service.CreateTaskRequest{
						ProjectID:     projectID,
						Title:         stringInput(input, "title"),
						Description:   stringInput(input, "description"),
						Status:        stringInput(input, "status"),
						AssigneeEmail: stringInput(input, "assigneeEmail"),
						DueDate:       timePtrInput(input, "dueDate"),
					})
					if err != nil {
						if messages, ok := recoverable(err); ok {
							return taskPayload{Errors: messages}, nil
						}
						return nil, err
					}
					return taskPayload{Success: true, Task: task}, nil
				},
			},

			"updateTask": &graphql.Field{
				Type: graphql.NewNonNull(taskPayloadType),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateTaskInput)},
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
					task, err := b.svc.Tasks.Get(org.ID, id)
					if err != nil {
						if messages, ok := recoverable(err); ok {
							return taskPayload{Errors: messages}, nil
						}
						return nil, err
					}
					tc, err := requestContext(p.Context)
					if err != nil {
						return nil, err
					}
					if err := tenant.Require(tc, task, tenant.TaskOwnerOrAdmin); err != nil {
						return nil, err
					}
					input := inputArg(p)
					updated, err := b.svc.Tasks.Update(org.ID, id, &service.UpdateTaskRequest{
						Title:         stringPtrInput(input, "title"),
						Description:   stringPtrInput(input, "description"),
						Status:        stringPtrInput(input, "status"),
						AssigneeEmail: stringPtrInput(input, "assigneeEmail"),
						DueDate:       timePtrInput(input, "dueDate"),
						ClearDueDate:  nullInput(input, "dueDate"),
					})
					if err != nil {
						if messages, ok := recoverable(err); ok {
							return taskPayload{Errors: messages}, nil
						}
						return nil, err
					}
					return taskPayload{Success: true, Task: updated}, nil
				},
			},

			"deleteTask": &graphql.Field{
				Type: graphql.NewNonNull(deletePayloadType),
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
					task, err := b.svc.Tasks.Get(org.ID, id)
					if err != nil {
						if messages, ok := recoverable(err); ok {
							return deletePayload{Errors: messages}, nil
						}
						return nil, err
					}
					tc, err := requestContext(p.Context)
					if err != nil {
						return nil, err
					}
					if err := tenant.Require(tc, task, tenant.TaskOwnerOrAdmin); err != nil {
						return nil, err
					}
					if err := b.svc.Tasks.Delete(org.ID, id); err != nil {
						if messages, ok := recoverable(err); ok {
							return deletePayload{Errors: messages}, nil
						}
						return nil, err
					}
					return deletePayload{Success: true}, nil
				},
			},

			"createTaskComment": &graphql.Field{
				Type: graphql.NewNonNull(commentPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createTaskCommentInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					principal, org, err := b.authorize(p.Context, nil, tenant.Authenticated, tenant.TenantMember)
					if err != nil {
						return nil, err
					}
					input := inputArg(p)
					taskID, err := uuidInput(input, "taskId")
					if err != nil {
						return commentPayload{Errors: apperrors.ValidationMessages(err)}, nil
					}
					comment, err := b.svc.Comments.Create(org.ID, principal.Email, &service.CreateTaskCommentRequest{
						TaskID:  taskID,
						Content: stringInput(input, "content"),
					})
					if err != nil {
						if messages, ok := recoverable(err); ok {
							return commentPayload{Errors: messages}, nil
						}
						return nil, err
					}
					return commentPayload{Success: true, Comment: comment}, nil
				},
			},

			"updateTaskComment": &graphql.Field{
				Type: graphql.NewNonNull(commentPayloadType),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateTaskCommentInput)},
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
					comment, err := b.svc.Comments.Get(org.ID, id)
					if err != nil {
						if messages, ok := recoverable(err); ok {
							return commentPayload{Errors: messages}, nil
						}
						return nil, err
					}
					tc, err := requestContext(p.Context)
					if err != nil {
						return nil, err
					}
					if err := tenant.Require(tc, comment, tenant.CommentOwnerOrAdmin); err != nil {
						return nil, err
					}
					input := inputArg(p)
					updated, err := b.svc.Comments.Update(org.ID, id, &service.UpdateTaskCommentRequest{
						Content: stringInput(input, "content"),
					})
					if err != nil {
						if messages, ok := recoverable(err); ok {
							return commentPayload{Errors: messages}, nil
						}
						return nil, err
					}
					return commentPayload{Success: true, Comment: updated}, nil
				},
			},

			"deleteTaskComment": &graphql.Field{
				Type: graphql.NewNonNull(deletePayloadType),
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
					comment, err := b.svc.Comments.Get(org.ID, id)
					if err != nil {
						if messages, ok := recoverable(err); ok {
							return deletePayload{Errors: messages}, nil
						}
						return nil, err
					}
					tc, err := requestContext(p.Context)
					if err != nil {
						return nil, err
					}
					if err := tenant.Require(tc, comment, tenant.CommentOwnerOrAdmin); err != nil {
						return nil, err
					}
					if err := b.svc.Comments.Delete(org.ID, id); err != nil {
						if messages, ok := recoverable(err); ok {
							return deletePayload{Errors: messages}, nil
						}
						return nil, err
					}
					return deletePayload{Success: true}, nil
				},
			},
		},
	})
}
