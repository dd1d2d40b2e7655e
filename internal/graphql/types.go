package graphql

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/aniketmandloi/mini-project-management-system/internal/database/models"

	"github.com/graphql-go/graphql"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	cursorPrefix = "cursor:"
)

// encodeCursor turns a zero-based offset into an opaque cursor
func encodeCursor(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s%d", cursorPrefix, offset)))
}

// decodeCursor reverses encodeCursor. Malformed cursors read as the start.
func decodeCursor(cursor string) int {
	raw, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return -1
	}
	value, ok := strings.CutPrefix(string(raw), cursorPrefix)
	if !ok {
		return -1
	}
	offset, err := strconv.Atoi(value)
	if err != nil || offset < 0 {
		return -1
	}
	return offset
}

// pageArgs extracts first/after pagination arguments
func pageArgs(p graphql.ResolveParams) (limit, offset int) {
	limit = defaultPageSize
	if first, ok := p.Args["first"].(int); ok && first > 0 {
		limit = first
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if after, ok := p.Args["after"].(string); ok && after != "" {
		if decoded := decodeCursor(after); decoded >= 0 {
			offset = decoded + 1
		}
	}
	return limit, offset
}

var pageInfoType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PageInfo",
	Fields: graphql.Fields{
		"hasNextPage":     &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"hasPreviousPage": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"startCursor":     &graphql.Field{Type: graphql.String},
		"endCursor":       &graphql.Field{Type: graphql.String},
	},
})

type pageInfo struct {
	HasNextPage     bool    `json:"hasNextPage"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
	StartCursor     *string `json:"startCursor"`
	EndCursor       *string `json:"endCursor"`
}

type edge struct {
	Node   any    `json:"node"`
	Cursor string `json:"cursor"`
}

type connection struct {
	Edges      []edge   `json:"edges"`
	PageInfo   pageInfo `json:"pageInfo"`
	TotalCount int64    `json:"totalCount"`
}

// makeConnection wraps one page of nodes in the connection envelope
func makeConnection(nodes []any, total int64, offset int) connection {
	conn := connection{
		Edges:      make([]edge, 0, len(nodes)),
		TotalCount: total,
	}
	for i, node := range nodes {
		conn.Edges = append(conn.Edges, edge{Node: node, Cursor: encodeCursor(offset + i)})
	}
	if len(conn.Edges) > 0 {
		start := conn.Edges[0].Cursor
		end := conn.Edges[len(conn.Edges)-1].Cursor
		conn.PageInfo.StartCursor = &start
		conn.PageInfo.EndCursor = &end
	}
	conn.PageInfo.HasPreviousPage = offset > 0
	conn.PageInfo.HasNextPage = int64(offset+len(nodes)) < total
	return conn
}

// connectionType builds the Edge + Connection pair for a node type
func connectionType(name string, nodeType *graphql.Object) *graphql.Object {
	edgeType := graphql.NewObject(graphql.ObjectConfig{
		Name: name + "Edge",
		Fields: graphql.Fields{
			"node":   &graphql.Field{Type: nodeType},
			"cursor": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})
	return graphql.NewObject(graphql.ObjectConfig{
		Name: name + "Connection",
		Fields: graphql.Fields{
			"edges":      &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(edgeType)))},
			"pageInfo":   &graphql.Field{Type: graphql.NewNonNull(pageInfoType)},
			"totalCount": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})
}

var projectStatusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "ProjectStatus",
	Values: graphql.EnumValueConfigMap{
		"PLANNING":  &graphql.EnumValueConfig{Value: string(models.ProjectStatusPlanning)},
		"ACTIVE":    &graphql.EnumValueConfig{Value: string(models.ProjectStatusActive)},
		"COMPLETED": &graphql.EnumValueConfig{Value: string(models.ProjectStatusCompleted)},
		"ON_HOLD":   &graphql.EnumValueConfig{Value: string(models.ProjectStatusOnHold)},
		"CANCELLED": &graphql.EnumValueConfig{Value: string(models.ProjectStatusCancelled)},
	},
})

var taskStatusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "TaskStatus",
	Values: graphql.EnumValueConfigMap{
		"TODO":        &graphql.EnumValueConfig{Value: string(models.TaskStatusTodo)},
		"IN_PROGRESS": &graphql.EnumValueConfig{Value: string(models.TaskStatusInProgress)},
		"DONE":        &graphql.EnumValueConfig{Value: string(models.TaskStatusDone)},
	},
})

var sortOrderEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "SortOrder",
	Values: graphql.EnumValueConfigMap{
		"ASC":  &graphql.EnumValueConfig{Value: "asc"},
		"DESC": &graphql.EnumValueConfig{Value: "desc"},
	},
})

var projectFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProjectFilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"status":        &graphql.InputObjectFieldConfig{Type: projectStatusEnum},
		"nameContains":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"createdAfter":  &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"createdBefore": &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"dueAfter":      &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"dueBefore":     &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
	},
})

var taskFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "TaskFilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"projectId":     &graphql.InputObjectFieldConfig{Type: graphql.ID},
		"status":        &graphql.InputObjectFieldConfig{Type: taskStatusEnum},
		"titleContains": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"assigneeEmail": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"createdAfter":  &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"createdBefore": &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"dueAfter":      &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"dueBefore":     &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
	},
})

var projectStatisticsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ProjectStatistics",
	Fields: graphql.Fields{
		"total":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"planning":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"active":         &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"completed":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"onHold":         &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"cancelled":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"overdue":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"completionRate": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
	},
})

var taskStatisticsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TaskStatistics",
	Fields: graphql.Fields{
		"total":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"todo":           &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"inProgress":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"done":           &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"overdue":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"completionRate": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
	},
})

var organizationStatisticsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "OrganizationStatistics",
	Fields: graphql.Fields{
		"projects":            &graphql.Field{Type: graphql.NewNonNull(projectStatisticsType)},
		"tasks":               &graphql.Field{Type: graphql.NewNonNull(taskStatisticsType)},
		"userCount":           &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"recentActivityCount": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var tokenPairType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TokenPair",
	Fields: graphql.Fields{
		"accessToken":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"refreshToken": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})
