package services

import (
	"context"

	"github.com/adanyl0v/taskgate/internal/models"
	"github.com/adanyl0v/taskgate/internal/remote"
)

// Remote method names.
const (
	MethodListTasks  = "listTasks"
	MethodGetTask    = "getTask"
	MethodCreateTask = "createTask"
	MethodUpdateTask = "updateTask"
	MethodDeleteTask = "deleteTask"
)

// DefaultListLimit is sent when the caller gives no usable limit.
const DefaultListLimit = 100

// TaskService translates task operations into remote calls. Every method
// returns the remote envelope unchanged so the caller can relay its body.
type TaskService interface {
	// ListTasks sends limit, plus status and repoURL when set and
	// ready only when true. A non-positive limit becomes DefaultListLimit.
	ListTasks(ctx context.Context, filter models.TaskFilter) (*remote.Envelope, error)

	GetTask(ctx context.Context, taskID string) (*remote.Envelope, error)

	// CreateTask sends the present fields. Status defaults to
	// models.StatusOpen when absent.
	CreateTask(ctx context.Context, fields models.TaskFields) (*remote.Envelope, error)

	// UpdateTask sends taskID and the present fields, with no defaults.
	UpdateTask(ctx context.Context, taskID string, fields models.TaskFields) (*remote.Envelope, error)

	DeleteTask(ctx context.Context, taskID string) (*remote.Envelope, error)
}
