package services

import (
	"context"
	"errors"
	"time"

	"github.com/taskboard/api/internal/models"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrUserIDRequired  = errors.New("user id is required")
	ErrInvalidPriority = errors.New("invalid priority")
)

// Store is the persistence boundary the services talk to. Every
// operation is a single store call; failed calls persist nothing.
type Store interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	GetTask(ctx context.Context, id string) (*models.Task, error)

	// CreateTask persists the given task and returns it with the
	// owner summary attached. It returns ErrUserNotFound if the
	// task's user ID doesn't reference an existing user.
	CreateTask(ctx context.Context, task *models.Task) (*models.Task, error)

	// UpdateTask applies the provided patch fields to the task with
	// the given ID. It returns ErrTaskNotFound if no task matches.
	UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error)

	// DeleteTask returns ErrTaskNotFound if no task matches.
	DeleteTask(ctx context.Context, id string) error
}

type TaskService interface {
	// ListTasks returns the tasks matching every provided filter
	// field, ordered so the most actionable work comes first:
	// incomplete before completed, higher priority first, earlier
	// due dates first with undated tasks last, then newest created.
	//
	// It returns ErrInvalidPriority if the priority filter is not
	// one of the enumerated values.
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)

	// CreateTask creates a task owned by params.UserID. Priority
	// defaults to MEDIUM when absent and the task starts incomplete.
	//
	// It returns ErrTitleRequired or ErrUserIDRequired when a
	// required field is missing, ErrInvalidPriority for a priority
	// outside the enumeration and ErrUserNotFound when the owner
	// doesn't exist.
	CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error)

	// UpdateTask changes only the fields present in the patch and
	// returns the updated task. An empty patch returns the task
	// unchanged. It returns ErrTaskNotFound if no task matches.
	UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error)

	// DeleteTask returns ErrTaskNotFound if no task matches.
	DeleteTask(ctx context.Context, id string) error
}

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

type CreateTaskParams struct {
	Title       string
	Description string
	// Priority left empty defaults to MEDIUM.
	Priority models.Priority
	DueDate  *time.Time
	UserID   string
}
