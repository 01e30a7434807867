package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskboard/api/internal/models"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	store  Store
}

func NewTaskService(
	logger zerolog.Logger,
	store Store,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		store:  store,
	}
}

func (s *taskServiceImpl) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	if filter.Priority != nil && !filter.Priority.Valid() {
		s.logger.Warn().
			Str("priority", string(*filter.Priority)).
			Msg("invalid priority filter")
		return nil, ErrInvalidPriority
	}

	tasks, err := s.store.ListTasks(ctx, filter)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to list tasks")
		return nil, err
	}

	sortActionable(tasks)

	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("listed tasks")
	return tasks, nil
}

// sortActionable orders tasks so unfinished, high-priority, soon-due
// work surfaces first. Ties break on newest created, which keeps the
// order stable across repeated calls over unchanged data.
func sortActionable(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if ar, br := a.Priority.Rank(), b.Priority.Rank(); ar != br {
			return ar > br
		}
		switch {
		case a.DueDate == nil && b.DueDate == nil:
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		case !a.DueDate.Equal(*b.DueDate):
			return a.DueDate.Before(*b.DueDate)
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(params.UserID) == "" {
		return nil, ErrUserIDRequired
	}

	priority := params.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		s.logger.Warn().
			Str("priority", string(priority)).
			Msg("invalid priority")
		return nil, ErrInvalidPriority
	}

	task := &models.Task{
		ID:          uuid.NewString(),
		Title:       params.Title,
		Description: params.Description,
		Priority:    priority,
		DueDate:     params.DueDate,
		CreatedAt:   time.Now().UTC(),
		UserID:      params.UserID,
	}

	created, err := s.store.CreateTask(ctx, task)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.logger.Warn().
				Str("user_id", params.UserID).
				Msg("task owner not found")
			return nil, err
		}

		s.logger.Error().
			Err(err).
			Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().
		Str("task_id", created.ID).
		Str("user_id", created.UserID).
		Msg("created task")
	return created, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		s.logger.Warn().
			Str("task_id", id).
			Msg("empty title")
		return nil, ErrTitleRequired
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		s.logger.Warn().
			Str("priority", string(*patch.Priority)).
			Msg("invalid priority")
		return nil, ErrInvalidPriority
	}

	if patch.Empty() {
		// Nothing to change, hand back the current row.
		return s.store.GetTask(ctx, id)
	}

	updated, err := s.store.UpdateTask(ctx, id, patch)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			s.logger.Warn().
				Str("task_id", id).
				Msg("task not found")
			return nil, err
		}

		s.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to update task")
		return nil, err
	}

	s.logger.Info().
		Str("task_id", id).
		Msg("updated task")
	return updated, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	err := s.store.DeleteTask(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			s.logger.Warn().
				Str("task_id", id).
				Msg("task not found")
			return err
		}

		s.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to delete task")
		return err
	}

	s.logger.Info().
		Str("task_id", id).
		Msg("deleted task")
	return nil
}
