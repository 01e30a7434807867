package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/taskboard/api/internal/models"
)

type fakeStore struct {
	mu sync.RWMutex

	users map[string]models.User
	tasks map[string]models.Task
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users: make(map[string]models.User),
		tasks: make(map[string]models.Task),
	}
}

func (s *fakeStore) addUser(id, name, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[id] = models.User{
		ID:        id,
		Email:     email,
		Name:      name,
		CreatedAt: time.Now(),
	}
}

func (s *fakeStore) addTask(task models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks[task.ID] = cloneTask(task)
}

func (s *fakeStore) taskCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.tasks)
}

func cloneTask(t models.Task) models.Task {
	out := t
	if t.DueDate != nil {
		due := *t.DueDate
		out.DueDate = &due
	}
	out.User = nil
	return out
}

func (s *fakeStore) withOwner(t models.Task) models.Task {
	out := cloneTask(t)
	if owner, ok := s.users[t.UserID]; ok {
		out.User = &models.UserSummary{
			ID:    owner.ID,
			Name:  owner.Name,
			Email: owner.Email,
		}
	}
	return out
}

func (s *fakeStore) ListUsers(context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		for _, task := range s.tasks {
			if task.UserID == user.ID {
				user.TaskCount++
			}
		}
		out = append(out, user)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *fakeStore) ListTasks(_ context.Context, filter models.TaskFilter) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if filter.UserID != nil && task.UserID != *filter.UserID {
			continue
		}
		if filter.Completed != nil && task.Completed != *filter.Completed {
			continue
		}
		if filter.Priority != nil && task.Priority != *filter.Priority {
			continue
		}
		out = append(out, s.withOwner(task))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *fakeStore) GetTask(_ context.Context, id string) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, ErrTaskNotFound
	}

	out := s.withOwner(task)
	return &out, nil
}

func (s *fakeStore) CreateTask(_ context.Context, task *models.Task) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[task.UserID]; !ok {
		return nil, ErrUserNotFound
	}

	stored := cloneTask(*task)
	stored.Completed = false
	s.tasks[stored.ID] = stored

	out := s.withOwner(stored)
	return &out, nil
}

func (s *fakeStore) UpdateTask(_ context.Context, id string, patch models.TaskPatch) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, ErrTaskNotFound
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		if patch.DueDate.IsZero() {
			task.DueDate = nil
		} else {
			due := *patch.DueDate
			task.DueDate = &due
		}
	}
	s.tasks[id] = task

	out := s.withOwner(task)
	return &out, nil
}

func (s *fakeStore) DeleteTask(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}
