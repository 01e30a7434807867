package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/taskboard/api/internal/models"
)

type userServiceImpl struct {
	logger zerolog.Logger
	store  Store
}

func NewUserService(
	logger zerolog.Logger,
	store Store,
) UserService {
	return &userServiceImpl{
		logger: logger,
		store:  store,
	}
}

func (s *userServiceImpl) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to list users")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(users)).
		Msg("listed users")
	return users, nil
}
