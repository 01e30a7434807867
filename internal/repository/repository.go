package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Repository implements services.Store on top of a shared pgx pool.
// The pool is owned by the caller and released on shutdown.
type Repository struct {
	logger zerolog.Logger
	pool   *pgxpool.Pool
}

func New(logger zerolog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{
		logger: logger,
		pool:   pool,
	}
}
