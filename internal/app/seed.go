package app

import (
	"context"
	"time"

	"github.com/taskboard/api/internal/repository"
)

const seedTimeout = 30 * time.Second

// MustSeedPostgres applies the schema and loads the sample users and
// tasks. It is safe to run repeatedly.
func MustSeedPostgres() {
	store := repository.New(globalLogger, globalPostgresPool)

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	err := store.EnsureSchema(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to apply schema")
		panic(err)
	}

	err = store.SeedSampleData(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to seed sample data")
		panic(err)
	}
}
