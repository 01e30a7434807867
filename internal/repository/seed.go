package repository

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taskboard/api/internal/models"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema creates the priority enum and the users/tasks tables
// when they don't exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, schemaSQL)
	if err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	r.logger.Debug().Msg("applied schema")
	return nil
}

type seedUser struct {
	email  string
	name   string
	avatar string
}

type seedTask struct {
	id          string
	title       string
	description string
	priority    models.Priority
	dueDate     string
	completed   bool
	ownerEmail  string
}

var seedUsers = []seedUser{
	{
		email:  "john.doe@example.com",
		name:   "John Doe",
		avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
	},
	{
		email:  "jane.smith@example.com",
		name:   "Jane Smith",
		avatar: "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
	},
}

var seedTasks = []seedTask{
	{
		id:          "seed-task-1",
		title:       "Review quarterly reports",
		description: "Go through Q4 financial reports and prepare summary",
		priority:    models.PriorityHigh,
		dueDate:     "2024-02-15",
		ownerEmail:  "john.doe@example.com",
	},
	{
		id:          "seed-task-2",
		title:       "Update project documentation",
		description: "Update the README and API documentation for the new features",
		priority:    models.PriorityMedium,
		dueDate:     "2024-02-10",
		ownerEmail:  "john.doe@example.com",
	},
	{
		id:          "seed-task-3",
		title:       "Schedule team meeting",
		description: "Organize weekly sync meeting with the development team",
		priority:    models.PriorityLow,
		dueDate:     "2024-02-08",
		ownerEmail:  "jane.smith@example.com",
	},
	{
		id:          "seed-task-4",
		title:       "Fix critical bug in production",
		description: "Address the authentication issue reported by users",
		priority:    models.PriorityUrgent,
		dueDate:     "2024-02-05",
		completed:   true,
		ownerEmail:  "jane.smith@example.com",
	},
	{
		id:          "seed-task-5",
		title:       "Prepare presentation slides",
		description: "Create slides for the upcoming client presentation",
		priority:    models.PriorityHigh,
		dueDate:     "2024-02-12",
		ownerEmail:  "john.doe@example.com",
	},
}

// SeedSampleData upserts the sample users and tasks. Running it more
// than once leaves existing rows in place.
func (r *Repository) SeedSampleData(ctx context.Context) error {
	const upsertUserQuery = `
INSERT INTO users (id, email, name, avatar)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
RETURNING id
`
	userIDs := make(map[string]string, len(seedUsers))
	for _, u := range seedUsers {
		var id string
		err := r.pool.QueryRow(
			ctx,
			upsertUserQuery,
			uuid.NewString(),
			u.email,
			u.name,
			u.avatar,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("upsert user %s: %w", u.email, err)
		}
		userIDs[u.email] = id
	}

	const upsertTaskQuery = `
INSERT INTO tasks (id, title, description, completed, priority, due_date, user_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO NOTHING
`
	for _, t := range seedTasks {
		dueDate, err := time.Parse(time.DateOnly, t.dueDate)
		if err != nil {
			return fmt.Errorf("parse due date for %s: %w", t.id, err)
		}

		_, err = r.pool.Exec(
			ctx,
			upsertTaskQuery,
			t.id,
			t.title,
			t.description,
			t.completed,
			string(t.priority),
			dueDate,
			userIDs[t.ownerEmail],
		)
		if err != nil {
			return fmt.Errorf("upsert task %s: %w", t.id, err)
		}
	}

	r.logger.Info().
		Int("users", len(seedUsers)).
		Int("tasks", len(seedTasks)).
		Msg("seeded sample data")
	return nil
}
