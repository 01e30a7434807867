package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taskboard/api/internal/models"
	"github.com/taskboard/api/internal/services"
)

const taskColumns = `t.id, t.title, COALESCE(t.description, ''), t.completed,
       t.priority, t.due_date, t.created_at, t.user_id, u.name, u.email`

func scanTask(row pgx.Row) (*models.Task, error) {
	var (
		task  models.Task
		owner models.UserSummary
	)
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Completed,
		&task.Priority,
		&task.DueDate,
		&task.CreatedAt,
		&task.UserID,
		&owner.Name,
		&owner.Email,
	)
	if err != nil {
		return nil, err
	}

	owner.ID = task.UserID
	task.User = &owner
	return &task, nil
}

func (r *Repository) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	var (
		sb   strings.Builder
		args []any
		n    = 1
	)

	fmt.Fprintf(&sb, `SELECT %s
FROM tasks t
JOIN users u ON u.id = t.user_id
WHERE 1=1`, taskColumns)

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		fmt.Fprintf(&sb, " AND t.user_id = $%d", n)
		n++
	}
	if filter.Completed != nil {
		args = append(args, *filter.Completed)
		fmt.Fprintf(&sb, " AND t.completed = $%d", n)
		n++
	}
	if filter.Priority != nil {
		args = append(args, string(*filter.Priority))
		fmt.Fprintf(&sb, " AND t.priority = $%d", n)
		n++
	}

	sb.WriteString(" ORDER BY t.created_at DESC")

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to select tasks")
		return nil, err
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			r.logger.Error().
				Err(err).
				Msg("failed to scan task")
			return nil, err
		}
		tasks = append(tasks, *task)
	}

	err = rows.Err()
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}

	r.logger.Debug().
		Int("count", len(tasks)).
		Msg("selected tasks")
	return tasks, nil
}

func (r *Repository) GetTask(ctx context.Context, id string) (*models.Task, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM tasks t
JOIN users u ON u.id = t.user_id
WHERE t.id = $1
`, taskColumns)

	task, err := scanTask(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, services.ErrTaskNotFound
		}

		r.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to select task")
		return nil, err
	}
	return task, nil
}

func (r *Repository) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	const insertTaskQuery = `
WITH inserted AS (
    INSERT INTO tasks (id, title, description, completed, priority, due_date, created_at, user_id)
    VALUES ($1, $2, NULLIF($3, ''), false, $4, $5, $6, $7)
    RETURNING id, title, description, completed, priority, due_date, created_at, user_id
)
SELECT t.id, t.title, COALESCE(t.description, ''), t.completed,
       t.priority, t.due_date, t.created_at, t.user_id, u.name, u.email
FROM inserted t
JOIN users u ON u.id = t.user_id
`
	created, err := scanTask(r.pool.QueryRow(
		ctx,
		insertTaskQuery,
		task.ID,
		task.Title,
		task.Description,
		string(task.Priority),
		task.DueDate,
		task.CreatedAt,
		task.UserID,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return nil, services.ErrUserNotFound
		}

		r.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, err
	}

	r.logger.Debug().
		Str("task_id", created.ID).
		Msg("inserted task")
	return created, nil
}

func (r *Repository) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error) {
	var (
		sets []string
		args = []any{id}
		n    = 2
	)

	if patch.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", n))
		args = append(args, *patch.Title)
		n++
	}
	if patch.Description != nil {
		sets = append(sets, fmt.Sprintf("description = NULLIF($%d, '')", n))
		args = append(args, *patch.Description)
		n++
	}
	if patch.Completed != nil {
		sets = append(sets, fmt.Sprintf("completed = $%d", n))
		args = append(args, *patch.Completed)
		n++
	}
	if patch.Priority != nil {
		sets = append(sets, fmt.Sprintf("priority = $%d", n))
		args = append(args, string(*patch.Priority))
		n++
	}
	if patch.DueDate != nil {
		if patch.DueDate.IsZero() {
			sets = append(sets, "due_date = NULL")
		} else {
			sets = append(sets, fmt.Sprintf("due_date = $%d", n))
			args = append(args, *patch.DueDate)
			n++
		}
	}

	query := fmt.Sprintf(`
WITH updated AS (
    UPDATE tasks
    SET %s
    WHERE id = $1
    RETURNING id, title, description, completed, priority, due_date, created_at, user_id
)
SELECT t.id, t.title, COALESCE(t.description, ''), t.completed,
       t.priority, t.due_date, t.created_at, t.user_id, u.name, u.email
FROM updated t
JOIN users u ON u.id = t.user_id
`, strings.Join(sets, ", "))

	updated, err := scanTask(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, services.ErrTaskNotFound
		}

		r.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to update task")
		return nil, err
	}

	r.logger.Debug().
		Str("task_id", id).
		Msg("updated task")
	return updated, nil
}

func (r *Repository) DeleteTask(ctx context.Context, id string) error {
	const deleteTaskQuery = `
DELETE FROM tasks WHERE id = $1
`
	tag, err := r.pool.Exec(ctx, deleteTaskQuery, id)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to delete task")
		return err
	}
	if tag.RowsAffected() == 0 {
		return services.ErrTaskNotFound
	}

	r.logger.Debug().
		Str("task_id", id).
		Msg("deleted task")
	return nil
}
