package repository

import (
	"context"

	"github.com/taskboard/api/internal/models"
)

func (r *Repository) ListUsers(ctx context.Context) ([]models.User, error) {
	const selectUsersQuery = `
SELECT u.id, u.email, u.name, u.avatar, u.created_at, COUNT(t.id)
FROM users u
LEFT JOIN tasks t ON t.user_id = u.id
GROUP BY u.id
ORDER BY u.created_at ASC
`
	rows, err := r.pool.Query(ctx, selectUsersQuery)
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to select users")
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		err = rows.Scan(
			&user.ID,
			&user.Email,
			&user.Name,
			&user.Avatar,
			&user.CreatedAt,
			&user.TaskCount,
		)
		if err != nil {
			r.logger.Error().
				Err(err).
				Msg("failed to scan user")
			return nil, err
		}
		users = append(users, user)
	}

	err = rows.Err()
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}

	r.logger.Debug().
		Int("count", len(users)).
		Msg("selected users")
	return users, nil
}
