package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"taskcheck/internal/core/domain"
	"taskcheck/internal/core/ports"
)

const upsertUserQuery = `
INSERT INTO users (id, name, handle, points)
VALUES (?, ?, ?, 0)
ON DUPLICATE KEY UPDATE name = VALUES(name), handle = VALUES(handle);
`

const findUserQuery = `
SELECT id, name, handle, points FROM users WHERE id = ?;
`

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID     int64  `db:"id"`
	Name   string `db:"name"`
	Handle string `db:"handle"`
	Points int64  `db:"points"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Upsert(ctx context.Context, user domain.User) (domain.User, error) {
	if _, err := r.db.ExecContext(ctx, upsertUserQuery, user.ID, user.Name, user.Handle); err != nil {
		return domain.User{}, err
	}
	return r.Find(ctx, user.ID)
}

func (r *UserRepository) Find(ctx context.Context, id int64) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, findUserQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return domain.User{
		ID:     row.ID,
		Name:   row.Name,
		Handle: row.Handle,
		Points: row.Points,
	}, nil
}
