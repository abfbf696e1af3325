package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"taskcheck/internal/core/domain"
	"taskcheck/internal/core/ports"
)

const mysqlDuplicateEntry = 1062

const createTaskQuery = `
INSERT INTO tasks (user_id, name, description, points, deadline, settled, created_at)
VALUES (?, ?, ?, ?, ?, 0, ?);
`

const findTaskQuery = `
SELECT id, user_id, name, description, points, deadline, settled, created_at
FROM tasks
WHERE user_id = ? AND name = ?;
`

const listTasksQuery = `
SELECT id, user_id, name, description, points, deadline, settled, created_at
FROM tasks
WHERE user_id = ?
ORDER BY id;
`

const settleTaskQuery = `
UPDATE tasks SET settled = 1 WHERE user_id = ? AND name = ? AND settled = 0;
`

const adjustPointsQuery = `
UPDATE users SET points = points + ? WHERE id = ?;
`

const selectPointsQuery = `
SELECT points FROM users WHERE id = ?;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64    `db:"id"`
	UserID      int64     `db:"user_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Points      int64     `db:"points"`
	Deadline    time.Time `db:"deadline"`
	Settled     bool      `db:"settled"`
	CreatedAt   time.Time `db:"created_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) error {
	_, err := r.db.ExecContext(ctx, createTaskQuery,
		task.OwnerID,
		task.Name,
		task.Description,
		task.Points,
		task.Deadline,
		task.CreatedAt,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return domain.ErrTaskNameTaken
		}
		return err
	}
	return nil
}

func (r *TaskRepository) FindByName(ctx context.Context, ownerID int64, name string) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, findTaskQuery, ownerID, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksQuery, ownerID); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

// Settle flips the settled flag and applies the points delta as one
// transaction. The settled = 0 guard makes settlement exactly-once: a second
// call matches no rows and the delta is never re-applied.
func (r *TaskRepository) Settle(ctx context.Context, ownerID int64, name string, delta int64) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	res, err := tx.ExecContext(ctx, settleTaskQuery, ownerID, name)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		if _, findErr := r.FindByName(ctx, ownerID, name); errors.Is(findErr, domain.ErrTaskNotFound) {
			return 0, domain.ErrTaskNotFound
		}
		return 0, domain.ErrTaskSettled
	}

	if _, err := tx.ExecContext(ctx, adjustPointsQuery, delta, ownerID); err != nil {
		return 0, err
	}

	var total int64
	if err := tx.GetContext(ctx, &total, selectPointsQuery, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return total, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	return domain.Task{
		ID:          row.ID,
		OwnerID:     row.UserID,
		Name:        row.Name,
		Description: row.Description,
		Points:      row.Points,
		Deadline:    row.Deadline,
		Settled:     row.Settled,
		CreatedAt:   row.CreatedAt,
	}
}
