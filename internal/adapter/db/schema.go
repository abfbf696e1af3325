package db

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
  id     BIGINT       NOT NULL,
  name   VARCHAR(255) NOT NULL DEFAULT '',
  handle VARCHAR(255) NOT NULL DEFAULT '',
  points BIGINT       NOT NULL DEFAULT 0,
  PRIMARY KEY (id)
);
`

const createTasksTable = `
CREATE TABLE IF NOT EXISTS tasks (
  id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
  user_id     BIGINT          NOT NULL,
  name        VARCHAR(255)    NOT NULL,
  description TEXT            NOT NULL,
  points      BIGINT          NOT NULL,
  deadline    DATETIME        NOT NULL,
  settled     TINYINT(1)      NOT NULL DEFAULT 0,
  created_at  DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (id),
  UNIQUE KEY uniq_owner_name (user_id, name)
);
`

// EnsureSchema creates the two tables on boot. The unique key on
// (user_id, name) is what ultimately enforces per-owner task name uniqueness.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range []string{createUsersTable, createTasksTable} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
