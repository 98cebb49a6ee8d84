package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"golden_traff/internal/domain"
	"golden_traff/pkg/errcodes"
)

// EnsureSchema досоздаёт таблицы при старте. Отдельного механизма миграций
// нет: схема маленькая и меняется вместе с кодом.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS deals (
			id                VARCHAR(64) PRIMARY KEY,
			username          VARCHAR(255) NOT NULL,
			amount            BIGINT NOT NULL,
			date              TIMESTAMPTZ NOT NULL,
			status            VARCHAR(16) NOT NULL DEFAULT 'pending',
			mirror_message_id BIGINT,
			restored          BOOLEAN NOT NULL DEFAULT FALSE,
			app_type          VARCHAR(16) NOT NULL DEFAULT 'admin',
			user_id           VARCHAR(64) NOT NULL DEFAULT '',
			avatar            TEXT NOT NULL DEFAULT '',
			created_by        VARCHAR(64) NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS deals_date_idx ON deals (date DESC)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id           VARCHAR(64) PRIMARY KEY,
			title        TEXT NOT NULL,
			description  TEXT NOT NULL,
			reward       BIGINT NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL,
			completed_by JSONB NOT NULL DEFAULT '[]'
		)`,
	}

	for _, statement := range statements {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to ensure schema")
		}
	}

	return nil
}
