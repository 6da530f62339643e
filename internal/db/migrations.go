package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/todo-tracker/config"
)

type migration struct {
	ID       string
	SQLite   []string
	Postgres []string
}

var migrations = []migration{
	{
		ID: "0001_create_projects_and_todos",
		SQLite: []string{
			`CREATE TABLE IF NOT EXISTS projects (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	description TEXT,
	created_at  DATETIME NOT NULL,
	updated_at  DATETIME NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS todos (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	project_id  INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	title       TEXT NOT NULL,
	description TEXT,
	completed   BOOLEAN NOT NULL DEFAULT 0,
	created_at  DATETIME NOT NULL,
	updated_at  DATETIME NOT NULL
)`,
			`CREATE INDEX IF NOT EXISTS idx_todos_project_id_id ON todos (project_id, id)`,
		},
		Postgres: []string{
			`CREATE TABLE IF NOT EXISTS projects (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS todos (
	id          BIGSERIAL PRIMARY KEY,
	project_id  BIGINT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	title       TEXT NOT NULL,
	description TEXT,
	completed   BOOLEAN NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
)`,
			`CREATE INDEX IF NOT EXISTS idx_todos_project_id_id ON todos (project_id, id)`,
		},
	},
}

// Migrate applies every migration not yet recorded in schema_migrations.
// Each migration runs in its own transaction. Returns the ids applied.
func Migrate(ctx context.Context, db *sql.DB, driver string) ([]string, error) {
	const createTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	id         TEXT PRIMARY KEY,
	applied_at TIMESTAMP NOT NULL
)`
	if _, err := db.ExecContext(ctx, createTable); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	applied := make([]string, 0, len(migrations))
	for _, m := range migrations {
		ok, err := isApplied(ctx, db, m.ID)
		if err != nil {
			return applied, err
		}
		if ok {
			continue
		}

		stmts, err := m.statements(driver)
		if err != nil {
			return applied, err
		}
		if err := apply(ctx, db, m.ID, stmts); err != nil {
			return applied, fmt.Errorf("migration %s: %w", m.ID, err)
		}
		applied = append(applied, m.ID)
	}
	return applied, nil
}

func (m migration) statements(driver string) ([]string, error) {
	switch driver {
	case config.DriverSQLite:
		return m.SQLite, nil
	case config.DriverPostgres:
		return m.Postgres, nil
	default:
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}
}

func isApplied(ctx context.Context, db *sql.DB, id string) (bool, error) {
	var got string
	err := db.QueryRowContext(ctx, `SELECT id FROM schema_migrations WHERE id = $1`, id).Scan(&got)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read schema_migrations: %w", err)
	}
	return true, nil
}

func apply(ctx context.Context, db *sql.DB, id string, stmts []string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (id, applied_at) VALUES ($1, $2)`,
		id, time.Now().UTC(),
	); err != nil {
		return err
	}

	return tx.Commit()
}
