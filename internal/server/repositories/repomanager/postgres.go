// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/jkalnins/daybook/internal/dbx"
	"github.com/jkalnins/daybook/internal/server/migrations"
	"github.com/jkalnins/daybook/internal/server/repositories/attachments"
	"github.com/jkalnins/daybook/internal/server/repositories/capsules"
	"github.com/jkalnins/daybook/internal/server/repositories/entries"
	"github.com/jkalnins/daybook/internal/server/repositories/goals"
	"github.com/jkalnins/daybook/internal/server/repositories/gratitude"
	"github.com/jkalnins/daybook/internal/server/repositories/habits"
	"github.com/jkalnins/daybook/internal/server/repositories/moods"
	"github.com/jkalnins/daybook/internal/server/repositories/schedules"
	"github.com/jkalnins/daybook/internal/server/repositories/tasks"
	"github.com/jkalnins/daybook/internal/server/repositories/users"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Entries(db dbx.DBTX) entries.Repository {
	return entries.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Attachments(db dbx.DBTX) attachments.Repository {
	return attachments.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Tasks(db dbx.DBTX) tasks.Repository {
	return tasks.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Goals(db dbx.DBTX) goals.Repository {
	return goals.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Habits(db dbx.DBTX) habits.Repository {
	return habits.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Moods(db dbx.DBTX) moods.Repository {
	return moods.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Schedules(db dbx.DBTX) schedules.Repository {
	return schedules.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Gratitude(db dbx.DBTX) gratitude.Repository {
	return gratitude.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Capsules(db dbx.DBTX) capsules.Repository {
	return capsules.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}
