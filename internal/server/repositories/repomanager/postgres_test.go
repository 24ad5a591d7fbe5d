package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := NewPostgresRepositoryManager()
	var _ RepositoryManager = m

	if r := m.Users(db); r == nil {
		t.Fatal("Users() nil")
	}
	if r := m.Entries(db); r == nil {
		t.Fatal("Entries() nil")
	}
	if r := m.Attachments(db); r == nil {
		t.Fatal("Attachments() nil")
	}
	if r := m.Tasks(db); r == nil {
		t.Fatal("Tasks() nil")
	}
	if r := m.Goals(db); r == nil {
		t.Fatal("Goals() nil")
	}
	if r := m.Habits(db); r == nil {
		t.Fatal("Habits() nil")
	}
	if r := m.Moods(db); r == nil {
		t.Fatal("Moods() nil")
	}
	if r := m.Schedules(db); r == nil {
		t.Fatal("Schedules() nil")
	}
	if r := m.Gratitude(db); r == nil {
		t.Fatal("Gratitude() nil")
	}
	if r := m.Capsules(db); r == nil {
		t.Fatal("Capsules() nil")
	}
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	m := NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), db); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}
