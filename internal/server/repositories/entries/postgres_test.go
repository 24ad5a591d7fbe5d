package entries

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jkalnins/daybook/internal/common"
	"github.com/jkalnins/daybook/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+entries\s*\(id,\s*user_id,\s*title,\s*content,\s*content_key,\s*tags,\s*created_at\)`

	now := time.Now()
	mock.ExpectExec(q).
		WithArgs("e-1", "u-1", "monday", []byte("ciphertext"), []byte("key"), `["work"]`, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	e := &models.Entry{
		ID: "e-1", UserID: "u-1", Title: "monday",
		Content: []byte("ciphertext"), Key: []byte("key"),
		Tags: []string{"work"}, CreatedAt: now,
	}
	if err := repo.Create(context.Background(), e); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestCreate_NilTagsStoredAsEmptyList(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+entries`

	now := time.Now()
	mock.ExpectExec(q).
		WithArgs("e-1", "u-1", "monday", []byte("ciphertext"), []byte("key"), `[]`, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	e := &models.Entry{
		ID: "e-1", UserID: "u-1", Title: "monday",
		Content: []byte("ciphertext"), Key: []byte("key"),
		Tags: nil, CreatedAt: now,
	}
	if err := repo.Create(context.Background(), e); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestListByUser_ReturnsSummaries(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+id,\s*title,\s*tags,\s*created_at\s+FROM\s+entries\s+WHERE\s+user_id\s*=\s*\$1`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "tags", "created_at"}).
		AddRow("e-1", "monday", `["work"]`, now).
		AddRow("e-2", "tuesday", `[]`, now)
	mock.ExpectQuery(q).WithArgs("u-1").WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}
	if got[0].ID != "e-1" || got[0].Tags[0] != "work" {
		t.Fatalf("unexpected summary: %+v", got[0])
	}
	if len(got[1].Tags) != 0 {
		t.Fatalf("expected no tags, got %v", got[1].Tags)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+id,\s*user_id,\s*title,\s*content,\s*content_key,\s*tags,\s*created_at\s+FROM\s+entries\s+WHERE\s+id\s*=\s*\$1`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "content", "content_key", "tags", "created_at"}).
		AddRow("e-1", "u-1", "monday", []byte("ciphertext"), []byte("key"), `["work"]`, now)
	mock.ExpectQuery(q).WithArgs("e-1").WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "e-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.UserID != "u-1" || string(got.Key) != "key" {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^\s*SELECT\s+id,\s*user_id`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestUpdate_LeavesKeyAlone(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+entries\s+SET\s+title\s*=\s*\$1,\s*content\s*=\s*\$2,\s*tags\s*=\s*\$3\s+WHERE\s+id\s*=\s*\$4\s+AND\s+user_id\s*=\s*\$5`

	mock.ExpectExec(q).
		WithArgs("edited", []byte("new ciphertext"), `[]`, "e-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	e := &models.Entry{ID: "e-1", UserID: "u-1", Title: "edited", Content: []byte("new ciphertext")}
	if err := repo.Update(context.Background(), e); err != nil {
		t.Fatalf("Update error: %v", err)
	}
}

func TestUpdate_WrongOwnerIsNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^\s*UPDATE\s+entries`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	e := &models.Entry{ID: "e-1", UserID: "intruder", Title: "edited"}
	if err := repo.Update(context.Background(), e); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^\s*DELETE\s+FROM\s+entries\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2`).
		WithArgs("e-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "e-1", "u-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_Missing(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^\s*DELETE\s+FROM\s+entries`).
		WithArgs("ghost", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "ghost", "u-1"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestDelete_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^\s*DELETE\s+FROM\s+entries`).
		WithArgs("e-1", "u-1").
		WillReturnError(errors.New("db down"))

	err := repo.Delete(context.Background(), "e-1", "u-1")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
