package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/jkalnins/daybook/internal/common"
)

func strPtr(s string) *string { return &s }

func tagsPtr(tags ...string) *[]string { return &tags }

func TestEntryCreate_SealsContentAtRest(t *testing.T) {
	repo := newFakeEntriesRepo()
	svc := NewEntryService(nil, &fakeRepoManager{entries: repo})

	created, err := svc.Create(context.Background(), "u-1", "monday", "dear diary", []string{"work"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.Content != "dear diary" {
		t.Fatalf("Create should echo plaintext, got %q", created.Content)
	}

	stored := repo.byID[created.ID]
	if stored == nil {
		t.Fatal("entry not persisted")
	}
	if bytes.Contains(stored.Content, []byte("dear diary")) {
		t.Fatal("plaintext leaked into stored content")
	}
	if len(stored.Key) == 0 {
		t.Fatal("content key not persisted")
	}
}

func TestEntryRead_RoundTrip(t *testing.T) {
	repo := newFakeEntriesRepo()
	svc := NewEntryService(nil, &fakeRepoManager{entries: repo})

	created, err := svc.Create(context.Background(), "u-1", "monday", "dear diary", nil)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := svc.Read(context.Background(), "u-1", created.ID)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if got.Content != "dear diary" || got.Title != "monday" {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestEntryRead_ForeignOwnerIsNotFound(t *testing.T) {
	repo := newFakeEntriesRepo()
	svc := NewEntryService(nil, &fakeRepoManager{entries: repo})

	created, err := svc.Create(context.Background(), "u-1", "monday", "dear diary", nil)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	_, err = svc.Read(context.Background(), "intruder", created.ID)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestEntryRead_CorruptedContent(t *testing.T) {
	repo := newFakeEntriesRepo()
	svc := NewEntryService(nil, &fakeRepoManager{entries: repo})

	created, err := svc.Create(context.Background(), "u-1", "monday", "dear diary", nil)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	stored := repo.byID[created.ID]
	stored.Content[len(stored.Content)-1] ^= 0xff

	_, err = svc.Read(context.Background(), "u-1", created.ID)
	if !errors.Is(err, common.ErrDecryptionFailed) {
		t.Fatalf("want common.ErrDecryptionFailed, got %v", err)
	}
}

func TestEntryList_OmitsContent(t *testing.T) {
	repo := newFakeEntriesRepo()
	svc := NewEntryService(nil, &fakeRepoManager{entries: repo})

	if _, err := svc.Create(context.Background(), "u-1", "monday", "dear diary", []string{"work"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := svc.Create(context.Background(), "u-2", "foreign", "other", nil); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := svc.List(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "monday" {
		t.Fatalf("unexpected summaries: %+v", got)
	}
}

func TestEntryUpdate_ReusesOriginalKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := newFakeEntriesRepo()
	svc := NewEntryService(db, &fakeRepoManager{entries: repo})

	created, err := svc.Create(context.Background(), "u-1", "monday", "dear diary", nil)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	keyBefore := append([]byte(nil), repo.byID[created.ID].Key...)

	patch := EntryPatch{Title: strPtr("monday"), Content: strPtr("rewritten")}
	if err := svc.Update(context.Background(), "u-1", created.ID, patch); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if !bytes.Equal(repo.byID[created.ID].Key, keyBefore) {
		t.Fatal("content key must survive rewrites")
	}

	got, err := svc.Read(context.Background(), "u-1", created.ID)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if got.Content != "rewritten" {
		t.Fatalf("content = %q, want %q", got.Content, "rewritten")
	}
}

func TestEntryUpdate_ForeignOwnerIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := newFakeEntriesRepo()
	svc := NewEntryService(db, &fakeRepoManager{entries: repo})

	created, err := svc.Create(context.Background(), "u-1", "monday", "dear diary", nil)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	patch := EntryPatch{Title: strPtr("hacked"), Content: strPtr("gotcha")}
	err = svc.Update(context.Background(), "intruder", created.ID, patch)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestEntryUpdate_ContentOnlyKeepsTitleAndTags(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := newFakeEntriesRepo()
	svc := NewEntryService(db, &fakeRepoManager{entries: repo})

	created, err := svc.Create(context.Background(), "u-1", "Day 1", "woke up early", []string{"morning"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	patch := EntryPatch{Content: strPtr("Had tea")}
	if err := svc.Update(context.Background(), "u-1", created.ID, patch); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	got, err := svc.Read(context.Background(), "u-1", created.ID)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if got.Content != "Had tea" {
		t.Fatalf("content = %q, want %q", got.Content, "Had tea")
	}
	if got.Title != "Day 1" {
		t.Fatalf("title = %q, want %q", got.Title, "Day 1")
	}
	if len(got.Tags) != 1 || got.Tags[0] != "morning" {
		t.Fatalf("tags = %v, want [morning]", got.Tags)
	}
}

func TestEntryUpdate_TagsOnlyKeepsContent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := newFakeEntriesRepo()
	svc := NewEntryService(db, &fakeRepoManager{entries: repo})

	created, err := svc.Create(context.Background(), "u-1", "Day 1", "woke up early", []string{"morning"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	sealedBefore := append([]byte(nil), repo.byID[created.ID].Content...)

	patch := EntryPatch{Tags: tagsPtr("morning", "tea")}
	if err := svc.Update(context.Background(), "u-1", created.ID, patch); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if !bytes.Equal(repo.byID[created.ID].Content, sealedBefore) {
		t.Fatal("content must not be resealed when only tags change")
	}

	got, err := svc.Read(context.Background(), "u-1", created.ID)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if got.Content != "woke up early" {
		t.Fatalf("content = %q, want %q", got.Content, "woke up early")
	}
	if len(got.Tags) != 2 {
		t.Fatalf("tags = %v, want [morning tea]", got.Tags)
	}
}

func TestEntryDelete_ForeignOwnerIsNotFound(t *testing.T) {
	repo := newFakeEntriesRepo()
	svc := NewEntryService(nil, &fakeRepoManager{entries: repo})

	created, err := svc.Create(context.Background(), "u-1", "monday", "dear diary", nil)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.Delete(context.Background(), "intruder", created.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), "u-1", created.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}
