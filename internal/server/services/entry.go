package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jkalnins/daybook/internal/common"
	"github.com/jkalnins/daybook/internal/cryptox"
	"github.com/jkalnins/daybook/internal/dbx"
	"github.com/jkalnins/daybook/internal/server/models"
	"github.com/jkalnins/daybook/internal/server/repositories/repomanager"
)

// EntryService implements the diary entry vault. Content is sealed with a
// fresh per-entry key on creation; the same key is reused on every rewrite
// and is never rotated. Any access to a foreign entry reports not-found.
type EntryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewEntryService(db *sql.DB, m repomanager.RepositoryManager) *EntryService {
	return &EntryService{db: db, repomanager: m}
}

// Create seals the content under a newly generated key and persists the
// entry together with that key.
func (s *EntryService) Create(ctx context.Context, userID models.UserID, title, content string, tags []string) (*models.DecryptedEntry, error) {
	key, err := cryptox.NewKey()
	if err != nil {
		return nil, common.ErrInternal
	}
	sealed, err := cryptox.Encrypt([]byte(content), key)
	if err != nil {
		return nil, common.ErrInternal
	}

	entry := &models.Entry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Content:   sealed,
		Key:       key,
		Tags:      tags,
		CreatedAt: time.Now(),
	}

	repo := s.repomanager.Entries(s.db)
	if err := repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("error creating entry: %w", err)
	}

	return &models.DecryptedEntry{
		ID:        entry.ID,
		Title:     entry.Title,
		Content:   content,
		Tags:      entry.Tags,
		CreatedAt: entry.CreatedAt,
	}, nil
}

// List returns entry summaries for the user. Content stays sealed; listing
// never touches the content keys.
func (s *EntryService) List(ctx context.Context, userID models.UserID) ([]*models.EntrySummary, error) {
	repo := s.repomanager.Entries(s.db)
	summaries, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %w", err)
	}
	return summaries, nil
}

// Read fetches one entry and unseals its content with the stored key.
func (s *EntryService) Read(ctx context.Context, userID models.UserID, id string) (*models.DecryptedEntry, error) {
	repo := s.repomanager.Entries(s.db)

	entry, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.Owns(userID, entry) {
		return nil, common.ErrNotFound
	}

	content, err := cryptox.Decrypt(entry.Content, entry.Key)
	if err != nil {
		return nil, err
	}

	return &models.DecryptedEntry{
		ID:        entry.ID,
		Title:     entry.Title,
		Content:   string(content),
		Tags:      entry.Tags,
		CreatedAt: entry.CreatedAt,
	}, nil
}

// EntryPatch carries the fields of an update request. A nil field keeps the
// stored value.
type EntryPatch struct {
	Title   *string
	Content *string
	Tags    *[]string
}

// Update applies the supplied fields and leaves the rest untouched. New
// content is sealed with the entry's original key inside one transaction,
// so a concurrent rewrite can never split an entry across two keys.
func (s *EntryService) Update(ctx context.Context, userID models.UserID, id string, patch EntryPatch) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Entries(tx)

		entry, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !models.Owns(userID, entry) {
			return common.ErrNotFound
		}

		if patch.Title != nil {
			entry.Title = *patch.Title
		}
		if patch.Tags != nil {
			entry.Tags = *patch.Tags
		}
		if patch.Content != nil {
			sealed, err := cryptox.Encrypt([]byte(*patch.Content), entry.Key)
			if err != nil {
				return common.ErrInternal
			}
			entry.Content = sealed
		}
		return repo.Update(ctx, entry)
	})
}

// Delete removes the entry and, with it, the only copy of its content key.
func (s *EntryService) Delete(ctx context.Context, userID models.UserID, id string) error {
	repo := s.repomanager.Entries(s.db)
	return repo.Delete(ctx, id, userID)
}
