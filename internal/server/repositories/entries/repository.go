package entries

import (
	"context"

	"github.com/jkalnins/daybook/internal/server/models"
)

// Repository persists diary entries: ciphertext, the per-entry content key,
// and plaintext metadata.
type Repository interface {
	// Create inserts a new entry row, content key included.
	Create(ctx context.Context, entry *models.Entry) error
	// ListByUser returns metadata summaries for every entry owned by
	// userID, in the store's natural retrieval order.
	ListByUser(ctx context.Context, userID models.UserID) ([]*models.EntrySummary, error)
	// GetByID returns the full entry row or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Entry, error)
	// Update replaces title, content, and tags of the entry owned by
	// entry.UserID. common.ErrNotFound when no row matches.
	Update(ctx context.Context, entry *models.Entry) error
	// Delete permanently removes the entry (and its key) when it is owned
	// by userID. common.ErrNotFound when no row matches.
	Delete(ctx context.Context, id string, userID models.UserID) error
}
