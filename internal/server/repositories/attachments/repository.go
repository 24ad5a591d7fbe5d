package attachments

import (
	"context"

	"github.com/jkalnins/daybook/internal/server/models"
)

// Repository persists attachment metadata. The attachment bytes themselves
// live in object storage.
type Repository interface {
	Create(ctx context.Context, attachment *models.Attachment) error
	ListByEntry(ctx context.Context, entryID string, userID models.UserID) ([]*models.Attachment, error)
	GetByID(ctx context.Context, id string) (*models.Attachment, error)
	Delete(ctx context.Context, id string, userID models.UserID) error
}
