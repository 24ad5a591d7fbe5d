package gratitude

import (
	"context"

	"github.com/jkalnins/daybook/internal/server/models"
)

// Repository persists gratitude notes.
type Repository interface {
	Create(ctx context.Context, note *models.Gratitude) error
	ListByUser(ctx context.Context, userID models.UserID) ([]*models.Gratitude, error)
	GetByID(ctx context.Context, id string) (*models.Gratitude, error)
	Update(ctx context.Context, note *models.Gratitude) error
	Delete(ctx context.Context, id string, userID models.UserID) error
}
