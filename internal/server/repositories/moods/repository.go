package moods

import (
	"context"

	"github.com/jkalnins/daybook/internal/server/models"
)

// Repository persists mood records.
type Repository interface {
	Create(ctx context.Context, mood *models.Mood) error
	ListByUser(ctx context.Context, userID models.UserID) ([]*models.Mood, error)
	GetByID(ctx context.Context, id string) (*models.Mood, error)
	Update(ctx context.Context, mood *models.Mood) error
	Delete(ctx context.Context, id string, userID models.UserID) error
}
