package goals

import (
	"context"

	"github.com/jkalnins/daybook/internal/server/models"
)

// Repository persists goals and their milestones.
type Repository interface {
	Create(ctx context.Context, goal *models.Goal) error
	ListByUser(ctx context.Context, userID models.UserID) ([]*models.Goal, error)
	GetByID(ctx context.Context, id string) (*models.Goal, error)
	Update(ctx context.Context, goal *models.Goal) error
	Delete(ctx context.Context, id string, userID models.UserID) error
}
