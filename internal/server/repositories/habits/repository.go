package habits

import (
	"context"

	"github.com/jkalnins/daybook/internal/server/models"
)

// Repository persists habit trackers.
type Repository interface {
	Create(ctx context.Context, habit *models.Habit) error
	ListByUser(ctx context.Context, userID models.UserID) ([]*models.Habit, error)
	GetByID(ctx context.Context, id string) (*models.Habit, error)
	Update(ctx context.Context, habit *models.Habit) error
	Delete(ctx context.Context, id string, userID models.UserID) error
}
