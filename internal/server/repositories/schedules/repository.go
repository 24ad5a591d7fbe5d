package schedules

import (
	"context"

	"github.com/jkalnins/daybook/internal/server/models"
)

// Repository persists recurring schedule slots.
type Repository interface {
	Create(ctx context.Context, schedule *models.Schedule) error
	ListByUser(ctx context.Context, userID models.UserID) ([]*models.Schedule, error)
	GetByID(ctx context.Context, id string) (*models.Schedule, error)
	Update(ctx context.Context, schedule *models.Schedule) error
	Delete(ctx context.Context, id string, userID models.UserID) error
}
