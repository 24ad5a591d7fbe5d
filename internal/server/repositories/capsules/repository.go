package capsules

import (
	"context"
	"time"

	"github.com/jkalnins/daybook/internal/server/models"
)

// Repository persists time capsules. ListOpenByUser returns only capsules
// whose open date is at or before the given instant.
type Repository interface {
	Create(ctx context.Context, capsule *models.Capsule) error
	ListOpenByUser(ctx context.Context, userID models.UserID, now time.Time) ([]*models.Capsule, error)
	GetByID(ctx context.Context, id string) (*models.Capsule, error)
	Delete(ctx context.Context, id string, userID models.UserID) error
}
