package tasks

import (
	"context"

	"github.com/jkalnins/daybook/internal/server/models"
)

// Repository persists to-do tasks.
type Repository interface {
	Create(ctx context.Context, task *models.Task) error
	ListByUser(ctx context.Context, userID models.UserID) ([]*models.Task, error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id string, userID models.UserID) error
}
