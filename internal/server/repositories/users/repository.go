package users

import (
	"context"

	"github.com/jkalnins/daybook/internal/server/models"
)

// Repository persists user accounts.
type Repository interface {
	// Create inserts a new user row.
	Create(ctx context.Context, user *models.User) error
	// GetByUsername returns the user with the given username or
	// common.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
