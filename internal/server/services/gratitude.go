package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jkalnins/daybook/internal/common"
	"github.com/jkalnins/daybook/internal/server/models"
	"github.com/jkalnins/daybook/internal/server/repositories/repomanager"
)

// GratitudeService provides CRUD over the caller's gratitude notes.
type GratitudeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewGratitudeService(db *sql.DB, m repomanager.RepositoryManager) *GratitudeService {
	return &GratitudeService{db: db, repomanager: m}
}

func (s *GratitudeService) Create(ctx context.Context, userID models.UserID, note *models.Gratitude) (*models.Gratitude, error) {
	note.ID = uuid.New().String()
	note.UserID = userID
	note.CreatedAt = time.Now()

	if err := s.repomanager.Gratitude(s.db).Create(ctx, note); err != nil {
		return nil, fmt.Errorf("error creating gratitude note: %w", err)
	}
	return note, nil
}

func (s *GratitudeService) List(ctx context.Context, userID models.UserID) ([]*models.Gratitude, error) {
	return s.repomanager.Gratitude(s.db).ListByUser(ctx, userID)
}

func (s *GratitudeService) Get(ctx context.Context, userID models.UserID, id string) (*models.Gratitude, error) {
	note, err := s.repomanager.Gratitude(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.Owns(userID, note) {
		return nil, common.ErrNotFound
	}
	return note, nil
}

func (s *GratitudeService) Update(ctx context.Context, userID models.UserID, note *models.Gratitude) error {
	note.UserID = userID
	return s.repomanager.Gratitude(s.db).Update(ctx, note)
}

func (s *GratitudeService) Delete(ctx context.Context, userID models.UserID, id string) error {
	return s.repomanager.Gratitude(s.db).Delete(ctx, id, userID)
}
