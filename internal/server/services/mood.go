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

// MoodService provides CRUD over the caller's mood records.
type MoodService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewMoodService(db *sql.DB, m repomanager.RepositoryManager) *MoodService {
	return &MoodService{db: db, repomanager: m}
}

func (s *MoodService) Create(ctx context.Context, userID models.UserID, mood *models.Mood) (*models.Mood, error) {
	mood.ID = uuid.New().String()
	mood.UserID = userID
	mood.CreatedAt = time.Now()

	if err := s.repomanager.Moods(s.db).Create(ctx, mood); err != nil {
		return nil, fmt.Errorf("error creating mood: %w", err)
	}
	return mood, nil
}

func (s *MoodService) List(ctx context.Context, userID models.UserID) ([]*models.Mood, error) {
	return s.repomanager.Moods(s.db).ListByUser(ctx, userID)
}

func (s *MoodService) Get(ctx context.Context, userID models.UserID, id string) (*models.Mood, error) {
	mood, err := s.repomanager.Moods(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.Owns(userID, mood) {
		return nil, common.ErrNotFound
	}
	return mood, nil
}

func (s *MoodService) Update(ctx context.Context, userID models.UserID, mood *models.Mood) error {
	mood.UserID = userID
	return s.repomanager.Moods(s.db).Update(ctx, mood)
}

func (s *MoodService) Delete(ctx context.Context, userID models.UserID, id string) error {
	return s.repomanager.Moods(s.db).Delete(ctx, id, userID)
}
