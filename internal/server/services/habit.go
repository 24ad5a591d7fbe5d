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

// HabitService provides CRUD over the caller's habit trackers.
type HabitService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewHabitService(db *sql.DB, m repomanager.RepositoryManager) *HabitService {
	return &HabitService{db: db, repomanager: m}
}

func (s *HabitService) Create(ctx context.Context, userID models.UserID, habit *models.Habit) (*models.Habit, error) {
	habit.ID = uuid.New().String()
	habit.UserID = userID
	habit.CreatedAt = time.Now()
	if habit.Frequency == "" {
		habit.Frequency = "daily"
	}

	if err := s.repomanager.Habits(s.db).Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("error creating habit: %w", err)
	}
	return habit, nil
}

func (s *HabitService) List(ctx context.Context, userID models.UserID) ([]*models.Habit, error) {
	return s.repomanager.Habits(s.db).ListByUser(ctx, userID)
}

func (s *HabitService) Get(ctx context.Context, userID models.UserID, id string) (*models.Habit, error) {
	habit, err := s.repomanager.Habits(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.Owns(userID, habit) {
		return nil, common.ErrNotFound
	}
	return habit, nil
}

func (s *HabitService) Update(ctx context.Context, userID models.UserID, habit *models.Habit) error {
	habit.UserID = userID
	return s.repomanager.Habits(s.db).Update(ctx, habit)
}

func (s *HabitService) Delete(ctx context.Context, userID models.UserID, id string) error {
	return s.repomanager.Habits(s.db).Delete(ctx, id, userID)
}
