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

// GoalService provides CRUD over the caller's goals.
type GoalService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewGoalService(db *sql.DB, m repomanager.RepositoryManager) *GoalService {
	return &GoalService{db: db, repomanager: m}
}

func (s *GoalService) Create(ctx context.Context, userID models.UserID, goal *models.Goal) (*models.Goal, error) {
	goal.ID = uuid.New().String()
	goal.UserID = userID
	goal.CreatedAt = time.Now()

	if err := s.repomanager.Goals(s.db).Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("error creating goal: %w", err)
	}
	return goal, nil
}

func (s *GoalService) List(ctx context.Context, userID models.UserID) ([]*models.Goal, error) {
	return s.repomanager.Goals(s.db).ListByUser(ctx, userID)
}

func (s *GoalService) Get(ctx context.Context, userID models.UserID, id string) (*models.Goal, error) {
	goal, err := s.repomanager.Goals(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.Owns(userID, goal) {
		return nil, common.ErrNotFound
	}
	return goal, nil
}

func (s *GoalService) Update(ctx context.Context, userID models.UserID, goal *models.Goal) error {
	goal.UserID = userID
	return s.repomanager.Goals(s.db).Update(ctx, goal)
}

func (s *GoalService) Delete(ctx context.Context, userID models.UserID, id string) error {
	return s.repomanager.Goals(s.db).Delete(ctx, id, userID)
}
