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

// TaskService provides CRUD over the caller's tasks.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

func (s *TaskService) Create(ctx context.Context, userID models.UserID, task *models.Task) (*models.Task, error) {
	task.ID = uuid.New().String()
	task.UserID = userID
	task.CreatedAt = time.Now()

	if err := s.repomanager.Tasks(s.db).Create(ctx, task); err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}
	return task, nil
}

func (s *TaskService) List(ctx context.Context, userID models.UserID) ([]*models.Task, error) {
	return s.repomanager.Tasks(s.db).ListByUser(ctx, userID)
}

func (s *TaskService) Get(ctx context.Context, userID models.UserID, id string) (*models.Task, error) {
	task, err := s.repomanager.Tasks(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.Owns(userID, task) {
		return nil, common.ErrNotFound
	}
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, userID models.UserID, task *models.Task) error {
	task.UserID = userID
	return s.repomanager.Tasks(s.db).Update(ctx, task)
}

func (s *TaskService) Delete(ctx context.Context, userID models.UserID, id string) error {
	return s.repomanager.Tasks(s.db).Delete(ctx, id, userID)
}
