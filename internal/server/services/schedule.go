package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jkalnins/daybook/internal/common"
	"github.com/jkalnins/daybook/internal/server/models"
	"github.com/jkalnins/daybook/internal/server/repositories/repomanager"
)

// ScheduleService provides CRUD over the caller's recurring schedule slots.
type ScheduleService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewScheduleService(db *sql.DB, m repomanager.RepositoryManager) *ScheduleService {
	return &ScheduleService{db: db, repomanager: m}
}

func (s *ScheduleService) Create(ctx context.Context, userID models.UserID, schedule *models.Schedule) (*models.Schedule, error) {
	schedule.ID = uuid.New().String()
	schedule.UserID = userID

	if err := s.repomanager.Schedules(s.db).Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("error creating schedule: %w", err)
	}
	return schedule, nil
}

func (s *ScheduleService) List(ctx context.Context, userID models.UserID) ([]*models.Schedule, error) {
	return s.repomanager.Schedules(s.db).ListByUser(ctx, userID)
}

func (s *ScheduleService) Get(ctx context.Context, userID models.UserID, id string) (*models.Schedule, error) {
	schedule, err := s.repomanager.Schedules(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.Owns(userID, schedule) {
		return nil, common.ErrNotFound
	}
	return schedule, nil
}

func (s *ScheduleService) Update(ctx context.Context, userID models.UserID, schedule *models.Schedule) error {
	schedule.UserID = userID
	return s.repomanager.Schedules(s.db).Update(ctx, schedule)
}

func (s *ScheduleService) Delete(ctx context.Context, userID models.UserID, id string) error {
	return s.repomanager.Schedules(s.db).Delete(ctx, id, userID)
}
