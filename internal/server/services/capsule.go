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

// CapsuleService manages time capsules. A capsule stays invisible, even to
// its author, until its open date passes.
type CapsuleService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewCapsuleService(db *sql.DB, m repomanager.RepositoryManager) *CapsuleService {
	return &CapsuleService{db: db, repomanager: m, now: time.Now}
}

func (s *CapsuleService) Create(ctx context.Context, userID models.UserID, content string, openDate time.Time) (*models.Capsule, error) {
	capsule := &models.Capsule{
		ID:        uuid.New().String(),
		UserID:    userID,
		Content:   content,
		OpenDate:  openDate,
		CreatedAt: s.now(),
	}
	if err := s.repomanager.Capsules(s.db).Create(ctx, capsule); err != nil {
		return nil, fmt.Errorf("error creating capsule: %w", err)
	}
	return capsule, nil
}

// ListOpen returns only capsules whose open date has passed.
func (s *CapsuleService) ListOpen(ctx context.Context, userID models.UserID) ([]*models.Capsule, error) {
	return s.repomanager.Capsules(s.db).ListOpenByUser(ctx, userID, s.now())
}

// Get returns one capsule. A capsule whose open date is still in the future
// is reported as not-found, the same as a missing or foreign one.
func (s *CapsuleService) Get(ctx context.Context, userID models.UserID, id string) (*models.Capsule, error) {
	capsule, err := s.repomanager.Capsules(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.Owns(userID, capsule) {
		return nil, common.ErrNotFound
	}
	if capsule.OpenDate.After(s.now()) {
		return nil, common.ErrNotFound
	}
	return capsule, nil
}

func (s *CapsuleService) Delete(ctx context.Context, userID models.UserID, id string) error {
	return s.repomanager.Capsules(s.db).Delete(ctx, id, userID)
}
