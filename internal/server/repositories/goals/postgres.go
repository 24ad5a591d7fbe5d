// Package goals provides the PostgreSQL-backed repository for goals.
// Milestones are stored as a JSON-encoded TEXT column.
package goals

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jkalnins/daybook/internal/common"
	"github.com/jkalnins/daybook/internal/dbx"
	"github.com/jkalnins/daybook/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// encodeMilestones renders milestones as a JSON array. Nil normalizes to
// "[]" so the stored column always holds a list.
func encodeMilestones(milestones []string) (string, error) {
	if milestones == nil {
		milestones = []string{}
	}
	b, err := json.Marshal(milestones)
	if err != nil {
		return "", fmt.Errorf("encode milestones: %w", err)
	}
	return string(b), nil
}

func (r *PostgresRepository) Create(ctx context.Context, goal *models.Goal) error {
	milestones, err := encodeMilestones(goal.Milestones)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO goals (id, user_id, title, description, milestones, due_date, is_completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := r.db.ExecContext(ctx, query,
		goal.ID, goal.UserID, goal.Title, goal.Description, milestones,
		goal.DueDate, goal.IsCompleted, goal.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID models.UserID) ([]*models.Goal, error) {
	query := `
		SELECT id, user_id, title, description, milestones, due_date, is_completed, created_at FROM goals
		WHERE user_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Goal
	for rows.Next() {
		item, err := scanGoal(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Goal, error) {
	query := `
		SELECT id, user_id, title, description, milestones, due_date, is_completed, created_at FROM goals
		WHERE id = $1
	`
	goal, err := scanGoal(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return goal, nil
}

func (r *PostgresRepository) Update(ctx context.Context, goal *models.Goal) error {
	milestones, err := encodeMilestones(goal.Milestones)
	if err != nil {
		return err
	}

	query := `
		UPDATE goals SET title = $1, description = $2, milestones = $3, due_date = $4, is_completed = $5
		WHERE id = $6 AND user_id = $7
	`
	res, err := r.db.ExecContext(ctx, query,
		goal.Title, goal.Description, milestones, goal.DueDate, goal.IsCompleted,
		goal.ID, goal.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRowAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string, userID models.UserID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRowAffected(res)
}

func scanGoal(scan func(dest ...any) error) (*models.Goal, error) {
	goal := &models.Goal{}
	var milestones string
	if err := scan(&goal.ID, &goal.UserID, &goal.Title, &goal.Description, &milestones,
		&goal.DueDate, &goal.IsCompleted, &goal.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(milestones), &goal.Milestones); err != nil {
		return nil, fmt.Errorf("decode milestones: %w", err)
	}
	return goal, nil
}

func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
