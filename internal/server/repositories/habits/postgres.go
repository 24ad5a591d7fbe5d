// Package habits provides the PostgreSQL-backed repository for habits.
package habits

import (
	"context"
	"database/sql"
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

func (r *PostgresRepository) Create(ctx context.Context, habit *models.Habit) error {
	query := `
		INSERT INTO habits (id, user_id, title, frequency, progress, goal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := r.db.ExecContext(ctx, query,
		habit.ID, habit.UserID, habit.Title, habit.Frequency, habit.Progress, habit.Goal, habit.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID models.UserID) ([]*models.Habit, error) {
	query := `
		SELECT id, user_id, title, frequency, progress, goal, created_at FROM habits
		WHERE user_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Habit
	for rows.Next() {
		var item models.Habit
		if err := rows.Scan(&item.ID, &item.UserID, &item.Title, &item.Frequency,
			&item.Progress, &item.Goal, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Habit, error) {
	query := `
		SELECT id, user_id, title, frequency, progress, goal, created_at FROM habits
		WHERE id = $1
	`
	habit := &models.Habit{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&habit.ID, &habit.UserID, &habit.Title, &habit.Frequency,
			&habit.Progress, &habit.Goal, &habit.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return habit, nil
}

func (r *PostgresRepository) Update(ctx context.Context, habit *models.Habit) error {
	query := `
		UPDATE habits SET title = $1, frequency = $2, progress = $3, goal = $4
		WHERE id = $5 AND user_id = $6
	`
	res, err := r.db.ExecContext(ctx, query,
		habit.Title, habit.Frequency, habit.Progress, habit.Goal, habit.ID, habit.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRowAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string, userID models.UserID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRowAffected(res)
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
