// Package moods provides the PostgreSQL-backed repository for mood records.
package moods

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

func (r *PostgresRepository) Create(ctx context.Context, mood *models.Mood) error {
	query := `
		INSERT INTO moods (id, user_id, mood, note, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := r.db.ExecContext(ctx, query,
		mood.ID, mood.UserID, mood.Mood, mood.Note, mood.Rating, mood.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID models.UserID) ([]*models.Mood, error) {
	query := `
		SELECT id, user_id, mood, note, rating, created_at FROM moods
		WHERE user_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Mood
	for rows.Next() {
		var item models.Mood
		if err := rows.Scan(&item.ID, &item.UserID, &item.Mood, &item.Note,
			&item.Rating, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Mood, error) {
	query := `
		SELECT id, user_id, mood, note, rating, created_at FROM moods
		WHERE id = $1
	`
	mood := &models.Mood{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&mood.ID, &mood.UserID, &mood.Mood, &mood.Note, &mood.Rating, &mood.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return mood, nil
}

func (r *PostgresRepository) Update(ctx context.Context, mood *models.Mood) error {
	query := `
		UPDATE moods SET mood = $1, note = $2, rating = $3
		WHERE id = $4 AND user_id = $5
	`
	res, err := r.db.ExecContext(ctx, query,
		mood.Mood, mood.Note, mood.Rating, mood.ID, mood.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRowAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string, userID models.UserID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM moods WHERE id = $1 AND user_id = $2`, id, userID)
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
