// Package capsules provides the PostgreSQL-backed repository for time capsules.
package capsules

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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

func (r *PostgresRepository) Create(ctx context.Context, capsule *models.Capsule) error {
	query := `
		INSERT INTO capsules (id, user_id, content, open_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.ExecContext(ctx, query,
		capsule.ID, capsule.UserID, capsule.Content, capsule.OpenDate, capsule.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListOpenByUser(ctx context.Context, userID models.UserID, now time.Time) ([]*models.Capsule, error) {
	query := `
		SELECT id, user_id, content, open_date, created_at FROM capsules
		WHERE user_id = $1 AND open_date <= $2
	`
	rows, err := r.db.QueryContext(ctx, query, userID, now)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Capsule
	for rows.Next() {
		var item models.Capsule
		if err := rows.Scan(&item.ID, &item.UserID, &item.Content, &item.OpenDate, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Capsule, error) {
	query := `
		SELECT id, user_id, content, open_date, created_at FROM capsules
		WHERE id = $1
	`
	capsule := &models.Capsule{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&capsule.ID, &capsule.UserID, &capsule.Content, &capsule.OpenDate, &capsule.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return capsule, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string, userID models.UserID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM capsules WHERE id = $1 AND user_id = $2`, id, userID)
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
