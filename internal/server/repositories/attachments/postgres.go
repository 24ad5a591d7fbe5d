// Package attachments provides the PostgreSQL-backed repository for entry
// attachment metadata.
package attachments

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

func (r *PostgresRepository) Create(ctx context.Context, attachment *models.Attachment) error {
	query := `
		INSERT INTO attachments (id, entry_id, user_id, file_name, storage_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := r.db.ExecContext(ctx, query,
		attachment.ID, attachment.EntryID, attachment.UserID,
		attachment.FileName, attachment.StorageKey, attachment.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByEntry(ctx context.Context, entryID string, userID models.UserID) ([]*models.Attachment, error) {
	query := `
		SELECT id, entry_id, user_id, file_name, storage_key, created_at FROM attachments
		WHERE entry_id = $1 AND user_id = $2
	`
	rows, err := r.db.QueryContext(ctx, query, entryID, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Attachment
	for rows.Next() {
		var item models.Attachment
		if err := rows.Scan(&item.ID, &item.EntryID, &item.UserID,
			&item.FileName, &item.StorageKey, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Attachment, error) {
	query := `
		SELECT id, entry_id, user_id, file_name, storage_key, created_at FROM attachments
		WHERE id = $1
	`
	attachment := &models.Attachment{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&attachment.ID, &attachment.EntryID, &attachment.UserID,
			&attachment.FileName, &attachment.StorageKey, &attachment.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return attachment, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string, userID models.UserID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM attachments WHERE id = $1 AND user_id = $2`, id, userID)
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
