// Package entries provides the PostgreSQL-backed repository for diary
// entries. Tags are stored as a JSON-encoded TEXT column.
package entries

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

// PostgresRepository implements entry storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// encodeTags renders tags as a JSON array. Nil normalizes to "[]" so the
// stored column always holds a list, matching the column default.
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(b), nil
}

func (r *PostgresRepository) Create(ctx context.Context, entry *models.Entry) error {
	tags, err := encodeTags(entry.Tags)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO entries (id, user_id, title, content, content_key, tags, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.UserID, entry.Title, entry.Content, entry.Key, tags, entry.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID models.UserID) ([]*models.EntrySummary, error) {
	query := `
		SELECT id, title, tags, created_at FROM entries
		WHERE user_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.EntrySummary
	for rows.Next() {
		var item models.EntrySummary
		var tags string
		if err := rows.Scan(&item.ID, &item.Title, &tags, &item.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(tags), &item.Tags); err != nil {
			return nil, fmt.Errorf("decode tags: %w", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Entry, error) {
	query := `
		SELECT id, user_id, title, content, content_key, tags, created_at FROM entries
		WHERE id = $1
	`
	entry := &models.Entry{}
	var tags string
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&entry.ID, &entry.UserID, &entry.Title, &entry.Content, &entry.Key, &tags, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := json.Unmarshal([]byte(tags), &entry.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	return entry, nil
}

// Update never touches content_key or created_at: the content key is fixed
// for the life of the entry and the timestamp is assigned once at creation.
func (r *PostgresRepository) Update(ctx context.Context, entry *models.Entry) error {
	tags, err := encodeTags(entry.Tags)
	if err != nil {
		return err
	}

	query := `
		UPDATE entries SET title = $1, content = $2, tags = $3
		WHERE id = $4 AND user_id = $5
	`
	res, err := r.db.ExecContext(ctx, query,
		entry.Title, entry.Content, tags, entry.ID, entry.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRowAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string, userID models.UserID) error {
	query := `
		DELETE FROM entries
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, id, userID)
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
