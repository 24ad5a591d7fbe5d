// Package gratitude provides the PostgreSQL-backed repository for gratitude
// notes. Tags are stored as a JSON-encoded TEXT column.
package gratitude

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

// encodeTags renders tags as a JSON array. Nil normalizes to "[]" so the
// stored column always holds a list.
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

func (r *PostgresRepository) Create(ctx context.Context, note *models.Gratitude) error {
	tags, err := encodeTags(note.Tags)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO gratitude (id, user_id, content, tags, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.ExecContext(ctx, query,
		note.ID, note.UserID, note.Content, tags, note.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID models.UserID) ([]*models.Gratitude, error) {
	query := `
		SELECT id, user_id, content, tags, created_at FROM gratitude
		WHERE user_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Gratitude
	for rows.Next() {
		item, err := scanGratitude(rows.Scan)
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

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Gratitude, error) {
	query := `
		SELECT id, user_id, content, tags, created_at FROM gratitude
		WHERE id = $1
	`
	note, err := scanGratitude(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return note, nil
}

func (r *PostgresRepository) Update(ctx context.Context, note *models.Gratitude) error {
	tags, err := encodeTags(note.Tags)
	if err != nil {
		return err
	}

	query := `
		UPDATE gratitude SET content = $1, tags = $2
		WHERE id = $3 AND user_id = $4
	`
	res, err := r.db.ExecContext(ctx, query, note.Content, tags, note.ID, note.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRowAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string, userID models.UserID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM gratitude WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRowAffected(res)
}

func scanGratitude(scan func(dest ...any) error) (*models.Gratitude, error) {
	note := &models.Gratitude{}
	var tags string
	if err := scan(&note.ID, &note.UserID, &note.Content, &tags, &note.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(tags), &note.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	return note, nil
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
