// Package schedules provides the PostgreSQL-backed repository for schedule
// slots. Days of week are stored as a JSON-encoded TEXT column.
package schedules

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

// encodeDays renders the weekday list as a JSON array. Nil normalizes to
// "[]" so the stored column always holds a list.
func encodeDays(days []string) (string, error) {
	if days == nil {
		days = []string{}
	}
	b, err := json.Marshal(days)
	if err != nil {
		return "", fmt.Errorf("encode days of week: %w", err)
	}
	return string(b), nil
}

func (r *PostgresRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	days, err := encodeDays(schedule.DaysOfWeek)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO schedules (id, user_id, course_name, start_time, end_time, location, days_of_week)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := r.db.ExecContext(ctx, query,
		schedule.ID, schedule.UserID, schedule.CourseName, schedule.StartTime,
		schedule.EndTime, schedule.Location, days); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID models.UserID) ([]*models.Schedule, error) {
	query := `
		SELECT id, user_id, course_name, start_time, end_time, location, days_of_week FROM schedules
		WHERE user_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Schedule
	for rows.Next() {
		item, err := scanSchedule(rows.Scan)
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

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Schedule, error) {
	query := `
		SELECT id, user_id, course_name, start_time, end_time, location, days_of_week FROM schedules
		WHERE id = $1
	`
	schedule, err := scanSchedule(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return schedule, nil
}

func (r *PostgresRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	days, err := encodeDays(schedule.DaysOfWeek)
	if err != nil {
		return err
	}

	query := `
		UPDATE schedules SET course_name = $1, start_time = $2, end_time = $3, location = $4, days_of_week = $5
		WHERE id = $6 AND user_id = $7
	`
	res, err := r.db.ExecContext(ctx, query,
		schedule.CourseName, schedule.StartTime, schedule.EndTime, schedule.Location, days,
		schedule.ID, schedule.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRowAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string, userID models.UserID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRowAffected(res)
}

func scanSchedule(scan func(dest ...any) error) (*models.Schedule, error) {
	schedule := &models.Schedule{}
	var days string
	if err := scan(&schedule.ID, &schedule.UserID, &schedule.CourseName, &schedule.StartTime,
		&schedule.EndTime, &schedule.Location, &days); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(days), &schedule.DaysOfWeek); err != nil {
		return nil, fmt.Errorf("decode days of week: %w", err)
	}
	return schedule, nil
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
