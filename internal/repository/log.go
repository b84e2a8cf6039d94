package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/uav_fleet_system/internal/models"
	"github.com/shenikar/uav_fleet_system/internal/service"
)

// LogRepository - журнал операций. Записи только добавляются.
type LogRepository struct {
	db *pgxpool.Pool
}

func NewLogRepository(db *pgxpool.Pool) service.LogRepository {
	return &LogRepository{db: db}
}

func scanLog(row pgx.Row) (*models.Log, error) {
	l := &models.Log{}
	err := row.Scan(&l.ID, &l.LogType, &l.Message, &l.CreatedAt)
	return l, err
}

func (r *LogRepository) Create(ctx context.Context, l *models.Log) error {
	query := `INSERT INTO logs (id, log_type, message) VALUES ($1, $2, $3) RETURNING created_at;`
	if err := r.db.QueryRow(ctx, query, l.ID, l.LogType, l.Message).Scan(&l.CreatedAt); err != nil {
		return fmt.Errorf("failed to create log: %w", err)
	}
	return nil
}

func (r *LogRepository) GetByID(ctx context.Context, id string) (*models.Log, error) {
	l, err := scanLog(r.db.QueryRow(ctx, `SELECT id, log_type, message, created_at FROM logs WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get log by id: %w", err)
	}
	return l, nil
}

// List возвращает записи журнала, новые первыми
func (r *LogRepository) List(ctx context.Context, limit, offset int) ([]*models.Log, error) {
	query := `
		SELECT id, log_type, message, created_at
		FROM logs
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	logs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Log, error) {
		return scanLog(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect log rows: %w", err)
	}
	return logs, nil
}

func (r *LogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM logs;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count logs: %w", err)
	}
	return count, nil
}
