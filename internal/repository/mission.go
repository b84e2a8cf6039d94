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

const missionColumns = `id, user_id, drone_id, target_lat, target_lng, status, created_at, started_at, completed_at`

type MissionRepository struct {
	db *pgxpool.Pool
}

func NewMissionRepository(db *pgxpool.Pool) service.MissionRepository {
	return &MissionRepository{db: db}
}

func scanMission(row pgx.Row) (*models.Mission, error) {
	m := &models.Mission{}
	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.DroneID,
		&m.TargetLat,
		&m.TargetLng,
		&m.Status,
		&m.CreatedAt,
		&m.StartedAt,
		&m.CompletedAt,
	)
	return m, err
}

// Create создает миссию
func (r *MissionRepository) Create(ctx context.Context, m *models.Mission) error {
	query := `
		INSERT INTO missions (id, user_id, drone_id, target_lat, target_lng, status, started_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at;
	`
	err := r.db.QueryRow(ctx, query,
		m.ID,
		m.UserID,
		m.DroneID,
		m.TargetLat,
		m.TargetLng,
		m.Status,
		m.StartedAt,
		m.CompletedAt,
	).Scan(&m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create mission: %w", err)
	}
	return nil
}

// GetByID возвращает миссию по идентификатору
func (r *MissionRepository) GetByID(ctx context.Context, id string) (*models.Mission, error) {
	m, err := scanMission(r.db.QueryRow(ctx, `SELECT `+missionColumns+` FROM missions WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get mission by id: %w", err)
	}
	return m, nil
}

func (r *MissionRepository) Update(ctx context.Context, m *models.Mission) error {
	query := `
		UPDATE missions SET
			user_id = $1,
			drone_id = $2,
			target_lat = $3,
			target_lng = $4,
			status = $5,
			started_at = $6,
			completed_at = $7
		WHERE id = $8;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.UserID,
		m.DroneID,
		m.TargetLat,
		m.TargetLng,
		m.Status,
		m.StartedAt,
		m.CompletedAt,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update mission: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *MissionRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM missions WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete mission: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// List возвращает страницу миссий, новые первыми
func (r *MissionRepository) List(ctx context.Context, limit, offset int) ([]*models.Mission, error) {
	query := `SELECT ` + missionColumns + ` FROM missions ORDER BY created_at DESC, id LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	missions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Mission, error) {
		return scanMission(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect mission rows: %w", err)
	}
	return missions, nil
}

func (r *MissionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM missions;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count missions: %w", err)
	}
	return count, nil
}
