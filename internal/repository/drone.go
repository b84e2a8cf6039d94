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

const droneColumns = `id, name, model, status, battery, activate, created_at`

type DroneRepository struct {
	db *pgxpool.Pool
}

func NewDroneRepository(db *pgxpool.Pool) service.DroneRepository {
	return &DroneRepository{db: db}
}

func scanDrone(row pgx.Row) (*models.Drone, error) {
	d := &models.Drone{}
	err := row.Scan(&d.ID, &d.Name, &d.Model, &d.Status, &d.Battery, &d.Activate, &d.CreatedAt)
	return d, err
}

// Create создает новую запись о дроне в бд
func (r *DroneRepository) Create(ctx context.Context, d *models.Drone) error {
	query := `
		INSERT INTO drones (id, name, model, status, battery, activate)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at;
	`
	err := r.db.QueryRow(ctx, query, d.ID, d.Name, d.Model, d.Status, d.Battery, d.Activate).Scan(&d.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create drone: %w", err)
	}
	return nil
}

// GetByID возвращает дрон по идентификатору
func (r *DroneRepository) GetByID(ctx context.Context, id string) (*models.Drone, error) {
	query := `SELECT ` + droneColumns + ` FROM drones WHERE id = $1;`
	d, err := scanDrone(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get drone by id: %w", err)
	}
	return d, nil
}

// Update перезаписывает все колонки дрона
func (r *DroneRepository) Update(ctx context.Context, d *models.Drone) error {
	query := `
		UPDATE drones SET
			name = $1,
			model = $2,
			status = $3,
			battery = $4,
			activate = $5
		WHERE id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query, d.Name, d.Model, d.Status, d.Battery, d.Activate, d.ID)
	if err != nil {
		return fmt.Errorf("failed to update drone: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete удаляет дрон. Связанные миссии не затрагиваются.
func (r *DroneRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM drones WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete drone: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// List возвращает страницу дронов
func (r *DroneRepository) List(ctx context.Context, filter models.DroneFilter, limit, offset int) ([]*models.Drone, error) {
	query := `
		SELECT ` + droneColumns + `
		FROM drones
		WHERE ($1 = FALSE OR activate = TRUE)
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, filter.OnlyActive, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list drones: %w", err)
	}
	defer rows.Close()

	drones := make([]*models.Drone, 0)
	for rows.Next() {
		d, err := scanDrone(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan drone row: %w", err)
		}
		drones = append(drones, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return drones, nil
}

// Count возвращает число дронов, подходящих под фильтр
func (r *DroneRepository) Count(ctx context.Context, filter models.DroneFilter) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM drones WHERE ($1 = FALSE OR activate = TRUE);`, filter.OnlyActive).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count drones: %w", err)
	}
	return count, nil
}

// CountByStatus возвращает распределение дронов по статусам
func (r *DroneRepository) CountByStatus(ctx context.Context) ([]models.StatusCount, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(id) FROM drones GROUP BY status ORDER BY status;`)
	if err != nil {
		return nil, fmt.Errorf("failed to count drones by status: %w", err)
	}
	defer rows.Close()

	result := make([]models.StatusCount, 0)
	for rows.Next() {
		var sc models.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan status row: %w", err)
		}
		result = append(result, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error status iteration: %w", err)
	}
	return result, nil
}
