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

type EventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) service.EventRepository {
	return &EventRepository{db: db}
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	e := &models.Event{}
	err := row.Scan(&e.ID, &e.MissionID, &e.EventType, &e.Message, &e.CreatedAt)
	return e, err
}

func (r *EventRepository) Create(ctx context.Context, e *models.Event) error {
	query := `INSERT INTO events (id, mission_id, event_type, message) VALUES ($1, $2, $3, $4) RETURNING created_at;`
	if err := r.db.QueryRow(ctx, query, e.ID, e.MissionID, e.EventType, e.Message).Scan(&e.CreatedAt); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	query := `SELECT id, mission_id, event_type, message, created_at FROM events WHERE id = $1;`
	e, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event by id: %w", err)
	}
	return e, nil
}

func (r *EventRepository) Update(ctx context.Context, e *models.Event) error {
	query := `UPDATE events SET mission_id = $1, event_type = $2, message = $3 WHERE id = $4;`
	cmdTag, err := r.db.Exec(ctx, query, e.MissionID, e.EventType, e.Message, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *EventRepository) List(ctx context.Context, limit, offset int) ([]*models.Event, error) {
	query := `
		SELECT id, mission_id, event_type, message, created_at
		FROM events
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Event, error) {
		return scanEvent(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect event rows: %w", err)
	}
	return events, nil
}

func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}
