package models

import (
	"time"

	"github.com/shenikar/uav_fleet_system/internal/patch"
	"github.com/shopspring/decimal"
)

type Mission struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	DroneID     string          `json:"drone_id"`
	TargetLat   decimal.Decimal `json:"target_lat"`
	TargetLng   decimal.Decimal `json:"target_lng"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	StartedAt   *time.Time      `json:"started_at"`
	CompletedAt *time.Time      `json:"completed_at"`
}

type MissionUpdate struct {
	TargetLat   *decimal.Decimal
	TargetLng   *decimal.Decimal
	Status      *Status
	StartedAt   *time.Time
	CompletedAt *time.Time
}

func (u MissionUpdate) Fields(m *Mission) []patch.Field {
	return []patch.Field{
		patch.Present("target_lat", u.TargetLat, &m.TargetLat),
		patch.Present("target_lng", u.TargetLng, &m.TargetLng),
		patch.Present("status", u.Status, &m.Status),
		patch.PresentPtr("started_at", u.StartedAt, &m.StartedAt),
		patch.PresentPtr("completed_at", u.CompletedAt, &m.CompletedAt),
	}
}
