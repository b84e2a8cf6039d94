package models

import (
	"time"

	"github.com/shenikar/uav_fleet_system/internal/patch"
)

type Drone struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Model     string    `json:"model"`
	Status    Status    `json:"status"`
	Battery   int       `json:"battery"`
	Activate  bool      `json:"activate"`
	CreatedAt time.Time `json:"created_at"`
}

// DroneFilter - фильтр списка дронов
type DroneFilter struct {
	OnlyActive bool
}

// DroneUpdate - частичное обновление дрона, nil означает "не менять"
type DroneUpdate struct {
	Name     *string
	Model    *string
	Status   *Status
	Battery  *int
	Activate *bool
}

// Fields возвращает таблицу полей обновления для дрона d
func (u DroneUpdate) Fields(d *Drone) []patch.Field {
	return []patch.Field{
		patch.NonEmpty("name", u.Name, &d.Name),
		patch.Present("model", u.Model, &d.Model),
		patch.Present("status", u.Status, &d.Status),
		patch.Present("battery", u.Battery, &d.Battery),
		patch.Present("activate", u.Activate, &d.Activate),
	}
}
