package models

import (
	"time"

	"github.com/shenikar/uav_fleet_system/internal/patch"
	"github.com/shopspring/decimal"
)

// IncidentStatus - состояние инцидента
type IncidentStatus string

const (
	IncidentOpen     IncidentStatus = "Open"
	IncidentHandling IncidentStatus = "Handling"
	IncidentResolved IncidentStatus = "Resolved"
)

type Incident struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Lat         decimal.Decimal `json:"lat"`
	Lng         decimal.Decimal `json:"lng"`
	Radius      float64         `json:"radius"`
	Severity    int             `json:"severity"`
	Status      IncidentStatus  `json:"status"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
}

type IncidentUpdate struct {
	Title       *string
	Description *string
	Lat         *decimal.Decimal
	Lng         *decimal.Decimal
	Radius      *float64
	Severity    *int
	Status      *IncidentStatus
}

func (u IncidentUpdate) Fields(i *Incident) []patch.Field {
	return []patch.Field{
		patch.NonEmpty("title", u.Title, &i.Title),
		patch.Present("description", u.Description, &i.Description),
		patch.Present("lat", u.Lat, &i.Lat),
		patch.Present("lng", u.Lng, &i.Lng),
		patch.Present("radius", u.Radius, &i.Radius),
		patch.Present("severity", u.Severity, &i.Severity),
		patch.Present("status", u.Status, &i.Status),
	}
}
