package models

import (
	"time"

	"github.com/shenikar/uav_fleet_system/internal/patch"
)

// EventType - тип события миссии
type EventType string

const (
	EventTakeoff  EventType = "Takeoff"
	EventLanding  EventType = "Landing"
	EventWaypoint EventType = "Waypoint"
	EventAlert    EventType = "Alert"
	EventError    EventType = "Error"
)

type Event struct {
	ID        string    `json:"id"`
	MissionID string    `json:"mission_id"`
	EventType EventType `json:"event_type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type EventUpdate struct {
	EventType *EventType
	Message   *string
}

func (u EventUpdate) Fields(e *Event) []patch.Field {
	return []patch.Field{
		patch.Present("event_type", u.EventType, &e.EventType),
		patch.Present("message", u.Message, &e.Message),
	}
}
