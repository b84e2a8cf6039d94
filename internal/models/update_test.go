package models

import (
	"testing"
	"time"

	"github.com/shenikar/uav_fleet_system/internal/patch"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ptr[V any](v V) *V { return &v }

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, a, 20)
	assert.NotEqual(t, a, b)
}

func TestDroneUpdate_EmptyPayload(t *testing.T) {
	d := Drone{ID: "d1", Name: "D1", Model: "M1", Status: StatusIdle, Battery: 80, Activate: true}
	before := d

	changed := patch.Apply(DroneUpdate{}.Fields(&d)...)

	assert.Empty(t, changed)
	assert.Equal(t, before, d)
}

func TestDroneUpdate_Policies(t *testing.T) {
	d := Drone{Name: "D1", Model: "M1", Status: StatusActive, Battery: 80, Activate: true}

	changed := patch.Apply(DroneUpdate{
		Name:     ptr(""),
		Model:    ptr(""),
		Status:   ptr(StatusIdle),
		Battery:  ptr(0),
		Activate: ptr(false),
	}.Fields(&d)...)

	assert.Equal(t, []string{"model", "status", "battery", "activate"}, changed)
	assert.Equal(t, "D1", d.Name)
	assert.Equal(t, "", d.Model)
	assert.Equal(t, StatusIdle, d.Status)
	assert.Equal(t, 0, d.Battery)
	assert.False(t, d.Activate)
}

func TestMissionUpdate_Timestamps(t *testing.T) {
	m := Mission{Status: StatusIdle, TargetLat: decimal.RequireFromString("30.5")}
	started := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	changed := patch.Apply(MissionUpdate{Status: ptr(StatusActive), StartedAt: &started}.Fields(&m)...)

	assert.Equal(t, []string{"status", "started_at"}, changed)
	assert.Equal(t, StatusActive, m.Status)
	assert.True(t, decimal.RequireFromString("30.5").Equal(m.TargetLat))
	if assert.NotNil(t, m.StartedAt) {
		assert.True(t, started.Equal(*m.StartedAt))
	}
	assert.Nil(t, m.CompletedAt)
}

func TestIncidentUpdate_TitleAndDescription(t *testing.T) {
	i := Incident{Title: "Fire", Description: "smoke", Severity: 3}

	changed := patch.Apply(IncidentUpdate{Title: ptr(""), Description: ptr(""), Severity: ptr(0)}.Fields(&i)...)

	assert.Equal(t, []string{"description", "severity"}, changed)
	assert.Equal(t, "Fire", i.Title)
	assert.Equal(t, "", i.Description)
	assert.Equal(t, 0, i.Severity)
}

func TestEventUpdate(t *testing.T) {
	e := Event{EventType: EventTakeoff, Message: "up"}

	changed := patch.Apply(EventUpdate{Message: ptr("")}.Fields(&e)...)

	assert.Equal(t, []string{"message"}, changed)
	assert.Equal(t, EventTakeoff, e.EventType)
	assert.Equal(t, "", e.Message)
}

func TestUserUpdate(t *testing.T) {
	u := User{Name: "alice", Role: RoleViewer, PasswordHash: "hash"}

	changed := patch.Apply(UserUpdate{Name: ptr(""), Password: ptr("secret"), Role: ptr(RoleAdmin)}.Fields(&u)...)

	assert.Equal(t, []string{"role"}, changed)
	assert.Equal(t, "alice", u.Name)
	assert.Equal(t, RoleAdmin, u.Role)
	assert.Equal(t, "hash", u.PasswordHash)
}
