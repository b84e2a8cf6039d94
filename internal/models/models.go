package models

import (
	"errors"

	"github.com/rs/xid"
)

// ErrNotFound возвращается репозиториями, если запись не найдена
var ErrNotFound = errors.New("record not found")

// NewID генерирует идентификатор новой записи (20 символов base32)
func NewID() string {
	return xid.New().String()
}

// Status - состояние дрона или миссии
type Status string

const (
	StatusIdle        Status = "Idle"
	StatusActive      Status = "Active"
	StatusCharging    Status = "Charging"
	StatusMaintenance Status = "Maintenance"
	StatusCompleted   Status = "Completed"
	StatusFailed      Status = "Failed"
)

// StatusCount - количество записей с данным статусом
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}
