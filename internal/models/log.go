package models

import "time"

// LogType - уровень записи журнала
type LogType string

const (
	LogInfo  LogType = "Info"
	LogWarn  LogType = "Warn"
	LogError LogType = "Error"
)

// Log - запись журнала операций, только добавление
type Log struct {
	ID        string    `json:"id"`
	LogType   LogType   `json:"log_type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
