package v1

import (
	"github.com/shenikar/uav_fleet_system/internal/models"
	"github.com/shopspring/decimal"
)

// CreateDroneRequest DTO для создания дрона
// @Description DTO для создания дрона
type CreateDroneRequest struct {
	Name     string        `json:"name" validate:"required,max=255"`
	Model    string        `json:"model" validate:"required,max=255"`
	Status   models.Status `json:"status" validate:"omitempty,oneof=Idle Active Charging Maintenance Completed Failed"`
	Battery  int           `json:"battery" validate:"gte=0,lte=255"`
	Activate *bool         `json:"activate,omitempty"`
}

// UpdateDroneRequest DTO для частичного обновления дрона. Отсутствующие поля не меняются,
// пустое имя игнорируется.
// @Description DTO для частичного обновления дрона
type UpdateDroneRequest struct {
	Name     *string        `json:"name,omitempty" validate:"omitempty,max=255"`
	Model    *string        `json:"model,omitempty" validate:"omitempty,max=255"`
	Status   *models.Status `json:"status,omitempty" validate:"omitempty,oneof=Idle Active Charging Maintenance Completed Failed"`
	Battery  *int           `json:"battery,omitempty" validate:"omitempty,gte=0,lte=255"`
	Activate *bool          `json:"activate,omitempty"`
}

// DroneStatusResponse - распределение дронов по статусам
// @Description Распределение дронов по статусам
type DroneStatusResponse struct {
	Categories []models.StatusCount `json:"categories"`
}

// CreateMissionRequest DTO для создания миссии
// @Description DTO для создания миссии
type CreateMissionRequest struct {
	UserID    string          `json:"user_id" validate:"required,max=20"`
	DroneID   string          `json:"drone_id" validate:"required,max=20"`
	TargetLat decimal.Decimal `json:"target_lat" validate:"latitude" swaggertype:"number"`
	TargetLng decimal.Decimal `json:"target_lng" validate:"longitude" swaggertype:"number"`
}

// UpdateMissionRequest DTO для частичного обновления миссии. Время принимается
// в RFC3339 или без часового пояса (2025-03-01T08:00:00, считается UTC).
// @Description DTO для частичного обновления миссии
type UpdateMissionRequest struct {
	TargetLat   *decimal.Decimal `json:"target_lat,omitempty" validate:"omitempty,latitude" swaggertype:"number"`
	TargetLng   *decimal.Decimal `json:"target_lng,omitempty" validate:"omitempty,longitude" swaggertype:"number"`
	Status      *models.Status   `json:"status,omitempty" validate:"omitempty,oneof=Idle Active Charging Maintenance Completed Failed"`
	StartedAt   *Timestamp       `json:"started_at,omitempty" swaggertype:"string" format:"date-time" example:"2025-03-01T08:00:00Z"`
	CompletedAt *Timestamp       `json:"completed_at,omitempty" swaggertype:"string" format:"date-time" example:"2025-03-01T09:30:00"`
}

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Title       string                `json:"title" validate:"required,max=255"`
	Description string                `json:"description,omitempty"`
	Lat         decimal.Decimal       `json:"lat" validate:"latitude" swaggertype:"number"`
	Lng         decimal.Decimal       `json:"lng" validate:"longitude" swaggertype:"number"`
	Radius      float64               `json:"radius" validate:"gte=0"`
	Severity    int                   `json:"severity" validate:"gte=0,lte=32767"`
	Status      models.IncidentStatus `json:"status" validate:"omitempty,oneof=Open Handling Resolved"`
	CreatedBy   string                `json:"created_by" validate:"max=20"`
}

// UpdateIncidentRequest DTO для частичного обновления инцидента
// @Description DTO для частичного обновления инцидента
type UpdateIncidentRequest struct {
	Title       *string                `json:"title,omitempty" validate:"omitempty,max=255"`
	Description *string                `json:"description,omitempty"`
	Lat         *decimal.Decimal       `json:"lat,omitempty" validate:"omitempty,latitude" swaggertype:"number"`
	Lng         *decimal.Decimal       `json:"lng,omitempty" validate:"omitempty,longitude" swaggertype:"number"`
	Radius      *float64               `json:"radius,omitempty" validate:"omitempty,gte=0"`
	Severity    *int                   `json:"severity,omitempty" validate:"omitempty,gte=0,lte=32767"`
	Status      *models.IncidentStatus `json:"status,omitempty" validate:"omitempty,oneof=Open Handling Resolved"`
}

// CreateEventRequest DTO для создания события миссии
// @Description DTO для создания события миссии
type CreateEventRequest struct {
	MissionID string           `json:"mission_id" validate:"required,max=20"`
	EventType models.EventType `json:"event_type" validate:"required,oneof=Takeoff Landing Waypoint Alert Error"`
	Message   string           `json:"message"`
}

// UpdateEventRequest DTO для частичного обновления события
// @Description DTO для частичного обновления события
type UpdateEventRequest struct {
	EventType *models.EventType `json:"event_type,omitempty" validate:"omitempty,oneof=Takeoff Landing Waypoint Alert Error"`
	Message   *string           `json:"message,omitempty"`
}

// CreateUserRequest DTO для создания пользователя
// @Description DTO для создания пользователя
type CreateUserRequest struct {
	Name     string      `json:"name" validate:"required,max=255"`
	Password string      `json:"password" validate:"required,min=6,max=72"`
	Role     models.Role `json:"role" validate:"omitempty,oneof=Admin Operator Viewer"`
}

// UpdateUserRequest DTO для частичного обновления пользователя. Пустые имя и пароль игнорируются.
// @Description DTO для частичного обновления пользователя
type UpdateUserRequest struct {
	Name     *string      `json:"name,omitempty" validate:"omitempty,max=255"`
	Password *string      `json:"password,omitempty" validate:"omitempty,max=72"`
	Role     *models.Role `json:"role,omitempty" validate:"omitempty,oneof=Admin Operator Viewer"`
}

// CreateLogRequest DTO для добавления записи в журнал
// @Description DTO для добавления записи в журнал
type CreateLogRequest struct {
	LogType models.LogType `json:"log_type" validate:"omitempty,oneof=Info Warn Error"`
	Message string         `json:"message" validate:"required"`
}

// HealthResponse - состояние сервиса
type HealthResponse struct {
	Status string `json:"status"`
}
