package v1

import "github.com/shenikar/uav_fleet_system/internal/models"

// DTOToDroneModel преобразует DTO создания в доменную модель.
// Новый дрон по умолчанию активен и в статусе Idle.
func DTOToDroneModel(dto CreateDroneRequest) *models.Drone {
	drone := &models.Drone{
		Name:     dto.Name,
		Model:    dto.Model,
		Status:   dto.Status,
		Battery:  dto.Battery,
		Activate: true,
	}
	if drone.Status == "" {
		drone.Status = models.StatusIdle
	}
	if dto.Activate != nil {
		drone.Activate = *dto.Activate
	}
	return drone
}

func DTOToDroneUpdate(dto UpdateDroneRequest) models.DroneUpdate {
	return models.DroneUpdate{
		Name:     dto.Name,
		Model:    dto.Model,
		Status:   dto.Status,
		Battery:  dto.Battery,
		Activate: dto.Activate,
	}
}

func DTOToMissionModel(dto CreateMissionRequest) *models.Mission {
	return &models.Mission{
		UserID:    dto.UserID,
		DroneID:   dto.DroneID,
		TargetLat: dto.TargetLat,
		TargetLng: dto.TargetLng,
	}
}

func DTOToMissionUpdate(dto UpdateMissionRequest) models.MissionUpdate {
	return models.MissionUpdate{
		TargetLat:   dto.TargetLat,
		TargetLng:   dto.TargetLng,
		Status:      dto.Status,
		StartedAt:   dto.StartedAt.TimePtr(),
		CompletedAt: dto.CompletedAt.TimePtr(),
	}
}

func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		Title:       dto.Title,
		Description: dto.Description,
		Lat:         dto.Lat,
		Lng:         dto.Lng,
		Radius:      dto.Radius,
		Severity:    dto.Severity,
		Status:      dto.Status,
		CreatedBy:   dto.CreatedBy,
	}
}

func DTOToIncidentUpdate(dto UpdateIncidentRequest) models.IncidentUpdate {
	return models.IncidentUpdate{
		Title:       dto.Title,
		Description: dto.Description,
		Lat:         dto.Lat,
		Lng:         dto.Lng,
		Radius:      dto.Radius,
		Severity:    dto.Severity,
		Status:      dto.Status,
	}
}

func DTOToEventModel(dto CreateEventRequest) *models.Event {
	return &models.Event{
		MissionID: dto.MissionID,
		EventType: dto.EventType,
		Message:   dto.Message,
	}
}

func DTOToEventUpdate(dto UpdateEventRequest) models.EventUpdate {
	return models.EventUpdate{
		EventType: dto.EventType,
		Message:   dto.Message,
	}
}

// DTOToUserModel не переносит пароль: он хешируется сервисом
func DTOToUserModel(dto CreateUserRequest) *models.User {
	return &models.User{
		Name: dto.Name,
		Role: dto.Role,
	}
}

func DTOToUserUpdate(dto UpdateUserRequest) models.UserUpdate {
	return models.UserUpdate{
		Name:     dto.Name,
		Password: dto.Password,
		Role:     dto.Role,
	}
}

func DTOToLogModel(dto CreateLogRequest) *models.Log {
	return &models.Log{
		LogType: dto.LogType,
		Message: dto.Message,
	}
}
