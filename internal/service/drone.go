package service

import (
	"context"

	"github.com/shenikar/uav_fleet_system/internal/apperror"
	"github.com/shenikar/uav_fleet_system/internal/models"
	"github.com/shenikar/uav_fleet_system/internal/pagination"
	"github.com/shenikar/uav_fleet_system/internal/patch"
	"github.com/shenikar/uav_fleet_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

const droneResource = "drones"

// DroneRepository определяет контракт для работы с бд дронов
type DroneRepository interface {
	Create(ctx context.Context, drone *models.Drone) error
	GetByID(ctx context.Context, id string) (*models.Drone, error)
	Update(ctx context.Context, drone *models.Drone) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter models.DroneFilter, limit, offset int) ([]*models.Drone, error)
	Count(ctx context.Context, filter models.DroneFilter) (int64, error)
	CountByStatus(ctx context.Context) ([]models.StatusCount, error)
}

// DroneService определяет контракт бизнес-логики управления дронами
type DroneService interface {
	CreateDrone(ctx context.Context, drone *models.Drone) error
	GetDrone(ctx context.Context, id string) (*models.Drone, error)
	UpdateDrone(ctx context.Context, id string, upd models.DroneUpdate) error
	DeleteDrone(ctx context.Context, id string) error
	ListDrones(ctx context.Context, filter models.DroneFilter, p pagination.Params) (*pagination.Page[*models.Drone], error)
	StatusSummary(ctx context.Context) ([]models.StatusCount, error)
}

type droneService struct {
	repo      DroneRepository
	cache     EntityCache[models.Drone]
	publisher webhook.Publisher
	logger    *logrus.Logger
}

func NewDroneService(repo DroneRepository, cache EntityCache[models.Drone], publisher webhook.Publisher, logger *logrus.Logger) DroneService {
	return &droneService{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateDrone присваивает идентификатор и сохраняет дрон
func (s *droneService) CreateDrone(ctx context.Context, drone *models.Drone) error {
	drone.ID = models.NewID()
	log := s.logger.WithFields(logrus.Fields{
		"service":  "drone",
		"method":   "CreateDrone",
		"drone_id": drone.ID,
		"name":     drone.Name,
	})
	log.Info("Attempting to create a new drone")

	if err := s.repo.Create(ctx, drone); err != nil {
		log.WithError(err).Error("Failed to create drone in repository")
		return apperror.Database(err)
	}

	notify(ctx, log, s.publisher, droneResource, webhook.ActionCreated, drone.ID)
	log.Info("Drone created successfully")
	return nil
}

// GetDrone получает дрон по ID
func (s *droneService) GetDrone(ctx context.Context, id string) (*models.Drone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "drone",
		"method":   "GetDrone",
		"drone_id": id,
	})
	log.Info("Fetching drone by ID")

	drone, err := cachedGet(ctx, log, s.cache, id, s.repo.GetByID)
	if err != nil {
		log.WithError(err).Warn("Failed to get drone")
		return nil, lookupError(err, "Drone", id)
	}
	return drone, nil
}

// UpdateDrone применяет частичное обновление и перезаписывает дрон целиком
func (s *droneService) UpdateDrone(ctx context.Context, id string, upd models.DroneUpdate) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "drone",
		"method":   "UpdateDrone",
		"drone_id": id,
	})
	log.Info("Attempting to update drone")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent drone")
		return lookupError(err, "Drone", id)
	}

	changed := patch.Apply(upd.Fields(existing)...)

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update drone in repository")
		return lookupError(err, "Drone", id)
	}

	invalidate(ctx, log, s.cache, id)
	notify(ctx, log, s.publisher, droneResource, webhook.ActionUpdated, id)
	log.WithField("changed", changed).Info("Drone updated successfully")
	return nil
}

// DeleteDrone удаляет дрон. Миссии, ссылающиеся на него, не удаляются.
func (s *droneService) DeleteDrone(ctx context.Context, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "drone",
		"method":   "DeleteDrone",
		"drone_id": id,
	})
	log.Info("Attempting to delete drone")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to delete a non-existent drone")
		return lookupError(err, "Drone", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete drone in repository")
		return lookupError(err, "Drone", id)
	}

	invalidate(ctx, log, s.cache, id)
	notify(ctx, log, s.publisher, droneResource, webhook.ActionDeleted, id)
	log.Info("Drone deleted successfully")
	return nil
}

// ListDrones возвращает страницу дронов
func (s *droneService) ListDrones(ctx context.Context, filter models.DroneFilter, p pagination.Params) (*pagination.Page[*models.Drone], error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "drone",
		"method":      "ListDrones",
		"page":        p.Page,
		"size":        p.Size,
		"only_active": filter.OnlyActive,
	})
	log.Info("Listing drones")

	if err := validatePage(p); err != nil {
		log.WithError(err).Warn("Invalid pagination")
		return nil, err
	}

	page, err := pagination.Collect(ctx, p,
		func(ctx context.Context) (int64, error) { return s.repo.Count(ctx, filter) },
		func(ctx context.Context, limit, offset int) ([]*models.Drone, error) {
			return s.repo.List(ctx, filter, limit, offset)
		},
	)
	if err != nil {
		log.WithError(err).Error("Failed to list drones from repository")
		return nil, apperror.Database(err)
	}

	log.WithField("count", len(page.Items)).Info("Drones listed successfully")
	return page, nil
}

// StatusSummary возвращает распределение дронов по статусам
func (s *droneService) StatusSummary(ctx context.Context) ([]models.StatusCount, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "drone",
		"method":  "StatusSummary",
	})

	summary, err := s.repo.CountByStatus(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count drones by status")
		return nil, apperror.Database(err)
	}
	return summary, nil
}
