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

const missionResource = "missions"

// MissionRepository определяет контракт для работы с бд миссий
type MissionRepository interface {
	Create(ctx context.Context, mission *models.Mission) error
	GetByID(ctx context.Context, id string) (*models.Mission, error)
	Update(ctx context.Context, mission *models.Mission) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*models.Mission, error)
	Count(ctx context.Context) (int64, error)
}

// MissionService определяет контракт бизнес-логики миссий
type MissionService interface {
	CreateMission(ctx context.Context, mission *models.Mission) error
	GetMission(ctx context.Context, id string) (*models.Mission, error)
	UpdateMission(ctx context.Context, id string, upd models.MissionUpdate) error
	DeleteMission(ctx context.Context, id string) error
	ListMissions(ctx context.Context, p pagination.Params) (*pagination.Page[*models.Mission], error)
}

type missionService struct {
	repo      MissionRepository
	cache     EntityCache[models.Mission]
	publisher webhook.Publisher
	logger    *logrus.Logger
}

func NewMissionService(repo MissionRepository, cache EntityCache[models.Mission], publisher webhook.Publisher, logger *logrus.Logger) MissionService {
	return &missionService{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateMission сохраняет новую миссию. Новая миссия всегда в статусе Idle,
// существование дрона и пользователя не проверяется.
func (s *missionService) CreateMission(ctx context.Context, mission *models.Mission) error {
	mission.ID = models.NewID()
	mission.Status = models.StatusIdle
	mission.StartedAt = nil
	mission.CompletedAt = nil

	log := s.logger.WithFields(logrus.Fields{
		"service":    "mission",
		"method":     "CreateMission",
		"mission_id": mission.ID,
		"drone_id":   mission.DroneID,
		"user_id":    mission.UserID,
	})
	log.Info("Attempting to create a new mission")

	if err := s.repo.Create(ctx, mission); err != nil {
		log.WithError(err).Error("Failed to create mission in repository")
		return apperror.Database(err)
	}

	notify(ctx, log, s.publisher, missionResource, webhook.ActionCreated, mission.ID)
	log.Info("Mission created successfully")
	return nil
}

func (s *missionService) GetMission(ctx context.Context, id string) (*models.Mission, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "mission",
		"method":     "GetMission",
		"mission_id": id,
	})
	log.Info("Fetching mission by ID")

	mission, err := cachedGet(ctx, log, s.cache, id, s.repo.GetByID)
	if err != nil {
		log.WithError(err).Warn("Failed to get mission")
		return nil, lookupError(err, "Mission", id)
	}
	return mission, nil
}

// UpdateMission применяет частичное обновление. Переходы статусов не ограничиваются.
func (s *missionService) UpdateMission(ctx context.Context, id string, upd models.MissionUpdate) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "mission",
		"method":     "UpdateMission",
		"mission_id": id,
	})
	log.Info("Attempting to update mission")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent mission")
		return lookupError(err, "Mission", id)
	}

	changed := patch.Apply(upd.Fields(existing)...)

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update mission in repository")
		return lookupError(err, "Mission", id)
	}

	invalidate(ctx, log, s.cache, id)
	notify(ctx, log, s.publisher, missionResource, webhook.ActionUpdated, id)
	log.WithField("changed", changed).Info("Mission updated successfully")
	return nil
}

func (s *missionService) DeleteMission(ctx context.Context, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "mission",
		"method":     "DeleteMission",
		"mission_id": id,
	})
	log.Info("Attempting to delete mission")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to delete a non-existent mission")
		return lookupError(err, "Mission", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete mission in repository")
		return lookupError(err, "Mission", id)
	}

	invalidate(ctx, log, s.cache, id)
	notify(ctx, log, s.publisher, missionResource, webhook.ActionDeleted, id)
	log.Info("Mission deleted successfully")
	return nil
}

func (s *missionService) ListMissions(ctx context.Context, p pagination.Params) (*pagination.Page[*models.Mission], error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "mission",
		"method":  "ListMissions",
		"page":    p.Page,
		"size":    p.Size,
	})
	log.Info("Listing missions")

	if err := validatePage(p); err != nil {
		log.WithError(err).Warn("Invalid pagination")
		return nil, err
	}

	page, err := pagination.Collect(ctx, p, s.repo.Count, s.repo.List)
	if err != nil {
		log.WithError(err).Error("Failed to list missions from repository")
		return nil, apperror.Database(err)
	}
	return page, nil
}
