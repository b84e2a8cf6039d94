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

const incidentResource = "incidents"

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id string) (*models.Incident, error)
	Update(ctx context.Context, incident *models.Incident) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*models.Incident, error)
	Count(ctx context.Context) (int64, error)
}

// IncidentService определяет контракт бизнес-логики инцидентов
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id string) (*models.Incident, error)
	UpdateIncident(ctx context.Context, id string, upd models.IncidentUpdate) error
	DeleteIncident(ctx context.Context, id string) error
	ListIncidents(ctx context.Context, p pagination.Params) (*pagination.Page[*models.Incident], error)
}

type incidentService struct {
	repo      IncidentRepository
	cache     EntityCache[models.Incident]
	publisher webhook.Publisher
	logger    *logrus.Logger
}

func NewIncidentService(repo IncidentRepository, cache EntityCache[models.Incident], publisher webhook.Publisher, logger *logrus.Logger) IncidentService {
	return &incidentService{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateIncident создает инцидент, по умолчанию в статусе Open
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	incident.ID = models.NewID()
	if incident.Status == "" {
		incident.Status = models.IncidentOpen
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "CreateIncident",
		"incident_id": incident.ID,
		"title":       incident.Title,
	})
	log.Info("Attempting to create a new incident")

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return apperror.Database(err)
	}

	notify(ctx, log, s.publisher, incidentResource, webhook.ActionCreated, incident.ID)
	log.Info("Incident created successfully")
	return nil
}

// GetIncident получает инцидент по ID
func (s *incidentService) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	incident, err := cachedGet(ctx, log, s.cache, id, s.repo.GetByID)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident")
		return nil, lookupError(err, "Incident", id)
	}
	return incident, nil
}

// UpdateIncident обновляет инцидент
func (s *incidentService) UpdateIncident(ctx context.Context, id string, upd models.IncidentUpdate) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": id,
	})
	log.Info("Attempting to update incident")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent incident")
		return lookupError(err, "Incident", id)
	}

	changed := patch.Apply(upd.Fields(existing)...)

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return lookupError(err, "Incident", id)
	}

	invalidate(ctx, log, s.cache, id)
	notify(ctx, log, s.publisher, incidentResource, webhook.ActionUpdated, id)
	log.WithField("changed", changed).Info("Incident updated successfully")
	return nil
}

// DeleteIncident удаляет инцидент
func (s *incidentService) DeleteIncident(ctx context.Context, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})
	log.Info("Attempting to delete incident")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to delete a non-existent incident")
		return lookupError(err, "Incident", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete incident in repository")
		return lookupError(err, "Incident", id)
	}

	invalidate(ctx, log, s.cache, id)
	notify(ctx, log, s.publisher, incidentResource, webhook.ActionDeleted, id)
	log.Info("Incident deleted successfully")
	return nil
}

// ListIncidents возвращает список инцидентов с пагинацией
func (s *incidentService) ListIncidents(ctx context.Context, p pagination.Params) (*pagination.Page[*models.Incident], error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
		"page":    p.Page,
		"size":    p.Size,
	})
	log.Info("Listing incidents")

	if err := validatePage(p); err != nil {
		log.WithError(err).Warn("Invalid pagination")
		return nil, err
	}

	page, err := pagination.Collect(ctx, p, s.repo.Count, s.repo.List)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, apperror.Database(err)
	}

	log.WithField("count", len(page.Items)).Info("Incidents listed successfully")
	return page, nil
}
