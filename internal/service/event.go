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

const eventResource = "events"

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id string) (*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*models.Event, error)
	Count(ctx context.Context) (int64, error)
}

type EventService interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	UpdateEvent(ctx context.Context, id string, upd models.EventUpdate) error
	DeleteEvent(ctx context.Context, id string) error
	ListEvents(ctx context.Context, p pagination.Params) (*pagination.Page[*models.Event], error)
}

type eventService struct {
	repo      EventRepository
	cache     EntityCache[models.Event]
	publisher webhook.Publisher
	logger    *logrus.Logger
}

func NewEventService(repo EventRepository, cache EntityCache[models.Event], publisher webhook.Publisher, logger *logrus.Logger) EventService {
	return &eventService{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateEvent сохраняет событие миссии. Существование миссии не проверяется.
func (s *eventService) CreateEvent(ctx context.Context, event *models.Event) error {
	event.ID = models.NewID()
	log := s.logger.WithFields(logrus.Fields{
		"service":    "event",
		"method":     "CreateEvent",
		"event_id":   event.ID,
		"mission_id": event.MissionID,
		"event_type": event.EventType,
	})
	log.Info("Attempting to create a new event")

	if err := s.repo.Create(ctx, event); err != nil {
		log.WithError(err).Error("Failed to create event in repository")
		return apperror.Database(err)
	}

	notify(ctx, log, s.publisher, eventResource, webhook.ActionCreated, event.ID)
	log.Info("Event created successfully")
	return nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "event",
		"method":   "GetEvent",
		"event_id": id,
	})

	event, err := cachedGet(ctx, log, s.cache, id, s.repo.GetByID)
	if err != nil {
		log.WithError(err).Warn("Failed to get event")
		return nil, lookupError(err, "Event", id)
	}
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, upd models.EventUpdate) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "event",
		"method":   "UpdateEvent",
		"event_id": id,
	})
	log.Info("Attempting to update event")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent event")
		return lookupError(err, "Event", id)
	}

	changed := patch.Apply(upd.Fields(existing)...)

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update event in repository")
		return lookupError(err, "Event", id)
	}

	invalidate(ctx, log, s.cache, id)
	notify(ctx, log, s.publisher, eventResource, webhook.ActionUpdated, id)
	log.WithField("changed", changed).Info("Event updated successfully")
	return nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "event",
		"method":   "DeleteEvent",
		"event_id": id,
	})
	log.Info("Attempting to delete event")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to delete a non-existent event")
		return lookupError(err, "Event", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete event in repository")
		return lookupError(err, "Event", id)
	}

	invalidate(ctx, log, s.cache, id)
	notify(ctx, log, s.publisher, eventResource, webhook.ActionDeleted, id)
	log.Info("Event deleted successfully")
	return nil
}

func (s *eventService) ListEvents(ctx context.Context, p pagination.Params) (*pagination.Page[*models.Event], error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "event",
		"method":  "ListEvents",
		"page":    p.Page,
		"size":    p.Size,
	})

	if err := validatePage(p); err != nil {
		log.WithError(err).Warn("Invalid pagination")
		return nil, err
	}

	page, err := pagination.Collect(ctx, p, s.repo.Count, s.repo.List)
	if err != nil {
		log.WithError(err).Error("Failed to list events from repository")
		return nil, apperror.Database(err)
	}
	return page, nil
}
