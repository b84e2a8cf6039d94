package service

import (
	"context"
	"errors"

	"github.com/shenikar/uav_fleet_system/internal/apperror"
	"github.com/shenikar/uav_fleet_system/internal/models"
	"github.com/shenikar/uav_fleet_system/internal/pagination"
	"github.com/shenikar/uav_fleet_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=drone.go -destination=mocks/drone_mock.go -package=mocks
//go:generate mockgen -source=mission.go -destination=mocks/mission_mock.go -package=mocks
//go:generate mockgen -source=incident.go -destination=mocks/incident_mock.go -package=mocks
//go:generate mockgen -source=event.go -destination=mocks/event_mock.go -package=mocks
//go:generate mockgen -source=user.go -destination=mocks/user_mock.go -package=mocks
//go:generate mockgen -source=log.go -destination=mocks/log_mock.go -package=mocks
//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

// EntityCache - кеш записей по идентификатору
type EntityCache[T any] interface {
	Get(ctx context.Context, id string) (*T, error)
	Set(ctx context.Context, id string, item *T) error
	Invalidate(ctx context.Context, id string) error
}

// LogRecorder добавляет запись в журнал операций
type LogRecorder interface {
	Record(ctx context.Context, logType models.LogType, message string) error
}

// lookupError переводит ошибку репозитория при поиске записи
func lookupError(err error, entity, id string) error {
	if errors.Is(err, models.ErrNotFound) {
		return apperror.Biz("%s id %s not found", entity, id)
	}
	return apperror.Database(err)
}

// validatePage отклоняет некорректные параметры пагинации как бизнес-ошибку
func validatePage(p pagination.Params) error {
	if err := p.Validate(); err != nil {
		return apperror.Biz("%s", err.Error())
	}
	return nil
}

// cachedGet читает запись из кеша, при промахе - из репозитория с записью в кеш.
// Ошибки кеша не прерывают запрос.
func cachedGet[T any](ctx context.Context, log *logrus.Entry, cache EntityCache[T], id string, load func(context.Context, string) (*T, error)) (*T, error) {
	if cache != nil {
		item, err := cache.Get(ctx, id)
		if err != nil {
			log.WithError(err).Warn("Failed to read from cache")
		} else if item != nil {
			log.Debug("Cache hit")
			return item, nil
		}
	}

	item, err := load(ctx, id)
	if err != nil {
		return nil, err
	}

	if cache != nil {
		if err := cache.Set(ctx, id, item); err != nil {
			log.WithError(err).Warn("Failed to write to cache")
		}
	}
	return item, nil
}

func invalidate[T any](ctx context.Context, log *logrus.Entry, cache EntityCache[T], id string) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate cache")
	}
}

// notify публикует событие изменения. Ошибка публикации только логируется.
func notify(ctx context.Context, log *logrus.Entry, publisher webhook.Publisher, resource string, action webhook.Action, id string) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, webhook.NewChangeEvent(resource, action, id)); err != nil {
		log.WithError(err).Warn("Failed to publish change event")
	}
}
