package service

import (
	"context"

	"github.com/shenikar/uav_fleet_system/internal/apperror"
	"github.com/shenikar/uav_fleet_system/internal/models"
	"github.com/shenikar/uav_fleet_system/internal/pagination"
	"github.com/sirupsen/logrus"
)

// LogRepository - журнал операций, записи только добавляются
type LogRepository interface {
	Create(ctx context.Context, l *models.Log) error
	GetByID(ctx context.Context, id string) (*models.Log, error)
	List(ctx context.Context, limit, offset int) ([]*models.Log, error)
	Count(ctx context.Context) (int64, error)
}

// LogService определяет контракт работы с журналом операций
type LogService interface {
	LogRecorder
	CreateLog(ctx context.Context, l *models.Log) error
	GetLog(ctx context.Context, id string) (*models.Log, error)
	ListLogs(ctx context.Context, p pagination.Params) (*pagination.Page[*models.Log], error)
	RecentLogs(ctx context.Context, limit int) ([]*models.Log, error)
}

type logService struct {
	repo   LogRepository
	logger *logrus.Logger
}

func NewLogService(repo LogRepository, logger *logrus.Logger) LogService {
	return &logService{
		repo:   repo,
		logger: logger,
	}
}

// Record добавляет запись в журнал
func (s *logService) Record(ctx context.Context, logType models.LogType, message string) error {
	return s.CreateLog(ctx, &models.Log{LogType: logType, Message: message})
}

func (s *logService) CreateLog(ctx context.Context, l *models.Log) error {
	l.ID = models.NewID()
	if l.LogType == "" {
		l.LogType = models.LogInfo
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":  "log",
		"method":   "CreateLog",
		"log_id":   l.ID,
		"log_type": l.LogType,
	})

	if err := s.repo.Create(ctx, l); err != nil {
		log.WithError(err).Error("Failed to append log entry")
		return apperror.Database(err)
	}
	log.Debug("Log entry appended")
	return nil
}

func (s *logService) GetLog(ctx context.Context, id string) (*models.Log, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "log",
			"method":  "GetLog",
			"log_id":  id,
		}).WithError(err).Warn("Failed to get log entry")
		return nil, lookupError(err, "Log", id)
	}
	return l, nil
}

func (s *logService) ListLogs(ctx context.Context, p pagination.Params) (*pagination.Page[*models.Log], error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "log",
		"method":  "ListLogs",
		"page":    p.Page,
		"size":    p.Size,
	})

	if err := validatePage(p); err != nil {
		log.WithError(err).Warn("Invalid pagination")
		return nil, err
	}

	page, err := pagination.Collect(ctx, p, s.repo.Count, s.repo.List)
	if err != nil {
		log.WithError(err).Error("Failed to list logs from repository")
		return nil, apperror.Database(err)
	}
	return page, nil
}

// RecentLogs возвращает не более limit последних записей, новые первыми
func (s *logService) RecentLogs(ctx context.Context, limit int) ([]*models.Log, error) {
	if limit < 1 {
		return nil, apperror.Biz("limit must be >= 1, got %d", limit)
	}

	logs, err := s.repo.List(ctx, limit, 0)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "log",
			"method":  "RecentLogs",
			"limit":   limit,
		}).WithError(err).Error("Failed to read recent logs")
		return nil, apperror.Database(err)
	}
	return logs, nil
}
