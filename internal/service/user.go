package service

import (
	"context"
	"fmt"

	"github.com/shenikar/uav_fleet_system/internal/apperror"
	"github.com/shenikar/uav_fleet_system/internal/models"
	"github.com/shenikar/uav_fleet_system/internal/pagination"
	"github.com/shenikar/uav_fleet_system/internal/patch"
	"github.com/shenikar/uav_fleet_system/internal/webhook"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const userResource = "users"

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*models.User, error)
	Count(ctx context.Context) (int64, error)
}

// UserService определяет контракт бизнес-логики пользователей.
// Изменения пользователей дублируются в журнал операций.
type UserService interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, upd models.UserUpdate) error
	DeleteUser(ctx context.Context, id string) error
	ListUsers(ctx context.Context, p pagination.Params) (*pagination.Page[*models.User], error)
}

type userService struct {
	repo      UserRepository
	recorder  LogRecorder
	publisher webhook.Publisher
	logger    *logrus.Logger
}

func NewUserService(repo UserRepository, recorder LogRecorder, publisher webhook.Publisher, logger *logrus.Logger) UserService {
	return &userService{
		repo:      repo,
		recorder:  recorder,
		publisher: publisher,
		logger:    logger,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s *userService) record(ctx context.Context, log *logrus.Entry, message string) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(ctx, models.LogInfo, message); err != nil {
		log.WithError(err).Warn("Failed to record operation log")
	}
}

// CreateUser хеширует пароль и сохраняет пользователя
func (s *userService) CreateUser(ctx context.Context, user *models.User, password string) error {
	user.ID = models.NewID()
	if user.Role == "" {
		user.Role = models.RoleViewer
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "CreateUser",
		"user_id": user.ID,
		"name":    user.Name,
	})
	log.Info("Attempting to create a new user")

	hash, err := hashPassword(password)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return apperror.Internal(err)
	}
	user.PasswordHash = hash

	if err := s.repo.Create(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user in repository")
		return apperror.Database(err)
	}

	s.record(ctx, log, fmt.Sprintf("User %s created", user.ID))
	notify(ctx, log, s.publisher, userResource, webhook.ActionCreated, user.ID)
	log.Info("User created successfully")
	return nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "user",
			"method":  "GetUser",
			"user_id": id,
		}).WithError(err).Warn("Failed to get user")
		return nil, lookupError(err, "User", id)
	}
	return user, nil
}

// UpdateUser обновляет имя и роль, непустой пароль заменяет хеш
func (s *userService) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "UpdateUser",
		"user_id": id,
	})
	log.Info("Attempting to update user")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent user")
		return lookupError(err, "User", id)
	}

	changed := patch.Apply(upd.Fields(existing)...)
	if upd.Password != nil && *upd.Password != "" {
		hash, err := hashPassword(*upd.Password)
		if err != nil {
			log.WithError(err).Error("Failed to hash password")
			return apperror.Internal(err)
		}
		existing.PasswordHash = hash
		changed = append(changed, "password")
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update user in repository")
		return lookupError(err, "User", id)
	}

	s.record(ctx, log, fmt.Sprintf("User %s updated", id))
	notify(ctx, log, s.publisher, userResource, webhook.ActionUpdated, id)
	log.WithField("changed", changed).Info("User updated successfully")
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "DeleteUser",
		"user_id": id,
	})
	log.Info("Attempting to delete user")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to delete a non-existent user")
		return lookupError(err, "User", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete user in repository")
		return lookupError(err, "User", id)
	}

	s.record(ctx, log, fmt.Sprintf("User %s deleted", id))
	notify(ctx, log, s.publisher, userResource, webhook.ActionDeleted, id)
	log.Info("User deleted successfully")
	return nil
}

func (s *userService) ListUsers(ctx context.Context, p pagination.Params) (*pagination.Page[*models.User], error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "ListUsers",
		"page":    p.Page,
		"size":    p.Size,
	})

	if err := validatePage(p); err != nil {
		log.WithError(err).Warn("Invalid pagination")
		return nil, err
	}

	page, err := pagination.Collect(ctx, p, s.repo.Count, s.repo.List)
	if err != nil {
		log.WithError(err).Error("Failed to list users from repository")
		return nil, apperror.Database(err)
	}
	return page, nil
}
