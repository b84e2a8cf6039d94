package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/uav_fleet_system/internal/apperror"
	"github.com/shenikar/uav_fleet_system/internal/config"
	"github.com/shenikar/uav_fleet_system/internal/pagination"
	"github.com/shenikar/uav_fleet_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Services - набор сервисов, обслуживаемых API
type Services struct {
	Drone    service.DroneService
	Mission  service.MissionService
	Incident service.IncidentService
	Event    service.EventService
	User     service.UserService
	Log      service.LogService
}

type Handler struct {
	droneService    service.DroneService
	missionService  service.MissionService
	incidentService service.IncidentService
	eventService    service.EventService
	userService     service.UserService
	logService      service.LogService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		droneService:    services.Drone,
		missionService:  services.Mission,
		incidentService: services.Incident,
		eventService:    services.Event,
		userService:     services.User,
		logService:      services.Log,
		logger:          logger,
		validate:        newValidator(),
		cfg:             cfg,
	}
}

// success отвечает HTTP 200 с кодом успеха
func success[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, Ok(data))
}

// fail отвечает конвертом ошибки. Бизнес-ошибки отдаются с HTTP 200,
// ошибки хранилища и прочие - с HTTP 500 и текстом ошибки.
func (h *Handler) fail(c *gin.Context, log *logrus.Entry, err error) {
	status := apperror.StatusCode(err)
	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	}
	c.JSON(status, Fail(err.Error()))
}

// bind разбирает и валидирует тело запроса. Некорректное тело - бизнес-ошибка.
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		h.fail(c, log, apperror.Biz("invalid request body: %v", err))
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		h.fail(c, log, apperror.Biz("%s", err.Error()))
		return false
	}
	return true
}

// pageParams читает page и size из строки запроса
func (h *Handler) pageParams(c *gin.Context, log *logrus.Entry) (pagination.Params, bool) {
	p, err := pagination.Parse(c.Query("page"), c.Query("size"))
	if err != nil {
		log.WithError(err).Warn("Invalid pagination parameters")
		h.fail(c, log, apperror.Biz("%s", err.Error()))
		return pagination.Params{}, false
	}
	return p, true
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} Response[HealthResponse]
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	success(c, HealthResponse{Status: "ok"})
}

// notFound - ответ для несуществующих маршрутов
func (h *Handler) notFound(c *gin.Context) {
	err := apperror.NotFound()
	c.JSON(apperror.StatusCode(err), Fail(err.Error()))
}
