package v1

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для управления дронами (CRUD)
	drones := api.Group("/drones")
	{
		drones.POST("", h.createDrone)
		drones.GET("", h.listDrones)
		drones.GET("/available", h.listAvailableDrones)
		drones.GET("/status", h.droneStatus)
		drones.GET("/:id", h.getDrone)
		drones.PUT("/:id", h.updateDrone)
		drones.DELETE("/:id", h.deleteDrone)
	}

	missions := api.Group("/missions")
	{
		missions.POST("", h.createMission)
		missions.GET("", h.listMissions)
		missions.GET("/:id", h.getMission)
		missions.PUT("/:id", h.updateMission)
		missions.DELETE("/:id", h.deleteMission)
	}

	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.PUT("/:id", h.updateIncident)
		incidents.DELETE("/:id", h.deleteIncident)
	}

	events := api.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("", h.listEvents)
		events.GET("/:id", h.getEvent)
		events.PUT("/:id", h.updateEvent)
		events.DELETE("/:id", h.deleteEvent)
	}

	users := api.Group("/users")
	{
		users.POST("", h.createUser)
		users.GET("", h.listUsers)
		users.GET("/:id", h.getUser)
		users.PUT("/:id", h.updateUser)
		users.DELETE("/:id", h.deleteUser)
	}

	// Журнал только пополняется: обновления и удаления нет
	logs := api.Group("/logs")
	{
		logs.POST("", h.createLog)
		logs.GET("", h.listLogs)
		logs.GET("/export", h.exportLogs)
		logs.GET("/:id", h.getLog)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

// NewRouter собирает gin.Engine: middleware, CORS, маршруты /api, Swagger UI
// и конверт 404 для несуществующих маршрутов.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog(h.logger))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader},
		ExposeHeaders:   []string{requestIDHeader, "Content-Disposition"},
	}))

	h.RegisterRoutes(router.Group("/api"))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.NoRoute(h.notFound)
	router.NoMethod(h.notFound)

	return router
}
