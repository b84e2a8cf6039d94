package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shenikar/uav_fleet_system/internal/models"
)

// @Summary Create a new drone
// @Description Create a new drone. Status defaults to Idle, activate defaults to true.
// @Tags Drones
// @Accept json
// @Produce json
// @Param drone body CreateDroneRequest true "Drone creation request"
// @Success 200 {object} Response[any] "code 0 on success, code 1 on validation failure"
// @Failure 500 {object} Response[any] "Database error"
// @Router /drones [post]
func (h *Handler) createDrone(c *gin.Context) {
	var input CreateDroneRequest
	log := h.logger.WithField("method", "createDrone")

	if !h.bind(c, log, &input) {
		return
	}

	if err := h.droneService.CreateDrone(c.Request.Context(), DTOToDroneModel(input)); err != nil {
		h.fail(c, log, err)
		return
	}
	success[any](c, nil)
}

// @Summary Get a list of drones
// @Description Get a paginated list of all drones
// @Tags Drones
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Number of items per page" default(5)
// @Success 200 {object} Response[pagination.Page[models.Drone]]
// @Failure 500 {object} Response[any] "Database error"
// @Router /drones [get]
func (h *Handler) listDrones(c *gin.Context) {
	h.listDronesFiltered(c, models.DroneFilter{}, "listDrones")
}

// @Summary Get a list of available drones
// @Description Get a paginated list of drones with activate = true
// @Tags Drones
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Number of items per page" default(5)
// @Success 200 {object} Response[pagination.Page[models.Drone]]
// @Failure 500 {object} Response[any] "Database error"
// @Router /drones/available [get]
func (h *Handler) listAvailableDrones(c *gin.Context) {
	h.listDronesFiltered(c, models.DroneFilter{OnlyActive: true}, "listAvailableDrones")
}

func (h *Handler) listDronesFiltered(c *gin.Context, filter models.DroneFilter, method string) {
	log := h.logger.WithField("method", method)

	p, ok := h.pageParams(c, log)
	if !ok {
		return
	}

	page, err := h.droneService.ListDrones(c.Request.Context(), filter, p)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	success(c, page)
}

// @Summary Get drone count by status
// @Description Group drones by status and count each group
// @Tags Drones
// @Produce json
// @Success 200 {object} Response[DroneStatusResponse]
// @Failure 500 {object} Response[any] "Database error"
// @Router /drones/status [get]
func (h *Handler) droneStatus(c *gin.Context) {
	log := h.logger.WithField("method", "droneStatus")

	summary, err := h.droneService.StatusSummary(c.Request.Context())
	if err != nil {
		h.fail(c, log, err)
		return
	}
	if summary == nil {
		summary = []models.StatusCount{}
	}
	success(c, DroneStatusResponse{Categories: summary})
}

// @Summary Get drone by ID
// @Description Get a single drone by its ID
// @Tags Drones
// @Produce json
// @Param id path string true "Drone ID"
// @Success 200 {object} Response[models.Drone] "code 1 if the drone does not exist"
// @Failure 500 {object} Response[any] "Database error"
// @Router /drones/{id} [get]
func (h *Handler) getDrone(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getDrone").WithField("id", id)

	drone, err := h.droneService.GetDrone(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	success(c, drone)
}

// @Summary Update an existing drone
// @Description Partially update a drone by ID. Omitted fields keep their values, an empty name is ignored.
// @Tags Drones
// @Accept json
// @Produce json
// @Param id path string true "Drone ID"
// @Param drone body UpdateDroneRequest true "Drone update request"
// @Success 200 {object} Response[any] "code 1 if the drone does not exist"
// @Failure 500 {object} Response[any] "Database error"
// @Router /drones/{id} [put]
func (h *Handler) updateDrone(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateDrone").WithField("id", id)

	var input UpdateDroneRequest
	if !h.bind(c, log, &input) {
		return
	}

	if err := h.droneService.UpdateDrone(c.Request.Context(), id, DTOToDroneUpdate(input)); err != nil {
		h.fail(c, log, err)
		return
	}
	success[any](c, nil)
}

// @Summary Delete a drone
// @Description Delete a drone by ID. Missions referencing it are kept.
// @Tags Drones
// @Produce json
// @Param id path string true "Drone ID"
// @Success 200 {object} Response[any] "code 1 if the drone does not exist"
// @Failure 500 {object} Response[any] "Database error"
// @Router /drones/{id} [delete]
func (h *Handler) deleteDrone(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteDrone").WithField("id", id)

	if err := h.droneService.DeleteDrone(c.Request.Context(), id); err != nil {
		h.fail(c, log, err)
		return
	}
	success[any](c, nil)
}
