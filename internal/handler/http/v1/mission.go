package v1

import (
	"github.com/gin-gonic/gin"
)

// @Summary Create a new mission
// @Description Create a new mission in Idle status. The drone and user are not checked for existence.
// @Tags Missions
// @Accept json
// @Produce json
// @Param mission body CreateMissionRequest true "Mission creation request"
// @Success 200 {object} Response[any]
// @Failure 500 {object} Response[any] "Database error"
// @Router /missions [post]
func (h *Handler) createMission(c *gin.Context) {
	var input CreateMissionRequest
	log := h.logger.WithField("method", "createMission")

	if !h.bind(c, log, &input) {
		return
	}

	if err := h.missionService.CreateMission(c.Request.Context(), DTOToMissionModel(input)); err != nil {
		h.fail(c, log, err)
		return
	}
	success[any](c, nil)
}

// @Summary Get a list of missions
// @Tags Missions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Number of items per page" default(5)
// @Success 200 {object} Response[pagination.Page[models.Mission]]
// @Failure 500 {object} Response[any] "Database error"
// @Router /missions [get]
func (h *Handler) listMissions(c *gin.Context) {
	log := h.logger.WithField("method", "listMissions")

	p, ok := h.pageParams(c, log)
	if !ok {
		return
	}

	page, err := h.missionService.ListMissions(c.Request.Context(), p)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	success(c, page)
}

// @Summary Get mission by ID
// @Tags Missions
// @Produce json
// @Param id path string true "Mission ID"
// @Success 200 {object} Response[models.Mission]
// @Failure 500 {object} Response[any] "Database error"
// @Router /missions/{id} [get]
func (h *Handler) getMission(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getMission").WithField("id", id)

	mission, err := h.missionService.GetMission(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	success(c, mission)
}

// @Summary Update an existing mission
// @Tags Missions
// @Accept json
// @Produce json
// @Param id path string true "Mission ID"
// @Param mission body UpdateMissionRequest true "Mission update request"
// @Success 200 {object} Response[any]
// @Failure 500 {object} Response[any] "Database error"
// @Router /missions/{id} [put]
func (h *Handler) updateMission(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateMission").WithField("id", id)

	var input UpdateMissionRequest
	if !h.bind(c, log, &input) {
		return
	}

	if err := h.missionService.UpdateMission(c.Request.Context(), id, DTOToMissionUpdate(input)); err != nil {
		h.fail(c, log, err)
		return
	}
	success[any](c, nil)
}

// @Summary Delete a mission
// @Tags Missions
// @Produce json
// @Param id path string true "Mission ID"
// @Success 200 {object} Response[any]
// @Failure 500 {object} Response[any] "Database error"
// @Router /missions/{id} [delete]
func (h *Handler) deleteMission(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteMission").WithField("id", id)

	if err := h.missionService.DeleteMission(c.Request.Context(), id); err != nil {
		h.fail(c, log, err)
		return
	}
	success[any](c, nil)
}
