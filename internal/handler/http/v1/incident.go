package v1

import (
	"github.com/gin-gonic/gin"
)

// @Summary Create a new incident
// @Description Create a new incident. Status defaults to Open.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 200 {object} Response[any]
// @Failure 500 {object} Response[any] "Database error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if !h.bind(c, log, &input) {
		return
	}

	if err := h.incidentService.CreateIncident(c.Request.Context(), DTOToIncidentModel(input)); err != nil {
		h.fail(c, log, err)
		return
	}
	success[any](c, nil)
}

// @Summary Get a list of incidents
// @Description Get a paginated list of all incidents
// @Tags Incidents
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Number of items per page" default(5)
// @Success 200 {object} Response[pagination.Page[models.Incident]]
// @Failure 500 {object} Response[any] "Database error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	p, ok := h.pageParams(c, log)
	if !ok {
		return
	}

	page, err := h.incidentService.ListIncidents(c.Request.Context(), p)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	success(c, page)
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} Response[models.Incident]
// @Failure 500 {object} Response[any] "Database error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	success(c, incident)
}

// @Summary Update an existing incident
// @Description Partially update an incident by ID. An empty title is ignored.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param id path string true "Incident ID"
// @Param incident body UpdateIncidentRequest true "Incident update request"
// @Success 200 {object} Response[any]
// @Failure 500 {object} Response[any] "Database error"
// @Router /incidents/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateIncident").WithField("id", id)

	var input UpdateIncidentRequest
	if !h.bind(c, log, &input) {
		return
	}

	if err := h.incidentService.UpdateIncident(c.Request.Context(), id, DTOToIncidentUpdate(input)); err != nil {
		h.fail(c, log, err)
		return
	}
	success[any](c, nil)
}

// @Summary Delete an incident
// @Description Delete an incident by its ID
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} Response[any]
// @Failure 500 {object} Response[any] "Database error"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id)

	if err := h.incidentService.DeleteIncident(c.Request.Context(), id); err != nil {
		h.fail(c, log, err)
		return
	}
	success[any](c, nil)
}
