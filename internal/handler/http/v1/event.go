package v1

import (
	"github.com/gin-gonic/gin"
)

// @Summary Create a mission event
// @Tags Events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event creation request"
// @Success 200 {object} Response[any]
// @Failure 500 {object} Response[any] "Database error"
// @Router /events [post]
func (h *Handler) createEvent(c *gin.Context) {
	var input CreateEventRequest
	log := h.logger.WithField("method", "createEvent")

	if !h.bind(c, log, &input) {
		return
	}

	if err := h.eventService.CreateEvent(c.Request.Context(), DTOToEventModel(input)); err != nil {
		h.fail(c, log, err)
		return
	}
	success[any](c, nil)
}

// @Summary Get a list of events
// @Tags Events
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Number of items per page" default(5)
// @Success 200 {object} Response[pagination.Page[models.Event]]
// @Failure 500 {object} Response[any] "Database error"
// @Router /events [get]
func (h *Handler) listEvents(c *gin.Context) {
	log := h.logger.WithField("method", "listEvents")

	p, ok := h.pageParams(c, log)
	if !ok {
		return
	}

	page, err := h.eventService.ListEvents(c.Request.Context(), p)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	success(c, page)
}

// @Summary Get event by ID
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} Response[models.Event]
// @Failure 500 {object} Response[any] "Database error"
// @Router /events/{id} [get]
func (h *Handler) getEvent(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getEvent").WithField("id", id)

	event, err := h.eventService.GetEvent(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	success(c, event)
}

// @Summary Update an event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body UpdateEventRequest true "Event update request"
// @Success 200 {object} Response[any]
// @Failure 500 {object} Response[any] "Database error"
// @Router /events/{id} [put]
func (h *Handler) updateEvent(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateEvent").WithField("id", id)

	var input UpdateEventRequest
	if !h.bind(c, log, &input) {
		return
	}

	if err := h.eventService.UpdateEvent(c.Request.Context(), id, DTOToEventUpdate(input)); err != nil {
		h.fail(c, log, err)
		return
	}
	success[any](c, nil)
}

// @Summary Delete an event
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} Response[any]
// @Failure 500 {object} Response[any] "Database error"
// @Router /events/{id} [delete]
func (h *Handler) deleteEvent(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteEvent").WithField("id", id)

	if err := h.eventService.DeleteEvent(c.Request.Context(), id); err != nil {
		h.fail(c, log, err)
		return
	}
	success[any](c, nil)
}
