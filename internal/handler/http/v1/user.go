package v1

import (
	"github.com/gin-gonic/gin"
)

// @Summary Create a new user
// @Description Create a new user. The password is stored as a bcrypt hash and never returned.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User creation request"
// @Success 200 {object} Response[any]
// @Failure 500 {object} Response[any] "Database error"
// @Router /users [post]
func (h *Handler) createUser(c *gin.Context) {
	var input CreateUserRequest
	log := h.logger.WithField("method", "createUser")

	if !h.bind(c, log, &input) {
		return
	}

	if err := h.userService.CreateUser(c.Request.Context(), DTOToUserModel(input), input.Password); err != nil {
		h.fail(c, log, err)
		return
	}
	success[any](c, nil)
}

// @Summary Get a list of users
// @Tags Users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Number of items per page" default(5)
// @Success 200 {object} Response[pagination.Page[models.User]]
// @Failure 500 {object} Response[any] "Database error"
// @Router /users [get]
func (h *Handler) listUsers(c *gin.Context) {
	log := h.logger.WithField("method", "listUsers")

	p, ok := h.pageParams(c, log)
	if !ok {
		return
	}

	page, err := h.userService.ListUsers(c.Request.Context(), p)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	success(c, page)
}

// @Summary Get user by ID
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} Response[models.User]
// @Failure 500 {object} Response[any] "Database error"
// @Router /users/{id} [get]
func (h *Handler) getUser(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getUser").WithField("id", id)

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	success(c, user)
}

// @Summary Update a user
// @Description Partially update a user. Empty name and password are ignored.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body UpdateUserRequest true "User update request"
// @Success 200 {object} Response[any]
// @Failure 500 {object} Response[any] "Database error"
// @Router /users/{id} [put]
func (h *Handler) updateUser(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateUser").WithField("id", id)

	var input UpdateUserRequest
	if !h.bind(c, log, &input) {
		return
	}

	if err := h.userService.UpdateUser(c.Request.Context(), id, DTOToUserUpdate(input)); err != nil {
		h.fail(c, log, err)
		return
	}
	success[any](c, nil)
}

// @Summary Delete a user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} Response[any]
// @Failure 500 {object} Response[any] "Database error"
// @Router /users/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteUser").WithField("id", id)

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		h.fail(c, log, err)
		return
	}
	success[any](c, nil)
}
