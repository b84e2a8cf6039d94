package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/uav_fleet_system/internal/apperror"
	"github.com/shenikar/uav_fleet_system/internal/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// @Summary Append a log entry
// @Tags Logs
// @Accept json
// @Produce json
// @Param log body CreateLogRequest true "Log entry"
// @Success 200 {object} Response[any]
// @Failure 500 {object} Response[any] "Database error"
// @Router /logs [post]
func (h *Handler) createLog(c *gin.Context) {
	var input CreateLogRequest
	log := h.logger.WithField("method", "createLog")

	if !h.bind(c, log, &input) {
		return
	}

	if err := h.logService.CreateLog(c.Request.Context(), DTOToLogModel(input)); err != nil {
		h.fail(c, log, err)
		return
	}
	success[any](c, nil)
}

// @Summary Get a list of log entries
// @Description Newest entries first
// @Tags Logs
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Number of items per page" default(5)
// @Success 200 {object} Response[pagination.Page[models.Log]]
// @Failure 500 {object} Response[any] "Database error"
// @Router /logs [get]
func (h *Handler) listLogs(c *gin.Context) {
	log := h.logger.WithField("method", "listLogs")

	p, ok := h.pageParams(c, log)
	if !ok {
		return
	}

	page, err := h.logService.ListLogs(c.Request.Context(), p)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	success(c, page)
}

// @Summary Get log entry by ID
// @Tags Logs
// @Produce json
// @Param id path string true "Log ID"
// @Success 200 {object} Response[models.Log]
// @Failure 500 {object} Response[any] "Database error"
// @Router /logs/{id} [get]
func (h *Handler) getLog(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getLog").WithField("id", id)

	entry, err := h.logService.GetLog(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	success(c, entry)
}

// @Summary Export log entries
// @Description Download the most recent log entries as an XLSX workbook
// @Tags Logs
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} Response[any] "Database error"
// @Router /logs/export [get]
func (h *Handler) exportLogs(c *gin.Context) {
	log := h.logger.WithField("method", "exportLogs")

	logs, err := h.logService.RecentLogs(c.Request.Context(), h.cfg.LogExportLimit)
	if err != nil {
		h.fail(c, log, err)
		return
	}

	data, err := report.LogsXLSX(logs)
	if err != nil {
		h.fail(c, log, apperror.Internal(err))
		return
	}

	filename := fmt.Sprintf("logs_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
