package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) reportSummary(c *gin.Context) {
	report, err := h.reports.Summary(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) reportExport(c *gin.Context) {
	result, err := h.reports.Export(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.Content)
}
