package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetOccupancyReport handles GET /api/reports/occupancy?start=<ms>&end=<ms>.
func (h *Handler) GetOccupancyReport(c *gin.Context) {
	start, err := strconv.ParseInt(c.Query("start"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"code": "invalid_argument", "error": "invalid 'start' timestamp"})
		return
	}
	end, err := strconv.ParseInt(c.Query("end"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"code": "invalid_argument", "error": "invalid 'end' timestamp"})
		return
	}

	reports, err := h.svc.OccupancyReport(c.Request.Context(), start, end)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}
