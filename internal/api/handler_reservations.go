package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type makeReservationRequest struct {
	DeskID        string `json:"deskId" binding:"required"`
	Date          int64  `json:"date"`
	IsRecurring   bool   `json:"isRecurring"`
	RecurringDays []int  `json:"recurringDays"`
}

// MakeReservation handles POST /api/reservations.
func (h *Handler) MakeReservation(c *gin.Context) {
	var req makeReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"code": "invalid_argument", "error": "invalid request body"})
		return
	}

	id, err := h.svc.MakeReservation(c.Request.Context(), userID(c), req.DeskID, req.Date, req.IsRecurring, req.RecurringDays)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetReservations handles GET /api/reservations. Without a userId query
// parameter it returns every reservation; with one it returns that user's.
func (h *Handler) GetReservations(c *gin.Context) {
	ctx := c.Request.Context()
	if uid := c.Query("userId"); uid != "" {
		rs, err := h.svc.Reservations(ctx, uid)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, rs)
		return
	}

	rs, err := h.svc.AllReservations(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rs)
}
