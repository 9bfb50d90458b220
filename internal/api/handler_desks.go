package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addDeskRequest struct {
	ID     string `json:"id" binding:"required"`
	Number int    `json:"number"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// AddDesk handles POST /api/desks.
func (h *Handler) AddDesk(c *gin.Context) {
	var req addDeskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"code": "invalid_argument", "error": "invalid request body"})
		return
	}

	if err := h.svc.AddDesk(c.Request.Context(), req.ID, req.Number, req.X, req.Y); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": req.ID})
}

type blockDeskRequest struct {
	IsBlocked *bool `json:"isBlocked" binding:"required"`
}

// BlockDesk handles PUT /api/desks/:id/blocked.
func (h *Handler) BlockDesk(c *gin.Context) {
	var req blockDeskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"code": "invalid_argument", "error": "invalid request body"})
		return
	}

	if err := h.svc.BlockDesk(c.Request.Context(), c.Param("id"), *req.IsBlocked); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "isBlocked": *req.IsBlocked})
}

// GetDesks handles GET /api/desks.
func (h *Handler) GetDesks(c *gin.Context) {
	desks, err := h.svc.Desks(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, desks)
}

// MarkPreferredDesk handles POST /api/desks/:id/preferred.
func (h *Handler) MarkPreferredDesk(c *gin.Context) {
	if err := h.svc.MarkPreferredDesk(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deskId": c.Param("id")})
}
