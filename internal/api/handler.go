package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"deskbook-backend/internal/service"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	svc *service.Service
}

// NewHandler creates a new API handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// userID extracts the opaque caller identifier. Authentication is out of
// scope; the header value is trusted as-is.
func userID(c *gin.Context) string {
	if id := c.GetHeader("X-User-ID"); id != "" {
		return id
	}
	return "anonymous"
}

// writeError maps a service error onto an HTTP status and a tagged body.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "storage_error"
	switch {
	case errors.Is(err, service.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, service.ErrConflict):
		status, code = http.StatusConflict, "conflict"
	case errors.Is(err, service.ErrDeskBlocked):
		status, code = http.StatusConflict, "desk_blocked"
	case errors.Is(err, service.ErrInvalidArgument):
		status, code = http.StatusBadRequest, "invalid_argument"
	}
	c.AbortWithStatusJSON(status, gin.H{"code": code, "error": err.Error()})
}

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
