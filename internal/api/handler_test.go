package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"deskbook-backend/internal/service"
)

func TestWriteErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{service.ErrNotFound, http.StatusNotFound, "not_found"},
		{service.ErrConflict, http.StatusConflict, "conflict"},
		{service.ErrDeskBlocked, http.StatusConflict, "desk_blocked"},
		{service.ErrInvalidArgument, http.StatusBadRequest, "invalid_argument"},
		{service.ErrStorage, http.StatusInternalServerError, "storage_error"},
		{fmt.Errorf("wrapped: %w", service.ErrConflict), http.StatusConflict, "conflict"},
	}

	for _, tc := range testCases {
		t.Run(tc.wantCode, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			writeError(c, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantCode)
		})
	}
}

func TestUserIDDefault(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "anonymous", userID(c))

	c.Request.Header.Set("X-User-ID", "u-42")
	assert.Equal(t, "u-42", userID(c))
}
