package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UploadFloorMap handles POST /api/floors. The request is multipart: a "name"
// field for the floor's display name and a "map" file part with the image
// bytes. The bytes are stored opaquely; an empty or absent file yields a
// floor with an empty map.
func (h *Handler) UploadFloorMap(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"code": "invalid_argument", "error": "floor name is required"})
		return
	}

	var mapData []byte
	if file, err := c.FormFile("map"); err == nil {
		f, err := file.Open()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"code": "invalid_argument", "error": "could not read map file"})
			return
		}
		defer f.Close()
		mapData, err = io.ReadAll(f)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"code": "invalid_argument", "error": "could not read map file"})
			return
		}
	}

	id, err := h.svc.UploadFloorMap(c.Request.Context(), name, mapData)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DeleteFloorMap handles DELETE /api/floors/:id.
func (h *Handler) DeleteFloorMap(c *gin.Context) {
	if err := h.svc.DeleteFloorMap(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
}

// GetFloors handles GET /api/floors. Map bytes are returned base64-encoded
// in the JSON body.
func (h *Handler) GetFloors(c *gin.Context) {
	floors, err := h.svc.Floors(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, floors)
}
