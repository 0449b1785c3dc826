package handler

import (
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/Priya1724/RealEstateFinal/internal/storage"
)

// ImageHandler serves listing images stored in GridFS.
type ImageHandler struct {
	Images *storage.GridFSImageStore
}

func (h *ImageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/images/:id", h.Download)
}

// GET /api/images/:id
func (h *ImageHandler) Download(c *gin.Context) {
	data, err := h.Images.Download(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
		return
	}

	c.Data(http.StatusOK, mimetype.Detect(data).String(), data)
}
