package api

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"template-studio/internal/config"
	"template-studio/internal/database"
	"template-studio/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MediaHandler struct {
	Config *config.Config
}

func NewMediaHandler(cfg *config.Config) *MediaHandler {
	return &MediaHandler{Config: cfg}
}

// UploadMedia stores a header attachment and returns the URL the template
// editor plugs into the media header field.
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	defer file.Close()

	if err := os.MkdirAll(h.Config.UploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
		return
	}

	storedName := uuid.NewString() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(h.Config.UploadDir, storedName))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}
	defer dst.Close()

	size, err := io.Copy(dst, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	media := models.Media{
		Filename:   header.Filename,
		StoredName: storedName,
		MimeType:   header.Header.Get("Content-Type"),
		FileSize:   size,
		URL:        fmt.Sprintf("%s/uploads/%s", h.Config.PublicBaseURL, storedName),
	}
	if err := database.GormDB.Create(&media).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record upload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": media.URL})
}

// ListMedia returns upload metadata, newest first.
func (h *MediaHandler) ListMedia(c *gin.Context) {
	var media []models.Media
	if err := database.GormDB.Order("uploaded_at DESC").Find(&media).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if media == nil {
		media = []models.Media{}
	}
	c.JSON(http.StatusOK, media)
}
