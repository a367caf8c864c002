package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"template-studio/internal/database"
	"template-studio/internal/engine"
	"template-studio/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TemplateHandler struct{}

func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// GetTemplates lists stored templates. Archived templates are hidden unless
// ?include_archived=true is passed.
func (h *TemplateHandler) GetTemplates(c *gin.Context) {
	query := database.GormDB.Order("updated_at DESC")
	if c.Query("include_archived") != "true" {
		query = query.Where("is_deleted = ?", false)
	}

	var templates []models.Template
	if err := query.Find(&templates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Return empty array instead of null
	if templates == nil {
		templates = []models.Template{}
	}

	c.JSON(http.StatusOK, templates)
}

// GetTemplate loads one template and returns its canonical document, whatever
// generation of JSON is actually stored in the row.
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	record, ok := h.findTemplate(c)
	if !ok {
		return
	}

	tmpl := engine.Normalize([]byte(record.Document))
	c.JSON(http.StatusOK, gin.H{
		"id":       record.ID,
		"template": engine.BuildPayload(tmpl),
	})
}

// CreateTemplate normalizes and validates the submitted draft; only a draft
// that passes the save-time rules is persisted.
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	h.saveTemplate(c, uuid.NewString(), true)
}

// UpdateTemplate re-validates and overwrites an existing template document.
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	record, ok := h.findTemplate(c)
	if !ok {
		return
	}
	h.saveTemplate(c, record.ID, false)
}

func (h *TemplateHandler) saveTemplate(c *gin.Context, id string, create bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	tmpl := engine.Normalize(body)
	if verr := engine.ValidateTemplate(tmpl); verr != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Message, "code": verr.Code})
		return
	}

	tagsJSON, _ := json.Marshal(tmpl.Tags)
	record := models.Template{
		ID:        id,
		Title:     tmpl.Title,
		Type:      string(tmpl.Type),
		Status:    string(tmpl.Status),
		Language:  tmpl.Language,
		Category:  tmpl.Category,
		Tags:      string(tagsJSON),
		Document:  string(engine.MarshalPayload(tmpl)),
		IsDeleted: tmpl.IsDeleted,
	}

	if err := database.GormDB.Save(&record).Error; err != nil {
		log.Printf("Error saving template %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save template"})
		return
	}

	status := http.StatusOK
	if create {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"status": "Template saved", "id": id})
}

// PreviewTemplate is stateless: it normalizes the submitted draft and returns
// the render-ready projection, formatted body lines included.
func (h *TemplateHandler) PreviewTemplate(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	tmpl := engine.Normalize(body)
	c.JSON(http.StatusOK, engine.Project(tmpl))
}

type AttachTagsRequest struct {
	Tags []string `json:"tags" binding:"required"`
}

// AttachTags merges new tag names into the template, name-unique, preserving
// the casing entered.
func (h *TemplateHandler) AttachTags(c *gin.Context) {
	record, ok := h.findTemplate(c)
	if !ok {
		return
	}

	var req AttachTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tmpl := engine.Normalize([]byte(record.Document))
	tmpl.Tags = engine.MergeTags(tmpl.Tags, req.Tags)

	tagsJSON, _ := json.Marshal(tmpl.Tags)
	record.Tags = string(tagsJSON)
	record.Document = string(engine.MarshalPayload(tmpl))

	if err := database.GormDB.Save(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach tags"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Tags attached", "tags": tmpl.Tags})
}

// ArchiveTemplate soft-deletes: the row stays recoverable and disappears from
// default listings.
func (h *TemplateHandler) ArchiveTemplate(c *gin.Context) {
	h.setArchived(c, true)
}

// RestoreTemplate brings an archived template back.
func (h *TemplateHandler) RestoreTemplate(c *gin.Context) {
	h.setArchived(c, false)
}

func (h *TemplateHandler) setArchived(c *gin.Context, archived bool) {
	record, ok := h.findTemplate(c)
	if !ok {
		return
	}

	tmpl := engine.Normalize([]byte(record.Document))
	tmpl.IsDeleted = archived
	if archived {
		tmpl.Status = engine.StatusArchived
	} else {
		tmpl.Status = engine.StatusActive
	}

	record.IsDeleted = archived
	record.Status = string(tmpl.Status)
	record.Document = string(engine.MarshalPayload(tmpl))

	if err := database.GormDB.Save(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update template"})
		return
	}

	if archived {
		c.JSON(http.StatusOK, gin.H{"status": "Template archived"})
	} else {
		c.JSON(http.StatusOK, gin.H{"status": "Template restored"})
	}
}

// DeleteTemplate permanently removes the row. This is the explicit destructive
// action, distinct from archive.
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	result := database.GormDB.Delete(&models.Template{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete template"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Template deleted"})
}

func (h *TemplateHandler) findTemplate(c *gin.Context) (models.Template, bool) {
	var record models.Template
	err := database.GormDB.First(&record, "id = ?", c.Param("id")).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return record, false
	}
	return record, true
}
