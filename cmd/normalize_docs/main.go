package main

import (
	"encoding/json"
	"log"
	"template-studio/internal/config"
	"template-studio/internal/database"
	"template-studio/internal/engine"
	"template-studio/internal/models"
)

// One-off tool: rewrites every stored template document as the canonical
// payload. Rows written by older editor versions (flat buttons arrays,
// placeholder menus, bare option lists) come out in one shape and the scalar
// columns are refreshed from the document.
func main() {
	cfg := config.LoadConfig()
	database.InitGorm(cfg)
	db := database.GormDB

	var records []models.Template
	if err := db.Find(&records).Error; err != nil {
		log.Fatalf("Error fetching templates: %v", err)
	}

	log.Printf("Normalizing %d template documents...", len(records))

	rewritten := 0
	for _, record := range records {
		tmpl := engine.Normalize([]byte(record.Document))
		canonical := string(engine.MarshalPayload(tmpl))
		if canonical == record.Document {
			continue
		}

		tagsJSON, _ := json.Marshal(tmpl.Tags)
		record.Title = tmpl.Title
		record.Type = string(tmpl.Type)
		record.Status = string(tmpl.Status)
		record.Language = tmpl.Language
		record.Category = tmpl.Category
		record.Tags = string(tagsJSON)
		record.Document = canonical
		record.IsDeleted = tmpl.IsDeleted

		if err := db.Save(&record).Error; err != nil {
			log.Printf("Error rewriting template %s: %v", record.ID, err)
			continue
		}
		rewritten++
	}

	log.Printf("DONE! Rewrote %d of %d documents", rewritten, len(records))
}
