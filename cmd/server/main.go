package main

import (
	"log"
	"template-studio/internal/api"
	"template-studio/internal/config"
	"template-studio/internal/database"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()
	database.InitGorm(cfg)

	r := gin.Default()

	// CORS Middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	templateHandler := api.NewTemplateHandler()
	mediaHandler := api.NewMediaHandler(cfg)

	// Uploaded header attachments are served statically
	r.Static("/uploads", cfg.UploadDir)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/templates", templateHandler.GetTemplates)
		apiGroup.POST("/templates", templateHandler.CreateTemplate)
		apiGroup.POST("/templates/preview", templateHandler.PreviewTemplate)
		apiGroup.GET("/templates/:id", templateHandler.GetTemplate)
		apiGroup.PUT("/templates/:id", templateHandler.UpdateTemplate)
		apiGroup.POST("/templates/:id/tags", templateHandler.AttachTags)
		apiGroup.POST("/templates/:id/archive", templateHandler.ArchiveTemplate)
		apiGroup.POST("/templates/:id/restore", templateHandler.RestoreTemplate)
		apiGroup.DELETE("/templates/:id", templateHandler.DeleteTemplate)

		apiGroup.POST("/media", mediaHandler.UploadMedia)
		apiGroup.GET("/media", mediaHandler.ListMedia)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
