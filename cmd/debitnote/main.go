// cmd/debitnote/main.go
package main

import (
	"log"
	"os"

	"debitnote-service/internal/api/handlers"
	"debitnote-service/internal/api/responses"
	"debitnote-service/internal/config"
	"debitnote-service/internal/core/debitnote"

	"github.com/gin-gonic/gin"
)

func main() {
	responses.InitLogger()

	cfg, err := config.Load(os.Getenv("DEBITNOTE_CONFIG"))
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	debitNoteService := debitnote.NewServiceFromConfig(cfg)
	debitNoteHandler := handlers.NewDebitNoteHandler(debitNoteService)

	router := gin.Default()

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/debit-notes/process", debitNoteHandler.HandleProcess)
		apiV1.POST("/debit-notes/generate", debitNoteHandler.HandleGenerate)
		apiV1.POST("/debit-notes/generate-all", debitNoteHandler.HandleGenerateAll)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP", "service": "debitnote-service"})
	})

	log.Printf("Debit Note Service started, listening on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start the debit note server: ", err)
	}
}
