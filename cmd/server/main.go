package main

import (
	"context"
	"log"
	"os"

	"noticeboard-backend/handlers"
	"noticeboard-backend/repository"
	"noticeboard-backend/service"
	"noticeboard-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file from project root (relative to cmd/server/)
	// Try current directory first, then project root
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	ctx := context.Background()

	// Initialize the document store
	noticeRepo, err := repository.NewRepositoryFromEnv(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize notice store: %v", err)
	}
	defer noticeRepo.Close(ctx)
	log.Println("Notice store initialized")

	// Initialize the file store
	fileStore, err := storage.NewFileStoreFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	log.Println("Storage initialized")

	limits := service.UploadLimitsFromEnv()

	createdBy := os.Getenv("ADMIN_NAME")
	if createdBy == "" {
		createdBy = "admin"
	}

	// Initialize services
	noticeService := service.NewNoticeService(
		service.WithNoticeRepository(noticeRepo),
		service.WithFileStore(fileStore),
		service.WithUploadLimits(limits),
		service.WithCreatedBy(createdBy),
	)

	// Initialize handlers
	noticeHandler := handlers.NewNoticeHandler(noticeService)
	uploadHandler := handlers.NewUploadHandler(fileStore, limits)

	// Setup Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Locally stored uploads are served statically under their URLs.
	storeType := os.Getenv("STORAGE_TYPE")
	if storeType == "" || storeType == "local" {
		r.Static("/uploads", storage.UploadDirFromEnv())
	}

	// API routes
	api := r.Group("/api")
	{
		// Notice endpoints
		api.POST("/notices", noticeHandler.CreateNotice)
		api.GET("/notices", noticeHandler.ListNotices)
		api.GET("/notices/bulletin", noticeHandler.Bulletin)

		// File endpoints
		api.POST("/files/upload", uploadHandler.UploadFile)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
