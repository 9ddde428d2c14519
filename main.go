package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/ntu-info/emogo-backend-ChenYuWen/api"
	"github.com/ntu-info/emogo-backend-ChenYuWen/database"
	"github.com/ntu-info/emogo-backend-ChenYuWen/services"

	_ "github.com/ntu-info/emogo-backend-ChenYuWen/docs"
)

// Uploads are videos; cap request bodies well above any realistic clip.
const maxUploadBytes = 200 << 20

// @title Emogo Backend API
// @version 1.0
// @description Ingest and export service for user vlogs, sentiment scores and GPS logs.

// @host localhost:8080
func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, using environment as-is")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "/config"
	}
	mediaPath := os.Getenv("MEDIA_PATH")
	if mediaPath == "" {
		mediaPath = "/media"
	}
	os.MkdirAll(configPath, 0755)

	// Init store
	db, err := database.Open(configPath)
	if err != nil {
		logger.Fatal("failed to open store", zap.Error(err))
	}
	defer database.Close(db)

	// Optional ingest metrics sink; nil when Influx is not configured.
	recorder := services.NewIngestRecorder(
		os.Getenv("INFLUX_URL"),
		os.Getenv("INFLUX_TOKEN"),
		os.Getenv("INFLUX_ORG"),
		os.Getenv("INFLUX_BUCKET"),
		logger,
	)
	defer recorder.Close()

	// Register legacy file-backed vlogs and keep watching for new ones.
	scanner := services.NewLegacyScanner(mediaPath, db, logger)
	scanner.Start()

	// Setup server
	r := gin.Default()

	// Trust no proxies by default so ClientIP stays accurate. If running
	// behind Nginx/Traefik, this should be configured.
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.Use(api.SecurityHeadersMiddleware())
	r.Use(api.CORSMiddleware())
	r.Use(api.MaxBodySizeMiddleware(maxUploadBytes))

	r.LoadHTMLGlob("templates/*")

	api.SetupRoutes(r, api.NewHandlers(db, recorder, logger))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	// Health check
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
