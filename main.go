// main.go
package main

import (
	"log"

	"warehouse-api/cmd"
	"warehouse-api/internal/data/repository"
	"warehouse-api/internal/queue"
	"warehouse-api/internal/wire"
	"warehouse-api/pkg/cache"
	"warehouse-api/pkg/database"
	"warehouse-api/pkg/storage"
	"warehouse-api/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Blob storage for uploaded images
	blobs, err := storage.NewBlobStore(config.Storage)
	if err != nil {
		logger.Fatal("Failed to init blob storage", zap.Error(err))
	}

	// Event broker. The app keeps serving without it; verification events
	// are simply not published.
	var publisher queue.Publisher
	if config.Broker.URL != "" {
		publisher, err = queue.NewPublisher(config.Broker, logger)
		if err != nil {
			logger.Warn("Failed to connect to message broker, events disabled", zap.Error(err))
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Redis cache for the location registry, optional as well
	redisClient := cache.NewRedisClient(config.Redis)
	if redisClient == nil {
		logger.Warn("Redis unavailable, location caching disabled")
	} else {
		defer redisClient.Close()
	}

	// Wire all dependencies
	app := wire.Wiring(repos, blobs, publisher, redisClient, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
