package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"professor-booking-server/internal/config"
	"professor-booking-server/internal/logger"
	"professor-booking-server/internal/middleware"
	"professor-booking-server/internal/migrations"
	"professor-booking-server/internal/models"
	"professor-booking-server/internal/routes"
)

func main() {
	// Load environment variables; a missing .env file is fine in containers
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	lg := logger.New(cfg.Environment)
	defer lg.Sync() //nolint:errcheck

	// Initialize database connection
	db, err := models.InitDB(models.DatabaseConfig{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
		Debug:  !cfg.IsProduction(),
	})
	if err != nil {
		lg.Fatal("Error connecting to database", zap.Error(err))
	}

	if cfg.MigrateOnStart {
		sqlDB, err := db.DB()
		if err != nil {
			lg.Fatal("Error reaching database handle", zap.Error(err))
		}
		migrator, err := migrations.NewMigrator(sqlDB, cfg.Database.Driver, lg)
		if err != nil {
			lg.Fatal("Error preparing migrations", zap.Error(err))
		}
		if err := migrator.Run(context.Background()); err != nil {
			lg.Fatal("Error applying migrations", zap.Error(err))
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(lg))

	// Configure CORS for the admin and user front ends
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Origins
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{
		"Origin", "Content-Type", "Accept", "Authorization",
		middleware.HeaderUserToken, middleware.HeaderProfessorToken, middleware.HeaderAdminToken,
	}
	router.Use(cors.New(corsConfig))

	routes.SetupRoutes(router, db, cfg, lg)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	lg.Info("Server running", zap.String("port", cfg.Port), zap.String("env", cfg.Environment))
	if err := router.Run(serverAddr); err != nil {
		lg.Fatal("Failed to start server", zap.Error(err))
	}
}
