package main

import (
	"context"
	"log"
	"net/http"

	_ "openeye/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"openeye/internal/cache"
	"openeye/internal/config"
	"openeye/internal/db"
	"openeye/internal/handler"
	"openeye/internal/model"
	"openeye/internal/repository"
	"openeye/internal/router"
	"openeye/internal/service"
	"openeye/web"
)

// @title OpenEye Civic Complaint API
// @version 1.0
// @description Municipal complaint-filing API: registration, login, complaint submission and listing, authority directory, and aggregate statistics.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file loaded")
	}

	cfg := config.Load()

	gormDB, err := db.NewSQLite(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Complaint{},
		&model.Authority{},
		&model.Area{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	complaintRepo := repository.NewComplaintRepository(gormDB)
	authorityRepo := repository.NewAuthorityRepository(gormDB)
	areaRepo := repository.NewAreaRepository(gormDB)

	// Seed default areas and authorities on first run
	if err := db.Seed(context.Background(), areaRepo, authorityRepo); err != nil {
		log.Fatalf("seed: %v", err)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo)
	complaintService := service.NewComplaintService(complaintRepo)
	directoryService := service.NewDirectoryService(authorityRepo, areaRepo)
	statsService := service.NewStatsService(complaintRepo, authorityRepo, areaRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	complaintHandler := handler.NewComplaintHandler(complaintService)
	directoryHandler := handler.NewDirectoryHandler(directoryService)
	statsHandler := handler.NewStatsHandler(statsService)
	pageHandler := handler.NewPageHandler(complaintService, directoryService)

	e := echo.New()

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}
	e.Renderer = renderer

	// Register routes
	router.Register(
		e,
		authHandler,
		complaintHandler,
		directoryHandler,
		statsHandler,
		pageHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
