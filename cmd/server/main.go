package main

import (
	"log"
	"net/http"
	"strings"

	_ "github.com/MohammedIhsaan28/Acquisition/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/MohammedIhsaan28/Acquisition/internal/auth"
	"github.com/MohammedIhsaan28/Acquisition/internal/cache"
	"github.com/MohammedIhsaan28/Acquisition/internal/config"
	"github.com/MohammedIhsaan28/Acquisition/internal/db"
	"github.com/MohammedIhsaan28/Acquisition/internal/handler"
	"github.com/MohammedIhsaan28/Acquisition/internal/hash"
	"github.com/MohammedIhsaan28/Acquisition/internal/model"
	"github.com/MohammedIhsaan28/Acquisition/internal/repository"
	"github.com/MohammedIhsaan28/Acquisition/internal/router"
	"github.com/MohammedIhsaan28/Acquisition/internal/service"
)

// @title Acquisition API
// @version 1.0
// @description User-account backend with cookie-based JWT sessions and role-gated user CRUD.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)

	// Initialize auth components
	hasher := hash.New(cfg.BcryptCost)
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)
	sessions := auth.NewSessionManager(cfg.JWTTTL, cfg.IsProduction())

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher)
	userService := service.NewUserService(userRepo, hasher, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, jwtService, sessions)
	userHandler := handler.NewUserHandler(userService)

	// Register routes
	router.Register(e, cfg, jwtService, authHandler, userHandler)

	if cfg.SwaggerHost != "" {
		swaggerURL := cfg.SwaggerHost
		if !strings.HasPrefix(swaggerURL, "http://") && !strings.HasPrefix(swaggerURL, "https://") {
			swaggerURL = "http://" + swaggerURL
		}
		log.Printf("Swagger documentation available at: %s/swagger/index.html", swaggerURL)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
