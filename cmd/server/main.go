package main

import (
	"log"
	"net/http"
	"os"

	_ "renthub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"renthub/internal/auth"
	"renthub/internal/cache"
	"renthub/internal/config"
	"renthub/internal/db"
	"renthub/internal/handler"
	"renthub/internal/model"
	"renthub/internal/repository"
	"renthub/internal/router"
	"renthub/internal/service"
	"renthub/internal/storage"
)

// @title RentHub API
// @version 1.0
// @description Car rental marketplace API: registration, catalog search, bookings and owner dashboard.
// @host localhost:3000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Booking{},
			&model.Car{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Car{},
		&model.Booking{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	carRepo := repository.NewCarRepository(gormDB)
	bookingRepo := repository.NewBookingRepository(gormDB)

	// Initialize auth and storage components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	imageKit := storage.NewImageKit(cfg.ImageKitUploadURL, cfg.ImageKitPrivateKey)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, imageKit)
	carService := service.NewCarService(carRepo, bookingRepo, imageKit, cacheClient)
	bookingService := service.NewBookingService(carRepo, bookingRepo)
	ownerService := service.NewOwnerService(userRepo, carRepo, bookingRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(authService, userService, carService)
	ownerHandler := handler.NewOwnerHandler(ownerService, carService, userService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		userRepo,
		userHandler,
		ownerHandler,
		bookingHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
