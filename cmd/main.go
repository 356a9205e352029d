package main

import (
	"context"
	"fmt"
	"os"

	"opendraft/config"
	"opendraft/domain/media"
	"opendraft/pkg/apperrors"
	"opendraft/pkg/logger"
	"opendraft/pkg/storage"
	"opendraft/routes"
	"opendraft/scripts/seed"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pressly/goose/v3"
	"github.com/spf13/viper"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/main.go [server|migrate|seed]")
		os.Exit(1)
	}

	config.InitConfig()
	config.InitDB()
	defer config.CloseDB()

	switch os.Args[1] {
	case "server":
		startServer()
	case "migrate":
		runMigrations()
	case "seed":
		runSeeder()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func startServer() {
	log := logger.Get().WithComponent("server")

	store, err := storage.New(context.Background())
	if err != nil {
		log.Fatal("Failed to initialize object storage", err)
	}
	media.InitStorage(store)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(logger.Get())

	allowOrigin := viper.GetString("CORS_ALLOW_ORIGIN")
	if allowOrigin == "" {
		allowOrigin = "http://localhost:3000"
	}

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{allowOrigin},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders:    []string{echo.HeaderContentLength},
		AllowCredentials: true,
		MaxAge:           86400,
	}))
	e.Use(logger.RequestLoggerMiddleware(logger.Get()))
	e.Use(logger.RecoveryMiddleware(logger.Get()))

	routes.RegisterRoutes(e)

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info("Starting server", logger.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server stopped", err)
	}
}

func runMigrations() {
	log := logger.Get().WithComponent("migrate")

	if err := goose.SetDialect("mysql"); err != nil {
		log.Fatal("Failed to set migration dialect", err)
	}
	if err := goose.Up(config.DB.DB, "migrations"); err != nil {
		log.Fatal("Failed to run migrations", err)
	}

	log.Info("Migrations applied")
}

func runSeeder() {
	log := logger.Get().WithComponent("seed")

	if err := seed.Run(config.DB); err != nil {
		log.Fatal("Seeding failed", err)
	}

	log.Info("Seeding completed")
}
