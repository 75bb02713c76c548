package main

import (
	"log"
	"os"

	"coursehub/backend/config"
	"coursehub/backend/middleware"
	"coursehub/backend/routes"
	"coursehub/backend/store"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize stores
	if _, err := os.Stat(cfg.CoursesFile()); err != nil {
		log.Fatalf("Courses file is not readable: %v", err)
	}
	courses := store.NewFileCourseStore(cfg.CoursesFile())
	enrollments := store.NewFileEnrollmentStore(cfg.EnrollmentsFile())

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: cfg.CORSOrigins != "*",
	}))
	app.Use(middleware.LoggingMiddleware(logger))
	if cfg.RateLimitEnabled {
		app.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}

	// Setup routes
	routes.SetupRoutes(app, courses, enrollments)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
