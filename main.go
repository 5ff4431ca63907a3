package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lapak/internal/config"
	"lapak/internal/handlers"
	"lapak/internal/models"
	"lapak/internal/repositories"
	"lapak/internal/services"
	"lapak/pkg/events"
)

func main() {
	cfg := config.Load()

	// --- Database ---
	// TranslateError turns unique-index violations into gorm.ErrDuplicatedKey,
	// which the repositories rely on for conflict detection.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database handle: %v", err)
	}
	defer sqlDB.Close()

	// --- Event publisher ---
	// The app serves requests without a broker; eventing is best-effort.
	var publisher events.Publisher
	var eventsClient *events.Client
	if cfg.RabbitMQURL != "" {
		eventsClient, err = events.NewClient(events.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Printf("Eventing disabled, RabbitMQ unavailable: %v", err)
		} else {
			publisher = eventsClient
			defer eventsClient.Close()
		}
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, publisher, cfg.JWTSecret)
	productService := services.NewProductService(productRepo, publisher)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New()) // Request logger

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "success",
		})
	})

	authHandler.RegisterRoutes(app)
	productHandler.RegisterRoutes(app)

	// --- Event consumer ---
	if eventsClient != nil {
		if err := eventsClient.Consume(func(msg amqp.Delivery) error {
			log.Printf("Received event (tag %d): %s", msg.DeliveryTag, msg.Body)
			return nil
		}); err != nil {
			log.Printf("Failed to start event consumer: %v", err)
		}
	}

	// --- Start HTTP server ---
	log.Printf("Starting server on %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
