package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"
	amqp "github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"storeadmin/internal/config"
	"storeadmin/internal/handlers"
	"storeadmin/internal/models"
	"storeadmin/internal/repositories"
	"storeadmin/internal/services"
	"storeadmin/pkg/rabbitmq"
)

// catalogEventLogger handles consumed catalog events by logging them.
// Returning nil acknowledges the delivery; downstream reactions such as
// storefront cache invalidation would hang off this handler.
func catalogEventLogger(logger zerolog.Logger) func(amqp.Delivery) error {
	return func(msg amqp.Delivery) error {
		logger.Info().
			Uint64("tag", msg.DeliveryTag).
			Str("event", string(msg.Body)).
			Msg("catalog event received")
		return nil
	}
}

func main() {
	cfg := config.Load()
	logger := config.NewLogger(cfg)

	// --- Storage ---
	// With no DSN configured the app runs on in-memory repositories, which
	// is enough for local form development against a fresh catalog.
	var (
		productRepo repositories.ProductRepository
		storeRepo   repositories.StoreRepository
		catalogRepo repositories.CatalogRepository
		userRepo    repositories.UserRepository
	)
	if cfg.DatabaseDSN != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		err = db.AutoMigrate(
			&models.User{},
			&models.Store{},
			&models.Billboard{},
			&models.Category{},
			&models.Size{},
			&models.Color{},
			&models.Product{},
			&models.Image{},
		)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to migrate database")
		}
		productRepo = repositories.NewGORMProductRepository(db)
		storeRepo = repositories.NewGORMStoreRepository(db)
		catalogRepo = repositories.NewGORMCatalogRepository(db)
		userRepo = repositories.NewGORMUserRepository(db)
	} else {
		logger.Warn().Msg("no DATABASE_DSN configured, using in-memory repositories")
		productRepo = repositories.NewMockProductRepository()
		storeRepo = repositories.NewMockStoreRepository()
		catalogRepo = repositories.NewMockCatalogRepository()
		userRepo = repositories.NewMockUserRepository()
	}

	// --- Catalog events ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()
		publisher = mqClient

		go func() {
			logger.Info().Msg("starting catalog event consumer")
			if err := mqClient.ConsumeCatalogEvents(catalogEventLogger(logger)); err != nil {
				logger.Error().Err(err).Msg("catalog event consumer stopped")
			}
		}()
	}

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, logger)
	storeService := services.NewStoreService(storeRepo)
	catalogService := services.NewCatalogService(catalogRepo)
	productService := services.NewProductService(productRepo, storeRepo, publisher, logger)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService, logger)
	storeHandler := handlers.NewStoreHandler(storeService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	productHandler := handlers.NewProductHandler(productService, logger)

	app := fiber.New()
	app.Use(fiberlogger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Fixed-prefix routes register before the :storeId wildcard routes.
	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	storeHandler.RegisterRoutes(api, authService)
	productHandler.RegisterRoutes(api, authService)
	catalogHandler.RegisterRoutes(api)

	// --- Start HTTP server ---
	logger.Info().Str("port", cfg.AppPort).Msg("starting server")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-quit
	logger.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		logger.Error().Err(err).Msg("error during shutdown")
	}
	logger.Info().Msg("server gracefully stopped")
}
