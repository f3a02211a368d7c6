package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lockbox/internal/config"
	"lockbox/internal/handlers"
	"lockbox/internal/logger"
	"lockbox/internal/middleware"
	"lockbox/internal/models"
	"lockbox/internal/repositories"
	"lockbox/internal/services"
	"lockbox/pkg/cryptox"
)

func main() {
	cfg := config.Load()
	log := logger.Get(cfg.LogLevel)
	defer log.Sync()

	db, err := repositories.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	app, err := NewApp(cfg, db, log)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	// Graceful shutdown: serve until SIGINT/SIGTERM, then drain.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Infof("Starting %s %s on %s", cfg.AppName, cfg.AppVersion, cfg.AppPort)
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}
	log.Info("Server gracefully stopped")
}

// NewApp wires repositories, services, and handlers into a configured
// Fiber application. It also makes sure the placeholder owner identity
// exists, since every owner-scoped route resolves to it until a real
// authentication layer is added.
func NewApp(cfg *config.Config, db *gorm.DB, log *logger.Logger) (*fiber.App, error) {
	ownerID, err := uuid.Parse(cfg.DefaultOwnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_OWNER_ID %q: %w", cfg.DefaultOwnerID, err)
	}

	// Repositories
	userRepo := repositories.NewGORMUserRepository(db)
	folderRepo := repositories.NewGORMFolderRepository(db)
	entryRepo := repositories.NewGORMPasswordEntryRepository(db)
	noteRepo := repositories.NewGORMNoteRepository(db)

	// Services
	box := cryptox.New(cfg.SecretKey)
	userService := services.NewUserService(userRepo)
	folderService := services.NewFolderService(folderRepo)
	entryService := services.NewPasswordEntryService(entryRepo, folderRepo, box)
	noteService := services.NewNoteService(noteRepo)

	if err := seedPlaceholderOwner(context.Background(), userRepo, log, ownerID); err != nil {
		return nil, err
	}

	// Handlers
	userHandler := handlers.NewUserHandler(userService, log)
	folderHandler := handlers.NewFolderHandler(folderService, log)
	entryHandler := handlers.NewPasswordEntryHandler(entryService, log)
	noteHandler := handlers.NewNoteHandler(noteService, log)
	webHandler := handlers.NewWebHandler(entryService, folderService, log)

	engine := html.New(cfg.TemplateDir, ".html")
	app := fiber.New(fiber.Config{
		AppName: cfg.AppName,
		Views:   engine,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))
	app.Use(middleware.WithOwner(ownerID))

	app.Static("/static", cfg.StaticDir)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"version": cfg.AppVersion,
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// JSON API
	apiV1 := app.Group("/api/v1")
	userHandler.RegisterRoutes(apiV1)
	folderHandler.RegisterRoutes(apiV1)
	entryHandler.RegisterRoutes(apiV1)
	noteHandler.RegisterRoutes(apiV1)

	// Server-rendered pages
	webHandler.RegisterRoutes(app)

	return app, nil
}

// seedPlaceholderOwner creates the fixed owner account when it does
// not exist yet.
func seedPlaceholderOwner(ctx context.Context, userRepo repositories.UserRepository, log *logger.Logger, ownerID uuid.UUID) error {
	if _, err := userRepo.GetByID(ctx, ownerID); err == nil {
		return nil
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to look up placeholder owner: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("change-me"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash placeholder credential: %w", err)
	}
	owner := &models.User{
		ID:           ownerID,
		Username:     "default",
		PasswordHash: string(hash),
	}
	if err := userRepo.Create(ctx, owner); err != nil {
		return fmt.Errorf("failed to seed placeholder owner: %w", err)
	}
	log.Infow("Seeded placeholder owner", "user_id", ownerID, "username", owner.Username)
	return nil
}
