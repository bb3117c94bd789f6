package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/asmendustri/asm-endustri-api/internal/application/auth"
	"github.com/asmendustri/asm-endustri-api/internal/application/usecase"
	"github.com/asmendustri/asm-endustri-api/internal/infrastructure/postgres"
	"github.com/asmendustri/asm-endustri-api/internal/infrastructure/storage"
	httpRouter "github.com/asmendustri/asm-endustri-api/internal/interfaces/http"
	"github.com/asmendustri/asm-endustri-api/pkg/config"
	"github.com/asmendustri/asm-endustri-api/pkg/logger"
)

const defaultAdminEmail = "admin@asmendustri.com"

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet; config failures (e.g. missing JWT_SECRET) are fatal.
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("database migration")
	}
	if err := postgres.EnsureAdmin(ctx, pool, defaultAdminEmail, "admin123"); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap")
	}

	uploadStore, err := storage.NewStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload store")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	galleryRepo := postgres.NewGalleryRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.Expiration,
		Issuer:   cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	galleryUC := usecase.NewGalleryUseCase(galleryRepo)
	contactUC := usecase.NewContactUseCase(contactRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    storage.MaxFileSize,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI at /docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ASM Endüstri API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Uploaded assets are served back at /uploads/<relative path>
	app.Static("/uploads", uploadStore.Root())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		GalleryUC:   galleryUC,
		ContactUC:   contactUC,
		UploadStore: uploadStore,
		UserRepo:    userRepo,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
