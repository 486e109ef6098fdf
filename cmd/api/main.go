package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/daftar-app/daftar/internal/application/usecase"
	infragithub "github.com/daftar-app/daftar/internal/infrastructure/github"
	"github.com/daftar-app/daftar/internal/infrastructure/jsonfile"
	infrapdf "github.com/daftar-app/daftar/internal/infrastructure/pdf"
	httpRouter "github.com/daftar-app/daftar/internal/interfaces/http"
	"github.com/daftar-app/daftar/pkg/config"
	"github.com/daftar-app/daftar/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_file", cfg.Data.File).
		Msg("starting application")

	store, err := jsonfile.New(cfg.Data.File)
	if err != nil {
		log.Fatal().Err(err).Msg("open ledger file")
	}
	store.Subscribe(func() {
		log.Debug().Msg("ledger updated")
	})

	syncClient := infragithub.New()
	pdfGenerator := infrapdf.NewMarotoInvoiceGenerator()

	productUC := usecase.NewProductUseCase(store)
	invoiceUC := usecase.NewInvoiceUseCase(store, pdfGenerator)
	inventoryUC := usecase.NewInventoryUseCase(store)
	backupUC := usecase.NewBackupUseCase(store, syncClient)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Daftar API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		InvoiceUC:   invoiceUC,
		InventoryUC: inventoryUC,
		BackupUC:    backupUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
