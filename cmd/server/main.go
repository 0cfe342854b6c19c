package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/mcweed-code/casa-fabio-parts-pro/internal/global"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/logger"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/worker"
)

// initLogger sets up the logging system before anything else runs.
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread runs the Fiber server on the main goroutine.
func main_thread(app *fiber.App) {
	cfg := global.ServerConfig
	address := ":" + cfg.Address

	log := logger.GetAppLogger()
	log.WithFields(map[string]interface{}{
		"address":  address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server...")

	if err := app.Listen(address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

func main() {
	initLogger()

	InitGlobal()

	InitRegistry()

	// Catalog first load: feed fetch or development seed
	cache := InitCatalog()

	app, err := InitFiberApp(cache)
	if err != nil {
		logger.GetAppLogger().Fatalf("Failed to set up routes: %v", err)
	}

	// Periodic catalog refresh only makes sense with a real feed
	if global.ServerConfig.CatalogURL != "" {
		log := logger.GetAppLogger()
		interval := time.Duration(global.ServerConfig.CatalogRefreshMinutes) * time.Minute
		refresher := worker.NewCatalogRefreshWorker(cache, interval)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(map[string]interface{}{
						"panic": r,
					}).Error("🛒 [CATALOG_REFRESH] Worker goroutine panic")
				}
			}()

			refresher.Start(ctx)
		}()

		log.Info("🛒 [CATALOG_REFRESH] Catalog refresh worker started successfully")
	}

	main_thread(app)
}
