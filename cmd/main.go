package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/umazing/store-dashboard-bff/internal/api"
	"github.com/umazing/store-dashboard-bff/internal/catalog"
	"github.com/umazing/store-dashboard-bff/internal/config"
	"github.com/umazing/store-dashboard-bff/internal/services"
)

func main() {
	// Load configuration from config.yaml
	if err := config.LoadConfig("."); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Access configuration
	cfg := config.GetConfig()

	sheets := services.NewSheetsService(
		cfg.SheetsEndpointURL,
		cfg.SheetsAPIKey,
		time.Duration(cfg.ClientTimeoutSecs)*time.Second,
	)

	events := services.NewEventPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer events.Close()

	cat := catalog.New(sheets, events)

	// Warm the catalog view once on startup; the dashboard reloads on demand.
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ClientTimeoutSecs)*time.Second)
	if _, err := cat.Load(ctx); err != nil {
		logger.Warn("initial product load failed", zap.Error(err))
	}
	cancel()

	// setup router and start server
	r := api.SetupRouter(cat, sheets, cfg.MaxBodyBytes)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
