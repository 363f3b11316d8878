package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/MissMyDearBear/gemini-data-extractor/internal/api"
	"github.com/MissMyDearBear/gemini-data-extractor/internal/api/handlers"
	"github.com/MissMyDearBear/gemini-data-extractor/internal/extractor"
	"github.com/MissMyDearBear/gemini-data-extractor/internal/gemini"
	"github.com/MissMyDearBear/gemini-data-extractor/pkg/config"
	"github.com/MissMyDearBear/gemini-data-extractor/pkg/logger"
)

func main() {
	// Load configuration. A missing API key halts the process before any
	// request path exists.
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			fmt.Fprintln(os.Stderr, "Configuration error: GEMINI_API_KEY is not set.")
			fmt.Fprintln(os.Stderr, "Set it in the environment or in a .env file, then restart.")
		} else {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		}
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting gemini-data-extractor",
		zap.String("model", cfg.Gemini.Model),
		zap.Int("cache_max_entries", cfg.Cache.MaxEntries),
	)

	ctx := context.Background()
	geminiClient, err := gemini.NewClient(ctx, &cfg.Gemini, gemini.DefaultSafetyConfig(), appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize Gemini client", zap.Error(err))
	}

	extractService := extractor.NewService(geminiClient, cfg.Cache.MaxEntries, appLogger)
	extractHandler := handlers.NewExtractHandler(extractService, appLogger)

	app := api.SetupRouter(extractHandler, &cfg.Server, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
