package main

import (
	"context"
	"log"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tobenna/walletdash/pkg/config"
	"github.com/tobenna/walletdash/pkg/handlers"
	"github.com/tobenna/walletdash/pkg/ledger"
	"github.com/tobenna/walletdash/pkg/localstore"
	"github.com/tobenna/walletdash/pkg/middleware"
	"github.com/tobenna/walletdash/pkg/storage"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	kv, err := openKV(cfg)
	if err != nil {
		logger.Fatal("failed to open store backend", zap.Error(err))
	}

	store := storage.NewKVStorage(kv)
	svc := ledger.NewService(store, logger, ledger.WithLatency(cfg.Latency))
	handler := handlers.NewLedgerHandler(svc)

	router := chi.NewRouter()
	router.Use(middleware.NewStructuredLogger(logger))
	router.Mount("/", handler.Routes())

	logger.Info("starting mock ledger service",
		zap.String("port", cfg.HTTPPort),
		zap.String("backend", string(cfg.StoreBackend)))

	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func openKV(cfg *config.Config) (localstore.KV, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return localstore.NewMemoryKV(), nil
	case config.BackendSQLite:
		return localstore.NewSQLiteKV(context.Background(), cfg.DatabasePath)
	default:
		return localstore.NewFileKV(filepath.Clean(cfg.DataDir))
	}
}
