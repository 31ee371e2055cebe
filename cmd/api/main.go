package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shopflow/storefront/internal/modules/catalog"
	"github.com/shopflow/storefront/internal/modules/notification"
	"github.com/shopflow/storefront/internal/modules/order"
	"github.com/shopflow/storefront/pkg/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Catalog ─────────────────────────────────────────────
	catalogRepo := catalog.NewMemoryRepository(catalog.SeedProducts())
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	// ── Notification ────────────────────────────────────────
	var provider notification.Provider
	if cfg.MailtrapAPIToken != "" {
		provider = notification.NewMailtrapProvider(
			cfg.MailtrapAPIURL,
			cfg.MailtrapAPIToken,
			cfg.MailtrapFromEmail,
			cfg.MailtrapFromName,
		)
	} else {
		provider = notification.NewStubProvider(logger)
	}
	dispatcher := notification.NewDispatcher(provider, logger, cfg.NotifyQueueSize, cfg.NotifyTimeout)

	// ── Order Processing ────────────────────────────────────
	orderRepo := order.NewMemoryRepository()
	gateway := order.NewMockGateway()
	orderService := order.NewService(orderRepo, catalogService, gateway, dispatcher, logger, order.ServiceConfig{
		TaxRate:        cfg.TaxRate(),
		PaymentTimeout: cfg.PaymentTimeout,
	})
	order.NewHandler(orderService).RegisterRoutes(router)

	router.Get("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"storefront"}`))
	})

	// ── Start Server ────────────────────────────────────────
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("ShopFlow storefront API starting", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// ── Graceful Shutdown ───────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	// Server is drained, so no new orders can reach the dispatcher now.
	dispatcher.Close()
	logger.Info("Server stopped")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	return cfg.Build()
}
