// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/S-Khan786/Medicine-Mart-App/internal/catalog"
	"github.com/S-Khan786/Medicine-Mart-App/internal/config"
	"github.com/S-Khan786/Medicine-Mart-App/internal/domain/address"
	"github.com/S-Khan786/Medicine-Mart-App/internal/domain/blog"
	"github.com/S-Khan786/Medicine-Mart-App/internal/domain/cart"
	"github.com/S-Khan786/Medicine-Mart-App/internal/domain/order"
	"github.com/S-Khan786/Medicine-Mart-App/internal/domain/session"
	"github.com/S-Khan786/Medicine-Mart-App/internal/infrastructure/database/redis"
	"github.com/S-Khan786/Medicine-Mart-App/internal/infrastructure/store"
	"github.com/S-Khan786/Medicine-Mart-App/internal/interfaces/http"
	"github.com/S-Khan786/Medicine-Mart-App/internal/interfaces/http/handlers"
	"github.com/S-Khan786/Medicine-Mart-App/internal/interfaces/http/routes"
	"github.com/S-Khan786/Medicine-Mart-App/internal/pkg/httpclient"
	"github.com/S-Khan786/Medicine-Mart-App/internal/pkg/pdf"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	logger := newLogger(cfg)

	// Open the preference store and an optional Redis connection
	st, redisConn, err := openStore(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to open preference store: %v", err)
	}
	if redisConn != nil {
		defer redisConn.Close()
	}

	// Build the catalog and domain services
	cat := catalog.New()
	sessions := session.NewService(st, logger)
	cartService := cart.NewService(st, cart.LogNotifier{Logger: logger}, logger)
	orders := order.NewService(st, cfg, logger)
	addresses := address.NewService(st, logger)
	blogService := blog.NewService()

	pdfService := pdf.NewService(cfg)
	client := httpclient.New(10*time.Second, logger)

	h := &routes.Handlers{
		Catalog: handlers.NewCatalogHandler(cat),
		Auth:    handlers.NewAuthHandler(sessions, cfg),
		Cart:    handlers.NewCartHandler(cartService, cat),
		Order:   handlers.NewOrderHandler(orders, cartService, addresses, pdfService, client, cfg),
		Address: handlers.NewAddressHandler(addresses),
		Blog:    handlers.NewBlogHandler(blogService),
	}

	log.Println("✅ All systems operational!")

	server := newServer(cfg, h, st, redisConn)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("👋 Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("✅ Server shutdown completed")
}

// newLogger builds the application logger from config
func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}

// openStore selects the preference store backend from config
func openStore(cfg *config.Config, logger *logrus.Logger) (store.Store, *redis.Client, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendMemory:
		return store.NewMemoryStore(), nil, nil

	case config.StoreBackendRedis:
		conn, err := redis.NewConnection(cfg)
		if err != nil {
			return nil, nil, err
		}
		return store.NewRedisStore(conn.GetClient()), conn, nil

	default:
		st, err := store.NewFileStore(cfg.Store.FilePath, logger)
		if err != nil {
			return nil, nil, err
		}
		return st, nil, nil
	}
}

func newServer(cfg *config.Config, h *routes.Handlers, st store.Store, conn *redis.Client) *http.Server {
	if conn != nil {
		return http.NewServer(cfg, h, st, conn.GetClient())
	}
	return http.NewServer(cfg, h, st, nil)
}
