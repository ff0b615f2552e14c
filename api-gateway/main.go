package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "nuerpay-gateway/api-gateway/internal/api/http"
	"nuerpay-gateway/api-gateway/internal/backend"
	"nuerpay-gateway/api-gateway/internal/graph"
	"nuerpay-gateway/api-gateway/internal/logging"
	"nuerpay-gateway/api-gateway/internal/metrics"
	"nuerpay-gateway/api-gateway/internal/service"
	"nuerpay-gateway/api-gateway/internal/storage"
	"nuerpay-gateway/config"

	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	if cfg.EnvFileErr != nil {
		logger.Warn("Failed to load .env file", zap.Error(cfg.EnvFileErr))
	}

	m := metrics.New()
	client := backend.NewClient(cfg.BackendURL, &http.Client{Timeout: cfg.BackendTimeout}, m, logger)

	var cache service.ResponseCache
	if cfg.CacheEnabled() {
		rdb := config.MustInitRedis(cfg, logger)
		defer rdb.Close()
		cache = storage.NewRedisCache(rdb, cfg.CacheTTL)
		logger.Info("Response cache enabled", zap.String("addr", rdb.Options().Addr), zap.Duration("ttl", cfg.CacheTTL))
	}

	var publisher service.EventPublisher
	if cfg.EventsEnabled() {
		writer := config.NewKafkaWriter(cfg)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
		logger.Info("Event publishing enabled", zap.String("broker", cfg.KafkaBroker), zap.String("topic", cfg.KafkaTopic))
	}

	var qr service.QRGenerator
	if cfg.QREnabled {
		qr = service.DefaultQRGenerator{Size: 256}
	}

	svc := service.NewGatewayService(client, cache, publisher, qr, logger)

	schema, err := graph.NewSchema(graph.NewResolver(svc, logger, m))
	if err != nil {
		logger.Fatal("Failed to build GraphQL schema", zap.Error(err))
	}

	if cfg.PlaygroundEnabled && cfg.IsProduction() {
		logger.Warn("GraphQL playground enabled in production")
	}
	handler := httpapi.NewHandler(&schema, m.Handler(), cfg.PlaygroundEnabled)
	server := httpapi.NewServer(":"+cfg.Port, httpapi.NewRouter(handler, cfg.AllowedOrigins, logger), logger)

	logger.Info("Relaying to backend", zap.String("url", cfg.BackendURL), zap.Duration("timeout", cfg.BackendTimeout))

	errs := make(chan error, 1)
	go func() {
		errs <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logger.Info("Shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errs:
		if err != nil {
			logger.Error("Server failed", zap.Error(err))
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		logger.Error("Failed to stop API Gateway cleanly", zap.Error(err))
	}
}
