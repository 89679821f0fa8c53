package main

import (
	"context"
	"log"
	"time"

	"frenet-gateway/internal/core/cache"
	"frenet-gateway/internal/core/config"
	"frenet-gateway/internal/core/logger"
	"frenet-gateway/internal/core/server"
	quoteadapter "frenet-gateway/internal/features/quote/adapters"
	quotehandler "frenet-gateway/internal/features/quote/handler"
	quoteservice "frenet-gateway/internal/features/quote/service"
	trackingadapter "frenet-gateway/internal/features/tracking/adapters"
	trackinghandler "frenet-gateway/internal/features/tracking/handler"
	trackingservice "frenet-gateway/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// @title Frenet Gateway API
// @version 1.0
// @description Freight quoting and package tracking gateway for the Frenet shipping API.
// @contact.name API Support
// @contact.email support@frenetgateway.com
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize the quote cache backend and verify connectivity.
	redisCache, err := cache.NewRedisAdapter(cfg.RedisURL)
	if err != nil {
		l.Fatal("Failed to create Redis adapter", zap.Error(err))
	}
	defer redisCache.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		l.Fatal("Redis Health Check Failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// Initialize the quote pipeline.
	quoteCache := quoteadapter.NewRedisQuoteCache(redisCache, time.Duration(cfg.Carrier.QuoteCacheTTLSeconds)*time.Second)
	quoteProvider := quoteadapter.NewFrenetAPI(cfg.Frenet, cfg.Carrier.OriginPostcode)
	extractor := quoteadapter.NewAttributeExtractor(cfg.Carrier.DefaultItemWeight)

	builder, err := quoteservice.NewRateRequestBuilder(quoteservice.DefaultBuilders(), extractor)
	if err != nil {
		l.Fatal("Failed to create rate request builder", zap.Error(err))
	}

	calculator := quoteservice.NewCalculator(quoteCache, quoteProvider, l)
	carrier := quoteservice.NewCarrier(cfg.Carrier, cfg.Frenet, calculator, l)
	quoteHdl := quotehandler.NewQuoteHandler(builder, carrier)

	// Initialize the tracking pipeline.
	serviceFinder := trackingadapter.NewStoreServiceFinder(cfg.Store)
	trackingProvider := trackingadapter.NewFrenetTracking(cfg.Frenet)
	trackingSvc := trackingservice.NewTrackingService(serviceFinder, trackingProvider, cfg.Carrier, l)
	trackingHdl := trackinghandler.NewTrackingHandler(trackingSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/rates", quoteHdl.CollectRates)
	srv.App.Post("/rates/product", quoteHdl.CollectProductRates)
	srv.App.Get("/methods", quoteHdl.GetAllowedMethods)
	srv.App.Get("/tracking/:numbers", trackingHdl.GetTracking)
	srv.App.Get("/health", func(c *fiber.Ctx) error {
		if err := redisCache.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
