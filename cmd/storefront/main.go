package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fjod/go_storefront/internal/account"
	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/checkout"
	storegrpc "github.com/fjod/go_storefront/internal/grpc"
	h "github.com/fjod/go_storefront/internal/http"
	"github.com/fjod/go_storefront/internal/ledger"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// .env is optional, real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("failed to load .env", zap.Error(err))
	}

	cfg := loadConfig()
	ctx := context.Background()

	// Catalog database
	var repo catalog.RepoInterface
	repo, err = catalog.NewRepository(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open catalog database", zap.Error(err))
	}
	defer repo.Close()

	if err := repo.RunMigrations(cfg.MigrationsPath); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	logger.Info("catalog migrations applied", zap.String("db", cfg.DBPath))

	// Catalog cache
	var cache catalog.ProductCache = catalog.NopCache{}
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Fatal("redis connection failed", zap.Error(err))
		}
		logger.Info("redis ping succeeded", zap.String("addr", cfg.RedisAddr))
		cache = catalog.NewRedisCache(redisClient)
	}

	products := catalog.NewService(repo, cache, logger)
	if err := products.Refresh(ctx); err != nil {
		logger.Fatal("failed to warm catalog cache", zap.Error(err))
	}

	// Order events
	var publisher checkout.Publisher = checkout.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = checkout.NewKafkaPublisher(logger, cfg.KafkaBrokers...)
		logger.Info("publishing order events", zap.Strings("brokers", cfg.KafkaBrokers))
	}
	defer publisher.Close()

	sessions := ledger.NewSessionStore(cfg.SessionTTL, logger)
	defer sessions.Close()

	orders := checkout.NewService(checkout.Config{DeliveryDays: cfg.DeliveryDays}, publisher, logger)

	router := h.NewRouter(h.Handlers{
		Products: h.NewProductHandler(products, cfg.RequestTimeout),
		Cart:     h.NewCartHandler(sessions, products, cfg.RequestTimeout, logger),
		Checkout: h.NewCheckoutHandler(sessions, orders, cfg.RequestTimeout),
		Account:  h.NewAccountHandler(account.NewService(), account.NewWishlist(), sessions),
	}, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "storefront"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("storefront starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Health probes
	lis, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.GRPCPort))
	if err != nil {
		logger.Fatal("failed to listen", zap.Error(err))
	}
	grpcServer := storegrpc.NewServer(logger)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Fatal("failed to serve grpc", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	grpcServer.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
