package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/mcordovar/datacenter-access/internal/api/http"
	"github.com/mcordovar/datacenter-access/internal/api/http/handlers"
	"github.com/mcordovar/datacenter-access/internal/attachments"
	"github.com/mcordovar/datacenter-access/internal/auth"
	"github.com/mcordovar/datacenter-access/internal/config"
	"github.com/mcordovar/datacenter-access/internal/events"
	"github.com/mcordovar/datacenter-access/internal/observability"
	"github.com/mcordovar/datacenter-access/internal/persistence"
	"github.com/mcordovar/datacenter-access/internal/registry"
	"github.com/mcordovar/datacenter-access/internal/repository"
	"github.com/mcordovar/datacenter-access/internal/service"
	"github.com/mcordovar/datacenter-access/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	dispatcher := events.NewInMemoryDispatcher()

	store, err := registry.NewStore(cfg.Auth, registry.Dependencies{
		EntryRepo:    repository.NewEntryRepository(redis),
		FacilityRepo: repository.NewFacilityRepository(redis),
		UserRepo:     repository.NewUserRepository(redis),
		Dispatcher:   dispatcher,
		Logger:       logger,
	})
	if err != nil {
		logger.Fatal("failed to build registry", zap.Error(err))
	}
	if err := store.Initialize(ctx); err != nil {
		logger.Fatal("failed to initialize registry", zap.Error(err))
	}

	auditService := service.NewAuditService(dispatcher, logger)
	worker.StartAuditWorker(auditService)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authMiddleware := auth.NewAuthMiddleware(tokens)
	metrics := observability.NewMetrics()
	photoStore := attachments.NewStore(redis, logger)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redis),
		Auth:           handlers.NewAuthHandler(store, tokens, logger),
		Entries:        handlers.NewEntriesHandler(store),
		Facilities:     handlers.NewFacilitiesHandler(store),
		Stats:          handlers.NewStatsHandler(store, metrics),
		Attachments:    handlers.NewAttachmentsHandler(photoStore),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
