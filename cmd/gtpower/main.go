package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/jaym93/gtpower/internal/auth"
	"github.com/jaym93/gtpower/internal/config"
	"github.com/jaym93/gtpower/internal/database"
	httpapi "github.com/jaym93/gtpower/internal/http"
	"github.com/jaym93/gtpower/internal/logger"
	"github.com/jaym93/gtpower/internal/repository"
	"github.com/jaym93/gtpower/internal/sensortype"
	"github.com/jaym93/gtpower/internal/service"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "gtpower")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	log.Info("Starting gtpower service")

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		cancel()
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	cancel()

	decoder := sensortype.Default()
	if cfg.SensorTypesFile != "" {
		decoder, err = sensortype.LoadFile(cfg.SensorTypesFile)
		if err != nil {
			log.Fatal("Failed to load sensor types file",
				zap.String("path", cfg.SensorTypesFile), zap.Error(err))
		}
		log.Info("Loaded sensor types file", zap.String("path", cfg.SensorTypesFile))
	}

	readingsRepo := repository.NewPostgresReadingsRepository(db)
	sensorsRepo := repository.NewPostgresSensorsRepository(db)
	buildingsRepo := repository.NewPostgresBuildingsRepository(db)
	categoriesRepo := repository.NewPostgresCategoriesRepository(db)
	tagsRepo := repository.NewPostgresTagsRepository(db)

	readingService := service.NewReadingService(readingsRepo, sensorsRepo, decoder, log)
	buildingService := service.NewBuildingService(buildingsRepo, categoriesRepo, tagsRepo, log)
	tagService := service.NewTagService(tagsRepo, log)

	casClient := auth.NewCASClient(cfg.CAS.ServerURL, cfg.CAS.ServiceURL, log)
	sessions := auth.NewRedisSessionStore(redisClient, cfg.Session.TTL)

	router := httpapi.NewRouter(httpapi.RouterDeps{
		Facilities: httpapi.NewFacilitiesHandler(readingService, log),
		Buildings:  httpapi.NewBuildingsHandler(buildingService, log),
		Tags:       httpapi.NewTagsHandler(tagService, log),
		Auth:       httpapi.NewAuthHandler(casClient, sessions, cfg.Session.TTL, log),
		Health:     httpapi.NewHealthHandler(db, log),
		Sessions:   sessions,
		Logger:     log,
	})

	server := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatal("HTTP server failed", zap.Error(err))
	case sig := <-sigCh:
		log.Info("Received shutdown signal", zap.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}

	log.Info("gtpower service stopped")
}
