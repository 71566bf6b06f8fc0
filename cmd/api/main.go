package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"dc-atlas-api-server/config"
	"dc-atlas-api-server/internal/api/routes"
	"dc-atlas-api-server/internal/auth"
	"dc-atlas-api-server/internal/seed"
	"dc-atlas-api-server/internal/session"
	"dc-atlas-api-server/internal/socket"
	"dc-atlas-api-server/internal/store"
	"dc-atlas-api-server/internal/telemetry"
)

func main() {
	godotenv.Load()

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("could not init logger: %v", err)
	}
	defer logger.Sync()

	jwtTTL, err := time.ParseDuration(cfg.JWT.Expiration)
	if err != nil {
		logger.Fatal("invalid jwt expiration", zap.String("value", cfg.JWT.Expiration), zap.Error(err))
	}
	auth.Configure(cfg.JWT.Secret, jwtTTL)

	catalog, err := seed.DataCenters()
	if err != nil {
		logger.Fatal("invalid seed catalog", zap.Error(err))
	}
	users, err := seed.Users()
	if err != nil {
		logger.Fatal("could not seed users", zap.Error(err))
	}
	dataCenterStore := store.NewDataCenterStore(catalog)
	userStore := store.NewUserStore(users)
	logger.Info("seeded catalog",
		zap.Int("dataCenters", dataCenterStore.Count()),
		zap.Int("users", userStore.Count()))

	sessions := session.NewMirror(cfg.Session.MirrorPath)
	if u, ok := sessions.Load(); ok {
		logger.Info("restored session", zap.String("email", u.Email))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := socket.NewHub(logger)
	interval, err := time.ParseDuration(cfg.Telemetry.Interval)
	if err != nil {
		logger.Fatal("invalid telemetry interval", zap.String("value", cfg.Telemetry.Interval), zap.Error(err))
	}
	simulator := telemetry.NewSimulator(dataCenterStore, hub, interval, logger)
	go simulator.Run(ctx)

	router := routes.SetupRouter(cfg, dataCenterStore, userStore, sessions, hub, logger)

	logger.Info("starting server", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
