package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/moramnavadeep/FreshNCook/config"
	"github.com/moramnavadeep/FreshNCook/internal/api"
	"github.com/moramnavadeep/FreshNCook/internal/database"
	"github.com/moramnavadeep/FreshNCook/internal/gateway"
	"github.com/moramnavadeep/FreshNCook/internal/router"
	"github.com/moramnavadeep/FreshNCook/internal/server"
	"github.com/moramnavadeep/FreshNCook/internal/service"
	"github.com/moramnavadeep/FreshNCook/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := config.ValidateConfig(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zlog, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		Development: config.IsDevelopment(),
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.New(cfg)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}

	gen, err := gateway.NewClient(zlog)
	if err != nil {
		zlog.Fatal("failed to create AI gateway client", zap.Error(err))
	}

	// Redis is optional; without it suggestions still work but image
	// backfill has no session to address.
	var sessions *service.RecipeSessionStore
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		zlog.Warn("redis unavailable, recipe sessions disabled", zap.Error(err))
	} else {
		sessions = service.NewRecipeSessionStore(redisClient)
	}

	s3cfg, err := config.NewS3Config(context.Background())
	if err != nil {
		zlog.Warn("object storage unavailable, images served as data URIs", zap.Error(err))
		s3cfg = nil
	}

	svcs := &api.Services{
		Pantry:   service.NewPantryService(gen, zlog),
		Recipes:  service.NewRecipeService(gen, sessions, service.NewImageStore(s3cfg), zlog),
		Spoilage: service.NewSpoilageService(gen, zlog),
		Alerts:   service.NewAlertService(newSMSSender(cfg, zlog), zlog),
		Profiles: service.NewProfileService(db, zlog),
	}

	srv := server.New(cfg, router.SetupRouter(svcs, cfg, zlog), zlog)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			zlog.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		zlog.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("server shutdown error", zap.Error(err))
	}
	zlog.Info("server stopped")
}

// newSMSSender returns the Twilio sender, or nil when the credentials
// are absent. The nil interface dance matters: a typed nil inside the
// interface would defeat the service's nil check.
func newSMSSender(cfg *config.Config, zlog *zap.Logger) service.SMSSender {
	sender := service.NewTwilioSender(cfg, zlog)
	if sender == nil {
		return nil
	}
	return sender
}
