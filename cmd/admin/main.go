package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"vet-clinic-admin/internal/adapters/clinicapi"
	"vet-clinic-admin/internal/config"
	"vet-clinic-admin/internal/flash"
	"vet-clinic-admin/internal/platform/logger"
	"vet-clinic-admin/internal/platform/metrics"
	"vet-clinic-admin/internal/platform/server"
	"vet-clinic-admin/internal/router"
)

func main() {
	envFile := flag.String("env", ".env", "archivo .env opcional")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		logger.NewFromEnv().Error("config", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("admin stopped", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	m := metrics.New()

	api, err := clinicapi.NewClient(clinicapi.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, log.With(map[string]any{"component": "clinicapi"}), m)
	if err != nil {
		return err
	}

	var store flash.Store = flash.NewMemoryStore(cfg.Flash.TTL)
	if cfg.Flash.Backend == config.FlashRedis {
		rs, err := flash.NewRedisStore(ctx, flash.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Flash.TTL,
		})
		if err != nil {
			return err
		}
		defer rs.Close()
		store = rs
	}
	log.Info("admin configured", map[string]any{
		"api_base_url":  cfg.API.BaseURL,
		"flash_backend": cfg.Flash.Backend,
	})

	h, err := router.NewAdminRouter(router.AdminOptions{
		API:          api,
		Flash:        store,
		Logger:       log,
		Metrics:      m,
		DismissDelay: cfg.UI.DismissDelay,
	})
	if err != nil {
		return err
	}

	return server.Run(ctx, server.New(":"+cfg.App.Port, h), log)
}
