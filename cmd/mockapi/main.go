// @title Veterinaria CatDog API (mock)
// @version 1.0
// @description API REST de desarrollo para dueños, mascotas, veterinarios y reservas.
// @host localhost:3000
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"os/signal"
	"syscall"

	pg "vet-clinic-admin/internal/adapters/storage/postgres"
	"vet-clinic-admin/internal/config"
	"vet-clinic-admin/internal/platform/logger"
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
		App:    "vet-clinic-mockapi",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("mockapi stopped", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	var db *sql.DB
	if dsn := cfg.MockAPI.DBDSN; dsn != "" {
		opened, err := pg.Open(ctx, dsn)
		if err != nil {
			return err
		}
		defer opened.Close()
		db = opened
	}

	h, err := router.NewAPIRouter(ctx, router.APIOptions{Logger: log, DB: db})
	if err != nil {
		return err
	}
	return server.Run(ctx, server.New(":"+cfg.MockAPI.Port, h), log)
}
