package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/angsur/internal/config"
	"github.com/MrJamesThe3rd/angsur/internal/database"
	angsurHttp "github.com/MrJamesThe3rd/angsur/internal/http"
	exportHandler "github.com/MrJamesThe3rd/angsur/internal/http/export"
	importHandler "github.com/MrJamesThe3rd/angsur/internal/http/importcsv"
	insightsHandler "github.com/MrJamesThe3rd/angsur/internal/http/insights"
	installmentHandler "github.com/MrJamesThe3rd/angsur/internal/http/installment"
	"github.com/MrJamesThe3rd/angsur/internal/installment"
	"github.com/MrJamesThe3rd/angsur/internal/installment/store"
	"github.com/MrJamesThe3rd/angsur/internal/kv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	kvStore, err := openKV(cfg)
	if err != nil {
		slog.Error("failed to open kv backend", "backend", cfg.KV.Backend, "error", err)
		os.Exit(1)
	}

	svc := installment.NewService(store.New(kvStore))
	if err := svc.Init(context.Background()); err != nil {
		slog.Error("failed to load installments", "error", err)
		os.Exit(1)
	}

	router := angsurHttp.New(
		installmentHandler.NewHandler(svc),
		insightsHandler.NewHandler(svc),
		importHandler.NewHandler(svc),
		exportHandler.NewHandler(svc),
		cfg.Auth.Secret,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port, "kv_backend", cfg.KV.Backend)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func openKV(cfg *config.Config) (kv.Store, error) {
	switch cfg.KV.Backend {
	case config.BackendPostgres:
		db, err := database.New(cfg.ConnectionString())
		if err != nil {
			return nil, err
		}

		pg := kv.NewPostgresStore(db)
		if err := pg.EnsureSchema(context.Background()); err != nil {
			return nil, err
		}

		return pg, nil
	case config.BackendFile:
		return kv.NewFileStore(cfg.KV.Dir)
	default:
		return nil, fmt.Errorf("unknown kv backend: %q", cfg.KV.Backend)
	}
}
