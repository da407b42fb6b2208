package main

import (
	"context"
	"net/http"
	"os"

	"github.com/fmcommerce/storefront/api/routes"
	"github.com/fmcommerce/storefront/internal/cart"
	"github.com/fmcommerce/storefront/internal/catalog"
	"github.com/fmcommerce/storefront/internal/theme"
	"github.com/fmcommerce/storefront/pkg/config"
	"github.com/fmcommerce/storefront/pkg/instance"
	"github.com/fmcommerce/storefront/pkg/logger"
	"github.com/fmcommerce/storefront/pkg/storage"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	store, err := storage.Open(context.Background(), cfg.Storage)
	if err != nil {
		logg.Error(context.Background(), "failed to open storage", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logg.Error(context.Background(), "error closing storage", err)
		}
	}()

	catalogClient, err := catalog.NewClient(cfg.Catalog)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog client", err)
		os.Exit(1)
	}

	cartStore, err := cart.NewStore(context.Background(), cart.StoreParams{KV: store, Logger: logg})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart store", err)
		os.Exit(1)
	}

	themeStore, err := theme.NewStore(context.Background(), theme.StoreParams{KV: store, Logger: logg})
	if err != nil {
		logg.Error(context.Background(), "failed to create theme store", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"instance": instance.GetID(),
		"addr":     addr,
		"catalog":  cfg.Catalog.BaseURL,
		"theme":    string(themeStore.Current()),
	})
	logg.Info(ctx, "starting storefront server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:     cfg,
			Logger:     logg,
			Catalog:    catalogClient,
			CartStore:  cartStore,
			ThemeStore: themeStore,
			StorageP:   store,
			Registry:   prometheus.NewRegistry(),
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "storefront server stopped unexpectedly", err)
		os.Exit(1)
	}
}
