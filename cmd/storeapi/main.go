package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"StoreAPI/internal/app"
	"StoreAPI/internal/config"
	"StoreAPI/internal/store"
	"StoreAPI/internal/weather"
	"StoreAPI/pkg/kit"
)

func main() {
	service := "storeapi"

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := kit.NewLogger(service, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Debug("effective configuration", zap.String("config", cfg.String()))

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	h := app.NewHandler(
		app.Deps{
			Store:   store.NewMemory(store.DefaultProducts()...),
			Weather: weather.NewGenerator(),
			AppName: cfg.App.Name,
			Version: cfg.App.Version,
		},
		app.HTTPDeps{
			Log:             log,
			Service:         service,
			Registry:        reg,
			MetricsEnabled:  cfg.Metrics.Enabled,
			MetricsToken:    cfg.Metrics.Token,
			CORSOrigins:     cfg.CORS.Origins,
			RateLimit:       cfg.RateLimit.Limit,
			RateLimitWindow: cfg.RateLimit.Window,
		},
	)

	opts := kit.ServerOptions{
		Addr:              cfg.Addr(),
		ReadHeaderTimeout: cfg.Timeout.ReadHeader,
		ReadTimeout:       cfg.Timeout.Read,
		WriteTimeout:      cfg.Timeout.Write,
		IdleTimeout:       cfg.Timeout.Idle,
		ShutdownTimeout:   cfg.Timeout.Shutdown,
	}
	if err := kit.RunHTTPServer(context.Background(), opts, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
	log.Info("http server stopped")
}
