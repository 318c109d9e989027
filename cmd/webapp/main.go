package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/HasanBocek/KTUTennisCRM/api"
	"github.com/HasanBocek/KTUTennisCRM/api/controllers"
	"github.com/HasanBocek/KTUTennisCRM/api/routes"
	"github.com/HasanBocek/KTUTennisCRM/api/views"
	"github.com/HasanBocek/KTUTennisCRM/internal/layout"
	"github.com/HasanBocek/KTUTennisCRM/internal/menu"
	"github.com/HasanBocek/KTUTennisCRM/internal/notify"
	"github.com/HasanBocek/KTUTennisCRM/internal/services"
	"github.com/HasanBocek/KTUTennisCRM/internal/state"
	"github.com/HasanBocek/KTUTennisCRM/pkg/config"
	"github.com/HasanBocek/KTUTennisCRM/pkg/gateway"
	"github.com/HasanBocek/KTUTennisCRM/pkg/logger"
	"github.com/HasanBocek/KTUTennisCRM/pkg/metrics"
	"github.com/HasanBocek/KTUTennisCRM/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "webapp"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "webapp",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	gw, err := gateway.NewClient(cfg.Backend.BaseURL,
		gateway.WithTimeout(cfg.Backend.RequestTimeout),
		gateway.WithHTTPClient(&http.Client{}),
		gateway.WithMetrics(metrics.NewGatewayMetrics(registry)),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to build gateway client", err)
		os.Exit(1)
	}

	attrs := views.NewDocumentAttributes()

	var layoutStorage layout.Storage = layout.NewMemoryStorage()
	var redisPinger controllers.Pinger
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Warn(context.Background(), "redis unavailable, layout settings will not survive restarts")
		} else {
			layoutStorage = layout.NewRedisStorage(redisClient)
			redisPinger = redisClient
			defer func() {
				if err := redisClient.Close(); err != nil {
					logg.Error(context.Background(), "error closing redis", err)
				}
			}()
		}
	}

	center := notify.NewCenter()
	svcs, err := services.New(services.Params{
		Gateway:  gw,
		Notifier: center,
		Logger:   logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to build services", err)
		os.Exit(1)
	}

	ctrls, err := controllers.New(controllers.Params{
		Services: svcs,
		State:    state.New(),
		Center:   center,
		Renderer: views.NewRenderer(attrs),
		Layouts:  layout.NewManager(layoutStorage, attrs, logg),
		Filter:   menu.Filter{Enforce: cfg.FeatureFlags.PermissionCheckEnabled},
		Logger:   logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to build controllers", err)
		os.Exit(1)
	}

	handler := routes.NewRouter(routes.Params{
		Config:      cfg,
		Logger:      logg,
		Gateway:     gw,
		Controllers: ctrls,
		RedisPinger: redisPinger,
		Registry:    registry,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting web server")

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := api.NewServer(addr, handler, logg)
	start := time.Now()
	if err := server.Run(runCtx); err != nil {
		logg.Error(ctx, "web server stopped unexpectedly", err)
		os.Exit(1)
	}
	logg.Info(logg.WithField(ctx, "uptime", time.Since(start).String()), "server stopped")
}
