package controllers

import (
	"context"
	"net/http"

	"github.com/HasanBocek/KTUTennisCRM/api/responses"
	"github.com/HasanBocek/KTUTennisCRM/pkg/config"
	"github.com/HasanBocek/KTUTennisCRM/pkg/logger"
)

// Pinger is the dependency health surface.
type Pinger interface {
	Ping(context.Context) error
}

// HealthLive reports process liveness.
func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-App-Env", cfg.App.Env)
		responses.WriteSuccess(w, "", map[string]string{"status": "ok"})
	}
}

// HealthReady reports readiness including the optional Redis backend.
// A nil pinger means layout persistence runs in memory, which is
// still ready.
func HealthReady(cfg *config.Config, logg *logger.Logger, redisPinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok", "layout_storage": "memory"}
		if redisPinger != nil {
			status["layout_storage"] = "redis"
			if err := redisPinger.Ping(r.Context()); err != nil {
				if logg != nil {
					logg.Error(r.Context(), "redis readiness probe failed", err)
				}
				status["status"] = "degraded"
				status["layout_storage"] = "unreachable"
			}
		}
		w.Header().Set("X-App-Env", cfg.App.Env)
		responses.WriteSuccess(w, "", status)
	}
}
