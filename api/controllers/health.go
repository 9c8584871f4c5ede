package controllers

import (
	"context"
	"net/http"

	"github.com/mobimart/mobimart-backend/api/responses"
	"github.com/mobimart/mobimart-backend/pkg/config"
	pkgerrors "github.com/mobimart/mobimart-backend/pkg/errors"
	"github.com/mobimart/mobimart-backend/pkg/logger"
)

// Pinger is the health check surface of a backing dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-MobiMart-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, db Pinger, kv Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-MobiMart-Env", cfg.App.Env)

		checks := map[string]string{}
		ready := true

		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				checks["db"] = "down"
				ready = false
				if logg != nil {
					logg.Error(r.Context(), "health.db", err)
				}
			} else {
				checks["db"] = "ok"
			}
		}
		if kv != nil {
			if err := kv.Ping(r.Context()); err != nil {
				checks["redis"] = "down"
				ready = false
				if logg != nil {
					logg.Error(r.Context(), "health.redis", err)
				}
			} else {
				checks["redis"] = "ok"
			}
		}

		if !ready {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeDependency, "dependencies unavailable").WithDetails(checks))
			return
		}
		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
