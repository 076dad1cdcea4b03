package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/kofiasare/parceltrack-backend/api/responses"
	"github.com/kofiasare/parceltrack-backend/pkg/config"
	"github.com/kofiasare/parceltrack-backend/pkg/db"
	"github.com/kofiasare/parceltrack-backend/pkg/types"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ParcelTrack-Env", cfg.App.Env)
		responses.WriteData(w, "success", map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, dbP db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ParcelTrack-Env", cfg.App.Env)
		if dbP != nil {
			if err := dbP.Ping(r.Context()); err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(types.ErrorEnvelope{Error: "database unavailable"})
				return
			}
		}
		responses.WriteData(w, "success", map[string]string{"status": "ready"})
	}
}
