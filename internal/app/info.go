package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"StoreAPI/pkg/kit"
)

const (
	forecastDays = 5
	readyTimeout = 1 * time.Second
)

type infoResp struct {
	App     string `json:"app"`
	Version string `json:"version"`
}

type infoServer struct {
	deps Deps
	log  *zap.Logger
}

func (s *infoServer) Routes(r chi.Router) {
	r.Get("/", root)
	r.Get("/health", health)
	r.Get("/readyz", s.readyz)
	r.Get("/info", s.info)
	r.Get("/weatherforecast", s.forecast)
}

func root(w http.ResponseWriter, _ *http.Request) {
	kit.WriteText(w, http.StatusOK, "Root OK")
}

func health(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, "OK")
}

func (s *infoServer) readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := s.deps.Store.Ping(ctx); err != nil {
		s.log.Warn("readyz failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *infoServer) info(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, infoResp{App: s.deps.AppName, Version: s.deps.Version})
}

func (s *infoServer) forecast(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.deps.Weather.Forecasts(forecastDays))
}
