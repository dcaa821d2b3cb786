// Package app assembles the storeapi HTTP handler.
package app

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"StoreAPI/internal/catalog"
	"StoreAPI/internal/order"
	"StoreAPI/internal/weather"
	"StoreAPI/pkg/kit"
)

// Store is everything the routes need from the backing collections.
type Store interface {
	catalog.Store
	order.Store
	Counts() (products, orders int)
}

type Deps struct {
	Store   Store
	Weather *weather.Generator
	AppName string
	Version string
}

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	CORSOrigins     []string
	RateLimit       int
	RateLimitWindow time.Duration
}

func NewHandler(deps Deps, httpDeps HTTPDeps) http.Handler {
	if httpDeps.Log == nil {
		httpDeps.Log = zap.NewNop()
	}
	if deps.Weather == nil {
		deps.Weather = weather.NewGenerator()
	}

	r := chi.NewRouter()
	r.NotFound(kit.NotFound)
	r.MethodNotAllowed(kit.MethodNotAllowed)

	setupMiddleware(r, httpDeps)
	setupMetrics(r, deps.Store, httpDeps)
	setupRateLimit(r, httpDeps)
	mountMetrics(r, httpDeps)

	info := &infoServer{deps: deps, log: httpDeps.Log}
	info.Routes(r)

	products := &catalog.Server{Store: deps.Store, Log: httpDeps.Log}
	products.Routes(r)

	orders := &order.Server{Store: deps.Store, Log: httpDeps.Log}
	orders.Routes(r)

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(kit.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))

	if len(deps.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: deps.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", kit.RequestIDHeader},
			ExposedHeaders: []string{"Location", kit.RequestIDHeader},
			MaxAge:         300,
		}))
	}
}

func setupRateLimit(r *chi.Mux, deps HTTPDeps) {
	if deps.RateLimit <= 0 {
		return
	}
	limiter := kit.NewIPRateLimiter(deps.RateLimit, deps.RateLimitWindow)
	r.Use(limiter.Middleware)
}

func setupMetrics(r *chi.Mux, st Store, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.RoutePatternLabel))
	registerStoreGauges(deps.Registry, st)
}

// mountMetrics runs after every r.Use; chi rejects middleware added after a route.
func mountMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil || !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}
