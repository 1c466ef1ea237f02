package wire

import (
	"net/http"

	"salon-booking/internal/adaptor"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/metrics"
	"salon-booking/pkg/middleware"
	"salon-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the assembled router
type App struct {
	Router *chi.Mux
}

// Deps are the runtime collaborators built by main.
type Deps struct {
	Repo     *repository.Repository
	DB       adaptor.Pinger
	Options  usecase.Options
	Gatherer prometheus.Gatherer
}

// Wiring builds services, handlers and routes
func Wiring(deps Deps, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(deps.Repo, config, deps.Options, logger)
	handler := adaptor.NewHandler(service, deps.DB, config, logger)

	router := setupRouter(handler, deps, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, deps Deps, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	if config.Metrics.Enabled {
		r.Use(middleware.Metrics(deps.Options.Metrics))
		r.Handle(config.Metrics.Path, metricsHandler(deps.Gatherer))
	}

	r.Route("/api", func(r chi.Router) {
		wireBooking(r, handler.Booking)
		wireCatalog(r, handler.Catalog)
		wireEmail(r, handler.Email)

		r.Get("/health", handler.Health.Health)
	})

	return r
}

func metricsHandler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// NewMetrics registers the application metrics with reg.
func NewMetrics(config *utils.Config, reg prometheus.Registerer) *metrics.Metrics {
	return metrics.New(metricsNamespace(config.App.Name), reg)
}
