package main

import (
	"net/http"
	"os"

	"github.com/NYTimes/gziphandler"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/diewo77/go-duerp/httpx"
	"github.com/diewo77/go-duerp/internal/config"
	"github.com/diewo77/go-duerp/internal/handlers"
	"github.com/diewo77/go-duerp/internal/middleware"
	"github.com/diewo77/go-duerp/internal/services"
	"github.com/diewo77/go-duerp/internal/theme"
	"github.com/diewo77/go-duerp/view"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux      *http.ServeMux
	handler  http.Handler
	cfg      *config.Config
	logger   *logrus.Logger
	view     *view.Renderer
	api      services.API
	registry *prometheus.Registry
}

// NewApp creates a new application with all routes configured.
// registry may be nil when metrics are disabled.
func NewApp(cfg *config.Config, logger *logrus.Logger, api services.API, registry *prometheus.Registry) *App {
	opts := []view.Option{view.WithLangResolver(middleware.LangFrom)}
	if cfg.App.Dev {
		// Edit templates without rebuilding.
		if fi, err := os.Stat("view/templates"); err == nil && fi.IsDir() {
			opts = append(opts, view.WithTemplates(os.DirFS("view/templates")), view.WithoutCache())
		}
	}
	app := &App{
		mux:      http.NewServeMux(),
		cfg:      cfg,
		logger:   logger,
		view:     view.New(theme.Default(), opts...),
		api:      api,
		registry: registry,
	}
	app.setupRoutes()
	app.handler = middleware.Chain(gziphandler.GzipHandler(app.mux),
		middleware.WithLogger(logger),
		middleware.Recover(logger),
		middleware.Prefs(cfg.App.DefaultLang),
	)
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

// setupRoutes configures all application routes.
func (a *App) setupRoutes() {
	docSvc := services.NewDocumentService(a.api, a.api, a.logger)
	unitSvc := services.NewUnitService(a.api, a.api, a.logger)
	hazardSvc := services.NewHazardService(a.api, a.api, a.logger)

	dh := handlers.NewDashboardHandler(a.view, a.logger, services.NewDashboardService(a.api, a.logger))
	doc := handlers.NewDocumentHandler(a.view, a.logger, docSvc, a.api)
	uh := handlers.NewUnitHandler(a.view, a.logger, unitSvc, a.api)
	hh := handlers.NewHazardHandler(a.view, a.logger, hazardSvc, unitSvc, a.api, a.api)

	// ─────────────────────────────────────────────────────────────────────────
	// Dashboard & documents
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.HandleFunc("GET /{$}", dh.Show)
	a.mux.HandleFunc("GET /duerp", doc.List)
	a.mux.HandleFunc("GET /duerp/nouveau", doc.New)
	a.mux.HandleFunc("POST /duerp/nouveau", doc.Create)
	a.mux.HandleFunc("GET /duerp/{id}", doc.Show)
	a.mux.HandleFunc("GET /duerp/{id}/modifier", doc.Edit)
	a.mux.HandleFunc("POST /duerp/{id}/modifier", doc.Update)
	a.mux.HandleFunc("GET /duerp/{id}/supprimer", doc.ConfirmDelete)
	a.mux.HandleFunc("POST /duerp/{id}/supprimer", doc.Delete)
	a.mux.HandleFunc("POST /duerp/{id}/valider", doc.Validate)
	a.mux.HandleFunc("POST /duerp/{id}/telecharger", doc.Download)

	// ─────────────────────────────────────────────────────────────────────────
	// Work units
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.HandleFunc("POST /duerp/{id}/unites", doc.CreateUnit)
	a.mux.HandleFunc("GET /duerp/{id}/unites/{uid}", uh.Show)
	a.mux.HandleFunc("GET /duerp/{id}/unites/{uid}/modifier", uh.Edit)
	a.mux.HandleFunc("POST /duerp/{id}/unites/{uid}/modifier", uh.Update)
	a.mux.HandleFunc("GET /duerp/{id}/unites/{uid}/supprimer", doc.ConfirmDeleteUnit)
	a.mux.HandleFunc("POST /duerp/{id}/unites/{uid}/supprimer", doc.DeleteUnit)

	// ─────────────────────────────────────────────────────────────────────────
	// Hazards & prevention measures
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.HandleFunc("POST /duerp/{id}/unites/{uid}/risques", uh.CreateHazard)
	a.mux.HandleFunc("GET /duerp/{id}/risques/{rid}", hh.Show)
	a.mux.HandleFunc("GET /duerp/{id}/risques/{rid}/modifier", hh.Edit)
	a.mux.HandleFunc("POST /duerp/{id}/risques/{rid}/modifier", hh.Update)
	a.mux.HandleFunc("GET /duerp/{id}/risques/{rid}/supprimer", hh.ConfirmDelete)
	a.mux.HandleFunc("POST /duerp/{id}/risques/{rid}/supprimer", hh.Delete)
	a.mux.HandleFunc("POST /duerp/{id}/risques/{rid}/mesures", hh.CreateMeasure)
	a.mux.HandleFunc("GET /duerp/{id}/risques/{rid}/mesures/{mid}/supprimer", hh.ConfirmDeleteMeasure)
	a.mux.HandleFunc("POST /duerp/{id}/risques/{rid}/mesures/{mid}/supprimer", hh.DeleteMeasure)
	a.mux.HandleFunc("POST /duerp/{id}/risques/{rid}/mesures/{mid}/statut", hh.UpdateMeasureStatus)

	// ─────────────────────────────────────────────────────────────────────────
	// Static files & operations
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.Handle("GET /static/", a.view.Assets())
	a.mux.HandleFunc("GET /healthz", httpx.HealthHandler(httpx.Health{Version: version, API: a.cfg.API.BaseURL}))
	if a.cfg.App.Metrics && a.registry != nil {
		a.mux.Handle("GET /metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	}
	a.mux.HandleFunc("/", handlers.NotFoundHandler(a.view, a.logger))
}
