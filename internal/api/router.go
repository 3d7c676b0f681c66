package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/andriispivakelectrodosg/memory-bank-dashboard/internal/dashboard"
	"github.com/andriispivakelectrodosg/memory-bank-dashboard/internal/observability"
)

// NewRouter creates the chi router with all routes and middleware.
func NewRouter(roots dashboard.Roots, version string, reg *prometheus.Registry, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (runs on ALL routes including /health)
	r.Use(CORS)
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Metrics(observability.NewMetrics(reg)))
	r.Use(Recovery(logger))

	// Handlers
	siteH := NewSiteHandler(version)
	fileH := NewFileHandler(roots.MemoryBank)
	taskH := NewTaskHandler(roots.TasksDir())
	lessonH := NewLessonHandler(roots.Lessons)
	adrH := NewADRHandler(roots.ADRs)
	featureH := NewFeatureHandler(roots.Features)
	noteH := NewNoteHandler(roots.Notes)
	dashH := NewDashboardHandler(roots)

	r.Get("/", siteH.Index)
	r.Get("/health", siteH.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/files", fileH.List)
		r.Get("/file/*", fileH.Read)
		r.Get("/tasks", taskH.List)
		r.Get("/lessons", lessonH.List)
		r.Get("/lesson/{name}", lessonH.Read)
		r.Get("/adrs", adrH.List)
		r.Get("/adr/{name}", adrH.Read)
		r.Get("/features", featureH.List)
		r.Get("/feature/{name}", featureH.Read)
		r.Get("/notes", noteH.List)
		r.Get("/notes/recent", noteH.Recent)
		r.Get("/note/{name}", noteH.Read)
		r.Get("/dashboard", dashH.Summary)
	})

	return r
}
