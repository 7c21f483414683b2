package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/paani/remedial-learning-app/internal/metrics"
	"github.com/paani/remedial-learning-app/internal/middleware"
	"github.com/paani/remedial-learning-app/pkg/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type SessionIdentityService interface {
	IdentityService
	middleware.SessionValidator
}

type RouterConfig struct {
	Logger         *logging.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	Identity       SessionIdentityService
	Roster         RosterService
	Assessments    AssessmentService
	Tracker        TrackerService
	MaxUploadBytes int64
}

func NewRouter(cfg RouterConfig) chi.Router {
	authMiddleware := middleware.NewAuthMiddleware(cfg.Identity)

	r := chi.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger, cfg.Metrics))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	NewAuthHandler(cfg.Identity).RegisterRoutes(r, authMiddleware)
	NewStudentHandler(cfg.Roster, cfg.Assessments).RegisterRoutes(r, authMiddleware)
	NewMaterialHandler(cfg.Tracker, cfg.MaxUploadBytes).RegisterRoutes(r, authMiddleware)

	return r
}
