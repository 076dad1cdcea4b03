package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kofiasare/parceltrack-backend/api/controllers"
	"github.com/kofiasare/parceltrack-backend/api/middleware"
	"github.com/kofiasare/parceltrack-backend/internal/adminauth"
	"github.com/kofiasare/parceltrack-backend/internal/contacts"
	"github.com/kofiasare/parceltrack-backend/internal/routecat"
	"github.com/kofiasare/parceltrack-backend/internal/submissions"
	"github.com/kofiasare/parceltrack-backend/internal/tracking"
	"github.com/kofiasare/parceltrack-backend/pkg/config"
	"github.com/kofiasare/parceltrack-backend/pkg/db"
	"github.com/kofiasare/parceltrack-backend/pkg/logger"
	"github.com/kofiasare/parceltrack-backend/pkg/metrics"
	"github.com/kofiasare/parceltrack-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	catalog *routecat.Catalog,
	authService adminauth.Service,
	trackingService tracking.Service,
	submissionService submissions.Service,
	contactService contacts.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)
	if httpMetrics != nil {
		r.Use(httpMetrics.Middleware)
	}
	r.Use(middleware.CORS(cfg.App.CORSOrigins...))

	loginPolicy := middleware.NewLoginRateLimitPolicy(
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
	)
	loginLimiter := middleware.LoginRateLimit(loginPolicy, nil, logg)
	if redisClient != nil {
		loginLimiter = middleware.LoginRateLimit(loginPolicy, redisClient, logg)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP))
	})

	if httpMetrics != nil {
		r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
	}

	r.With(loginLimiter).
		Post("/api/admin/login", controllers.AdminLogin(authService, logg))

	r.Route("/api/tracking", func(r chi.Router) {
		// public surface
		r.Get("/routes", controllers.TrackingRoutes(catalog, logg))
		r.Get("/{code}", controllers.TrackingLookup(trackingService, logg))
		r.Post("/{code}/customer", controllers.TrackingAttachCustomer(trackingService, logg))

		// admin surface
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))
			r.Get("/", controllers.TrackingList(trackingService, logg))
			r.Post("/generate", controllers.TrackingGenerate(trackingService, logg))
			r.Patch("/{id}/location", controllers.TrackingUpdateLocation(trackingService, logg))
			r.Delete("/{id}", controllers.TrackingDelete(trackingService, logg))
		})
	})

	r.Route("/api/submissions", func(r chi.Router) {
		// public checkout capture
		r.Post("/", controllers.SubmissionCreate(submissionService, logg))

		// admin triage surface; /search and /export/csv sit above /{id}
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))
			r.Get("/", controllers.SubmissionList(submissionService, logg))
			r.Get("/search", controllers.SubmissionSearch(submissionService, logg))
			r.Get("/export/csv", controllers.SubmissionExportCSV(submissionService, logg))
			r.Get("/{id}", controllers.SubmissionGet(submissionService, logg))
			r.Delete("/{id}", controllers.SubmissionDelete(submissionService, logg))
			r.Patch("/{id}/status", controllers.SubmissionUpdateStatus(submissionService, logg))
		})
	})

	r.Post("/api/contact", controllers.ContactCreate(contactService, logg))
	r.Route("/api/contacts", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Get("/", controllers.ContactList(contactService, logg))
		r.Patch("/{id}/status", controllers.ContactUpdateStatus(contactService, logg))
	})

	return r
}
