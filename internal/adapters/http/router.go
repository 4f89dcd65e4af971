package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"registration/internal/adapters/http/form"
	"registration/internal/adapters/http/health"
	"registration/internal/config"
	"registration/internal/platform/logger"
	"registration/internal/platform/metrics"
	platformMiddleware "registration/internal/platform/middleware"
)

type RouterDependencies struct {
	Config           *config.HttpConfig
	Logger           logger.Logger
	FormHandler      *form.Handler
	LivenessHandler  *health.LivenessHandler
	ReadinessHandler *health.ReadinessHandler
	MetricsProvider  *metrics.Provider
}

func NewRouter(deps RouterDependencies) http.Handler {
	cfg := deps.Config
	log := deps.Logger
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(platformMiddleware.RequestLogger(log))
	r.Use(platformMiddleware.MetricsMiddleware(deps.MetricsProvider))
	r.Use(platformMiddleware.Recovery(log))
	r.Use(middleware.StripSlashes)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	r.Get("/health/live", deps.LivenessHandler.Check)
	r.Get("/health/ready", deps.ReadinessHandler.Check)
	r.Handle("/metrics", deps.MetricsProvider.Handler())

	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Use(httprate.LimitAll(
			cfg.RateLimit.GlobalRequests,
			time.Duration(cfg.RateLimit.GlobalWindow)*time.Second,
		))
		apiRouter.Use(httprate.LimitByIP(
			cfg.RateLimit.RequestsPerIP,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		))

		apiRouter.Route("/forms", func(formRouter chi.Router) {
			formRouter.Post("/", ErrorHandler(deps.FormHandler.CreateSession))
			formRouter.Route("/{id}", func(sessionRouter chi.Router) {
				sessionRouter.Get("/", ErrorHandler(deps.FormHandler.GetSession))
				sessionRouter.Delete("/", ErrorHandler(deps.FormHandler.DeleteSession))
				sessionRouter.Post("/validate", ErrorHandler(deps.FormHandler.ValidateSession))
				sessionRouter.Put("/fields/{field}", ErrorHandler(deps.FormHandler.SetField))
			})
		})
	})

	return r
}
