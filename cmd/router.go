package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/gw-career-opportunities/docs"
	"github.com/sbilibin2017/gw-career-opportunities/internal/handlers"
	"github.com/sbilibin2017/gw-career-opportunities/internal/jwt"
	"github.com/sbilibin2017/gw-career-opportunities/internal/metrics"
	"github.com/sbilibin2017/gw-career-opportunities/internal/middlewares"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
	"github.com/sbilibin2017/gw-career-opportunities/internal/repositories"
	"github.com/sbilibin2017/gw-career-opportunities/internal/services"
)

// buildHandler wires repositories, services and handlers into the HTTP router.
// events may be nil. Metrics are registered on reg.
func buildHandler(cfg Config, db *sqlx.DB, rdb *redis.Client, events services.KafkaWriter, reg *prometheus.Registry) http.Handler {
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	cacheMetrics := &metrics.ListingCacheMetrics{}
	cacheMetrics.Register(reg)
	httpMetrics := metrics.NewHTTPMetrics(reg)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	opportunityReadRepo := repositories.NewOpportunityReadRepository(db)
	opportunityWriteRepo := repositories.NewOpportunityWriteRepository(db)
	applicationReadRepo := repositories.NewApplicationReadRepository(db)
	applicationWriteRepo := repositories.NewApplicationWriteRepository(db)
	bookmarkReadRepo := repositories.NewBookmarkReadRepository(db)
	bookmarkWriteRepo := repositories.NewBookmarkWriteRepository(db)
	listingCache := repositories.NewListingCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	opportunityService := services.NewOpportunityService(opportunityReadRepo, opportunityWriteRepo, listingCache, cacheMetrics, events)
	applicationService := services.NewApplicationService(applicationReadRepo, applicationWriteRepo, listingCache, cacheMetrics, events)
	bookmarkService := services.NewBookmarkService(bookmarkReadRepo, bookmarkWriteRepo, listingCache, cacheMetrics)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware(httpMetrics))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOriginList(),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public routes
	r.Get("/", handlers.NewRootHandler())
	r.Post("/auth/register", handlers.NewRegisterHandler(authService))
	r.Post("/auth/login", handlers.NewLoginHandler(authService))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Protected routes
	adminOnly := middlewares.RequireRole(models.RoleAdmin)
	studentOnly := middlewares.RequireRole(models.RoleStudent)

	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens))

		r.Get("/protected/profile", handlers.NewProfileHandler(authService))

		r.Route("/opportunities", func(r chi.Router) {
			r.Get("/", handlers.NewListOpportunitiesHandler(opportunityService))
			r.Get("/{id}", handlers.NewGetOpportunityHandler(opportunityService))
			r.With(adminOnly).Post("/", handlers.NewCreateOpportunityHandler(opportunityService))
			r.With(adminOnly).Put("/{id}", handlers.NewUpdateOpportunityHandler(opportunityService))
			r.With(adminOnly).Delete("/{id}", handlers.NewDeleteOpportunityHandler(opportunityService))
		})

		r.Route("/applications", func(r chi.Router) {
			r.With(studentOnly).Get("/", handlers.NewListApplicationsHandler(applicationService))
			r.With(studentOnly).Post("/{opportunityId}", handlers.NewApplyHandler(applicationService))
			r.Patch("/{applicationId}", handlers.NewUpdateApplicationStatusHandler(applicationService))
		})

		r.Route("/bookmarks", func(r chi.Router) {
			r.Use(studentOnly)
			r.Get("/", handlers.NewListBookmarksHandler(bookmarkService))
			r.Post("/{opportunityId}", handlers.NewBookmarkHandler(bookmarkService))
			r.Delete("/{opportunityId}", handlers.NewRemoveBookmarkHandler(bookmarkService))
		})
	})

	return r
}
