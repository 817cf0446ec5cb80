package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/marmos91/storefront/internal/logger"
	"github.com/marmos91/storefront/pkg/api/auth"
	"github.com/marmos91/storefront/pkg/api/handlers"
	apiMiddleware "github.com/marmos91/storefront/pkg/api/middleware"
	"github.com/marmos91/storefront/pkg/metrics"
	"github.com/marmos91/storefront/pkg/store"
)

// NewRouter creates and configures the chi router with all middleware and routes.
//
// The authentication gate runs on every /api/v1 request: requests
// without a token proceed as guests, requests with a token are fully
// validated. Routes that require a logged-in user additionally mount
// the RequireUser gate.
//
// Routes:
//   - GET /health - Liveness probe
//   - GET /health/ready - Readiness probe
//   - POST /api/v1/auth/register - Account creation
//   - POST /api/v1/auth/login - User authentication
//   - GET /api/v1/auth/me - Current user info (login required)
//   - GET /api/v1/users - User list
//   - GET /api/v1/users/{id} - One user
//   - GET /api/v1/products - Catalog list
//   - GET /api/v1/products/{id} - One product
//   - POST /api/v1/products - Create product (login required)
//   - GET /api/v1/orders - Own orders (login required)
//   - POST /api/v1/orders - Create order (login required)
//   - GET /api/v1/orders/{id} - One own order (login required)
func NewRouter(jwtService *auth.JWTService, st store.Store) http.Handler {
	r := chi.NewRouter()

	// Middleware stack - order matters
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(metrics.Instrument)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Health routes - unauthenticated
	healthHandler := handlers.NewHealthHandler(st)
	r.Route("/health", func(r chi.Router) {
		r.Get("/", healthHandler.Liveness)
		r.Get("/ready", healthHandler.Readiness)
	})

	// Root redirect to health for convenience
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/health", http.StatusTemporaryRedirect)
	})

	authHandler := handlers.NewAuthHandler(st, jwtService)
	userHandler := handlers.NewUserHandler(st, st)
	productHandler := handlers.NewProductHandler(st, st)
	orderHandler := handlers.NewOrderHandler(st)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Authentication gate for the whole tree: lenient on absence,
		// strict on presence.
		r.Use(apiMiddleware.Authenticate(jwtService, st))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(apiMiddleware.RequireUser())
				r.Get("/me", authHandler.Me)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.List)
			r.Get("/{id}", userHandler.Get)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Get("/{id}", productHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(apiMiddleware.RequireUser())
				r.Post("/", productHandler.Create)
			})
		})

		// Orders are private - the whole subtree requires login
		r.Route("/orders", func(r chi.Router) {
			r.Use(apiMiddleware.RequireUser())

			r.Get("/", orderHandler.List)
			r.Post("/", orderHandler.Create)
			r.Get("/{id}", orderHandler.Get)
		})
	})

	return r
}

// isHealthPath returns true if the request path is a healthcheck endpoint.
func isHealthPath(path string) bool {
	return path == "/health" || strings.HasPrefix(path, "/health/")
}

// requestLogger is a custom middleware that logs requests using the internal logger.
//
// Healthcheck requests are logged at DEBUG level to reduce noise.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := middleware.GetReqID(r.Context())

		logger.Debug("API request started",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)

		// Wrap response writer to capture status code
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		duration := time.Since(start)

		logArgs := []any{
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", duration.String(),
		}

		if isHealthPath(r.URL.Path) {
			logger.Debug("API request completed", logArgs...)
		} else {
			logger.Info("API request completed", logArgs...)
		}
	})
}
