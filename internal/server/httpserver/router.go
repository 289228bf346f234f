package httpserver

import (
	"net/http"

	"github.com/avelys/rolodex-go/internal/core/service"
	"github.com/avelys/rolodex-go/internal/server/httpserver/handler"
	"github.com/avelys/rolodex-go/internal/telemetry/logger"
	"github.com/avelys/rolodex-go/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// BookService handles address-book operations.
	BookService *service.BookService

	// ContactService handles contact operations.
	ContactService *service.ContactService

	// Logger for request logging.
	Logger logger.Logger

	// Metrics is the registry recording request metrics. Optional.
	Metrics *metric.Registry

	// MetricsHandler serves GET /metrics. Optional.
	MetricsHandler http.Handler

	// CORSAllowedOrigins is the list of allowed CORS origins (empty = allow all).
	CORSAllowedOrigins []string

	// RateLimit is the per-IP rate limit (requests/second, 0 = disabled).
	RateLimit int
}

// NewRouter creates and configures the HTTP router with all routes and
// middleware.
func NewRouter(cfg *RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	h := handler.New(cfg.BookService, cfg.ContactService, log)

	mux := http.NewServeMux()

	// Health endpoints bypass rate limiting and CORS.
	probeHandler := Chain(h, RequestID(), Recover(log))
	mux.Handle("GET /health", probeHandler)
	mux.Handle("GET /ready", probeHandler)

	if cfg.MetricsHandler != nil {
		mux.Handle("GET /metrics", Chain(cfg.MetricsHandler, RequestID(), Recover(log)))
	}

	// Business endpoints share the full middleware chain.
	// Order: Recover -> RequestID -> CORS -> RateLimit -> AccessLog -> Metrics -> Handler
	middlewares := []Middleware{
		Recover(log),
		RequestID(),
		CORS(cfg.CORSAllowedOrigins),
	}
	if cfg.RateLimit > 0 {
		middlewares = append(middlewares, RateLimit(cfg.RateLimit, cfg.Metrics))
	}
	middlewares = append(middlewares, AccessLog(log))
	if cfg.Metrics != nil {
		middlewares = append(middlewares, Metrics(cfg.Metrics))
	}

	apiHandler := Chain(h, middlewares...)

	mux.Handle("GET /addressBooks", apiHandler)
	mux.Handle("POST /addressBooks/{bookName}", apiHandler)
	mux.Handle("POST /addressBooks/{bookName}/contacts", apiHandler)
	mux.Handle("GET /addressBooks/{bookName}/contacts", apiHandler)
	mux.Handle("GET /addressBooks/{bookName}/contacts/sorted", apiHandler)
	mux.Handle("GET /addressBooks/{bookName}/contacts/search", apiHandler)
	mux.Handle("GET /addressBooks/{bookName}/contacts/countByLocation", apiHandler)
	mux.Handle("PUT /addressBooks/{bookName}/contacts/{contactName}", apiHandler)
	mux.Handle("DELETE /addressBooks/{bookName}/contacts/{contactName}", apiHandler)

	return mux
}

// DefaultRouterConfig returns default router configuration.
func DefaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		RateLimit: 100,
	}
}
