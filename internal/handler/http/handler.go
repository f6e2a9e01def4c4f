package http

import (
	"github.com/MKhiriev/go-diner/internal/config"
	"github.com/MKhiriev/go-diner/internal/logger"
	"github.com/MKhiriev/go-diner/internal/metrics"
	"github.com/MKhiriev/go-diner/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	limiter  *rateLimiter

	app    config.App
	server config.Server

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A nil m gets a fresh registry.
// Rate limiting is disabled when cfg.Server.RateLimit is not positive.
func NewHandler(services *service.Services, m *metrics.Metrics, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	if m == nil {
		m = metrics.New()
	}

	h := &Handler{
		services: services,
		metrics:  m,
		app:      cfg.App,
		server:   cfg.Server,
		logger:   logger,
	}
	if cfg.Server.RateLimitEnabled() {
		h.limiter = newRateLimiter(cfg.Server.RateLimit, cfg.Server.RateBurst)
	}

	logger.Info().Msg("http handler created")
	return h
}
