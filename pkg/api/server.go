// Package api exposes the codec over HTTP: raw encode/decode endpoints, the
// hex text mode, and a small artifact store for encoded payloads. The codec
// itself never touches the network; this package is presentation glue
// around it.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// StartServer starts the HTTP server with all routes configured. It blocks
// until the listener fails.
func StartServer(store ArtifactStore, config ServerConfig, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	metrics := NewMetrics()
	server := NewServer(store, config, metrics, logger)

	r := NewRouter(server, config, metrics)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	logger.Info("starting rlepack API server",
		zap.String("addr", addr),
		zap.Int64("max_body_bytes", config.maxBodyBytes()),
	)

	return http.ListenAndServe(addr, r)
}

// NewRouter wires the chi router for a server. Split out of StartServer so
// tests can drive the full middleware stack without a listener.
func NewRouter(server *Server, config ServerConfig, metrics *Metrics) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API key authentication for everything else
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiKeyMiddleware(config.APIKey))

		r.Get("/health", instrument(metrics, "GET", "/api/v1/health", server.handleHealth))
		r.Get("/stats", instrument(metrics, "GET", "/api/v1/stats", server.handleStats))

		// Codec operations
		r.Post("/encode", instrument(metrics, "POST", "/api/v1/encode", server.handleEncode))
		r.Post("/decode", instrument(metrics, "POST", "/api/v1/decode", server.handleDecode))

		// Text mode
		r.Post("/text/encode", instrument(metrics, "POST", "/api/v1/text/encode", server.handleTextEncode))
		r.Post("/text/decode", instrument(metrics, "POST", "/api/v1/text/decode", server.handleTextDecode))

		// Artifacts
		r.Post("/artifacts", instrument(metrics, "POST", "/api/v1/artifacts", server.handleArtifactCreate))
		r.Get("/artifacts/{id}", instrument(metrics, "GET", "/api/v1/artifacts/{id}", server.handleArtifactGet))
		r.Delete("/artifacts/{id}", instrument(metrics, "DELETE", "/api/v1/artifacts/{id}", server.handleArtifactDelete))
	})

	return r
}

func instrument(metrics *Metrics, method, endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	if metrics == nil {
		return handler
	}
	return metrics.InstrumentHandler(method, endpoint, handler)
}
