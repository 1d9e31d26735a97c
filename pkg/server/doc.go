// Package server provides a reusable HTTP server with middleware, metrics,
// and graceful shutdown.
//
// The server is application-agnostic: callers register handlers via
// functional options and the package supplies request-ID propagation, rate
// limiting, panic recovery, request logging, Prometheus RED metrics, and
// health/readiness endpoints.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("cookbookd"),
//	    server.WithVersion("v1.0.0"),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/entries": h.HandleEntries,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
// System endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// Registered application handlers are wrapped with the full middleware chain.
package server
