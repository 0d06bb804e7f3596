// Package api provides the HTTP API layer for the release-matrix service.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with application-specific routes and handlers. It exposes
// version slice and upgrade pair derivation via REST API.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/NVIDIA/release-matrix/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Setting up route handlers
//   - Delegating server lifecycle management to pkg/server
//
// The pkg/server package handles:
//   - HTTP server setup and graceful shutdown
//   - Middleware (rate limiting, logging, metrics, panic recovery)
//   - Health and readiness endpoints
//   - Prometheus metrics
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET  /v1/matrix/slices - Derive version slices from a versions query parameter
//   - POST /v1/matrix/slices - Derive version slices from a JSON body
//   - GET  /v1/matrix/pairs  - Derive upgrade pairings from a versions query parameter
//   - POST /v1/matrix/pairs  - Derive upgrade pairings from a JSON body
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Request Formats
//
// GET requests pass versions as a comma-separated query parameter:
//
//	curl "http://localhost:8080/v1/matrix/slices?versions=4.7.2,5.3,5.4.1"
//
// POST requests accept a JSON body:
//
//	curl -X POST http://localhost:8080/v1/matrix/pairs \
//	  -H "Content-Type: application/json" \
//	  -d '{"versions":["4.7.2","5.3","5.4.1"]}'
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/release-matrix/pkg/api.version=1.0.0'"
package api
