// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server provides a reusable HTTP server with the middleware stack
// shared by the release-matrix API surfaces.
//
// The server is stateless. Application handlers are registered through
// options and wrapped with the common middleware chain:
//
//   - Prometheus request metrics (rate, errors, duration)
//   - API version negotiation via Accept header
//   - Request ID tracking (X-Request-Id, UUID format)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Request logging
//
// # Usage
//
//	s := server.New(
//	    server.WithName("relmatd"),
//	    server.WithVersion("1.0.0"),
//	    server.WithHandlers(map[string]http.HandlerFunc{
//	        "/v1/matrix/slices": handleSlices,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Run blocks until the context is cancelled or the server fails, then
// shuts down gracefully within the configured shutdown timeout.
//
// # System Endpoints
//
// GET /health - liveness probe, always 200 when the process is up
//
// GET /ready - readiness probe, 503 until the server is serving
//
// GET /metrics - Prometheus metrics
//
// System endpoints bypass rate limiting.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "no versions provided",
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-01-12T12:00:00Z",
//	  "retryable": false
//	}
//
// # Configuration
//
// Environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown window, useful to match
//     the Kubernetes eviction grace period
package server
