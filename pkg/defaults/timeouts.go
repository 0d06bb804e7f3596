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

// Package defaults centralizes timeout and limit constants shared across the
// CLI, generator, and API server.
package defaults

import "time"

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Generator timeouts for matrix derivation and file emission.
const (
	// GenerateTimeout bounds a full generation run, including reading the
	// version list and writing every rendered file.
	GenerateTimeout = 60 * time.Second
)

// HTTP client timeouts for outbound requests (remote version lists).
const (
	// HTTPClientTimeout is the total request timeout.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the TCP connect timeout.
	HTTPConnectTimeout = 10 * time.Second

	// HTTPKeepAlive is the keep-alive probe interval.
	HTTPKeepAlive = 30 * time.Second

	// HTTPTLSHandshakeTimeout bounds the TLS handshake.
	HTTPTLSHandshakeTimeout = 10 * time.Second

	// HTTPResponseHeaderTimeout bounds the wait for response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout closes idle pooled connections.
	HTTPIdleConnTimeout = 90 * time.Second
)

// Request limits.
const (
	// MaxRequestVersions caps the number of versions accepted in a single
	// API request.
	MaxRequestVersions = 500
)
