package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/release-matrix/pkg/logging"
	"github.com/NVIDIA/release-matrix/pkg/matrix"
	"github.com/NVIDIA/release-matrix/pkg/server"
)

const (
	name           = "relmatd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/release-matrix/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	// Setup matrix handlers
	b := matrix.NewBuilder(matrix.WithVersion(version))

	r := map[string]http.HandlerFunc{
		"/v1/matrix/slices": b.HandleSlices,
		"/v1/matrix/pairs":  b.HandlePairs,
	}

	// Create and run server
	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandlers(r),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
