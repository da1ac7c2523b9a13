package server

import "context"

// Server is the lifecycle contract of the transport servers in this package.
type Server interface {
	// RunServer serves until ctx is cancelled or a listener fails, then shuts
	// down. It returns the listener failure, if any.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context)
}
