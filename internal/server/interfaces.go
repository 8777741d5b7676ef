package server

import "context"

// Server defines the lifecycle contract of the transport server managed by
// this package.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT, then shuts
	// down gracefully.
	RunServer()

	// Run serves requests until ctx is done, then shuts down gracefully.
	// It returns early with an error when the listener cannot be created.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
