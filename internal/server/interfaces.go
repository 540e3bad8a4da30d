package server

import "context"

// Server runs the go-humans HTTP API until it is told to stop.
type Server interface {
	// Run binds the listen address and serves requests. It returns nil after
	// a graceful stop triggered by ctx or a termination signal, and an error
	// when the address cannot be bound or serving fails.
	Run(ctx context.Context) error

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
