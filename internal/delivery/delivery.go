// Package delivery defines the contract every transport entrypoint
// implements.
package delivery

import "context"

// Delivery is a server that can be started by the application runner. Fx
// collects every implementation and serves them together.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
