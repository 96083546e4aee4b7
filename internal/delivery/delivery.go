// Package delivery defines the inbound transport contracts of the
// application.
package delivery

import "context"

// Delivery is a server that accepts requests, such as an HTTP listener.
// Implementations register an Fx OnStop hook for graceful shutdown.
type Delivery interface {
	Serve(ctx context.Context) error
}
