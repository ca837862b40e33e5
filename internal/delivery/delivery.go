// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a long-running inbound server, started by the application
// entrypoint and stopped through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
