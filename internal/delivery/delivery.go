// Package delivery defines the contract shared by every long-running inbound surface.
package delivery

import "context"

// Delivery is started by the entrypoint in its own goroutine. Serve blocks until the
// surface stops and returns a non-nil error only on abnormal termination.
type Delivery interface {
	Serve(ctx context.Context) error
}
