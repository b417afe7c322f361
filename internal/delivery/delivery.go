// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a running transport surface of the application.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
