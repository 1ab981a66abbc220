// Package delivery holds the inbound adapters: the HTTP API and the push worker.
package delivery

import "context"

// Delivery is a server started by a binary and stopped through its fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
