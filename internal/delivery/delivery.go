// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is a long-running transport endpoint. Serve blocks until the
// server stops or the context is canceled.
type Delivery interface {
	Serve(ctx context.Context) error
}
