// Package session keeps per-browser customizer state between requests.
package session

import "context"

// Store holds one value per session ID.
type Store[T any] interface {
	Get(ctx context.Context, id string) (T, bool, error)
	Put(ctx context.Context, id string, v T) error
	NewID() string
}
