// Package slot defines the durable slot medium behind the local store.
//
// A slot is a single named string holding one collection's full JSON
// serialization. Reads return the whole payload; writes replace it
// atomically. There are no partial writes and no transactions spanning
// slots.
package slot

import "context"

// Backend is the interface a slot medium must implement.
type Backend interface {
	// Get returns the payload stored under key. ok is false when the slot
	// has never been written; a missing slot is not an error.
	Get(ctx context.Context, key string) (payload string, ok bool, err error)

	// Put replaces the payload stored under key. The write is atomic at
	// the slot level: a failed Put leaves the previous payload readable.
	Put(ctx context.Context, key, payload string) error

	// Close releases any resources held by the backend.
	Close() error
}
