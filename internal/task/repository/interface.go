package repository

import "context"

// Backend is the key-value slot holding the serialized task collection.
// Implementations persist the payload across process restarts; the
// collection layout inside the payload is owned by the store.
type Backend interface {
	// Load reads the persisted payload. An empty slot returns (nil, nil),
	// not an error.
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the slot contents with payload.
	Save(ctx context.Context, payload []byte) error
}
