package storage

import (
	"context"
	"errors"
)

// KeyValueStore is the durable storage collaborator: one string slot per
// entity collection, whole-payload reads and overwrites.
//
// Available must be consulted before every operation and must not be cached
// by callers; whether durable storage can be used can change between
// execution contexts (tests, detached mirrors, device storage).
type KeyValueStore interface {
	// Available reports whether durable storage can be used right now.
	Available(ctx context.Context) bool

	// GetItem reads a slot. The second return value is false when the slot
	// does not exist, which is not an error.
	GetItem(ctx context.Context, key string) (string, bool, error)

	// SetItem overwrites a slot with the given payload in a single write.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes a slot entirely. Removing an absent slot is not an error.
	RemoveItem(ctx context.Context, key string) error
}

// ErrUnavailable is returned by backends that exist but cannot currently be
// reached (e.g. a closed database handle).
var ErrUnavailable = errors.New("durable storage unavailable")
