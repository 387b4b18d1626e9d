// Package kvstore provides a two-scope key-value storage contract used by
// every stateful service. Values are plain strings; structured payloads are
// encoded to JSON at the call site via Load and Save.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Scope selects the persistence lifetime of a key.
type Scope int

const (
	// Durable keys survive process restarts.
	Durable Scope = iota
	// Session keys live until the session ends.
	Session
)

// String returns a human-readable scope name.
func (s Scope) String() string {
	switch s {
	case Durable:
		return "durable"
	case Session:
		return "session"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// ErrNotFound is returned by Get when no value exists under the key.
var ErrNotFound = errors.New("key not found")

// Store is an interface for scoped key-value storage operations.
// It abstracts the underlying backend, allowing for different implementations
// (e.g., in-memory, file, Redis).
type Store interface {
	// Get retrieves the value stored under key in the given scope.
	// Returns ErrNotFound if no value exists.
	Get(ctx context.Context, scope Scope, key string) (string, error)

	// Set stores value under key in the given scope, replacing any
	// previous value.
	Set(ctx context.Context, scope Scope, key, value string) error

	// Remove deletes the value stored under key. Removing an absent key
	// is not an error.
	Remove(ctx context.Context, scope Scope, key string) error
}

// Load decodes the JSON value stored under key into v and reports whether a
// usable value was found. Absent keys, storage errors and undecodable
// payloads all report false: a value that cannot be read degrades to
// "absent", it is never surfaced as a failure.
func Load(ctx context.Context, s Store, scope Scope, key string, v any) bool {
	raw, err := s.Get(ctx, scope, key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false
	}
	return true
}

// Save encodes v as JSON and stores it under key.
func Save(ctx context.Context, s Store, scope Scope, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %q: %w", key, err)
	}
	if err := s.Set(ctx, scope, key, string(raw)); err != nil {
		return fmt.Errorf("failed to store value for key %q: %w", key, err)
	}
	return nil
}
