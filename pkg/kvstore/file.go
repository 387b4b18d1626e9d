package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// file implements Store with the durable scope persisted to a single JSON
// file and the session scope held in memory only, mirroring the
// localStorage/sessionStorage split of a browser.
type file struct {
	mu      sync.Mutex
	path    string
	durable map[string]string
	session map[string]string
}

// NewFile creates a file-backed Store persisting durable keys to path.
// An existing file that cannot be decoded is treated as empty rather than
// failing: the caller regenerates whatever state was lost.
func NewFile(path string) (Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	durable := make(map[string]string)
	if raw, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(raw, &durable); err != nil {
			durable = make(map[string]string)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read storage file %s: %w", path, err)
	}

	return &file{
		path:    path,
		durable: durable,
		session: make(map[string]string),
	}, nil
}

func (f *file) Get(_ context.Context, scope Scope, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	value, ok := f.scoped(scope)[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (f *file) Set(_ context.Context, scope Scope, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.scoped(scope)[key] = value
	if scope == Durable {
		return f.flush()
	}
	return nil
}

func (f *file) Remove(_ context.Context, scope Scope, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.scoped(scope), key)
	if scope == Durable {
		return f.flush()
	}
	return nil
}

func (f *file) scoped(scope Scope) map[string]string {
	if scope == Session {
		return f.session
	}
	return f.durable
}

// flush writes the durable map through a temp file and rename so a crash
// mid-write never leaves a truncated file behind. Caller holds the lock.
func (f *file) flush() error {
	raw, err := json.Marshal(f.durable)
	if err != nil {
		return fmt.Errorf("failed to encode durable state: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write storage file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace storage file: %w", err)
	}
	return nil
}
