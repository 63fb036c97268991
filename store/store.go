// Package store persists named vector collections.
//
// Every backend keeps collections in the JSON array format produced by
// [vector.Collection.MarshalJSON], so a collection exported from one backend
// can be imported into another unchanged.
package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/hasbyte1/go-vectors/vector"
)

// Store manages named vector collections
type Store interface {
	// Save creates or replaces the collection stored under name
	Save(ctx context.Context, name string, c *vector.Collection) error

	// Load returns a fresh copy of the collection stored under name
	Load(ctx context.Context, name string) (*vector.Collection, error)

	// Delete removes the collection stored under name
	Delete(ctx context.Context, name string) error

	// List returns the stored names in ascending order
	List(ctx context.Context) ([]string, error)

	// Close releases any resources held by the store
	Close() error
}

// Backend identifies a Store implementation
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

var (
	// ErrNotFound is returned when no collection is stored under a name.
	ErrNotFound = errors.New("store: collection not found")

	// ErrInvalidName is returned for names outside [A-Za-z0-9_-]{1,64}.
	ErrInvalidName = errors.New("store: invalid collection name")

	// ErrUnknownBackend is returned by Open for an unrecognised backend.
	ErrUnknownBackend = errors.New("store: unknown backend")
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidateName reports whether name can be used as a collection name
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Open creates the store for backend rooted at path.
// path is a directory for BackendFile, a database file for BackendSQLite and
// ignored for BackendMemory.
func Open(backend Backend, path string) (Store, error) {
	switch backend {
	case BackendFile:
		return NewFileStore(path)
	case BackendSQLite:
		return NewSQLiteStore(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

func notFound(name string) error {
	return fmt.Errorf("%w: %q", ErrNotFound, name)
}
