// Package theme stores named style documents.
//
// A theme is the raw text of a style overlay, for example a dark variant
// of the connection colors. Themes hold configuration only; colors
// assigned to connection types at runtime are never stored.
package theme

import (
	"errors"
	"time"
)

// Store persists named style documents.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores doc under name, replacing any previous document.
	// Every save gets a new revision.
	Save(name string, doc []byte) (Info, error)

	// Load retrieves a document.
	// Returns ErrNotFound if no theme has that name.
	Load(name string) ([]byte, error)

	// List returns metadata for all themes, ordered by name.
	// Returns empty slice (not error) if there are none.
	List() ([]Info, error)

	// Delete removes a theme.
	// Returns nil if the theme doesn't exist.
	Delete(name string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Info provides metadata without loading the document.
type Info struct {
	Name     string
	Revision string
	Updated  time.Time
	Size     int64
}

// Sentinel errors for theme operations.
var (
	// ErrNotFound indicates a theme doesn't exist.
	ErrNotFound = errors.New("theme not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("theme store closed")

	// ErrInvalidName indicates an empty theme name.
	ErrInvalidName = errors.New("theme name required")
)
