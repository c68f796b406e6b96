package nodestyle

import (
	"errors"
	"fmt"
)

// Sentinel errors for style loading.
var (
	// ErrInvalidDocument indicates style text that is not a JSON or YAML object.
	ErrInvalidDocument = errors.New("invalid style document")

	// ErrNilStore indicates NewFromTheme was called without a store.
	ErrNilStore = errors.New("theme store cannot be nil")
)

// LoadError wraps errors from an overlay pass.
// The style is left unchanged when one is returned.
type LoadError struct {
	// Source is the kind of input ("json", "yaml", "file", "theme").
	Source string
	// Name is the file path or theme name, if any.
	Name string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("load %s style %q: %v", e.Source, e.Name, e.Err)
	}
	return fmt.Sprintf("load %s style: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *LoadError) Unwrap() error {
	return e.Err
}
