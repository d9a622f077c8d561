package assembly

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissing marks a dependency or configuration value that is required but
// absent at build time.
var ErrMissing = errors.New("missing dependency")

// Error reports a failed build. Path lists the components being built from the
// outermost builder down to the one whose constructor (or sub-builder) failed.
type Error struct {
	Path []string
	Err  error
}

func (e *Error) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("assembly: %v", e.Err)
	}
	return fmt.Sprintf("assembly: %s: %v", strings.Join(e.Path, " > "), e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Component returns the innermost component that failed.
func (e *Error) Component() string {
	if len(e.Path) == 0 {
		return ""
	}
	return e.Path[len(e.Path)-1]
}

// IsAssemblyError reports whether err came out of a builder.
func IsAssemblyError(err error) bool {
	var aerr *Error
	return errors.As(err, &aerr)
}

// IsMissing reports whether err was caused by an absent dependency.
func IsMissing(err error) bool {
	return errors.Is(err, ErrMissing)
}

// Missing returns an ErrMissing error naming what was absent.
func Missing(what string) error {
	return fmt.Errorf("%w: %s", ErrMissing, what)
}

// Require returns Missing(what) when v is the zero value of T. Constructors use
// it to reject absent configuration.
func Require[T comparable](v T, what string) error {
	var zero T
	if v == zero {
		return Missing(what)
	}
	return nil
}

// wrap attributes err to component. An error that already carries a path gets
// component prepended; anything else starts a new path.
func wrap(component string, err error) error {
	var aerr *Error
	if errors.As(err, &aerr) {
		path := make([]string, 0, len(aerr.Path)+1)
		path = append(path, component)
		path = append(path, aerr.Path...)
		return &Error{Path: path, Err: aerr.Err}
	}
	return &Error{Path: []string{component}, Err: err}
}
