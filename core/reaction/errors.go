package reaction

import (
	"errors"
	"fmt"
)

// ErrUnbound is the cause of every binding-precondition violation.
var ErrUnbound = errors.New("used before bind")

// PreconditionError is the panic value raised when an operation needs a
// binding that was never established.
type PreconditionError struct {
	Op   string // operation that needed the binding, e.g. "show"
	Slot string // name of the slot, e.g. "display"
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("reaction: %s: %s %v", e.Op, e.Slot, ErrUnbound)
}

func (e *PreconditionError) Unwrap() error {
	return ErrUnbound
}

// IsPrecondition reports whether v (typically a recovered panic value) is a
// binding-precondition violation.
func IsPrecondition(v any) bool {
	err, ok := v.(error)
	if !ok {
		return false
	}
	var perr *PreconditionError
	return errors.As(err, &perr)
}
