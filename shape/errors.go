package shape

import "fmt"

// ErrorKind enumerates tree construction and decoding failures.
type ErrorKind uint8

const (
	// ErrEmptySet indicates a build request for zero alternatives; a sum
	// type must declare at least one.
	ErrEmptySet ErrorKind = iota + 1
	ErrBadSnapshot
)

// Error is a build-time shape error.
type Error struct {
	Kind   ErrorKind
	Count  int    // for ErrEmptySet
	Detail string // for ErrBadSnapshot
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ErrEmptySet:
		return fmt.Sprintf("cannot build a storage tree for %d alternatives", e.Count)
	case ErrBadSnapshot:
		return fmt.Sprintf("invalid tree snapshot: %s", e.Detail)
	default:
		return fmt.Sprintf("shape error kind=%d", e.Kind)
	}
}
