package layout

import "fmt"

// ErrorKind enumerates footprint computation failures.
type ErrorKind uint8

const (
	// ErrNoAlternatives indicates a footprint request for an empty set.
	ErrNoAlternatives ErrorKind = iota + 1
)

// Error is a layout computation error.
type Error struct {
	Kind ErrorKind
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ErrNoAlternatives:
		return "cannot compute a footprint for an empty alternative set"
	default:
		return fmt.Sprintf("layout error kind=%d", e.Kind)
	}
}
