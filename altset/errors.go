package altset

import (
	"fmt"
	"reflect"
)

// BuildErrorKind enumerates registration-time validation failures.
type BuildErrorKind uint8

const (
	// BuildErrEmptySet indicates a set declared with zero alternatives.
	BuildErrEmptySet BuildErrorKind = iota + 1
	BuildErrUnknownType
	BuildErrDuplicateType
	BuildErrNilType
)

// BuildError is a registration-time error. It always blocks building the
// set or resolving a by-type index; nothing downstream retries it.
type BuildError struct {
	Kind  BuildErrorKind
	Type  reflect.Type // for type lookup failures
	Index int          // for BuildErrNilType
}

func (e *BuildError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case BuildErrEmptySet:
		return "alternative set must declare at least one alternative"
	case BuildErrUnknownType:
		return fmt.Sprintf("type %v is not declared in the alternative set", e.Type)
	case BuildErrDuplicateType:
		return fmt.Sprintf("type %v occurs more than once in the alternative set", e.Type)
	case BuildErrNilType:
		return fmt.Sprintf("alternative #%d has no payload type", e.Index)
	default:
		return fmt.Sprintf("build error kind=%d", e.Kind)
	}
}
