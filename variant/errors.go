package variant

import (
	"fmt"
	"reflect"
)

// AccessErrorKind enumerates checked access and construction failures.
type AccessErrorKind uint8

const (
	AccessErrOutOfRange AccessErrorKind = iota + 1
	AccessErrPayloadLive
	AccessErrTypeMismatch
	AccessErrNotActive
	AccessErrNoSchema
)

// AccessError reports caller misuse on a checked entry point. Unchecked
// entry points do not produce it; they either succeed or are fatal.
type AccessError struct {
	Kind  AccessErrorKind
	Index int
	Len   int
	Got   reflect.Type
	Want  reflect.Type
}

func (e *AccessError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case AccessErrOutOfRange:
		return fmt.Sprintf("alternative index %d out of range [0,%d)", e.Index, e.Len)
	case AccessErrPayloadLive:
		return fmt.Sprintf("emplace(%d) with a payload already live; reset first", e.Index)
	case AccessErrTypeMismatch:
		if e.Got == nil {
			return fmt.Sprintf("alternative %d expects %v, got untyped nil", e.Index, e.Want)
		}
		return fmt.Sprintf("alternative %d expects %v, got %v", e.Index, e.Want, e.Got)
	case AccessErrNotActive:
		return fmt.Sprintf("alternative %d is not the active alternative", e.Index)
	case AccessErrNoSchema:
		return "instance has no schema"
	default:
		return fmt.Sprintf("access error kind=%d", e.Kind)
	}
}

// DispatchErrorKind enumerates dispatcher registration and use failures.
type DispatchErrorKind uint8

const (
	// DispatchErrNotExhaustive indicates a handler count that does not
	// cover [0, N).
	DispatchErrNotExhaustive DispatchErrorKind = iota + 1
	DispatchErrBadHandler
	DispatchErrNoCommonResult
	DispatchErrNoLivePayload
	DispatchErrSchemaMismatch
	DispatchErrNoSchema
)

// DispatchError reports a dispatcher build failure or a visit on an
// instance with no live payload. Registration failures are fatal for the
// dispatcher: nothing downstream retries them.
type DispatchError struct {
	Kind    DispatchErrorKind
	Index   int
	Want    int
	Got     int
	Results []reflect.Type // for DispatchErrNoCommonResult
	Detail  string
}

func (e *DispatchError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case DispatchErrNotExhaustive:
		return fmt.Sprintf("dispatcher must cover all %d alternatives, got %d handlers", e.Want, e.Got)
	case DispatchErrBadHandler:
		return fmt.Sprintf("handler %d: %s", e.Index, e.Detail)
	case DispatchErrNoCommonResult:
		return fmt.Sprintf("handler results have no common type: %v", e.Results)
	case DispatchErrNoLivePayload:
		return "visit on an instance with no live payload"
	case DispatchErrSchemaMismatch:
		return "instance was built from a different schema"
	case DispatchErrNoSchema:
		return "dispatcher has no schema"
	default:
		return fmt.Sprintf("dispatch error kind=%d", e.Kind)
	}
}
