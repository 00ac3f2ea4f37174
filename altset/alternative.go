package altset

import "reflect"

// Alternative describes one member of a closed alternative set: a payload
// type pinned to its declaration-order index.
type Alternative struct {
	// Name identifies the alternative in tooling output. It does not have to
	// be unique; lookups go through the index or the payload type.
	Name string

	// Type is the payload type stored when this alternative is active.
	Type reflect.Type

	// Drop, when non-nil, runs exactly once at the end of the payload's
	// lifetime with the value that was live.
	Drop func(value any)
}

// Of builds an Alternative for the payload type T.
func Of[T any](name string) Alternative {
	return Alternative{Name: name, Type: reflect.TypeOf((*T)(nil)).Elem()}
}

// OfDrop builds an Alternative for T with a lifetime-end hook.
func OfDrop[T any](name string, drop func(value T)) Alternative {
	alt := Of[T](name)
	if drop != nil {
		alt.Drop = func(value any) {
			v, ok := value.(T)
			if !ok {
				return
			}
			drop(v)
		}
	}
	return alt
}
