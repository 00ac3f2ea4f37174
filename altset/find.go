package altset

import "reflect"

// IndexOfType resolves a payload type to its declaration index. It is only
// valid for types that occur exactly once in the set; absent and duplicated
// types both fail, and the failure is a build-time condition for whatever
// accessor requested the resolution.
func (s *Set) IndexOfType(t reflect.Type) (int, error) {
	if s == nil || t == nil {
		return 0, &BuildError{Kind: BuildErrUnknownType, Type: t}
	}
	idx, ok := s.byType[t]
	if !ok {
		return 0, &BuildError{Kind: BuildErrUnknownType, Type: t}
	}
	if idx == duplicateType {
		return 0, &BuildError{Kind: BuildErrDuplicateType, Type: t}
	}
	return idx, nil
}

// IndexFor resolves the payload type T to its declaration index.
func IndexFor[T any](s *Set) (int, error) {
	return s.IndexOfType(reflect.TypeOf((*T)(nil)).Elem())
}
