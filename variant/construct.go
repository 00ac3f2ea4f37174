package variant

import "vartree/altset"

// Construct builds an instance with alternative i's payload live.
func (s *Schema) Construct(i int, value any) (*Instance, error) {
	if s == nil {
		return nil, &AccessError{Kind: AccessErrNoSchema}
	}
	inst := s.NewInstance()
	if err := inst.Emplace(i, value); err != nil {
		return nil, err
	}
	return inst, nil
}

// ConstructByType builds an instance for the alternative whose payload
// type is T. T must occur exactly once in the set; absent or duplicated
// types fail with the set's registration error.
func ConstructByType[T any](s *Schema, value T) (*Instance, error) {
	if s == nil {
		return nil, &AccessError{Kind: AccessErrNoSchema}
	}
	i, err := altset.IndexFor[T](s.set)
	if err != nil {
		return nil, err
	}
	return s.Construct(i, value)
}

// GetByType returns the live payload as T. Like ConstructByType it
// requires T to be unique in the set; a live payload of a different
// alternative reports AccessErrNotActive.
func GetByType[T any](inst *Instance) (T, error) {
	var zero T
	if inst == nil || inst.schema == nil {
		return zero, &AccessError{Kind: AccessErrNoSchema}
	}
	i, err := altset.IndexFor[T](inst.schema.set)
	if err != nil {
		return zero, err
	}
	v, ok := inst.TryGet(i)
	if !ok {
		return zero, &AccessError{Kind: AccessErrNotActive, Index: i}
	}
	out, ok := v.(T)
	if !ok {
		return zero, &AccessError{Kind: AccessErrNotActive, Index: i}
	}
	return out, nil
}
