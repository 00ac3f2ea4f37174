package variant

import (
	"fmt"
	"reflect"

	"fortio.org/safecast"

	"vartree/shape"
)

// Discriminant is the runtime tag recording which alternative is active.
// Its declared width in storage is Schema.Footprint().TagSize; the in-Go
// representation is fixed at 32 bits, matching the widest supported set.
type Discriminant uint32

// Instance pairs one discriminant with one storage-tree instance. Every
// alternative overlaps the same slot, so at most one payload is ever live
// and a payload must never be read while a different alternative is
// active.
//
// Instances are plain single-threaded values. Because siblings share
// storage, writing one alternative while another goroutine reads a
// different alternative of the same instance races on the same slot even
// though the two look like distinct members; concurrent use needs
// exclusive access to the whole instance.
type Instance struct {
	schema *Schema
	disc   Discriminant
	leaf   shape.NodeID // leaf reached by the last construction descent
	slot   any          // overlapping storage shared by all alternatives
	live   bool
}

// NewInstance returns an empty instance: no payload live yet.
func (s *Schema) NewInstance() *Instance {
	return &Instance{schema: s}
}

// Emplace begins the lifetime of alternative i's payload. The slot must be
// empty; callers switching alternatives go through Reset or Assign. The
// construction protocol descends the storage tree to the leaf covering i,
// then records the discriminant.
func (inst *Instance) Emplace(i int, value any) error {
	if inst == nil || inst.schema == nil {
		return &AccessError{Kind: AccessErrNoSchema}
	}
	if inst.live {
		return &AccessError{Kind: AccessErrPayloadLive, Index: i}
	}
	alt, ok := inst.schema.set.At(i)
	if !ok {
		return &AccessError{Kind: AccessErrOutOfRange, Index: i, Len: inst.schema.Len()}
	}
	if err := checkAssignable(i, value, alt.Type); err != nil {
		return err
	}
	inst.leaf = inst.schema.tree.Walk(i)
	disc, err := safecast.Conv[uint32](i)
	if err != nil {
		panic(fmt.Errorf("discriminant overflow: %w", err))
	}
	inst.disc = Discriminant(disc)
	inst.slot = value
	inst.live = true
	return nil
}

// Reset ends the lifetime of the live payload, running its Drop hook
// exactly once. Resetting an empty instance does nothing.
func (inst *Instance) Reset() {
	if inst == nil || !inst.live {
		return
	}
	alt, ok := inst.schema.set.At(int(inst.disc))
	if ok && alt.Drop != nil {
		alt.Drop(inst.slot)
	}
	inst.slot = nil
	inst.leaf = shape.NoNodeID
	inst.live = false
}

// Assign replaces the live payload: Reset followed by Emplace, possibly
// reaching a different leaf.
func (inst *Instance) Assign(i int, value any) error {
	if inst == nil || inst.schema == nil {
		return &AccessError{Kind: AccessErrNoSchema}
	}
	inst.Reset()
	return inst.Emplace(i, value)
}

// Get is the unchecked accessor: it descends to alternative i's leaf and
// returns the slot without comparing i against the discriminant. The
// contract requires i to be the active index; violating it yields whatever
// payload is live (the slot is the same overlapping storage) and never
// touches other instances. Boundary code should use TryGet instead.
//
// An index outside [0, Len()) is fatal.
func (inst *Instance) Get(i int) any {
	if inst == nil || inst.schema == nil {
		panic(fmt.Errorf("variant: Get(%d) on an instance without a schema", i))
	}
	_ = inst.schema.tree.Walk(i)
	return inst.slot
}

// TryGet is the checked accessor: it returns the payload only when i is
// the active index, trading a branch for debuggability.
func (inst *Instance) TryGet(i int) (any, bool) {
	if inst == nil || inst.schema == nil || !inst.live {
		return nil, false
	}
	if i < 0 || i >= inst.schema.Len() || Discriminant(i) != inst.disc {
		return nil, false
	}
	_ = inst.schema.tree.Walk(i)
	return inst.slot, true
}

// ActiveIndex returns the discriminant and whether a payload is live.
func (inst *Instance) ActiveIndex() (Discriminant, bool) {
	if inst == nil || !inst.live {
		return 0, false
	}
	return inst.disc, true
}

// ActiveLeaf returns the storage-tree leaf of the live payload.
func (inst *Instance) ActiveLeaf() (shape.NodeID, bool) {
	if inst == nil || !inst.live {
		return shape.NoNodeID, false
	}
	return inst.leaf, true
}

// Schema returns the schema this instance was built from.
func (inst *Instance) Schema() *Schema {
	if inst == nil {
		return nil
	}
	return inst.schema
}

// Close tears the instance down, ending the live lifetime exactly once.
// It is idempotent.
func (inst *Instance) Close() {
	inst.Reset()
}

func checkAssignable(i int, value any, want reflect.Type) error {
	vt := reflect.TypeOf(value)
	if vt == nil {
		if nilAssignable(want) {
			return nil
		}
		return &AccessError{Kind: AccessErrTypeMismatch, Index: i, Want: want}
	}
	if !vt.AssignableTo(want) {
		return &AccessError{Kind: AccessErrTypeMismatch, Index: i, Got: vt, Want: want}
	}
	return nil
}

func nilAssignable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
