package variant

import (
	"fmt"
	"reflect"
)

// Dispatcher invokes a per-alternative handler on whichever alternative is
// live. It is built once per (schema, handler set); registration validates
// exhaustiveness and resolves the common result type, so Visit itself has
// no per-call type decisions left to make.
type Dispatcher struct {
	schema *Schema
	calls  []func(value any) any
	result reflect.Type // nil for a void dispatcher
	void   bool
}

// NewDispatcher validates handlers and builds a dispatcher.
//
// Exactly one handler per alternative, in declaration order. Each handler
// is a func taking one parameter assignable from the alternative's payload
// type and returning zero or one value. Result policy: all handlers void
// means the dispatcher is void; uniform result types are returned as-is;
// mixed result types resolve to one handler result type every other result
// is assignable or convertible to; otherwise registration fails.
func NewDispatcher(s *Schema, handlers []any) (*Dispatcher, error) {
	if s == nil {
		return nil, &DispatchError{Kind: DispatchErrNoSchema}
	}
	n := s.Len()
	if len(handlers) != n {
		return nil, &DispatchError{Kind: DispatchErrNotExhaustive, Want: n, Got: len(handlers)}
	}

	funcs := make([]reflect.Value, n)
	ins := make([]reflect.Type, n)
	outs := make([]reflect.Type, n)
	for i := 0; i < n; i++ {
		alt, _ := s.set.At(i)
		hv := reflect.ValueOf(handlers[i])
		if !hv.IsValid() || hv.Kind() != reflect.Func {
			return nil, &DispatchError{Kind: DispatchErrBadHandler, Index: i, Detail: "not a func"}
		}
		ht := hv.Type()
		if ht.IsVariadic() || ht.NumIn() != 1 {
			return nil, &DispatchError{Kind: DispatchErrBadHandler, Index: i, Detail: "must take exactly one parameter"}
		}
		if !alt.Type.AssignableTo(ht.In(0)) {
			return nil, &DispatchError{
				Kind:  DispatchErrBadHandler,
				Index: i,
				Detail: fmt.Sprintf("parameter %v cannot accept payload type %v", ht.In(0), alt.Type),
			}
		}
		if ht.NumOut() > 1 {
			return nil, &DispatchError{Kind: DispatchErrBadHandler, Index: i, Detail: "must return at most one value"}
		}
		funcs[i] = hv
		ins[i] = ht.In(0)
		if ht.NumOut() == 1 {
			outs[i] = ht.Out(0)
		}
	}

	result, void, err := resolveResultType(outs)
	if err != nil {
		return nil, err
	}

	d := &Dispatcher{schema: s, result: result, void: void}
	d.calls = make([]func(value any) any, n)
	for i := 0; i < n; i++ {
		hv := funcs[i]
		in := ins[i]
		out := outs[i]
		d.calls[i] = func(value any) any {
			arg := reflect.ValueOf(value)
			if !arg.IsValid() {
				arg = reflect.Zero(in)
			}
			rets := hv.Call([]reflect.Value{arg})
			if void {
				return nil
			}
			rv := rets[0]
			if out != result {
				rv = rv.Convert(result)
			}
			return rv.Interface()
		}
	}
	return d, nil
}

// resolveResultType applies the common-result policy to the per-handler
// result types (nil marks a void handler).
func resolveResultType(outs []reflect.Type) (reflect.Type, bool, error) {
	voids := 0
	for _, t := range outs {
		if t == nil {
			voids++
		}
	}
	if voids == len(outs) {
		return nil, true, nil
	}
	if voids > 0 {
		return nil, false, &DispatchError{
			Kind:    DispatchErrNoCommonResult,
			Results: outs,
			Detail:  "mix of value and void handlers",
		}
	}

	distinct := make([]reflect.Type, 0, len(outs))
	for _, t := range outs {
		seen := false
		for _, d := range distinct {
			if d == t {
				seen = true
				break
			}
		}
		if !seen {
			distinct = append(distinct, t)
		}
	}
	if len(distinct) == 1 {
		return distinct[0], false, nil
	}
	if c := pickCommon(distinct, reflect.Type.AssignableTo); c != nil {
		return c, false, nil
	}
	if c := pickCommon(distinct, reflect.Type.ConvertibleTo); c != nil {
		return c, false, nil
	}
	return nil, false, &DispatchError{Kind: DispatchErrNoCommonResult, Results: distinct}
}

// pickCommon returns the first candidate every other type relates to, in
// handler declaration order, keeping resolution deterministic.
func pickCommon(distinct []reflect.Type, rel func(reflect.Type, reflect.Type) bool) reflect.Type {
	for _, c := range distinct {
		all := true
		for _, t := range distinct {
			if t != c && !rel(t, c) {
				all = false
				break
			}
		}
		if all {
			return c
		}
	}
	return nil
}

// Void reports whether every handler yields no value.
func (d *Dispatcher) Void() bool {
	return d != nil && d.void
}

// ResultType returns the resolved common result type, nil when void.
func (d *Dispatcher) ResultType() reflect.Type {
	if d == nil {
		return nil
	}
	return d.result
}

// Visit invokes the live alternative's handler exactly once and returns
// its result converted to the common result type (nil for void
// dispatchers).
//
// The body is an ordered, short-circuiting scan over the index range with
// one early exit per iteration. That control-flow shape is the one
// optimizers recognize when lowering a total index dispatch to a dense
// indexed jump; whether a given compiler performs the lowering is
// target-dependent and verified empirically, not assumed. A discriminant
// outside [0, N) means the instance is corrupted and is fatal.
func (d *Dispatcher) Visit(inst *Instance) (any, error) {
	if d == nil || d.schema == nil {
		return nil, &DispatchError{Kind: DispatchErrNoSchema}
	}
	if inst == nil || !inst.live {
		return nil, &DispatchError{Kind: DispatchErrNoLivePayload}
	}
	if inst.schema != d.schema {
		return nil, &DispatchError{Kind: DispatchErrSchemaMismatch}
	}
	idx := int(inst.disc)
	n := len(d.calls)
	for i := 0; i < n; i++ {
		if i == idx {
			return d.calls[i](inst.slot), nil
		}
	}
	panic(fmt.Errorf("variant: discriminant %d outside [0,%d): corrupted instance", idx, n))
}

// VisitAs invokes the dispatcher and asserts the result to R.
func VisitAs[R any](d *Dispatcher, inst *Instance) (R, error) {
	var zero R
	out, err := d.Visit(inst)
	if err != nil {
		return zero, err
	}
	r, ok := out.(R)
	if !ok && out != nil {
		return zero, &DispatchError{
			Kind:   DispatchErrNoCommonResult,
			Detail: fmt.Sprintf("result %T does not satisfy requested type", out),
		}
	}
	return r, err
}

// VisitAny invokes fn exactly once with the live alternative's index and
// payload, for callers that want a single generic callback instead of a
// registered handler set. It uses the same scan shape as Dispatcher.Visit.
func VisitAny(inst *Instance, fn func(index int, value any) any) (any, error) {
	if inst == nil || inst.schema == nil {
		return nil, &DispatchError{Kind: DispatchErrNoSchema}
	}
	if !inst.live {
		return nil, &DispatchError{Kind: DispatchErrNoLivePayload}
	}
	idx := int(inst.disc)
	n := inst.schema.Len()
	for i := 0; i < n; i++ {
		if i == idx {
			return fn(i, inst.slot), nil
		}
	}
	panic(fmt.Errorf("variant: discriminant %d outside [0,%d): corrupted instance", idx, n))
}
