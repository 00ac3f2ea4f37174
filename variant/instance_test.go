package variant_test

import (
	"errors"
	"testing"

	"vartree/altset"
	"vartree/variant"
)

// sixAlts is the six distinct-typed scenario set.
func sixAlts() []altset.Alternative {
	return []altset.Alternative{
		altset.Of[bool]("flag"),
		altset.Of[int8]("tiny"),
		altset.Of[int16]("short"),
		altset.Of[int32]("word"),
		altset.Of[int64]("long"),
		altset.Of[string]("label"),
	}
}

func TestConstructGet_RoundTrip(t *testing.T) {
	schema, err := variant.NewSchema(sixAlts())
	if err != nil {
		t.Fatal(err)
	}
	values := []any{true, int8(-7), int16(300), int32(42), int64(1 << 40), "payload"}
	for i, v := range values {
		inst, err := schema.Construct(i, v)
		if err != nil {
			t.Fatalf("Construct(%d, %v): %v", i, v, err)
		}
		if got := inst.Get(i); got != v {
			t.Fatalf("Get(%d) = %v, want %v", i, got, v)
		}
		if got, ok := inst.TryGet(i); !ok || got != v {
			t.Fatalf("TryGet(%d) = %v, %v; want %v, true", i, got, ok, v)
		}
		disc, live := inst.ActiveIndex()
		if !live || int(disc) != i {
			t.Fatalf("ActiveIndex = %d, %v; want %d, true", disc, live, i)
		}
		inst.Close()
	}
}

func TestScenario_SixAlternatives(t *testing.T) {
	schema, err := variant.NewSchema(sixAlts())
	if err != nil {
		t.Fatal(err)
	}
	inst, err := schema.Construct(3, int32(42))
	if err != nil {
		t.Fatal(err)
	}
	defer inst.Close()

	if got := inst.Get(3); got != int32(42) {
		t.Fatalf("Get(3) = %v, want 42", got)
	}
	out, err := variant.VisitAny(inst, func(_ int, v any) any {
		return v.(int32) * 2
	})
	if err != nil {
		t.Fatal(err)
	}
	if out != int32(84) {
		t.Fatalf("visit result = %v, want 84", out)
	}
}

func TestScenario_TwoHundredAlternatives(t *testing.T) {
	alts := make([]altset.Alternative, 200)
	for i := range alts {
		alts[i] = altset.Of[int]("alt")
	}
	schema, err := variant.NewSchema(alts)
	if err != nil {
		t.Fatal(err)
	}
	if got := schema.Tree().Depth(); got != 8 {
		t.Fatalf("depth = %d, want 8", got)
	}
	inst, err := schema.Construct(199, 7)
	if err != nil {
		t.Fatal(err)
	}
	defer inst.Close()
	if got := inst.Get(199); got != 7 {
		t.Fatalf("Get(199) = %v, want 7", got)
	}
}

func TestAssign_ReactivationDropsExactlyOnce(t *testing.T) {
	drops := map[string]int{}
	alts := []altset.Alternative{
		altset.OfDrop[int]("first", func(int) { drops["first"]++ }),
		altset.OfDrop[string]("second", func(string) { drops["second"]++ }),
	}
	schema, err := variant.NewSchema(alts)
	if err != nil {
		t.Fatal(err)
	}
	inst, err := schema.Construct(0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if err := inst.Assign(1, "replaced"); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if drops["first"] != 1 || drops["second"] != 0 {
		t.Fatalf("after Assign: drops = %v, want first=1 second=0", drops)
	}

	disc, _ := inst.ActiveIndex()
	if disc != 1 {
		t.Fatalf("ActiveIndex = %d, want 1", disc)
	}

	inst.Close()
	inst.Close() // idempotent teardown
	if drops["first"] != 1 || drops["second"] != 1 {
		t.Fatalf("after Close: drops = %v, want first=1 second=1", drops)
	}
}

func TestTryGet_NonActiveIndexFails(t *testing.T) {
	schema, err := variant.NewSchema(sixAlts())
	if err != nil {
		t.Fatal(err)
	}
	inst, err := schema.Construct(2, int16(5))
	if err != nil {
		t.Fatal(err)
	}
	defer inst.Close()

	for _, i := range []int{0, 1, 3, 4, 5, -1, 6} {
		if v, ok := inst.TryGet(i); ok {
			t.Fatalf("TryGet(%d) = %v, true; want failure", i, v)
		}
	}
}

func TestEmplace_Preconditions(t *testing.T) {
	schema, err := variant.NewSchema(sixAlts())
	if err != nil {
		t.Fatal(err)
	}
	inst := schema.NewInstance()

	var accessErr *variant.AccessError
	if err := inst.Emplace(6, "x"); !errors.As(err, &accessErr) || accessErr.Kind != variant.AccessErrOutOfRange {
		t.Fatalf("Emplace(6): error = %v, want AccessErrOutOfRange", err)
	}
	if err := inst.Emplace(5, 42); !errors.As(err, &accessErr) || accessErr.Kind != variant.AccessErrTypeMismatch {
		t.Fatalf("Emplace(5, int): error = %v, want AccessErrTypeMismatch", err)
	}
	if err := inst.Emplace(5, "ok"); err != nil {
		t.Fatalf("Emplace(5): %v", err)
	}
	if err := inst.Emplace(0, true); !errors.As(err, &accessErr) || accessErr.Kind != variant.AccessErrPayloadLive {
		t.Fatalf("Emplace while live: error = %v, want AccessErrPayloadLive", err)
	}
	inst.Close()
}

func TestByType_Accessors(t *testing.T) {
	schema, err := variant.NewSchema(sixAlts())
	if err != nil {
		t.Fatal(err)
	}
	inst, err := variant.ConstructByType(schema, "by-type")
	if err != nil {
		t.Fatal(err)
	}
	defer inst.Close()

	got, err := variant.GetByType[string](inst)
	if err != nil {
		t.Fatalf("GetByType[string]: %v", err)
	}
	if got != "by-type" {
		t.Fatalf("GetByType = %q, want %q", got, "by-type")
	}

	// int64 is declared but not active.
	_, err = variant.GetByType[int64](inst)
	var accessErr *variant.AccessError
	if !errors.As(err, &accessErr) || accessErr.Kind != variant.AccessErrNotActive {
		t.Fatalf("GetByType[int64]: error = %v, want AccessErrNotActive", err)
	}

	// float64 is not declared at all: a registration failure.
	_, err = variant.GetByType[float64](inst)
	var buildErr *altset.BuildError
	if !errors.As(err, &buildErr) || buildErr.Kind != altset.BuildErrUnknownType {
		t.Fatalf("GetByType[float64]: error = %v, want BuildErrUnknownType", err)
	}
}

func TestSchema_RejectsEmptySet(t *testing.T) {
	_, err := variant.NewSchema(nil)
	var buildErr *altset.BuildError
	if !errors.As(err, &buildErr) || buildErr.Kind != altset.BuildErrEmptySet {
		t.Fatalf("NewSchema(nil): error = %v, want BuildErrEmptySet", err)
	}
}

func TestInstances_DoNotShareStorage(t *testing.T) {
	schema, err := variant.NewSchema(sixAlts())
	if err != nil {
		t.Fatal(err)
	}
	a, err := schema.Construct(5, "a")
	if err != nil {
		t.Fatal(err)
	}
	b, err := schema.Construct(5, "b")
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	defer b.Close()

	// Unchecked access with a stale index must not disturb the other
	// instance's storage.
	_ = a.Get(3)
	if got := b.Get(5); got != "b" {
		t.Fatalf("instance b corrupted: Get(5) = %v", got)
	}
	if got := a.Get(5); got != "a" {
		t.Fatalf("instance a corrupted: Get(5) = %v", got)
	}
}
