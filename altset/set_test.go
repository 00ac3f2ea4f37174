package altset_test

import (
	"errors"
	"reflect"
	"testing"

	"vartree/altset"
)

func TestNew_RejectsEmptyDeclaration(t *testing.T) {
	_, err := altset.New(nil)
	var buildErr *altset.BuildError
	if !errors.As(err, &buildErr) || buildErr.Kind != altset.BuildErrEmptySet {
		t.Fatalf("New(nil): error = %v, want BuildErrEmptySet", err)
	}
}

func TestNew_RejectsMissingPayloadType(t *testing.T) {
	_, err := altset.New([]altset.Alternative{
		altset.Of[int]("a"),
		{Name: "b"},
	})
	var buildErr *altset.BuildError
	if !errors.As(err, &buildErr) || buildErr.Kind != altset.BuildErrNilType {
		t.Fatalf("error = %v, want BuildErrNilType", err)
	}
	if buildErr.Index != 1 {
		t.Fatalf("Index = %d, want 1", buildErr.Index)
	}
}

func TestTagBits_MinimalWidth(t *testing.T) {
	cases := []struct {
		n    int
		bits int
	}{
		{1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {16, 4}, {200, 8}, {257, 9},
	}
	for _, tc := range cases {
		alts := make([]altset.Alternative, tc.n)
		for i := range alts {
			alts[i] = altset.Of[int]("alt")
		}
		set, err := altset.New(alts)
		if err != nil {
			t.Fatalf("New(%d alts): %v", tc.n, err)
		}
		if got := set.TagBits(); got != tc.bits {
			t.Fatalf("TagBits for n=%d: %d, want %d", tc.n, got, tc.bits)
		}
	}
}

func TestTagBytes_PowerOfTwoWidths(t *testing.T) {
	cases := []struct {
		n     int
		bytes int
	}{
		{1, 0}, {2, 1}, {256, 1}, {257, 2},
	}
	for _, tc := range cases {
		alts := make([]altset.Alternative, tc.n)
		for i := range alts {
			alts[i] = altset.Of[int]("alt")
		}
		set, err := altset.New(alts)
		if err != nil {
			t.Fatalf("New(%d alts): %v", tc.n, err)
		}
		if got := set.TagBytes(); got != tc.bytes {
			t.Fatalf("TagBytes for n=%d: %d, want %d", tc.n, got, tc.bytes)
		}
	}
}

func TestIndexOfType_UniqueTypesResolve(t *testing.T) {
	set, err := altset.New([]altset.Alternative{
		altset.Of[bool]("flag"),
		altset.Of[int64]("count"),
		altset.Of[string]("label"),
	})
	if err != nil {
		t.Fatal(err)
	}
	idx, err := altset.IndexFor[int64](set)
	if err != nil {
		t.Fatalf("IndexFor[int64]: %v", err)
	}
	if idx != 1 {
		t.Fatalf("IndexFor[int64] = %d, want 1", idx)
	}
}

func TestIndexOfType_DuplicateAndAbsentFail(t *testing.T) {
	set, err := altset.New([]altset.Alternative{
		altset.Of[int]("a"),
		altset.Of[int]("b"),
		altset.Of[string]("c"),
	})
	if err != nil {
		t.Fatal(err)
	}

	// Duplicated type: by-index access stays valid, by-type does not.
	if _, ok := set.At(0); !ok {
		t.Fatal("At(0) failed for duplicated type")
	}
	_, err = altset.IndexFor[int](set)
	var buildErr *altset.BuildError
	if !errors.As(err, &buildErr) || buildErr.Kind != altset.BuildErrDuplicateType {
		t.Fatalf("IndexFor[int]: error = %v, want BuildErrDuplicateType", err)
	}

	_, err = set.IndexOfType(reflect.TypeOf(3.14))
	if !errors.As(err, &buildErr) || buildErr.Kind != altset.BuildErrUnknownType {
		t.Fatalf("IndexOfType(float64): error = %v, want BuildErrUnknownType", err)
	}
}

func TestAt_Bounds(t *testing.T) {
	set, err := altset.New([]altset.Alternative{altset.Of[int]("only")})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := set.At(-1); ok {
		t.Fatal("At(-1) succeeded")
	}
	if _, ok := set.At(1); ok {
		t.Fatal("At(1) succeeded")
	}
	alt, ok := set.At(0)
	if !ok || alt.Name != "only" {
		t.Fatalf("At(0) = %+v, %v", alt, ok)
	}
}
