package shape_test

import (
	"errors"
	"testing"

	"vartree/shape"
)

func ceilLog2(n int) int {
	d := 0
	for size := 1; size < n; size *= 2 {
		d++
	}
	return d
}

func TestBuild_SizeAndDepth(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 16, 200} {
		tree, err := shape.Build(n)
		if err != nil {
			t.Fatalf("Build(%d): %v", n, err)
		}
		if got := tree.Len(); got != n {
			t.Fatalf("Build(%d): size = %d, want %d", n, got, n)
		}
		if got, want := tree.Depth(), ceilLog2(n); got != want {
			t.Fatalf("Build(%d): depth = %d, want %d", n, got, want)
		}
	}
}

func TestBuild_LeafOrderMatchesDeclarationOrder(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 16, 200} {
		tree, err := shape.Build(n)
		if err != nil {
			t.Fatalf("Build(%d): %v", n, err)
		}
		order := tree.LeafOrder()
		if len(order) != n {
			t.Fatalf("Build(%d): %d leaves, want %d", n, len(order), n)
		}
		for i, alt := range order {
			if alt != i {
				t.Fatalf("Build(%d): leaf %d covers alternative %d, want %d", n, i, alt, i)
			}
		}
	}
}

func TestBuild_RejectsEmptySet(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := shape.Build(n)
		if err == nil {
			t.Fatalf("Build(%d): expected error, got none", n)
		}
		var shapeErr *shape.Error
		if !errors.As(err, &shapeErr) || shapeErr.Kind != shape.ErrEmptySet {
			t.Fatalf("Build(%d): error = %v, want ErrEmptySet", n, err)
		}
	}
}

func TestBuildChain_LinearDepth(t *testing.T) {
	for _, n := range []int{1, 2, 5, 16, 200} {
		tree, err := shape.BuildChain(n)
		if err != nil {
			t.Fatalf("BuildChain(%d): %v", n, err)
		}
		if got := tree.Len(); got != n {
			t.Fatalf("BuildChain(%d): size = %d, want %d", n, got, n)
		}
		want := n - 1
		if n == 1 {
			want = 0
		}
		if got := tree.Depth(); got != want {
			t.Fatalf("BuildChain(%d): depth = %d, want %d", n, got, want)
		}
		order := tree.LeafOrder()
		for i, alt := range order {
			if alt != i {
				t.Fatalf("BuildChain(%d): leaf %d covers alternative %d, want %d", n, i, alt, i)
			}
		}
	}
}

func TestBuild_NodeCount(t *testing.T) {
	// A full merge of n leaves creates exactly n-1 pairs.
	tree, err := shape.Build(16)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := tree.NodeCount(), 31; got != want {
		t.Fatalf("NodeCount = %d, want %d", got, want)
	}
}
