package shape_test

import (
	"testing"

	"vartree/shape"
)

func TestWalk_ReachesEveryLeaf(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 16, 200} {
		tree, err := shape.Build(n)
		if err != nil {
			t.Fatalf("Build(%d): %v", n, err)
		}
		for i := 0; i < n; i++ {
			leaf, ok := tree.Node(tree.Walk(i))
			if !ok {
				t.Fatalf("Walk(%d) on n=%d: invalid node", i, n)
			}
			if leaf.Kind != shape.NodeLeaf || leaf.Alt != i {
				t.Fatalf("Walk(%d) on n=%d: got kind=%v alt=%d", i, n, leaf.Kind, leaf.Alt)
			}
		}
	}
}

func TestPath_BoundedByDepth(t *testing.T) {
	tree, err := shape.Build(200)
	if err != nil {
		t.Fatal(err)
	}
	maxLen := tree.Depth() + 1
	for i := 0; i < 200; i++ {
		path := tree.Path(i)
		if len(path) > maxLen {
			t.Fatalf("Path(%d): %d steps, bound is %d", i, len(path), maxLen)
		}
		if path[0] != tree.Root() {
			t.Fatalf("Path(%d): does not start at root", i)
		}
		leaf, _ := tree.Node(path[len(path)-1])
		if leaf.Kind != shape.NodeLeaf || leaf.Alt != i {
			t.Fatalf("Path(%d): ends at kind=%v alt=%d", i, leaf.Kind, leaf.Alt)
		}
	}
}

func TestWalk_OutOfRangePanics(t *testing.T) {
	tree, err := shape.Build(4)
	if err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{-1, 4, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Walk(%d): expected panic", i)
				}
			}()
			tree.Walk(i)
		}()
	}
}
