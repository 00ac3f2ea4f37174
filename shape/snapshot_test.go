package shape_test

import (
	"errors"
	"testing"

	"vartree/shape"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	for _, n := range []int{1, 5, 16, 200} {
		tree, err := shape.Build(n)
		if err != nil {
			t.Fatalf("Build(%d): %v", n, err)
		}
		restored, err := shape.FromSnapshot(tree.ToSnapshot())
		if err != nil {
			t.Fatalf("FromSnapshot(n=%d): %v", n, err)
		}
		if restored.Len() != n || restored.Depth() != tree.Depth() {
			t.Fatalf("restored n=%d: size=%d depth=%d, want %d/%d",
				n, restored.Len(), restored.Depth(), n, tree.Depth())
		}
		for i := 0; i < n; i++ {
			if restored.Walk(i) != tree.Walk(i) {
				t.Fatalf("restored n=%d: Walk(%d) diverges", n, i)
			}
		}
	}
}

func TestFromSnapshot_RejectsCorruptForms(t *testing.T) {
	tree, err := shape.Build(4)
	if err != nil {
		t.Fatal(err)
	}
	good := tree.ToSnapshot()

	cases := map[string]shape.Snapshot{
		"empty":            {},
		"rootOutOfRange":   {Root: 99, Nodes: good.Nodes},
		"forwardReference": corruptChild(good),
	}
	for name, snap := range cases {
		_, err := shape.FromSnapshot(snap)
		var shapeErr *shape.Error
		if !errors.As(err, &shapeErr) || shapeErr.Kind != shape.ErrBadSnapshot {
			t.Fatalf("%s: error = %v, want ErrBadSnapshot", name, err)
		}
	}
}

func corruptChild(s shape.Snapshot) shape.Snapshot {
	nodes := append([]shape.SnapshotNode(nil), s.Nodes...)
	for i := range nodes {
		if shape.NodeKind(nodes[i].Kind) == shape.NodePair {
			nodes[i].Left = uint32(len(nodes) - 1) // child no longer precedes parent
			break
		}
	}
	return shape.Snapshot{Root: s.Root, Nodes: nodes}
}
