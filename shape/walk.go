package shape

import "fmt"

// Walk descends from the root to the leaf covering alternative i: at every
// pair, go left when i falls inside the left subtree, otherwise go right
// with i reduced by the left subtree's size. The step count is bounded by
// Depth().
//
// An index outside [0, Len()) is a structural caller bug, not a recoverable
// condition: Walk panics. The same descent backs both construction and
// access, so a bad index here means the discriminant or the schema itself
// is corrupted.
func (t *Tree) Walk(i int) NodeID {
	id, err := t.tryWalk(i)
	if err != nil {
		panic(err)
	}
	return id
}

// Path returns the root-to-leaf node ids visited by Walk(i). It serves
// inspection and tooling; the hot paths use Walk directly.
func (t *Tree) Path(i int) []NodeID {
	if t == nil || i < 0 || i >= t.Len() {
		panic(fmt.Errorf("shape: alternative index %d out of range [0,%d)", i, t.Len()))
	}
	path := make([]NodeID, 0, t.Depth()+1)
	id := t.root
	for {
		path = append(path, id)
		n := t.nodes[id]
		if n.Kind == NodeLeaf {
			return path
		}
		left := t.nodes[n.Left]
		if i < left.Size {
			id = n.Left
			continue
		}
		i -= left.Size
		id = n.Right
	}
}

func (t *Tree) tryWalk(i int) (NodeID, error) {
	if t == nil || i < 0 || i >= t.Len() {
		return NoNodeID, fmt.Errorf("shape: alternative index %d out of range [0,%d)", i, t.Len())
	}
	want := i
	id := t.root
	for {
		n := t.nodes[id]
		if n.Kind == NodeLeaf {
			if n.Alt != want {
				return NoNodeID, fmt.Errorf("shape: descent for %d reached leaf covering %d", want, n.Alt)
			}
			return id, nil
		}
		left := t.nodes[n.Left]
		if i < left.Size {
			id = n.Left
			continue
		}
		i -= left.Size
		id = n.Right
	}
}
