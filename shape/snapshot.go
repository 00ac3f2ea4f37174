package shape

// SnapshotNode is the flat descriptor form of one arena node.
type SnapshotNode struct {
	Kind  uint8
	Alt   int32
	Left  uint32
	Right uint32
	Size  int32
	Depth int32
}

// Snapshot is a self-contained, serializable form of a built tree. The
// arena is already flat, so snapshotting is a straight copy; decoding
// re-validates the structural invariants instead of trusting the bytes.
type Snapshot struct {
	Root  uint32
	Nodes []SnapshotNode
}

// ToSnapshot exports the tree's arena.
func (t *Tree) ToSnapshot() Snapshot {
	if t == nil || len(t.nodes) <= 1 {
		return Snapshot{}
	}
	nodes := make([]SnapshotNode, len(t.nodes))
	for i, n := range t.nodes {
		nodes[i] = SnapshotNode{
			Kind:  uint8(n.Kind),
			Alt:   int32(n.Alt),
			Left:  uint32(n.Left),
			Right: uint32(n.Right),
			Size:  int32(n.Size),
			Depth: int32(n.Depth),
		}
	}
	return Snapshot{Root: uint32(t.root), Nodes: nodes}
}

// FromSnapshot rebuilds a tree from its flat form.
func FromSnapshot(s Snapshot) (*Tree, error) {
	if len(s.Nodes) <= 1 || s.Root == 0 || int(s.Root) >= len(s.Nodes) {
		return nil, &Error{Kind: ErrBadSnapshot, Detail: "missing or out-of-range root"}
	}
	t := &Tree{nodes: make([]Node, len(s.Nodes)), root: NodeID(s.Root)}
	for i, sn := range s.Nodes {
		n := Node{
			Kind:  NodeKind(sn.Kind),
			Alt:   int(sn.Alt),
			Left:  NodeID(sn.Left),
			Right: NodeID(sn.Right),
			Size:  int(sn.Size),
			Depth: int(sn.Depth),
		}
		if i == 0 {
			if n.Kind != NodeInvalid {
				return nil, &Error{Kind: ErrBadSnapshot, Detail: "node 0 must be the invalid sentinel"}
			}
			t.nodes[i] = n
			continue
		}
		switch n.Kind {
		case NodeLeaf:
			if n.Size != 1 || n.Depth != 0 || n.Alt < 0 {
				return nil, &Error{Kind: ErrBadSnapshot, Detail: "malformed leaf"}
			}
		case NodePair:
			// Children precede parents in build order.
			if n.Left == NoNodeID || n.Right == NoNodeID ||
				int(n.Left) >= i || int(n.Right) >= i {
				return nil, &Error{Kind: ErrBadSnapshot, Detail: "pair child out of order"}
			}
			l := t.nodes[n.Left]
			r := t.nodes[n.Right]
			if n.Size != l.Size+r.Size {
				return nil, &Error{Kind: ErrBadSnapshot, Detail: "pair size mismatch"}
			}
		default:
			return nil, &Error{Kind: ErrBadSnapshot, Detail: "unknown node kind"}
		}
		t.nodes[i] = n
	}
	return t, nil
}
