package shape

import (
	"fmt"

	"fortio.org/safecast"
)

// NodeID identifies a node inside the tree arena.
type NodeID uint32

// NoNodeID marks the absence of a node.
const NoNodeID NodeID = 0

// NodeKind enumerates node kinds in the storage tree.
type NodeKind uint8

const (
	NodeInvalid NodeKind = iota
	NodeLeaf
	NodePair
)

func (k NodeKind) String() string {
	switch k {
	case NodeInvalid:
		return "invalid"
	case NodeLeaf:
		return "leaf"
	case NodePair:
		return "pair"
	default:
		return fmt.Sprintf("NodeKind(%d)", k)
	}
}

// Node is a compact storage-tree descriptor. A leaf covers exactly one
// alternative; a pair overlaps the storage of its two children.
type Node struct {
	Kind  NodeKind
	Alt   int // leaf only: covered alternative index
	Left  NodeID
	Right NodeID
	Size  int // alternatives covered by this subtree
	Depth int // 0 for leaves
}

// Tree is an arena of node descriptors built once per alternative set.
// The shape is fixed after building; descent never mutates it.
type Tree struct {
	nodes []Node
	root  NodeID
}

func newTree(capacity int) *Tree {
	t := &Tree{nodes: make([]Node, 1, capacity+1)}
	t.nodes[0] = Node{Kind: NodeInvalid} // reserve 0 as invalid sentinel
	return t
}

func (t *Tree) append(n Node) NodeID {
	lenNodes, err := safecast.Conv[uint32](len(t.nodes))
	if err != nil {
		panic(fmt.Errorf("len(nodes) overflow: %w", err))
	}
	id := NodeID(lenNodes)
	t.nodes = append(t.nodes, n)
	return id
}

// Root returns the root node id.
func (t *Tree) Root() NodeID {
	if t == nil {
		return NoNodeID
	}
	return t.root
}

// Node returns the descriptor for a node id.
func (t *Tree) Node(id NodeID) (Node, bool) {
	if t == nil || id == NoNodeID || int(id) >= len(t.nodes) {
		return Node{}, false
	}
	return t.nodes[id], true
}

// Len returns the number of alternatives the tree covers.
func (t *Tree) Len() int {
	n, ok := t.Node(t.Root())
	if !ok {
		return 0
	}
	return n.Size
}

// Depth returns the root depth: the bound on descent steps to any leaf.
func (t *Tree) Depth() int {
	n, ok := t.Node(t.Root())
	if !ok {
		return 0
	}
	return n.Depth
}

// NodeCount returns the number of descriptors in the arena, excluding the
// invalid sentinel.
func (t *Tree) NodeCount() int {
	if t == nil || len(t.nodes) == 0 {
		return 0
	}
	return len(t.nodes) - 1
}

// LeafOrder returns the alternative indices in left-to-right leaf order.
// Building guarantees this reproduces the declaration order.
func (t *Tree) LeafOrder() []int {
	root := t.Root()
	if root == NoNodeID {
		return nil
	}
	order := make([]int, 0, t.Len())
	stack := []NodeID{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n, ok := t.Node(id)
		if !ok {
			continue
		}
		switch n.Kind {
		case NodeLeaf:
			order = append(order, n.Alt)
		case NodePair:
			// Right first so the left child is visited first.
			stack = append(stack, n.Right, n.Left)
		}
	}
	return order
}
