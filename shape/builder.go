package shape

// Build constructs the balanced storage tree for n alternatives.
//
// The builder merges adjacent nodes pairwise, left to right, carrying an
// unpaired trailing node into the next round, until a single node remains.
// Each round halves the sequence, so the root depth grows logarithmically:
// depth == ceil(log2(n)). In-order leaves reproduce declaration order.
func Build(n int) (*Tree, error) {
	if n <= 0 {
		return nil, &Error{Kind: ErrEmptySet, Count: n}
	}
	t := newTree(2*n - 1)
	round := make([]NodeID, 0, n)
	for i := 0; i < n; i++ {
		round = append(round, t.append(Node{Kind: NodeLeaf, Alt: i, Size: 1}))
	}
	next := make([]NodeID, 0, (n+1)/2)
	for len(round) > 1 {
		next = next[:0]
		for i := 0; i+1 < len(round); i += 2 {
			next = append(next, t.pair(round[i], round[i+1]))
		}
		if len(round)%2 != 0 {
			next = append(next, round[len(round)-1])
		}
		round = append(round[:0], next...)
	}
	t.root = round[0]
	return t, nil
}

// BuildChain constructs the naive linear shape: each alternative is consed
// onto the chain one at a time, so depth grows with n (n-1 for n > 1).
// It exists as the comparison baseline for the balanced builder and is not
// used by any construction or access path.
func BuildChain(n int) (*Tree, error) {
	if n <= 0 {
		return nil, &Error{Kind: ErrEmptySet, Count: n}
	}
	t := newTree(2*n - 1)
	node := t.append(Node{Kind: NodeLeaf, Alt: n - 1, Size: 1})
	for i := n - 2; i >= 0; i-- {
		leaf := t.append(Node{Kind: NodeLeaf, Alt: i, Size: 1})
		node = t.pair(leaf, node)
	}
	t.root = node
	return t, nil
}

func (t *Tree) pair(left, right NodeID) NodeID {
	l := t.nodes[left]
	r := t.nodes[right]
	depth := l.Depth
	if r.Depth > depth {
		depth = r.Depth
	}
	return t.append(Node{
		Kind:  NodePair,
		Left:  left,
		Right: right,
		Size:  l.Size + r.Size,
		Depth: depth + 1,
	})
}
