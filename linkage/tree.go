// Package linkage: tree construction and validation.
//
// New consumes an (n-1)-row linkage table — row i describes internal node
// n+i — and produces a Tree with cached leaf sets. Validation and leaf-set
// construction each run as forward passes over node indices, since
// every row's children are constrained to reference only nodes that
// already exist (leaves, or internal nodes defined by an earlier row).
package linkage

// New builds a Tree from rows. n, the leaf count, is len(rows)+1.
//
// Stage 1 (Validate): each row's children must reference an already-defined
// node (leaf, or an internal node from an earlier row) — this rules out
// cycles and self/forward references, including the root self-reference
// case from spec.md scenario 6.
// Stage 2 (Validate): every node except the root must be used as a child
// exactly once, and the root must never be used as a child — this is what
// makes the topology exactly binary rather than merely acyclic.
// Stage 3 (Execute): build leaf sets bottom-up in node-index order.
//
// Complexity: O(n) for validation (Stages 1-2). Leaf-set construction
// (Stage 3) copies every leaf once per ancestor, so its time and space are
// the sum of all subtree sizes: O(n log n) for a balanced tree, O(n^2) for a
// skewed one — the same bound the DP engine's M-table already pays.
func New(rows []Row) (*Tree, error) {
	n := len(rows) + 1

	if n == 1 {
		// Single leaf, no internal nodes: a degenerate but valid tree.
		return &Tree{numLeaves: 1, rows: nil, leaves: [][]int{{0}}}, nil
	}

	numNodes := 2*n - 1
	root := numNodes - 1

	// Stage 1: children must reference nodes strictly earlier than the
	// node being defined.
	for i, row := range rows {
		v := n + i
		if row.Left < 0 || row.Left >= v || row.Right < 0 || row.Right >= v {
			return nil, ErrMalformedTree
		}
		if row.Left == row.Right {
			return nil, ErrMalformedTree
		}
	}

	// Stage 2: exactly-binary check — every node in [0, numNodes-1) must be
	// used as a child exactly once; the root must never be used as a child.
	used := make([]int8, numNodes)
	for _, row := range rows {
		used[row.Left]++
		used[row.Right]++
	}
	for v := 0; v < numNodes-1; v++ {
		if used[v] != 1 {
			return nil, ErrMalformedTree
		}
	}
	if used[root] != 0 {
		return nil, ErrMalformedTree
	}

	// Stage 3: leaf sets, bottom-up. Leaves are trivial singletons; each
	// internal node concatenates its children's (already-built) leaf sets
	// in node-index order, which Stage 1 guarantees is a valid build order.
	leaves := make([][]int, numNodes)
	for v := 0; v < n; v++ {
		leaves[v] = []int{v}
	}
	for i, row := range rows {
		v := n + i
		l, r := leaves[row.Left], leaves[row.Right]
		merged := make([]int, 0, len(l)+len(r))
		merged = append(merged, l...)
		merged = append(merged, r...)
		leaves[v] = merged
	}

	return &Tree{numLeaves: n, rows: rows, leaves: leaves}, nil
}
