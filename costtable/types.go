// Package costtable stores the three-dimensional memoized boundary-cost
// table M[v][u][w] that package olo's DP engine fills and reconstructs
// from. See spec.md §4.3: M is meaningful only for (u, w) straddling v's
// children, so storage is one dense rectangular Block per internal node
// rather than one flat n×n×(2n-1) cube — total memory is Θ(n²) because each
// unordered leaf pair straddles exactly one internal node.
package costtable

// ArgminStorage selects how the join leaves that achieved each M[v][u][w]
// are recovered during reconstruction.
type ArgminStorage int

const (
	// Recompute re-derives the argmin during the top-down reconstruction
	// walk by re-scanning the same recurrence the fill used. No extra
	// memory; O(|L|·|R|) extra work per internal node, O(n²) overall.
	Recompute ArgminStorage = iota

	// Stored records the argmin alongside each M cell during fill, making
	// reconstruction O(1) per node at roughly double the table's memory.
	Stored
)

// StoredArgminThreshold is the leaf count above which olo.DefaultOptions
// prefers Recompute over Stored, matching spec.md §9's "≈512 MiB with
// 4-byte indices" figure for n ≈ 8192.
const StoredArgminThreshold = 8192

// Options configures Alloc.
type Options struct {
	// Argmin selects the reconstruction strategy (see ArgminStorage).
	Argmin ArgminStorage

	// MaxTableBytes bounds the total M-table allocation; 0 means
	// unlimited. Alloc returns ErrOutOfMemory before allocating any Block
	// if the projected total would exceed this budget.
	MaxTableBytes int64
}

// Block is the |leaves(L)| × |leaves(R)| sub-table for one internal node,
// row-major over (local index within leaves(L), local index within
// leaves(R)). Grounded on matrix/dense.go's flat-buffer layout, generalized
// here to one buffer per tree node instead of one buffer total.
type Block struct {
	rows, cols int
	data       []float64

	// argM/argK, present only when Options.Argmin == Stored, record the
	// leaf (global index, not local) that achieved each cell: argM[i][j]
	// is the right boundary of the u-side child, argK[i][j] is the left
	// boundary of the w-side child, per spec.md §4.5.
	argM, argK []int32
}

// Rows returns |leaves(L)|.
func (b *Block) Rows() int { return b.rows }

// Cols returns |leaves(R)|.
func (b *Block) Cols() int { return b.cols }

// HasArgmin reports whether this Block carries stored argmin data.
func (b *Block) HasArgmin() bool { return b.argM != nil }

// Get returns M[v][u][w] addressed by local indices (uLocal within
// leaves(L), wLocal within leaves(R)). O(1), no bounds check — Block is a
// hot-path type used only by code that has already validated its indices
// against Rows()/Cols().
func (b *Block) Get(uLocal, wLocal int) float64 {
	return b.data[uLocal*b.cols+wLocal]
}

// Set writes M[v][u][w] at the given local indices.
func (b *Block) Set(uLocal, wLocal int, x float64) {
	b.data[uLocal*b.cols+wLocal] = x
}

// SetArgmin records the join leaves (m, k — global leaf indices) that
// achieved the cell at the given local indices. No-op if the Block was
// allocated without Stored argmin.
func (b *Block) SetArgmin(uLocal, wLocal int, m, k int) {
	if b.argM == nil {
		return
	}
	idx := uLocal*b.cols + wLocal
	b.argM[idx] = int32(m)
	b.argK[idx] = int32(k)
}

// Argmin returns the stored join leaves for the given local indices, and
// false if this Block was allocated without Stored argmin.
func (b *Block) Argmin(uLocal, wLocal int) (m, k int, ok bool) {
	if b.argM == nil {
		return 0, 0, false
	}
	idx := uLocal*b.cols + wLocal

	return int(b.argM[idx]), int(b.argK[idx]), true
}
