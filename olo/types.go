// Package olo computes an optimal leaf ordering for a binary hierarchical
// clustering tree: among all 2^(n-1) leaf orderings consistent with the
// tree's topology, the one minimizing the sum of adjacent-leaf distances in
// the final layout, via the Bar-Joseph/Gifford/Jaakkola dynamic program.
package olo

import "github.com/katalvlaran/dendro/costtable"

// ArgminPolicy selects how the reconstruction-time join leaves are
// recovered, or lets olo choose based on tree size.
type ArgminPolicy int

const (
	// AutoArgmin picks costtable.Stored for trees at or below
	// costtable.StoredArgminThreshold leaves, costtable.Recompute above it.
	AutoArgmin ArgminPolicy = iota

	// ForceStored always allocates argmin storage alongside the cost table.
	ForceStored

	// ForceRecompute never allocates argmin storage, re-deriving join
	// leaves during the top-down reconstruction walk instead.
	ForceRecompute
)

// Options configures OptimalLeafOrdering.
type Options struct {
	// Argmin selects the reconstruction strategy. Zero value is AutoArgmin.
	Argmin ArgminPolicy

	// Parallel fills the cost table one tree level at a time, fanning the
	// nodes within a level out across goroutines (via errgroup). Levels
	// are still processed strictly bottom-up, so this changes only how
	// much of a level runs concurrently, never the result.
	Parallel bool

	// MaxWorkers caps concurrent fill goroutines per level when Parallel
	// is set. 0 means unlimited (errgroup's default).
	MaxWorkers int

	// MaxTableBytes bounds the cost table's total allocation; 0 means
	// unlimited. See costtable.Options.MaxTableBytes.
	MaxTableBytes int64
}

// DefaultOptions returns the zero-value Options: AutoArgmin, sequential
// fill, unlimited memory.
func DefaultOptions() Options {
	return Options{}
}

// Validate rejects structurally invalid Options before any allocation.
func (o Options) Validate() error {
	switch o.Argmin {
	case AutoArgmin, ForceStored, ForceRecompute:
	default:
		return ErrBadOptions
	}
	if o.MaxWorkers < 0 {
		return ErrBadOptions
	}
	if o.MaxTableBytes < 0 {
		return ErrBadOptions
	}

	return nil
}

// resolveArgmin turns the caller's policy into the concrete storage choice
// costtable.Alloc needs, given the tree's leaf count.
func resolveArgmin(policy ArgminPolicy, numLeaves int) costtable.ArgminStorage {
	switch policy {
	case ForceStored:
		return costtable.Stored
	case ForceRecompute:
		return costtable.Recompute
	default:
		if numLeaves <= costtable.StoredArgminThreshold {
			return costtable.Stored
		}

		return costtable.Recompute
	}
}
