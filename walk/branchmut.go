package walk

import (
	"log"
	"runtime"

	"github.com/iotaledger/linktree/annotation"
	"github.com/iotaledger/linktree/link"
)

// BranchMut is the mutable counterpart of Branch. Every level on its
// spine was reached through Link.CompoundMut, so each one is already
// dirtied (state C) by the time WalkMut returns; Close's re-aggregation
// is then just asking each level, leaf to root, for its Annotation
// again — which forces the default derivation to run over the
// now-possibly-modified children, bottom level first.
type BranchMut[L any, A any] struct {
	levels []level[L, A]
	final  Item[L, A]
	ann    annotation.Annotator[L, A]
	closed bool
}

// WalkMut descends root guided by f, holding mutable access down the
// spine. The caller must call Close (directly or via a deferred call)
// once done mutating; Close runs the fixed re-aggregation sequence and
// never itself fails, since it must run on every exit path including
// ones following a caller error.
func WalkMut[L any, A any](root *link.Link[L, A], e *link.Engine[L, A], ann annotation.Annotator[L, A], f DecisionFunc[L, A]) (*BranchMut[L, A], error) {
	levels, final, found, err := run[L, A](root, e, f, true)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	bm := &BranchMut[L, A]{levels: levels, final: final, ann: ann}
	runtime.SetFinalizer(bm, func(b *BranchMut[L, A]) {
		if !b.closed {
			log.Printf("linktree: BranchMut finalized without Close; re-aggregating late (depth %d)", len(b.levels))
			b.Close()
		}
	})
	return bm, nil
}

// Leaf returns a mutable pointer to the selected leaf and true, or
// (nil, false) if the walk resolved on a Node rather than a Leaf.
// Mutating through the returned pointer is only picked up correctly if
// Close is eventually called.
func (b *BranchMut[L, A]) Leaf() (*L, bool) {
	if b == nil || b.final.Kind != link.ChildLeaf {
		return nil, false
	}
	return b.final.Leaf, true
}

// Depth reports how many interior levels the branch descended through.
func (b *BranchMut[L, A]) Depth() int {
	if b == nil {
		return 0
	}
	return len(b.levels)
}

// Close re-aggregates the cached annotation of every Link on the spine,
// strictly leaf to root, and marks the branch closed. Calling Close
// more than once is a no-op.
func (b *BranchMut[L, A]) Close() {
	if b == nil || b.closed {
		return
	}
	for i := len(b.levels) - 1; i >= 0; i-- {
		b.levels[i].at.Annotation(b.ann)
	}
	b.closed = true
	runtime.SetFinalizer(b, nil)
}
