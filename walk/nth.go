package walk

import (
	"github.com/iotaledger/linktree/annotation"
	"github.com/iotaledger/linktree/link"
)

// Nth locates the i-th leaf in child-enumeration order, in O(log n)
// given the tree's branching is roughly balanced: at a Node, the
// cached Cardinality view tells it whether the target lies under that
// child (Into) or past it (Next, after subtracting the child's count).
// Returns (nil, nil) if i is out of range, matching Walk's convention
// for "no result".
func Nth[L any, A annotation.CardinalityView](root *link.Link[L, A], e *link.Engine[L, A], ann annotation.Annotator[L, A], i uint64) (*Branch[L, A], error) {
	remaining := i
	return Walk[L, A](root, e, func(item Item[L, A]) Step {
		switch item.Kind {
		case link.ChildLeaf:
			if remaining == 0 {
				return Found
			}
			remaining--
			return Next
		case link.ChildNode:
			a := item.Node.Annotation(ann)
			count := uint64((*a).AsCardinality())
			if count <= remaining {
				remaining -= count
				return Next
			}
			return Into
		default:
			return Abort
		}
	})
}

// NthMut is Nth's mutable counterpart: the returned BranchMut holds
// CompoundMut access down the spine to the i-th leaf, and re-aggregates
// Cardinality (a no-op, since mutating a leaf in place never changes
// the count) as well as whatever else the caller's annotation carries
// once Close is called.
func NthMut[L any, A annotation.CardinalityView](root *link.Link[L, A], e *link.Engine[L, A], ann annotation.Annotator[L, A], i uint64) (*BranchMut[L, A], error) {
	remaining := i
	return WalkMut[L, A](root, e, ann, func(item Item[L, A]) Step {
		switch item.Kind {
		case link.ChildLeaf:
			if remaining == 0 {
				return Found
			}
			remaining--
			return Next
		case link.ChildNode:
			a := item.Node.Annotation(ann)
			count := uint64((*a).AsCardinality())
			if count <= remaining {
				remaining -= count
				return Next
			}
			return Into
		default:
			return Abort
		}
	})
}
