package walk

import (
	"github.com/iotaledger/linktree/annotation"
	"github.com/iotaledger/linktree/link"
)

// MaxKey locates a leaf whose key is greater than or equal to every
// other leaf's key under less (a strict "a < b" order assumed total in
// practice). It reads the tree's own Max annotation at the root to
// learn the target key once, then performs a single guided descent that
// follows whichever child's cached Max view matches that target —
// O(log n) rather than a linear scan, and immune to ties breaking
// differently than Combine's left-biased rule since it is asking "does
// this subtree contain the known target", not re-deriving a running
// maximum as it goes. Returns (nil, nil) on an empty tree.
func MaxKey[L any, A annotation.MaxView[K], K any](root *link.Link[L, A], e *link.Engine[L, A], ann annotation.Annotator[L, A], keyOf func(*L) K, less func(a, b K) bool) (*Branch[L, A], error) {
	rootAnn := root.Annotation(ann)
	target, ok := (*rootAnn).AsMax().Key()
	if !ok {
		return nil, nil
	}
	equal := func(a, b K) bool { return !less(a, b) && !less(b, a) }
	return Walk[L, A](root, e, func(item Item[L, A]) Step {
		switch item.Kind {
		case link.ChildLeaf:
			if equal(keyOf(item.Leaf), target) {
				return Found
			}
			return Next
		case link.ChildNode:
			a := item.Node.Annotation(ann)
			k, ok := (*a).AsMax().Key()
			if ok && equal(k, target) {
				return Into
			}
			return Next
		default:
			return Abort
		}
	})
}

// MaxKeyMut is MaxKey's mutable counterpart.
func MaxKeyMut[L any, A annotation.MaxView[K], K any](root *link.Link[L, A], e *link.Engine[L, A], ann annotation.Annotator[L, A], keyOf func(*L) K, less func(a, b K) bool) (*BranchMut[L, A], error) {
	rootAnn := root.Annotation(ann)
	target, ok := (*rootAnn).AsMax().Key()
	if !ok {
		return nil, nil
	}
	equal := func(a, b K) bool { return !less(a, b) && !less(b, a) }
	return WalkMut[L, A](root, e, ann, func(item Item[L, A]) Step {
		switch item.Kind {
		case link.ChildLeaf:
			if equal(keyOf(item.Leaf), target) {
				return Found
			}
			return Next
		case link.ChildNode:
			a := item.Node.Annotation(ann)
			k, ok := (*a).AsMax().Key()
			if ok && equal(k, target) {
				return Into
			}
			return Next
		default:
			return Abort
		}
	})
}
