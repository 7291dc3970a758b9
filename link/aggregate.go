package link

import "github.com/iotaledger/linktree/annotation"

// Aggregate folds a Compound's children into an annotation following
// the default derivation in the spec: Empty contributes nothing, a Leaf
// contributes FromLeaf, a Node contributes its Link's cached annotation
// — never the recursively-recomputed annotation of its materialized
// compound. Combine order is child-enumeration order.
//
// Calling link.Annotation on a Node child is not a violation of that
// "don't descend" rule: it is the one sanctioned way to read a child's
// summary, and it is itself O(1) once that child has been visited once
// (the result is cached on the child Link). This is what keeps
// annotation reads O(fan-out) at each node instead of O(subtree size).
func Aggregate[L any, A any](c Compound[L, A], ann annotation.Annotator[L, A]) A {
	parts := make([]A, 0, 4)
	for i := 0; ; i++ {
		ch := c.Child(i)
		switch ch.Kind {
		case ChildEmpty:
			continue
		case ChildLeaf:
			parts = append(parts, ann.FromLeaf(ch.Leaf))
		case ChildNode:
			parts = append(parts, *ch.Node.Annotation(ann))
		case ChildEndOfNode:
			return ann.Combine(parts)
		}
	}
}
