// Package annotation defines the monoid algebra that summarizes a
// subtree — identity, from-leaf and combine — together with the two
// built-in annotations (Cardinality and Max) and the "borrowable as"
// views that let generic walkers operate on any annotation exposing a
// given facet.
//
// The shape mirrors a CommitmentModel passed explicitly through the
// tree operations: an Annotator is a stateless strategy object, never
// embedded in the annotation value itself, so the same leaf type can be
// summarized in more than one way by plugging in a different Annotator.
package annotation

// Annotator is the algebra a user plugs in to summarize leaves of type
// L into an annotation of type A. Identity and Combine must form a
// monoid: Combine(nil) == Identity() and Combine([a]) == a for any a.
// FromLeaf and Combine must be pure and total — they may not observe
// external state, and combine order always follows child-enumeration
// order since commutativity is not required.
type Annotator[L any, A any] interface {
	// Identity returns the neutral element for Combine.
	Identity() A
	// FromLeaf summarizes a single leaf.
	FromLeaf(l *L) A
	// Combine folds a sequence of annotations in enumeration order.
	Combine(xs []A) A
}
