// Package walk implements the guided descent that threads a caller's
// decision function down an annotated tree, producing a Branch (or, for
// mutation, a BranchMut) to the selected leaf. Nth and MaxKey are the
// two canonical walkers built on top.
package walk

import "github.com/iotaledger/linktree/link"

// Step is what a decision function returns at each Item it is handed.
type Step int

const (
	// Found stops the walk; the current position is the result.
	Found Step = iota
	// Next skips this child and tries the next offset at this level.
	Next
	// Into recurses into this child. Meaningful only for a Node item;
	// applying it to a Leaf is a misuse and is treated as Next.
	Into
	// Abort terminates the walk with no result, without mutation and
	// without re-aggregation.
	Abort
)

func (s Step) String() string {
	switch s {
	case Found:
		return "Found"
	case Next:
		return "Next"
	case Into:
		return "Into"
	case Abort:
		return "Abort"
	default:
		return "Unknown"
	}
}

// Item is what gets delivered to the decision function while descending:
// a leaf, or a link to a subtree. ChildEmpty items are never delivered —
// the descent skips them itself.
type Item[L any, A any] struct {
	Kind link.ChildKind
	Leaf *L
	Node *link.Link[L, A]
}

// DecisionFunc drives a Walk: given the current Item, it returns the
// Step to take.
type DecisionFunc[L any, A any] func(Item[L, A]) Step
