package walk

import "github.com/iotaledger/linktree/link"

// level is one (node, offset) pair on the path from root to the
// selected leaf. at is the Link whose compound this level is
// enumerating, kept so BranchMut can re-aggregate it on Close.
type level[L any, A any] struct {
	compound link.Compound[L, A]
	at       *link.Link[L, A]
	offset   int
}

// Branch is a path from a root Compound down to a selected leaf.
// Dereferencing it with Leaf yields the leaf; Depth reports how many
// levels were visited on the way down.
type Branch[L any, A any] struct {
	levels []level[L, A]
	final  Item[L, A]
}

// Leaf returns the selected leaf and true, or (nil, false) if the walk
// was resolved with Found on a Node rather than a Leaf.
func (b *Branch[L, A]) Leaf() (*L, bool) {
	if b == nil || b.final.Kind != link.ChildLeaf {
		return nil, false
	}
	return b.final.Leaf, true
}

// Depth reports how many interior levels the branch descended through
// before reaching its final item.
func (b *Branch[L, A]) Depth() int {
	if b == nil {
		return 0
	}
	return len(b.levels)
}

func run[L any, A any](root *link.Link[L, A], e *link.Engine[L, A], f DecisionFunc[L, A], mutable bool) ([]level[L, A], Item[L, A], bool, error) {
	open := func(n *link.Link[L, A]) (link.Compound[L, A], error) {
		if mutable {
			return n.CompoundMut(e)
		}
		return n.Compound(e)
	}

	rootCompound, err := open(root)
	if err != nil {
		return nil, Item[L, A]{}, false, err
	}
	levels := []level[L, A]{{compound: rootCompound, at: root, offset: 0}}

	for {
		top := &levels[len(levels)-1]
		ch := top.compound.Child(top.offset)

		switch ch.Kind {
		case link.ChildEmpty:
			top.offset++
			continue

		case link.ChildEndOfNode:
			if len(levels) == 1 {
				return levels, Item[L, A]{}, false, nil
			}
			levels = levels[:len(levels)-1]
			levels[len(levels)-1].offset++
			continue

		case link.ChildLeaf:
			item := Item[L, A]{Kind: link.ChildLeaf, Leaf: ch.Leaf}
			switch f(item) {
			case Found:
				return levels, item, true, nil
			case Next, Into: // Into on a Leaf is a misuse, treated as Next
				top.offset++
				continue
			case Abort:
				return nil, Item[L, A]{}, false, nil
			}

		case link.ChildNode:
			item := Item[L, A]{Kind: link.ChildNode, Node: ch.Node}
			switch f(item) {
			case Found:
				return levels, item, true, nil
			case Next:
				top.offset++
				continue
			case Into:
				childCompound, err := open(ch.Node)
				if err != nil {
					return nil, Item[L, A]{}, false, err
				}
				levels = append(levels, level[L, A]{compound: childCompound, at: ch.Node, offset: 0})
				continue
			case Abort:
				return nil, Item[L, A]{}, false, nil
			}
		}
	}
}

// Walk descends root guided by f and returns the Branch to whatever
// item f marks Found, or (nil, nil) if the walk exhausted the tree or
// was aborted. Descent visits children in strictly increasing offset
// order at each level; Into recurses immediately, before any further
// sibling is visited.
func Walk[L any, A any](root *link.Link[L, A], e *link.Engine[L, A], f DecisionFunc[L, A]) (*Branch[L, A], error) {
	levels, final, found, err := run[L, A](root, e, f, false)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &Branch[L, A]{levels: levels, final: final}, nil
}
