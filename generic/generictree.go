// Package generic implements the type-erased mirror of any Compound:
// GenericTree carries serialized blobs for leaves and annotations so
// that a tree whose concrete leaf and annotation types are unknown to
// the reader can still be walked, persisted and inspected by byte
// length and tag alone, exactly the way a downstream tool that only
// understands bytes and identifiers (not Go generic instantiations)
// needs to.
package generic

import (
	"bytes"

	"github.com/iotaledger/linktree"
	"github.com/iotaledger/linktree/annotation"
	"github.com/iotaledger/linktree/link"
)

// GenericChildKind tags a GenericTree slot, mirroring link.ChildKind
// but over the closed, three-way GenericChild wire format rather than
// the open ChildKind/ChildEndOfNode sentinel scheme.
type GenericChildKind int

const (
	GenericEmpty GenericChildKind = iota
	GenericLeafKind
	GenericLinkKind
)

// GenericChild is one slot of a GenericTree: Empty, a leaf's raw Canon
// bytes, or a subtree's Identifier plus its annotation's raw Canon
// bytes.
type GenericChild struct {
	Kind      GenericChildKind
	LeafBytes []byte
	LinkID    linktree.Identifier
	AnnBytes  []byte
}

// GenericTree is a type-erased mirror of any Compound. It is itself a
// Compound over raw leaf and annotation bytes ([]byte, []byte), so the
// generic Walk machinery works on it unmodified — a caller that knows
// the concrete schema can still interpret AnnBytes to make the same
// Cardinality/Max-guided decisions a typed tree would.
type GenericTree struct {
	Children []GenericChild
}

var _ link.Compound[[]byte, []byte] = (*GenericTree)(nil)

// FromCompound enumerates c's children and maps each one to a
// GenericChild: a leaf is serialized through writeLeaf, a subtree link
// is persisted (so it has an Identifier) and its cached annotation is
// serialized to bytes. e supplies the Store, NodeCodec and Annotator
// needed to do both.
func FromCompound[L any, A linktree.Canon](c link.Compound[L, A], e *link.Engine[L, A], writeLeaf func(*L) ([]byte, error)) (*GenericTree, error) {
	gt := &GenericTree{}
	for i := 0; ; i++ {
		ch := c.Child(i)
		switch ch.Kind {
		case link.ChildEmpty:
			gt.Children = append(gt.Children, GenericChild{Kind: GenericEmpty})
		case link.ChildEndOfNode:
			return gt, nil
		case link.ChildLeaf:
			b, err := writeLeaf(ch.Leaf)
			if err != nil {
				return nil, err
			}
			gt.Children = append(gt.Children, GenericChild{Kind: GenericLeafKind, LeafBytes: b})
		case link.ChildNode:
			id, err := ch.Node.Id(e)
			if err != nil {
				return nil, err
			}
			a := ch.Node.Annotation(e.Annotator)
			gt.Children = append(gt.Children, GenericChild{
				Kind:     GenericLinkKind,
				LinkID:   id,
				AnnBytes: linktree.MustBytes(*a),
			})
		}
	}
}

// Child implements link.Compound. A ChildNode slot is reconstructed as
// a Link in state Ia: the annotation bytes are already known, the
// subtree's concrete compound is fetched only if something later calls
// Compound/CompoundMut on it with a schema that knows how to decode it.
func (g *GenericTree) Child(i int) link.Child[[]byte, []byte] {
	if i < 0 || i >= len(g.Children) {
		return link.EndOfNode[[]byte, []byte]()
	}
	c := g.Children[i]
	switch c.Kind {
	case GenericEmpty:
		return link.Empty[[]byte, []byte]()
	case GenericLeafKind:
		leaf := c.LeafBytes
		return link.LeafChild[[]byte, []byte](&leaf)
	case GenericLinkKind:
		return link.NodeChild[[]byte, []byte](link.FromIdAnnotation[[]byte, []byte](c.LinkID, c.AnnBytes))
	default:
		return link.EndOfNode[[]byte, []byte]()
	}
}

// ChildMut implements link.Compound. GenericTree has no richer notion
// of mutable access than Child: a caller that wants to actually mutate
// a child rewrites the GenericChild slot directly.
func (g *GenericTree) ChildMut(i int) link.Child[[]byte, []byte] {
	return g.Child(i)
}

// Clone implements link.Compound (deep copy, for copy-on-write).
func (g *GenericTree) Clone() link.Compound[[]byte, []byte] {
	cp := make([]GenericChild, len(g.Children))
	copy(cp, g.Children)
	for i := range cp {
		cp[i].LeafBytes = append([]byte(nil), cp[i].LeafBytes...)
		cp[i].AnnBytes = append([]byte(nil), cp[i].AnnBytes...)
	}
	return &GenericTree{Children: cp}
}

// CountingAnnotator summarizes a GenericTree by a Cardinality: each leaf
// child counts one, Empty children count nothing, and each Link child's
// annotation bytes are decoded as a Cardinality and added (Combine
// panics via Assert if they are not a Cardinality encoding). A GenericTree is only ever a Compound[[]byte,
// []byte] (its Child method is fixed to that shape), so unlike a typed
// tree's CardinalityAnnotator[L] its annotation value is itself a
// Cardinality's raw Canon encoding rather than a Cardinality — this
// wraps annotation.Cardinality's arithmetic to produce and consume that
// encoding directly.
type CountingAnnotator struct{}

func (CountingAnnotator) Identity() []byte {
	return linktree.MustBytes(annotation.Cardinality(0))
}

func (CountingAnnotator) FromLeaf(*[]byte) []byte {
	return linktree.MustBytes(annotation.Cardinality(1))
}

func (CountingAnnotator) Combine(xs [][]byte) []byte {
	var total annotation.Cardinality
	for _, x := range xs {
		c, err := annotation.ReadCardinality(bytes.NewReader(x))
		linktree.Assert(err == nil, "generic.CountingAnnotator.Combine: malformed Cardinality bytes: %v", err)
		total += c
	}
	return linktree.MustBytes(total)
}
