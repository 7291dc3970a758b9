package link

import (
	"io"

	"github.com/iotaledger/linktree"
)

// canonicalAnnotation is the constraint WriteLink/ReadLink place on A:
// the wire format is id || annotation, so the annotation type must be
// able to write and size itself the way every Canon type does. Link[L,
// A] itself carries no such constraint — only serializing one to bytes
// does.
type canonicalAnnotation interface {
	linktree.Canon
}

// WriteLink serializes lk per the spec's Link wire format: id ||
// annotation, concatenation of each component's Canon encoding. Note
// that the compound itself is never inlined — a deserialized Link
// reaches its subtree through the store by id, which is what keeps this
// encoding fixed-size-on-annotation regardless of subtree depth.
func WriteLink[L any, A canonicalAnnotation](lk *Link[L, A], w io.Writer, e *Engine[L, A]) error {
	id, err := lk.Id(e)
	if err != nil {
		return err
	}
	if err := id.Write(w); err != nil {
		return err
	}
	ann := lk.Annotation(e.Annotator)
	return (*ann).Write(w)
}

// LinkEncodedLen returns the byte length WriteLink will produce for lk,
// which must already have a cached id and annotation (call Id first if
// not).
func LinkEncodedLen[L any, A canonicalAnnotation](lk *Link[L, A]) int {
	return lk.id.EncodedLen() + (*lk.ann).EncodedLen()
}

// ReadLink parses a Link written by WriteLink. The result is a link in
// state Ia: the identifier and annotation are known, the compound is
// not fetched until Compound or CompoundMut is first called on it.
func ReadLink[L any, A any](r io.Reader, readAnn linktree.CanonReader[A]) (*Link[L, A], error) {
	id, err := linktree.ReadIdentifier(r)
	if err != nil {
		return nil, err
	}
	a, err := readAnn(r)
	if err != nil {
		return nil, err
	}
	return &Link[L, A]{st: stateIa, id: id, ann: &a}, nil
}
