package link

import (
	"github.com/iotaledger/linktree"
	"github.com/iotaledger/linktree/annotation"
)

type state int

const (
	// statePlaceholder is transient, entered only for the instant a
	// state swap is in flight; it must never be observed by a caller.
	statePlaceholder state = iota
	// stateC holds only a materialized compound. Dirty: no id, no
	// cached annotation.
	stateC
	// stateCa holds a materialized compound with a cached annotation.
	stateCa
	// stateIa holds only a stored identifier with a cached annotation;
	// the subtree is not in memory.
	stateIa
	// stateIca holds identifier, materialized compound and cached
	// annotation: fully resolved.
	stateIca
)

// shared is the heap cell a Compound lives behind. refs counts
// outstanding Link handles over the same compound value; CompoundMut
// clones the compound rather than mutate it in place once refs > 1.
//
// Go's garbage collector reclaims the cell itself once nothing
// references it, so there is no Drop to decrement refs on. refs grows
// via Share and drops by one only when CompoundMut moves a handle onto
// its own clone. A Link whose sibling handle was simply abandoned
// therefore keeps cloning defensively on mutation rather than going
// back to exclusive ownership. That is a conservative approximation of
// reference counting, not a bug: it trades a redundant clone for never
// mutating a value another handle might still be observing.
type shared[L any, A any] struct {
	refs     int
	compound Compound[L, A]
}

// Link is a handle to a subtree, in one of five states: Placeholder
// (never observed), C (materialized only), Ca (materialized, annotation
// cached), Ia (identifier only, annotation cached) or Ica (fully
// resolved). See the package doc for why Compound and Link share a
// package.
type Link[L any, A any] struct {
	st  state
	id  linktree.Identifier
	ann *A
	sh  *shared[L, A]

	// inTransition guards against a decision function or an Annotator
	// re-entering the very Link it was handed mid-computation — the
	// single-threaded discipline the package assumes (see the module's
	// concurrency notes) makes a full borrow tracker unnecessary, but
	// this catches the one mistake that discipline alone would not:
	// an Annotator.Combine or a Walk step that calls back into the
	// link it's currently summarizing or descending.
	inTransition bool
}

// New wraps a freshly constructed compound in state C.
func New[L any, A any](c Compound[L, A]) *Link[L, A] {
	return &Link[L, A]{st: stateC, sh: &shared[L, A]{refs: 1, compound: c}}
}

// Share returns a second handle over the same materialized compound,
// bumping the shared refcount so a later CompoundMut on either handle
// clones instead of mutating shared state. It exists so structural
// sharing (the common case in persistent data structures) can be set up
// deliberately, and so copy-on-write has something to guard against in
// tests.
func (lk *Link[L, A]) Share() *Link[L, A] {
	lk.assertStable()
	linktree.Assert(lk.sh != nil, "link.Share: no materialized compound to share")
	lk.sh.refs++
	return &Link[L, A]{st: lk.st, id: lk.id, ann: lk.ann, sh: lk.sh}
}

func (lk *Link[L, A]) assertStable() {
	linktree.Assert(lk.st != statePlaceholder, "link: observed Placeholder state from outside an atomic transition")
	linktree.Assert(!lk.inTransition, "link: re-entrant access to a Link already mid-transition")
}

// Annotation returns the cached annotation, computing and caching it
// via the default derivation (Aggregate) if the link is in state C.
// This never touches the store: Ia and Ica already carry a cached
// annotation by construction, and computing it for C only consults
// children's own cached annotations, never their stored bytes.
func (lk *Link[L, A]) Annotation(ann annotation.Annotator[L, A]) *A {
	lk.assertStable()
	switch lk.st {
	case stateCa, stateIa, stateIca:
		return lk.ann
	case stateC:
		lk.inTransition = true
		a := Aggregate[L, A](lk.sh.compound, ann)
		lk.inTransition = false
		lk.ann = &a
		lk.st = stateCa
		return lk.ann
	default:
		linktree.Assert(false, "link.Annotation: unreachable state %d", lk.st)
		return nil
	}
}

// ensureCompound materializes the compound if the link only holds an
// identifier, fetching and decoding it through e. It is a no-op for a
// link that already has its compound in memory.
func (lk *Link[L, A]) ensureCompound(e *Engine[L, A]) error {
	switch lk.st {
	case stateC, stateCa, stateIca:
		return nil
	case stateIa:
		data, err := e.Store.Get(lk.id)
		if err != nil {
			return err
		}
		c, err := e.Codec.Decode(data)
		if err != nil {
			return err
		}
		lk.sh = &shared[L, A]{refs: 1, compound: c}
		lk.st = stateIca
		return nil
	default:
		linktree.Assert(false, "link.ensureCompound: unreachable state %d", lk.st)
		return nil
	}
}

// Compound returns the materialized compound, fetching it from the
// store via e and decoding it through e.Codec if the link currently
// only holds an identifier.
func (lk *Link[L, A]) Compound(e *Engine[L, A]) (Compound[L, A], error) {
	lk.assertStable()
	if err := lk.ensureCompound(e); err != nil {
		return nil, err
	}
	return lk.sh.compound, nil
}

// CompoundMut returns a compound the caller may mutate through,
// invalidating any cached id and annotation (the link returns to dirty
// state C) and breaking sharing first if the compound is referenced by
// more than one Link handle.
func (lk *Link[L, A]) CompoundMut(e *Engine[L, A]) (Compound[L, A], error) {
	lk.assertStable()
	if err := lk.ensureCompound(e); err != nil {
		return nil, err
	}
	if lk.sh.refs > 1 {
		cloned := lk.sh.compound.Clone()
		lk.sh.refs--
		lk.sh = &shared[L, A]{refs: 1, compound: cloned}
	}
	lk.id = linktree.NilIdentifier
	lk.ann = nil
	lk.st = stateC
	return lk.sh.compound, nil
}

// Id returns the content-address of the subtree, serializing and
// storing it via e (and, along the way, caching the annotation) if it
// is not already known.
func (lk *Link[L, A]) Id(e *Engine[L, A]) (linktree.Identifier, error) {
	lk.assertStable()
	switch lk.st {
	case stateIca, stateIa:
		return lk.id, nil
	case stateC, stateCa:
		// Annotation() is itself a no-op when st == stateCa, and
		// otherwise transitions C -> Ca before we carry on to Ica.
		ann := lk.Annotation(e.Annotator)
		data, err := e.Codec.Encode(lk.sh.compound)
		if err != nil {
			return linktree.Identifier{}, err
		}
		id, err := e.Store.Put(data)
		if err != nil {
			return linktree.Identifier{}, linktree.WrapIo(err)
		}
		lk.id = id
		lk.ann = ann
		lk.st = stateIca
		return id, nil
	default:
		linktree.Assert(false, "link.Id: unreachable state %d", lk.st)
		return linktree.Identifier{}, nil
	}
}

// FromIdAnnotation constructs a Link in state Ia: identifier and
// annotation known, compound not yet fetched. Used by package generic
// to rebuild a child Link purely from the bytes a GenericTree carries,
// without needing to know how to decode that child's concrete compound
// type.
func FromIdAnnotation[L any, A any](id linktree.Identifier, ann A) *Link[L, A] {
	return &Link[L, A]{st: stateIa, id: id, ann: &ann}
}

// IsDirty reports whether the link holds a materialized compound with
// neither a cached id nor a cached annotation (state C): the one state
// invariant 2 and 3 care about
// when deciding whether a re-aggregation is owed.
func (lk *Link[L, A]) IsDirty() bool {
	return lk.st == stateC
}

// TryId returns the cached identifier and true if one is already known
// (state Ia or Ica), without touching the store. It is the
// engine-free counterpart to Id, for a NodeCodec.Encode implementation
// that only ever runs after its children have already been finalized
// bottom-up (see arraytree.Codec, which relies on this).
func (lk *Link[L, A]) TryId() (linktree.Identifier, bool) {
	if lk.st == stateIa || lk.st == stateIca {
		return lk.id, true
	}
	return linktree.Identifier{}, false
}

// TryAnnotation returns the cached annotation and true if one is already
// known (state Ca, Ia or Ica), without consulting an Annotator. The
// engine-free counterpart to Annotation, for the same reason as TryId.
func (lk *Link[L, A]) TryAnnotation() (*A, bool) {
	if lk.st == stateCa || lk.st == stateIa || lk.st == stateIca {
		return lk.ann, true
	}
	return nil, false
}
