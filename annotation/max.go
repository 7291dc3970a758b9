package annotation

import (
	"io"

	"github.com/iotaledger/linktree"
)

// Max is the two-variant annotation used to locate the leaf with the
// largest key under a user-supplied order: either NegativeInfinity (the
// identity, "no maximum seen yet") or Maximum(key). NegativeInfinity
// compares less than any Maximum; two Maximum values delegate to the
// order supplied to the owning MaxAnnotator.
type Max[K any] struct {
	hasKey bool
	key    K
}

// NegativeInfinity is the identity element of the Max annotation.
func NegativeInfinity[K any]() Max[K] {
	return Max[K]{}
}

// Maximum wraps a concrete key.
func Maximum[K any](key K) Max[K] {
	return Max[K]{hasKey: true, key: key}
}

// IsNegativeInfinity reports whether m carries no key yet.
func (m Max[K]) IsNegativeInfinity() bool {
	return !m.hasKey
}

// Key returns the wrapped key and true, or the zero value and false if
// m is NegativeInfinity.
func (m Max[K]) Key() (K, bool) {
	return m.key, m.hasKey
}

// MaxView is satisfied by any annotation that can produce a Max[K]
// view of itself, mirroring CardinalityView for the Nth walker.
type MaxView[K any] interface {
	AsMax() Max[K]
}

// AsMax implements MaxView, making Max[K] trivially borrowable as
// itself.
func (m Max[K]) AsMax() Max[K] { return m }

// MaxAnnotator summarizes leaves of type L by a key of type K extracted
// with KeyOf, ordered by Less (a strict "a < b"). combine propagates
// the larger of the known maxima; ties keep the left operand, matching
// the child-enumeration order the algebra folds over.
type MaxAnnotator[L any, K any] struct {
	KeyOf func(l *L) K
	Less  func(a, b K) bool
}

func (a MaxAnnotator[L, K]) Identity() Max[K] {
	return NegativeInfinity[K]()
}

func (a MaxAnnotator[L, K]) FromLeaf(l *L) Max[K] {
	return Maximum(a.KeyOf(l))
}

func (a MaxAnnotator[L, K]) Combine(xs []Max[K]) Max[K] {
	best := NegativeInfinity[K]()
	for _, x := range xs {
		k, ok := x.Key()
		if !ok {
			continue
		}
		bk, bok := best.Key()
		if !bok || a.Less(bk, k) {
			best = x
		}
	}
	return best
}

// WriteMax implements linktree.Canon-style encoding for a Max[K] whose
// key type is itself Canon: one flag byte followed by the key's
// encoding when present.
func WriteMax[K linktree.Canon](m Max[K], w io.Writer) error {
	if m.IsNegativeInfinity() {
		_, err := w.Write([]byte{0x00})
		return err
	}
	if _, err := w.Write([]byte{0x01}); err != nil {
		return err
	}
	k, _ := m.Key()
	return k.Write(w)
}

// MaxEncodedLen mirrors WriteMax's framing for EncodedLen purposes.
func MaxEncodedLen[K linktree.Canon](m Max[K]) int {
	if m.IsNegativeInfinity() {
		return 1
	}
	k, _ := m.Key()
	return 1 + k.EncodedLen()
}

// ReadMax parses a Max[K] written by WriteMax, given a reader for K.
func ReadMax[K any](r io.Reader, readKey linktree.CanonReader[K]) (Max[K], error) {
	var flag [1]byte
	if _, err := io.ReadFull(r, flag[:]); err != nil {
		return Max[K]{}, linktree.Malformed("reading max flag")
	}
	switch flag[0] {
	case 0x00:
		return NegativeInfinity[K](), nil
	case 0x01:
		k, err := readKey(r)
		if err != nil {
			return Max[K]{}, err
		}
		return Maximum(k), nil
	default:
		return Max[K]{}, linktree.Malformed("unknown max flag %d", flag[0])
	}
}
