package annotation

import (
	"encoding/binary"
	"io"
)

// Cardinality counts the leaves of a subtree. It is the annotation used
// to locate the Nth element in enumeration order.
type Cardinality uint64

// EncodedLen implements linktree.Canon.
func (c Cardinality) EncodedLen() int { return 8 }

// Write implements linktree.Canon.
func (c Cardinality) Write(w io.Writer) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(c))
	_, err := w.Write(buf[:])
	return err
}

// ReadCardinality parses a Cardinality written by Write.
func ReadCardinality(r io.Reader) (Cardinality, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return Cardinality(binary.LittleEndian.Uint64(buf[:])), nil
}

// AsCardinality implements CardinalityView, making Cardinality
// trivially borrowable as itself.
func (c Cardinality) AsCardinality() Cardinality { return c }

// CardinalityView is satisfied by any annotation that can produce a
// Cardinality view of itself, whether it IS one (Cardinality) or just
// carries one as a field (a richer, composite annotation).
type CardinalityView interface {
	AsCardinality() Cardinality
}

// CardinalityAnnotator counts leaves: identity 0, one per leaf, sum to
// combine. Commutative in practice, but Combine is specified and
// implemented as an order-preserving left-to-right fold so it would
// keep working if a future leaf type made contribution order-sensitive.
type CardinalityAnnotator[L any] struct{}

func (CardinalityAnnotator[L]) Identity() Cardinality { return 0 }

func (CardinalityAnnotator[L]) FromLeaf(*L) Cardinality { return 1 }

func (CardinalityAnnotator[L]) Combine(xs []Cardinality) Cardinality {
	var total Cardinality
	for _, x := range xs {
		total += x
	}
	return total
}
