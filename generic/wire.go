package generic

import (
	"encoding/binary"
	"io"

	"github.com/iotaledger/linktree"
)

const (
	tagEmpty byte = 0x00
	tagLeaf  byte = 0x01
	tagLink  byte = 0x02
)

// AnnotationSchema knows how many bytes one annotation's Canon encoding
// occupies, so ReadGenericChild can stop reading the Link variant's
// trailing annotation bytes at the right place without itself knowing
// the concrete annotation type. SchemaOf adapts any linktree.CanonReader
// into one.
type AnnotationSchema interface {
	ReadAnnotationBytes(r io.Reader) ([]byte, error)
}

type typedSchema[A linktree.Canon] struct {
	read linktree.CanonReader[A]
}

// SchemaOf builds an AnnotationSchema from a typed Canon reader —
// the "known schema handle" the spec describes a generic walker
// consulting when it needs to make sense of raw annotation bytes.
func SchemaOf[A linktree.Canon](read linktree.CanonReader[A]) AnnotationSchema {
	return typedSchema[A]{read: read}
}

func (s typedSchema[A]) ReadAnnotationBytes(r io.Reader) ([]byte, error) {
	a, err := s.read(r)
	if err != nil {
		return nil, err
	}
	return linktree.MustBytes(a), nil
}

// Write encodes c per the GenericChild wire format: a tag byte followed
// by a variant payload. A Leaf payload is a little-endian uint16 length
// followed by that many bytes; a Link payload is the Identifier's own
// (self-delimiting) Canon encoding followed by the annotation's raw
// bytes, with no length prefix of its own — a reader recovers where
// those end only through a known AnnotationSchema.
func (c GenericChild) Write(w io.Writer) error {
	switch c.Kind {
	case GenericEmpty:
		_, err := w.Write([]byte{tagEmpty})
		return err
	case GenericLeafKind:
		if len(c.LeafBytes) > 0xFFFF {
			return linktree.Malformed("leaf bytes too long for u16 length prefix (%d)", len(c.LeafBytes))
		}
		if _, err := w.Write([]byte{tagLeaf}); err != nil {
			return err
		}
		var lenBuf [2]byte
		binary.LittleEndian.PutUint16(lenBuf[:], uint16(len(c.LeafBytes)))
		if _, err := w.Write(lenBuf[:]); err != nil {
			return err
		}
		_, err := w.Write(c.LeafBytes)
		return err
	case GenericLinkKind:
		if _, err := w.Write([]byte{tagLink}); err != nil {
			return err
		}
		if err := c.LinkID.Write(w); err != nil {
			return err
		}
		_, err := w.Write(c.AnnBytes)
		return err
	default:
		return linktree.Malformed("unknown generic child kind %d", c.Kind)
	}
}

// EncodedLen implements linktree.Canon. It is only meaningful once
// AnnBytes has been populated (e.g. by FromCompound), since the Link
// variant's length depends on it.
func (c GenericChild) EncodedLen() int {
	switch c.Kind {
	case GenericEmpty:
		return 1
	case GenericLeafKind:
		return 1 + 2 + len(c.LeafBytes)
	case GenericLinkKind:
		return 1 + c.LinkID.EncodedLen() + len(c.AnnBytes)
	default:
		return 1
	}
}

// ReadGenericChild parses a GenericChild written by Write. schema is
// consulted only for the Link variant, to know where the trailing
// annotation bytes end; pass nil if the caller only expects Empty/Leaf
// children (ReadGenericChild rejects a Link tag in that case).
func ReadGenericChild(r io.Reader, schema AnnotationSchema) (GenericChild, error) {
	var tag [1]byte
	if _, err := io.ReadFull(r, tag[:]); err != nil {
		return GenericChild{}, linktree.Malformed("reading generic child tag")
	}
	switch tag[0] {
	case tagEmpty:
		return GenericChild{Kind: GenericEmpty}, nil
	case tagLeaf:
		var lenBuf [2]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return GenericChild{}, linktree.Malformed("reading leaf length")
		}
		n := binary.LittleEndian.Uint16(lenBuf[:])
		data := make([]byte, n)
		if n > 0 {
			if _, err := io.ReadFull(r, data); err != nil {
				return GenericChild{}, linktree.Malformed("reading leaf bytes")
			}
		}
		return GenericChild{Kind: GenericLeafKind, LeafBytes: data}, nil
	case tagLink:
		if schema == nil {
			return GenericChild{}, linktree.Malformed("generic child tag Link with no annotation schema supplied")
		}
		id, err := linktree.ReadIdentifier(r)
		if err != nil {
			return GenericChild{}, err
		}
		annBytes, err := schema.ReadAnnotationBytes(r)
		if err != nil {
			return GenericChild{}, err
		}
		return GenericChild{Kind: GenericLinkKind, LinkID: id, AnnBytes: annBytes}, nil
	default:
		return GenericChild{}, linktree.Malformed("unknown generic child tag 0x%02x", tag[0])
	}
}

// WriteTree encodes every child of t in order, with no outer framing:
// a reader must already know the child count (e.g. from a Cardinality
// annotation carried alongside) or read until EOF.
func WriteTree(t *GenericTree, w io.Writer) error {
	for _, c := range t.Children {
		if err := c.Write(w); err != nil {
			return err
		}
	}
	return nil
}

// ReadTree reads exactly n children using schema for any Link variants
// among them.
func ReadTree(r io.Reader, n int, schema AnnotationSchema) (*GenericTree, error) {
	t := &GenericTree{Children: make([]GenericChild, 0, n)}
	for i := 0; i < n; i++ {
		c, err := ReadGenericChild(r, schema)
		if err != nil {
			return nil, err
		}
		t.Children = append(t.Children, c)
	}
	return t, nil
}
