package generic

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/iotaledger/linktree"
	"github.com/iotaledger/linktree/link"
)

// Codec implements link.NodeCodec[[]byte, []byte] for GenericTree
// itself, so a GenericTree can be put behind its own Link and
// round-tripped through a Store like any concrete compound. The wire
// form is a uint32 child count followed by that many GenericChild
// encodings.
type Codec struct {
	Schema AnnotationSchema
}

var _ link.NodeCodec[[]byte, []byte] = Codec{}

func (c Codec) Encode(cp link.Compound[[]byte, []byte]) ([]byte, error) {
	gt, ok := cp.(*GenericTree)
	if !ok {
		return nil, linktree.Malformed("generic.Codec.Encode: not a *GenericTree")
	}
	var buf bytes.Buffer
	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(len(gt.Children)))
	buf.Write(countBuf[:])
	if err := WriteTree(gt, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c Codec) Decode(data []byte) (link.Compound[[]byte, []byte], error) {
	r := bytes.NewReader(data)
	var countBuf [4]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return nil, linktree.Malformed("generic.Codec.Decode: reading child count")
	}
	n := int(binary.LittleEndian.Uint32(countBuf[:]))
	return ReadTree(r, n, c.Schema)
}
