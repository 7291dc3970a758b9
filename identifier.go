package linktree

import (
	"encoding/binary"
	"encoding/hex"
	"io"
)

// Identifier is an opaque content-address for a serialized value. The
// core never interprets its bytes — it is produced and verified by
// whatever Store implementation is in play (see package store).
type Identifier struct {
	data []byte
}

// NewIdentifier wraps raw content-address bytes produced by a Store.
func NewIdentifier(b []byte) Identifier {
	if len(b) == 0 {
		return Identifier{}
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return Identifier{data: cp}
}

// NilIdentifier is the zero value: no stored identifier is known yet.
var NilIdentifier = Identifier{}

// IsNil reports whether the identifier carries no content-address.
func (id Identifier) IsNil() bool {
	return len(id.data) == 0
}

// Bytes returns the raw content-address. Callers must not modify it.
func (id Identifier) Bytes() []byte {
	return id.data
}

// Equal compares two identifiers by their byte content.
func (id Identifier) Equal(other Identifier) bool {
	if len(id.data) != len(other.data) {
		return false
	}
	for i := range id.data {
		if id.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

func (id Identifier) String() string {
	if id.IsNil() {
		return "<nil>"
	}
	return hex.EncodeToString(id.data)
}

// EncodedLen implements Canon: a two-byte (uint16) length plus the raw
// bytes.
func (id Identifier) EncodedLen() int {
	return 2 + len(id.data)
}

// Write implements Canon. The length is a uint16 so stores using
// longer addresses (e.g. 32-byte hashes plus a scheme tag) still fit.
func (id Identifier) Write(w io.Writer) error {
	var lenBuf [2]byte
	binary.LittleEndian.PutUint16(lenBuf[:], uint16(len(id.data)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return WrapIo(err)
	}
	if len(id.data) == 0 {
		return nil
	}
	if _, err := w.Write(id.data); err != nil {
		return WrapIo(err)
	}
	return nil
}

// ReadIdentifier parses an Identifier written by Identifier.Write.
func ReadIdentifier(r io.Reader) (Identifier, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Identifier{}, Malformed("reading identifier length")
		}
		return Identifier{}, WrapIo(err)
	}
	n := binary.LittleEndian.Uint16(lenBuf[:])
	if n == 0 {
		return Identifier{}, nil
	}
	data := make([]byte, n)
	if _, err := io.ReadFull(r, data); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Identifier{}, Malformed("reading identifier bytes")
		}
		return Identifier{}, WrapIo(err)
	}
	return Identifier{data: data}, nil
}
