package store

import (
	"sync"

	"go.dedis.ch/kyber/v3/pairing/bn256"
	"golang.org/x/crypto/blake2b"

	"github.com/iotaledger/linktree"
)

// bn256Suite is shared process-wide the same way the teacher's
// trie_kzg_bn256 model shares one *bn256.Suite across every
// commitment it computes — constructing it is not free.
var bn256Suite = bn256.NewSuite()

// KyberID derives an identifier the same way the teacher's KZG
// commitment model derives a terminal commitment scalar
// (scalarFromBytes in models/trie_kzg_bn256/model.go): hash the bytes
// with blake2b, then reduce into a scalar of the pairing-friendly
// curve's G1 group and marshal that scalar back to bytes. The result
// is still just an opaque content-address as far as the core is
// concerned, but it is one a caller holding the matching scalar could
// also use as a Pedersen-style commitment opening — useful for a store
// that wants its identifiers to double as commitments instead of plain
// hashes.
func KyberID(data []byte) linktree.Identifier {
	h := blake2b.Sum256(data)
	scalar := bn256Suite.G1().Scalar()
	scalar.SetBytes(h[:])
	b, err := scalar.MarshalBinary()
	linktree.Assert(err == nil, "kyber scalar marshal failed: %v", err)
	return linktree.NewIdentifier(b)
}

// KyberStore is a content-addressed Store using KyberID instead of a
// plain Blake2bID, backed by an in-memory map like MemStore.
type KyberStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

var _ linktree.Store = (*KyberStore)(nil)

func NewKyberStore() *KyberStore {
	return &KyberStore{data: make(map[string][]byte)}
}

func (s *KyberStore) Put(data []byte) (linktree.Identifier, error) {
	id := KyberID(data)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[string(id.Bytes())]; !ok {
		cp := make([]byte, len(data))
		copy(cp, data)
		s.data[string(id.Bytes())] = cp
	}
	return id, nil
}

func (s *KyberStore) Get(id linktree.Identifier) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[string(id.Bytes())]
	if !ok {
		return nil, linktree.ErrNotFound
	}
	return v, nil
}
