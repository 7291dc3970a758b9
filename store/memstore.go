// Package store collects concrete linktree.Store implementations: an
// in-memory map keyed by a blake2b content hash for tests and
// benchmarks, an adaptor onto hive.go's kvstore.KVStore for a real
// persistent backend, and an alternate identifier scheme built on a
// pairing-friendly curve for callers that want their identifiers to
// double as a cryptographic commitment.
package store

import (
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/iotaledger/linktree"
)

// Blake2bID hashes data with blake2b-256, the same hash the teacher's
// concrete trie models use to commit to terminal values.
func Blake2bID(data []byte) linktree.Identifier {
	h := blake2b.Sum256(data)
	return linktree.NewIdentifier(h[:])
}

// MemStore is an in-memory content-addressed Store, the default engine
// for tests and benchmarks. Put is idempotent: storing the same bytes
// twice yields the same Identifier and only keeps one copy.
type MemStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

var _ linktree.Store = (*MemStore)(nil)

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

func (s *MemStore) Put(data []byte) (linktree.Identifier, error) {
	id := Blake2bID(data)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[string(id.Bytes())]; !ok {
		cp := make([]byte, len(data))
		copy(cp, data)
		s.data[string(id.Bytes())] = cp
	}
	return id, nil
}

func (s *MemStore) Get(id linktree.Identifier) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[string(id.Bytes())]
	if !ok {
		return nil, linktree.ErrNotFound
	}
	return v, nil
}

// Len reports how many distinct byte images are stored, mostly useful
// in tests asserting structural sharing (deduplication under equal
// content).
func (s *MemStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}
