package store

import (
	"errors"

	"github.com/iotaledger/hive.go/core/kvstore"

	"github.com/iotaledger/linktree"
)

// HiveStore adapts a github.com/iotaledger/hive.go kvstore.KVStore
// partition into a content-addressed linktree.Store, keyed by a
// Blake2bID hash of the stored bytes. It is the persistent counterpart
// to MemStore, adapted from the teacher's own HiveKVStoreAdaptor (which
// partitioned a raw key/value trie store the same way by prefix) to a
// content-addressed Put/Get contract instead of arbitrary Set/Get.
type HiveStore struct {
	kvs    kvstore.KVStore
	prefix []byte
}

var _ linktree.Store = (*HiveStore)(nil)

// NewHiveStore wraps kvs, namespacing every key under prefix so several
// HiveStore instances can share one underlying hive.go engine.
func NewHiveStore(kvs kvstore.KVStore, prefix []byte) *HiveStore {
	return &HiveStore{kvs: kvs, prefix: prefix}
}

func (s *HiveStore) key(id linktree.Identifier) []byte {
	if len(s.prefix) == 0 {
		return id.Bytes()
	}
	k := make([]byte, 0, len(s.prefix)+len(id.Bytes()))
	k = append(k, s.prefix...)
	k = append(k, id.Bytes()...)
	return k
}

func (s *HiveStore) Put(data []byte) (linktree.Identifier, error) {
	id := Blake2bID(data)
	if err := s.kvs.Set(s.key(id), data); err != nil {
		return linktree.Identifier{}, linktree.WrapIo(err)
	}
	return id, nil
}

func (s *HiveStore) Get(id linktree.Identifier) ([]byte, error) {
	v, err := s.kvs.Get(s.key(id))
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil, linktree.ErrNotFound
	}
	if err != nil {
		return nil, linktree.WrapIo(err)
	}
	return v, nil
}
