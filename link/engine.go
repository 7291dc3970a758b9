package link

import (
	"github.com/iotaledger/linktree"
	"github.com/iotaledger/linktree/annotation"
)

// NodeCodec describes how a concrete Compound implementation crosses
// into the content-addressed store: Encode produces the byte image
// Store.Put addresses, Decode rebuilds a Compound from bytes fetched by
// Store.Get. Every concrete node type needs exactly one of these.
type NodeCodec[L any, A any] interface {
	Encode(c Compound[L, A]) ([]byte, error)
	Decode(data []byte) (Compound[L, A], error)
}

// Engine bundles the store and node codec a Link needs for the three
// operations that may touch the backing store: Compound (materialize),
// CompoundMut (materialize + invalidate) and Id (persist). It is passed
// explicitly rather than captured on the Link, mirroring how the
// teacher threads its CommitmentModel and backing KVReader/KVWriter
// through every trie operation instead of stashing them on the node.
type Engine[L any, A any] struct {
	Annotator annotation.Annotator[L, A]
	Store     linktree.Store
	Codec     NodeCodec[L, A]
}
