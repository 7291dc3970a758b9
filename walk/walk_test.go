package walk_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/linktree/annotation"
	"github.com/iotaledger/linktree/examples/arraytree"
	"github.com/iotaledger/linktree/link"
	"github.com/iotaledger/linktree/walk"
)

func countingEngine() *link.Engine[arraytree.Uint64Leaf, annotation.Cardinality] {
	return &link.Engine[arraytree.Uint64Leaf, annotation.Cardinality]{
		Annotator: annotation.CardinalityAnnotator[arraytree.Uint64Leaf]{},
	}
}

// TestNthSixteenElements is the module's S2 seed scenario.
func TestNthSixteenElements(t *testing.T) {
	e := countingEngine()
	leaves := make([]arraytree.Uint64Leaf, 16)
	for i := range leaves {
		leaves[i] = arraytree.Uint64Leaf(i)
	}
	root := arraytree.Build[arraytree.Uint64Leaf, annotation.Cardinality](leaves)

	for i := uint64(0); i < 16; i++ {
		b, err := walk.Nth[arraytree.Uint64Leaf, annotation.Cardinality](root, e, e.Annotator, i)
		require.NoError(t, err)
		leaf, ok := b.Leaf()
		require.True(t, ok)
		require.Equal(t, arraytree.Uint64Leaf(i), *leaf)
	}

	b, err := walk.Nth[arraytree.Uint64Leaf, annotation.Cardinality](root, e, e.Annotator, 16)
	require.NoError(t, err)
	require.Nil(t, b)
}

// TestNthMutIncrement is the module's S3 seed scenario: every leaf of a
// 16-element tree is incremented by one through NthMut, and the root's
// Cardinality is unchanged afterward.
func TestNthMutIncrement(t *testing.T) {
	e := countingEngine()
	leaves := make([]arraytree.Uint64Leaf, 16)
	for i := range leaves {
		leaves[i] = arraytree.Uint64Leaf(i)
	}
	root := arraytree.Build[arraytree.Uint64Leaf, annotation.Cardinality](leaves)

	for i := uint64(0); i < 16; i++ {
		bm, err := walk.NthMut[arraytree.Uint64Leaf, annotation.Cardinality](root, e, e.Annotator, i)
		require.NoError(t, err)
		leaf, ok := bm.Leaf()
		require.True(t, ok)
		*leaf++
		bm.Close()
	}

	for i := uint64(0); i < 16; i++ {
		b, err := walk.Nth[arraytree.Uint64Leaf, annotation.Cardinality](root, e, e.Annotator, i)
		require.NoError(t, err)
		leaf, ok := b.Leaf()
		require.True(t, ok)
		require.Equal(t, arraytree.Uint64Leaf(i+1), *leaf)
	}

	ann := root.Annotation(e.Annotator)
	require.Equal(t, annotation.Cardinality(16), *ann)
}

type keyedLeaf struct {
	key uint64
}

func maxEngine() (*link.Engine[keyedLeaf, annotation.Max[uint64]], annotation.MaxAnnotator[keyedLeaf, uint64]) {
	ann := annotation.MaxAnnotator[keyedLeaf, uint64]{
		KeyOf: func(l *keyedLeaf) uint64 { return l.key },
		Less:  func(a, b uint64) bool { return a < b },
	}
	return &link.Engine[keyedLeaf, annotation.Max[uint64]]{Annotator: ann}, ann
}

// TestMaxKeyShuffled is the module's S4 seed scenario: 1024 keys 0..1024
// inserted in random order, max_key always resolves to the leaf keyed
// 1023.
func TestMaxKeyShuffled(t *testing.T) {
	e, ann := maxEngine()
	keys := make([]uint64, 1024)
	for i := range keys {
		keys[i] = uint64(i)
	}
	rand.New(rand.NewSource(1)).Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	leaves := make([]keyedLeaf, len(keys))
	for i, k := range keys {
		leaves[i] = keyedLeaf{key: k}
	}
	root := arraytree.Build[keyedLeaf, annotation.Max[uint64]](leaves)

	b, err := walk.MaxKey[keyedLeaf, annotation.Max[uint64], uint64](root, e, ann, ann.KeyOf, ann.Less)
	require.NoError(t, err)
	leaf, ok := b.Leaf()
	require.True(t, ok)
	require.Equal(t, uint64(1023), leaf.key)
}

// TestEmptyAnnotation is the module's S5 seed scenario: an empty
// compound's annotation is the identity, Nth(0) and MaxKey both resolve
// to no leaf.
func TestEmptyAnnotation(t *testing.T) {
	ce := countingEngine()
	emptyCount := arraytree.Build[arraytree.Uint64Leaf, annotation.Cardinality](nil)
	ann := emptyCount.Annotation(ce.Annotator)
	require.Equal(t, ce.Annotator.Identity(), *ann)

	b, err := walk.Nth[arraytree.Uint64Leaf, annotation.Cardinality](emptyCount, ce, ce.Annotator, 0)
	require.NoError(t, err)
	require.Nil(t, b)

	me, mann := maxEngine()
	emptyMax := arraytree.Build[keyedLeaf, annotation.Max[uint64]](nil)
	mb, err := walk.MaxKey[keyedLeaf, annotation.Max[uint64], uint64](emptyMax, me, mann, mann.KeyOf, mann.Less)
	require.NoError(t, err)
	require.Nil(t, mb)
}
