package generic_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/linktree/annotation"
	"github.com/iotaledger/linktree/examples/arraytree"
	"github.com/iotaledger/linktree/generic"
	"github.com/iotaledger/linktree/link"
	"github.com/iotaledger/linktree/store"
)

func writeLeaf(l *arraytree.Uint64Leaf) ([]byte, error) {
	return linktreeBytes(*l), nil
}

func linktreeBytes(l arraytree.Uint64Leaf) []byte {
	var buf bytes.Buffer
	_ = l.Write(&buf)
	return buf.Bytes()
}

func TestFromCompoundAndWireRoundTrip(t *testing.T) {
	st := store.NewMemStore()
	e := &link.Engine[arraytree.Uint64Leaf, annotation.Cardinality]{
		Annotator: annotation.CardinalityAnnotator[arraytree.Uint64Leaf]{},
		Store:     st,
		Codec: arraytree.Codec[arraytree.Uint64Leaf, annotation.Cardinality]{
			ReadLeaf: arraytree.ReadUint64Leaf,
			ReadAnn:  annotation.ReadCardinality,
		},
	}

	n := arraytree.New[arraytree.Uint64Leaf, annotation.Cardinality]()
	require.NoError(t, n.PushLeaf(1))
	require.NoError(t, n.PushLeaf(2))

	gt, err := generic.FromCompound[arraytree.Uint64Leaf, annotation.Cardinality](n, e, writeLeaf)
	require.NoError(t, err)
	require.Len(t, gt.Children, 2)
	require.Equal(t, generic.GenericLeafKind, gt.Children[0].Kind)

	var buf bytes.Buffer
	require.NoError(t, generic.WriteTree(gt, &buf))

	back, err := generic.ReadTree(&buf, len(gt.Children), nil)
	require.NoError(t, err)
	require.Equal(t, gt.Children[0].LeafBytes, back.Children[0].LeafBytes)
	require.Equal(t, gt.Children[1].LeafBytes, back.Children[1].LeafBytes)
}

func TestGenericTreeIsItselfACompound(t *testing.T) {
	gt := &generic.GenericTree{Children: []generic.GenericChild{
		{Kind: generic.GenericEmpty},
		{Kind: generic.GenericLeafKind, LeafBytes: []byte("x")},
	}}
	root := link.New[[]byte, []byte](gt)
	ann := root.Annotation(generic.CountingAnnotator{})
	count, err := annotation.ReadCardinality(bytes.NewReader(*ann))
	require.NoError(t, err)
	require.Equal(t, annotation.Cardinality(1), count)
}

func TestGenericTreeCodecRoundTrip(t *testing.T) {
	st := store.NewMemStore()
	codec := generic.Codec{Schema: generic.SchemaOf[annotation.Cardinality](annotation.ReadCardinality)}
	e := &link.Engine[[]byte, []byte]{
		Annotator: generic.CountingAnnotator{},
		Store:     st,
		Codec:     codec,
	}

	gt := &generic.GenericTree{Children: []generic.GenericChild{
		{Kind: generic.GenericLeafKind, LeafBytes: []byte("a")},
		{Kind: generic.GenericLeafKind, LeafBytes: []byte("bb")},
	}}
	root := link.New[[]byte, []byte](gt)
	id, err := root.Id(e)
	require.NoError(t, err)
	require.False(t, id.IsNil())

	back := link.FromIdAnnotation[[]byte, []byte](id, generic.CountingAnnotator{}.Identity())
	cp, err := back.Compound(e)
	require.NoError(t, err)
	gotTree := cp.(*generic.GenericTree)
	require.Len(t, gotTree.Children, 2)
	require.Equal(t, []byte("a"), gotTree.Children[0].LeafBytes)
	require.Equal(t, []byte("bb"), gotTree.Children[1].LeafBytes)
}
