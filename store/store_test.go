package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/linktree"
)

func TestMemStoreDeduplicates(t *testing.T) {
	s := NewMemStore()
	id1, err := s.Put([]byte("hello"))
	require.NoError(t, err)
	id2, err := s.Put([]byte("hello"))
	require.NoError(t, err)
	require.True(t, id1.Equal(id2))
	require.Equal(t, 1, s.Len())

	got, err := s.Get(id1)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), got)
}

func TestMemStoreGetMissing(t *testing.T) {
	s := NewMemStore()
	_, err := s.Get(linktree.NewIdentifier([]byte("nope")))
	require.ErrorIs(t, err, linktree.ErrNotFound)
}

func TestBlake2bIDStable(t *testing.T) {
	a := Blake2bID([]byte("payload"))
	b := Blake2bID([]byte("payload"))
	require.True(t, a.Equal(b))

	c := Blake2bID([]byte("other payload"))
	require.False(t, a.Equal(c))
}

func TestKyberIDStable(t *testing.T) {
	a := KyberID([]byte("payload"))
	b := KyberID([]byte("payload"))
	require.True(t, a.Equal(b))
}

func TestKyberStorePutGet(t *testing.T) {
	s := NewKyberStore()
	id, err := s.Put([]byte("abc"))
	require.NoError(t, err)
	got, err := s.Get(id)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), got)
}
