package linktree

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentifierRoundTrip(t *testing.T) {
	id := NewIdentifier([]byte{1, 2, 3, 4, 5})
	var buf bytes.Buffer
	require.NoError(t, id.Write(&buf))
	require.Equal(t, id.EncodedLen(), buf.Len())

	back, err := ReadIdentifier(&buf)
	require.NoError(t, err)
	require.True(t, id.Equal(back))
}

func TestNilIdentifier(t *testing.T) {
	require.True(t, NilIdentifier.IsNil())
	require.True(t, NewIdentifier(nil).IsNil())
	require.Equal(t, "<nil>", NilIdentifier.String())
}

func TestIdentifierEqualDiffersOnContent(t *testing.T) {
	a := NewIdentifier([]byte{1, 2, 3})
	b := NewIdentifier([]byte{1, 2, 4})
	require.False(t, a.Equal(b))
}
