package linktree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMustBytesMatchesSize(t *testing.T) {
	id := NewIdentifier([]byte("hello"))
	b := MustBytes(id)
	require.Len(t, b, id.EncodedLen())

	n, err := Size(id)
	require.NoError(t, err)
	require.Equal(t, id.EncodedLen(), n)
}
