package annotation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCardinalityRoundTrip(t *testing.T) {
	c := Cardinality(42)
	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf))
	require.Equal(t, c.EncodedLen(), buf.Len())

	back, err := ReadCardinality(&buf)
	require.NoError(t, err)
	require.Equal(t, c, back)
}

func TestCardinalityAnnotatorCombine(t *testing.T) {
	a := CardinalityAnnotator[string]{}
	require.Equal(t, Cardinality(0), a.Identity())
	require.Equal(t, Cardinality(1), a.FromLeaf(nil))
	require.Equal(t, Cardinality(6), a.Combine([]Cardinality{1, 2, 3}))
	require.Equal(t, Cardinality(0), a.Combine(nil))
}
