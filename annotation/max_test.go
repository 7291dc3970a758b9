package annotation

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

type canonUint64 uint64

func (canonUint64) EncodedLen() int { return 8 }

func (v canonUint64) Write(w io.Writer) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	_, err := w.Write(buf[:])
	return err
}

func readCanonUint64(r io.Reader) (canonUint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return canonUint64(binary.LittleEndian.Uint64(buf[:])), nil
}

func TestMaxNegativeInfinityIsIdentity(t *testing.T) {
	m := NegativeInfinity[canonUint64]()
	require.True(t, m.IsNegativeInfinity())
	_, ok := m.Key()
	require.False(t, ok)
}

func TestMaxWriteReadRoundTrip(t *testing.T) {
	for _, m := range []Max[canonUint64]{NegativeInfinity[canonUint64](), Maximum(canonUint64(7))} {
		var buf bytes.Buffer
		require.NoError(t, WriteMax(m, &buf))
		require.Equal(t, MaxEncodedLen(m), buf.Len())

		back, err := ReadMax[canonUint64](&buf, readCanonUint64)
		require.NoError(t, err)
		require.Equal(t, m, back)
	}
}

func TestMaxAnnotatorCombinePicksLargest(t *testing.T) {
	a := MaxAnnotator[int, canonUint64]{
		KeyOf: func(l *int) canonUint64 { return canonUint64(*l) },
		Less:  func(x, y canonUint64) bool { return x < y },
	}
	xs := []Max[canonUint64]{Maximum(canonUint64(3)), Maximum(canonUint64(9)), Maximum(canonUint64(1))}
	best := a.Combine(xs)
	k, ok := best.Key()
	require.True(t, ok)
	require.Equal(t, canonUint64(9), k)
}

func TestMaxAnnotatorCombineEmptyIsIdentity(t *testing.T) {
	a := MaxAnnotator[int, canonUint64]{Less: func(x, y canonUint64) bool { return x < y }}
	require.True(t, a.Combine(nil).IsNegativeInfinity())
}
