package linktree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMalformedWraps(t *testing.T) {
	err := Malformed("bad tag %d", 7)
	require.True(t, errors.Is(err, ErrMalformedData))
	require.Contains(t, err.Error(), "bad tag 7")
}

func TestWrapIoWrapsAndPassesNilThrough(t *testing.T) {
	require.NoError(t, WrapIo(nil))

	inner := errors.New("disk full")
	err := WrapIo(inner)
	require.True(t, errors.Is(err, ErrIo))
	require.Contains(t, err.Error(), "disk full")
}

func TestAssertPanicsOnFalse(t *testing.T) {
	require.NotPanics(t, func() { Assert(true, "fine") })
	require.Panics(t, func() { Assert(false, "should panic: %d", 1) })
}
