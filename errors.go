// Package linktree provides the wire-level foundations — the Canon
// serialization contract, content-addressed Identifiers and the Store
// interface a backing key/value engine must satisfy — shared by every
// other package in the module.
package linktree

import (
	"golang.org/x/xerrors"
)

// ErrMalformedData is returned when a decoded byte stream does not match
// the expected schema: an unknown tag, a truncated buffer, a length
// mismatch between a declared and an actual size.
var ErrMalformedData = xerrors.New("linktree: malformed data")

// ErrNotFound is returned by a Store when it holds no value for a
// requested Identifier.
var ErrNotFound = xerrors.New("linktree: not found")

// ErrIo wraps an I/O failure reported by the underlying Store.
var ErrIo = xerrors.New("linktree: io error")

// ErrInvalidArgument tags nonsensical walker input. No function in this
// module returns it: the walk package treats Step Into applied to a
// leaf as Next.
var ErrInvalidArgument = xerrors.New("linktree: invalid argument")

// Malformed wraps err, tagging it as ErrMalformedData for errors.Is.
func Malformed(format string, args ...interface{}) error {
	return xerrors.Errorf(format+": %w", append(args, ErrMalformedData)...)
}

// WrapIo tags a store-reported I/O failure so callers can match it with
// errors.Is(err, ErrIo).
func WrapIo(err error) error {
	if err == nil {
		return nil
	}
	return xerrors.Errorf("%w: %v", ErrIo, err)
}

// Assert panics with a formatted message if cond is false. Reserved for
// invariant violations inside the Link state machine — programming
// errors, not runtime conditions a caller can recover from.
func Assert(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(xerrors.Errorf(format, args...))
	}
}
