// annosetup interactively builds a tree of uint64 leaves, optionally
// salting them from a passphrase read off the terminal, and writes the
// root node's stored bytes, hex-encoded, to a file.
// Usage: annosetup [-scheme=blake2b|kyber] <file name> <leaf> [<leaf> ...]
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/term"

	"github.com/iotaledger/linktree"
	"github.com/iotaledger/linktree/annotation"
	"github.com/iotaledger/linktree/examples/arraytree"
	"github.com/iotaledger/linktree/link"
	"github.com/iotaledger/linktree/store"
)

const (
	minPassphrase = 8
	defaultFile   = "annosetup.out"
)

func main() {
	args := os.Args[1:]
	scheme := "blake2b"
	if len(args) > 0 && strings.HasPrefix(args[0], "-scheme=") {
		scheme = strings.TrimPrefix(args[0], "-scheme=")
		args = args[1:]
	}
	if len(args) < 1 {
		fmt.Print("Usage: annosetup [-scheme=blake2b|kyber] <file name> <leaf> [<leaf> ...]\n")
		os.Exit(1)
	}
	fname := args[0]
	leafArgs := args[1:]

	leaves := make([]arraytree.Uint64Leaf, len(leafArgs))
	for i, a := range leafArgs {
		v, err := strconv.ParseUint(a, 10, 64)
		must(err)
		leaves[i] = arraytree.Uint64Leaf(v)
	}

	salt := readPassphrase()
	defer zero(salt)
	if len(salt) > 0 {
		h := blake2b.Sum256(salt)
		for i := range leaves {
			leaves[i] ^= arraytree.Uint64Leaf(h[i%len(h)])
		}
	}

	st, id := build(scheme, leaves)
	fmt.Printf("built tree of %d leaves under scheme %q, root id %s\n", len(leaves), scheme, id)

	data, err := st.Get(id)
	must(err)
	must(os.WriteFile(fname, []byte(hex.EncodeToString(data)), 0600))
	fmt.Printf("wrote root node bytes (hex) to %q\n", fname)
}

func build(scheme string, leaves []arraytree.Uint64Leaf) (linktree.Store, linktree.Identifier) {
	var st linktree.Store
	switch scheme {
	case "kyber":
		st = store.NewKyberStore()
	case "blake2b":
		st = store.NewMemStore()
	default:
		fmt.Printf("unknown scheme %q, want blake2b or kyber\n", scheme)
		os.Exit(1)
	}

	e := &link.Engine[arraytree.Uint64Leaf, annotation.Cardinality]{
		Annotator: annotation.CardinalityAnnotator[arraytree.Uint64Leaf]{},
		Store:     st,
		Codec: arraytree.Codec[arraytree.Uint64Leaf, annotation.Cardinality]{
			ReadLeaf: arraytree.ReadUint64Leaf,
			ReadAnn:  annotation.ReadCardinality,
		},
	}
	root := arraytree.Build[arraytree.Uint64Leaf, annotation.Cardinality](leaves)
	id, err := root.Id(e)
	must(err)
	return st, id
}

// readPassphrase prompts for an optional salt off the terminal,
// mirroring the teacher's kzg_setup prompt: empty input (just ENTER)
// skips salting, and anything shorter than minPassphrase is rejected
// with a message and salting is skipped as well (no re-prompt).
func readPassphrase() []byte {
	fmt.Printf("optionally enter a passphrase to salt the leaves (>= %d symbols, ENTER to skip) > ", minPassphrase)
	pass, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	must(err)
	if len(pass) == 0 {
		return nil
	}
	if len(pass) < minPassphrase {
		fmt.Printf("error: passphrase too short, skipping salt\n")
		return nil
	}
	return pass
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func must(err error) {
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}
