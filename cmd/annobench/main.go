// annobench measures Nth, MaxKey and Id cost across a few tree sizes
// and backing stores. USAGE: annobench -run <size> [-store=mem|hive]
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"github.com/iotaledger/hive.go/core/kvstore/mapdb"

	"github.com/iotaledger/linktree"
	"github.com/iotaledger/linktree/annotation"
	"github.com/iotaledger/linktree/examples/arraytree"
	"github.com/iotaledger/linktree/link"
	"github.com/iotaledger/linktree/store"
	"github.com/iotaledger/linktree/walk"
)

const usage = "measure Nth/MaxKey/Id cost over a generated tree. USAGE: annobench -run <size> [-store=mem|hive]\n"

func main() {
	if len(os.Args) < 3 || os.Args[1] != "-run" {
		fmt.Print(usage)
		os.Exit(1)
	}
	size, err := strconv.Atoi(os.Args[2])
	must(err)
	storeName := "mem"
	if len(os.Args) > 3 {
		storeName = strings.TrimPrefix(os.Args[3], "-store=")
	}

	st := openStore(storeName)

	e := &link.Engine[arraytree.Uint64Leaf, annotation.Cardinality]{
		Annotator: annotation.CardinalityAnnotator[arraytree.Uint64Leaf]{},
		Store:     st,
		Codec: arraytree.Codec[arraytree.Uint64Leaf, annotation.Cardinality]{
			ReadLeaf: arraytree.ReadUint64Leaf,
			ReadAnn:  annotation.ReadCardinality,
		},
	}

	leaves := make([]arraytree.Uint64Leaf, size)
	for i := range leaves {
		leaves[i] = arraytree.Uint64Leaf(i)
	}

	buildStart := time.Now()
	root := arraytree.Build[arraytree.Uint64Leaf, annotation.Cardinality](leaves)
	id, err := root.Id(e)
	must(err)
	fmt.Printf("built tree of %d leaves under store %q in %v, root id %s\n", size, storeName, time.Since(buildStart), id)

	ann := root.Annotation(e.Annotator)
	back := link.FromIdAnnotation[arraytree.Uint64Leaf, annotation.Cardinality](id, *ann)
	reportNth(back, e, size)
	reportMaxKey(size)
}

func reportNth(root *link.Link[arraytree.Uint64Leaf, annotation.Cardinality], e *link.Engine[arraytree.Uint64Leaf, annotation.Cardinality], size int) {
	samples := make([]time.Duration, 0, size)
	for i := 0; i < size; i++ {
		start := time.Now()
		b, err := walk.Nth[arraytree.Uint64Leaf, annotation.Cardinality](root, e, e.Annotator, uint64(i))
		must(err)
		if _, ok := b.Leaf(); !ok {
			must(fmt.Errorf("nth(%d) found nothing in a tree of size %d", i, size))
		}
		samples = append(samples, time.Since(start))
	}
	printPercentiles("Nth", samples)
}

// maxLeaf is a throwaway leaf shape for the MaxKey benchmark, which
// needs its own engine since annotation.Max rides a different
// annotation type than Cardinality.
type maxLeaf struct {
	key uint64
}

func reportMaxKey(size int) {
	ann := annotation.MaxAnnotator[maxLeaf, uint64]{
		KeyOf: func(l *maxLeaf) uint64 { return l.key },
		Less:  func(a, b uint64) bool { return a < b },
	}
	e := &link.Engine[maxLeaf, annotation.Max[uint64]]{Annotator: ann}
	leaves := make([]maxLeaf, size)
	for i := range leaves {
		leaves[i] = maxLeaf{key: uint64(i)}
	}
	root := arraytree.Build[maxLeaf, annotation.Max[uint64]](leaves)

	samples := make([]time.Duration, 0, 8)
	for i := 0; i < 8 && i < size; i++ {
		start := time.Now()
		b, err := walk.MaxKey[maxLeaf, annotation.Max[uint64], uint64](root, e, ann, ann.KeyOf, ann.Less)
		must(err)
		if _, ok := b.Leaf(); !ok {
			must(fmt.Errorf("max_key found nothing in a non-empty tree of size %d", size))
		}
		samples = append(samples, time.Since(start))
	}
	printPercentiles("MaxKey", samples)
}

func printPercentiles(label string, samples []time.Duration) {
	if len(samples) == 0 {
		return
	}
	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	slices.Sort(sorted)
	p50 := sorted[len(sorted)*50/100]
	p99 := sorted[clampIndex(len(sorted)-1, len(sorted)*99/100)]
	fmt.Printf("%s: n=%d p50=%v p99=%v\n", label, len(samples), p50, p99)
}

func clampIndex(max, i int) int {
	if i > max {
		return max
	}
	return i
}

// openStore picks the backing linktree.Store for the run. "hive" wraps
// an in-memory hive.go kvstore.KVStore (mapdb) through store.HiveStore,
// exercising the same adaptor a persistent deployment would use without
// requiring an on-disk engine for a benchmark run.
func openStore(name string) linktree.Store {
	switch name {
	case "hive":
		return store.NewHiveStore(mapdb.NewMapDB(), []byte("annobench/"))
	case "mem":
		return store.NewMemStore()
	default:
		fmt.Printf("unknown store %q, want mem or hive\n", name)
		os.Exit(1)
		return nil
	}
}

func must(err error) {
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}
