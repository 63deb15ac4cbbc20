package fsa

import (
	"fmt"
	"testing"

	"github.com/coregx/fsa/internal/fsatest"
)

func benchEntries(n int) []fsatest.Entry {
	entries := make([]fsatest.Entry, n)
	for i := range entries {
		entries[i] = fsatest.E(fmt.Sprintf("key%06d", i*7919%1000003), fmt.Sprint(i))
	}
	return entries
}

func BenchmarkLookup(b *testing.B) {
	entries := benchEntries(2000)
	a, err := FromBytes(fsatest.MustBuild(b, entries, fsatest.Options{}), DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}
	c := a.NewCursor()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := entries[i%len(entries)].Key
		if c.Lookup(key) == nil {
			b.Fatalf("missing %q", key)
		}
	}
}

func BenchmarkIterator(b *testing.B) {
	a, err := FromBytes(fsatest.MustBuild(b, benchEntries(2000), fsatest.Options{}), DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := a.NewCursor().Iterator()
		for it.HasNext() {
			it.Next()
		}
	}
}
