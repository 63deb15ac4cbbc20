// Package fsatest compiles small word lists into automaton images for tests.
//
// The compiler builds a plain trie and packs it into the double-array slot
// tables with a first-fit search, so transitions of different states are
// freely interleaved in the tables. Each state gets a distinct base, which
// keeps the one-symbol collision guard exact.
package fsatest

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/coregx/fsa/internal/conv"
	"github.com/coregx/fsa/region"
)

// Entry is a key and its payload.
type Entry struct {
	Key  string
	Data []byte
}

// E is shorthand for an Entry with a string payload.
func E(key, data string) Entry {
	return Entry{Key: key, Data: []byte(data)}
}

// Options controls the generated image.
type Options struct {
	Version int32
	Serial  int32

	// PerfectHash emits the hash region. The hash of a key is its rank in
	// byte-lexicographic order.
	PerfectHash bool

	// FixedDataSize > 0 selects fixed-size records; every payload must have
	// exactly this length.
	FixedDataSize int

	// NulTerminate appends a NUL byte to every variable-length payload.
	NulTerminate bool
}

// Errors returned by Build.
var (
	ErrDuplicateKey = errors.New("fsatest: duplicate key")
	ErrReservedByte = errors.New("fsatest: key contains reserved byte 0x00 or 0xff")
	ErrDataSize     = errors.New("fsatest: payload length does not match fixed data size")
)

const finalSymbol = 255

type node struct {
	children map[byte]*node
	final    bool
	data     []byte
	base     int
	count    int // finals in this subtree, including the node itself
}

func newNode() *node {
	return &node{children: make(map[byte]*node)}
}

func (n *node) symbols() []byte {
	syms := make([]byte, 0, len(n.children))
	for s := range n.children {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// Build compiles entries into an image. Entry order does not matter.
func Build(entries []Entry, opts Options) ([]byte, error) {
	root := newNode()
	for _, e := range entries {
		n := root
		for i := 0; i < len(e.Key); i++ {
			b := e.Key[i]
			if b == 0 || b == finalSymbol {
				return nil, fmt.Errorf("%w: %q", ErrReservedByte, e.Key)
			}
			child, ok := n.children[b]
			if !ok {
				child = newNode()
				n.children[b] = child
			}
			n = child
		}
		if n.final {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, e.Key)
		}
		if opts.FixedDataSize > 0 && len(e.Data) != opts.FixedDataSize {
			return nil, fmt.Errorf("%w: %q has %d bytes, want %d", ErrDataSize, e.Key, len(e.Data), opts.FixedDataSize)
		}
		n.final = true
		n.data = e.Data
	}
	countFinals(root)

	p := &packer{usedBase: make(map[int]bool)}
	queue := []*node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		p.place(n)
		for _, s := range n.symbols() {
			queue = append(queue, n.children[s])
		}
	}

	size := p.maxBase + finalSymbol + 1
	symbols := make([]byte, size)
	states := make([]byte, 4*size)
	hashes := make([]byte, 4*size)
	var data []byte

	le := binary.LittleEndian
	putState := func(slot, v int) {
		le.PutUint32(states[4*slot:], conv.IntToUint32(v))
	}
	putHash := func(slot, v int) {
		le.PutUint32(hashes[4*slot:], conv.IntToUint32(v))
	}

	// Preorder walk so data records follow key order.
	var walk func(n *node)
	walk = func(n *node) {
		if n.final {
			slot := n.base + finalSymbol
			symbols[slot] = finalSymbol
			putState(slot, len(data))
			if opts.FixedDataSize > 0 {
				data = append(data, n.data...)
			} else {
				payload := n.data
				if opts.NulTerminate {
					payload = append(append([]byte(nil), n.data...), 0)
				}
				data = le.AppendUint32(data, conv.IntToUint32(len(payload)))
				data = append(data, payload...)
			}
		}
		below := 0
		if n.final {
			below = 1
		}
		for _, s := range n.symbols() {
			child := n.children[s]
			slot := n.base + int(s)
			symbols[slot] = s
			putState(slot, child.base)
			putHash(slot, below)
			below += child.count
			walk(child)
		}
	}
	walk(root)

	h := region.Header{
		Magic:          region.Magic,
		Version:        opts.Version,
		Size:           conv.IntToInt32(size),
		Start:          conv.IntToInt32(root.base),
		DataSize:       conv.IntToInt32(len(data)),
		DataType:       region.DataVariable,
		HasPerfectHash: opts.PerfectHash,
		Serial:         opts.Serial,
	}
	if opts.FixedDataSize > 0 {
		h.DataType = region.DataFixed
		h.FixedDataSize = conv.IntToInt32(opts.FixedDataSize)
	}

	body := make([]byte, 0, 5*size+len(data)+4*size)
	body = append(body, symbols...)
	body = append(body, states...)
	body = append(body, data...)
	if opts.PerfectHash {
		body = append(body, hashes...)
	}
	h.Checksum = checksum(body)

	return append(h.Encode(), body...), nil
}

// MustBuild is Build that fails the test on error.
func MustBuild(tb testing.TB, entries []Entry, opts Options) []byte {
	tb.Helper()
	image, err := Build(entries, opts)
	if err != nil {
		tb.Fatalf("fsatest.Build: %v", err)
	}
	return image
}

// WriteFile compiles entries into a file under a fresh temporary directory
// and returns its path.
func WriteFile(tb testing.TB, entries []Entry, opts Options) string {
	tb.Helper()
	image := MustBuild(tb, entries, opts)
	path := filepath.Join(tb.TempDir(), "test.fsa")
	if err := os.WriteFile(path, image, 0o600); err != nil {
		tb.Fatalf("write fixture: %v", err)
	}
	return path
}

// SortedKeys returns the keys of entries in byte-lexicographic order.
func SortedKeys(entries []Entry) []string {
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	sort.Strings(keys)
	return keys
}

func countFinals(n *node) int {
	c := 0
	if n.final {
		c = 1
	}
	for _, child := range n.children {
		c += countFinals(child)
	}
	n.count = c
	return c
}

// packer assigns bases with a first-fit scan over the slot tables.
type packer struct {
	occupied []bool
	usedBase map[int]bool
	maxBase  int
}

func (p *packer) place(n *node) {
	syms := n.symbols()
	if n.final {
		syms = append(syms, finalSymbol)
	}
	for base := 1; ; base++ {
		if p.usedBase[base] || !p.fits(base, syms) {
			continue
		}
		p.usedBase[base] = true
		for _, s := range syms {
			p.occupy(base + int(s))
		}
		n.base = base
		if base > p.maxBase {
			p.maxBase = base
		}
		return
	}
}

func (p *packer) fits(base int, syms []byte) bool {
	for _, s := range syms {
		slot := base + int(s)
		if slot < len(p.occupied) && p.occupied[slot] {
			return false
		}
	}
	return true
}

func (p *packer) occupy(slot int) {
	for slot >= len(p.occupied) {
		p.occupied = append(p.occupied, false)
	}
	p.occupied[slot] = true
}

func checksum(b []byte) int32 {
	var sum uint32
	for _, c := range b {
		sum = sum*31 + uint32(c)
	}
	return int32(sum)
}
