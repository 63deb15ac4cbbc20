// Package region exposes the binary regions of a pre-built finite-state
// automaton image.
//
// An image is a single little-endian file made of five back-to-back regions:
//
//	header        [0, 256)                    metadata ints
//	symbols       [256, 256+N)                1 byte per slot
//	states        [256+N, 256+5N)             4 bytes per slot
//	data          [256+5N, 256+5N+D)          payload records
//	perfect hash  [256+5N+D, 256+5N+D+4N)     4 bytes per slot, optional
//
// N is the header size field and D the data size field. The image is mapped
// read-only (mmap on unix platforms) and shared by every reader; a Regions
// value owns the mapping and releases it on Close.
//
// Index accessors are bounds-checked and return zero outside their region,
// so a corrupt or hostile image can only produce failed transitions.
package region

import (
	"encoding/binary"
	"errors"
	"io"
	"io/fs"
	"os"
	"sync/atomic"

	"github.com/coregx/fsa/internal/conv"
)

// Options controls how an image is loaded.
type Options struct {
	// NoMmap reads the whole image into heap memory instead of mapping it.
	// Default: false (map when the platform supports it)
	NoMmap bool
}

// Regions is a validated, read-only view of an automaton image.
//
// Thread safety: all accessors are safe for concurrent use. Close must not
// run concurrently with any accessor; that is the caller's responsibility.
type Regions struct {
	path   string
	header Header

	image   []byte
	symbols []byte
	states  []byte
	data    []byte
	hashes  []byte

	// release unmaps image; nil for heap-backed images
	release func([]byte) error
	mapped  bool
	closed  atomic.Bool
}

// Open opens and validates the image at path.
func Open(path string, opts Options) (*Regions, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &Error{Kind: NotFound, Path: path, Message: "automaton file not found", Cause: err}
		}
		return nil, &Error{Kind: IO, Path: path, Message: "open", Cause: err}
	}
	defer f.Close()
	return load(f, path, opts)
}

// OpenFile loads the image from an already open file. The mapping stays
// valid after f is closed; f itself is not closed.
func OpenFile(f *os.File, opts Options) (*Regions, error) {
	return load(f, f.Name(), opts)
}

// FromBytes validates an in-memory image. b is used directly and must not
// be modified while the Regions is in use.
func FromBytes(b []byte) (*Regions, error) {
	return newRegions(b, "", nil)
}

func load(f *os.File, path string, opts Options) (*Regions, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, &Error{Kind: IO, Path: path, Message: "stat", Cause: err}
	}
	size := info.Size()
	if size < HeaderSize {
		return nil, corrupt(path, "file has %d bytes, header needs %d", size, HeaderSize)
	}
	n, ok := conv.Int64ToInt(size)
	if !ok {
		return nil, corrupt(path, "file size %d exceeds address space", size)
	}

	if !opts.NoMmap && mmapSupported {
		image, err := mmapFile(f, n)
		if err != nil {
			return nil, &Error{Kind: IO, Path: path, Message: "mmap", Cause: err}
		}
		r, err := newRegions(image, path, munmap)
		if err != nil {
			_ = munmap(image)
			return nil, err
		}
		return r, nil
	}

	image := make([]byte, n)
	if _, err := f.ReadAt(image, 0); err != nil && !errors.Is(err, io.EOF) {
		return nil, &Error{Kind: IO, Path: path, Message: "read", Cause: err}
	}
	return newRegions(image, path, nil)
}

func newRegions(image []byte, path string, release func([]byte) error) (*Regions, error) {
	if len(image) < HeaderSize {
		return nil, corrupt(path, "image has %d bytes, header needs %d", len(image), HeaderSize)
	}
	h := DecodeHeader(image)
	rawPHash := int32(binary.LittleEndian.Uint32(image[offHasPHash:]))
	if err := h.validate(path, rawPHash, int64(len(image))); err != nil {
		return nil, err
	}

	n := int(h.Size)
	d := int(h.DataSize)
	symStart := HeaderSize
	stateStart := symStart + n
	dataStart := stateStart + 4*n
	hashStart := dataStart + d

	r := &Regions{
		path:    path,
		header:  h,
		image:   image,
		symbols: image[symStart:stateStart:stateStart],
		states:  image[stateStart:dataStart:dataStart],
		data:    image[dataStart:hashStart:hashStart],
		release: release,
		mapped:  release != nil,
	}
	if h.HasPerfectHash {
		r.hashes = image[hashStart : hashStart+4*n : hashStart+4*n]
	}
	return r, nil
}

// Path returns the file the image was loaded from, or "" for FromBytes.
func (r *Regions) Path() string {
	return r.path
}

// Header returns the decoded header.
func (r *Regions) Header() Header {
	return r.header
}

// Mapped reports whether the image is memory-mapped rather than heap-backed.
func (r *Regions) Mapped() bool {
	return r.mapped
}

// Len returns the slot count N of the symbol and state tables.
// It is 0 after Close.
func (r *Regions) Len() int {
	return len(r.symbols)
}

// HasPerfectHash reports whether the perfect-hash region is present.
func (r *Regions) HasPerfectHash() bool {
	return r.hashes != nil
}

// SymbolAt returns the expected symbol of slot i, or 0 outside [0, N).
func (r *Regions) SymbolAt(i int) byte {
	if uint(i) >= uint(len(r.symbols)) {
		return 0
	}
	return r.symbols[i]
}

// StateAt returns the target state of slot i, or 0 outside [0, N).
func (r *Regions) StateAt(i int) int32 {
	return int32At(r.states, i)
}

// HashAt returns the perfect-hash contribution of slot i. It returns 0 when
// the image has no perfect hash or i is outside [0, N).
func (r *Regions) HashAt(i int) int32 {
	return int32At(r.hashes, i)
}

// DataLen returns the byte length D of the data region.
func (r *Regions) DataLen() int {
	return len(r.data)
}

// DataAt returns a copy of n bytes starting at off within the data region.
// It returns nil if the range does not lie inside the region.
func (r *Regions) DataAt(off, n int) []byte {
	s := r.DataSlice(off, n)
	if s == nil {
		return nil
	}
	out := make([]byte, len(s))
	copy(out, s)
	return out
}

// DataSlice is DataAt without the copy. The slice aliases the mapping and
// is only valid until Close.
func (r *Regions) DataSlice(off, n int) []byte {
	if off < 0 || n < 0 || off > len(r.data) || n > len(r.data)-off {
		return nil
	}
	return r.data[off : off+n : off+n]
}

// Uint32At decodes the little-endian word at off within the data region.
// ok is false if the word does not fit.
func (r *Regions) Uint32At(off int) (v uint32, ok bool) {
	s := r.DataSlice(off, 4)
	if s == nil {
		return 0, false
	}
	return binary.LittleEndian.Uint32(s), true
}

// Close releases the image. All accessors return zero values afterwards.
// A second Close returns ErrClosed.
func (r *Regions) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return &Error{Kind: Closed, Path: r.path, Message: "automaton regions already closed"}
	}
	image := r.image
	r.image, r.symbols, r.states, r.data, r.hashes = nil, nil, nil, nil, nil
	if r.release != nil {
		if err := r.release(image); err != nil {
			return &Error{Kind: IO, Path: r.path, Message: "munmap", Cause: err}
		}
	}
	return nil
}

// Closed reports whether Close has been called.
func (r *Regions) Closed() bool {
	return r.closed.Load()
}

func int32At(b []byte, i int) int32 {
	if i < 0 || i >= len(b)/4 {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(b[4*i:]))
}
