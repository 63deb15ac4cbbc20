// Package fsa reads pre-built finite-state automaton dictionaries.
//
// An automaton maps byte strings to small payloads and optionally assigns
// each accepted string a minimal perfect hash. Images are compiled elsewhere
// and opened read-only; the file is memory-mapped and shared by all readers.
// Typical uses are segmentation dictionaries, stemming exception lists and
// gazetteers.
//
// Basic usage:
//
//	a, err := fsa.Open("dictionary.fsa")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer a.Close()
//
//	if data, ok := a.Lookup("new york"); ok {
//	    fmt.Println(string(data))
//	}
//
// Walking the automaton:
//
//	c := a.NewCursor()
//	c.AdvanceString("car")
//	if c.IsValid() {
//	    // "car" is a prefix of some entry
//	}
//	for key, data := range c.Iterator().All() {
//	    fmt.Println("car"+key, string(data))
//	}
//
// Failed transitions are not errors. They move a Cursor to DeadState,
// observable through IsValid, and speculative methods such as
// TryAdvanceString roll the cursor back instead.
//
// Thread safety: an Automaton is safe for concurrent use by many goroutines,
// each with its own Cursor or Iterator. Close must not run concurrently with
// any other use, and no Cursor may be used after Close.
package fsa

import (
	"errors"
	"log/slog"
	"os"

	"github.com/coregx/fsa/region"
)

// Automaton is an opened automaton image.
type Automaton struct {
	regions *region.Regions
	codec   codec
	logger  *slog.Logger

	start     StateID
	fixedSize int // record length for fixed-size data, -1 for variable
}

// Open opens the automaton at path with the default configuration.
//
// Example:
//
//	a, err := fsa.Open("stems.fsa")
//	if errors.Is(err, fsa.ErrNotFound) {
//	    // ...
//	}
func Open(path string) (*Automaton, error) {
	return OpenWithConfig(path, DefaultConfig())
}

// OpenWithConfig opens the automaton at path.
func OpenWithConfig(path string, config Config) (*Automaton, error) {
	c, err := newCodec(config.Charset)
	if err != nil {
		return nil, err
	}
	r, err := region.Open(path, region.Options{NoMmap: config.NoMmap})
	if err != nil {
		return nil, err
	}
	return newAutomaton(r, c, config.logger()), nil
}

// OpenFile opens an automaton from an already open file. f may be closed
// once OpenFile returns.
func OpenFile(f *os.File, config Config) (*Automaton, error) {
	c, err := newCodec(config.Charset)
	if err != nil {
		return nil, err
	}
	r, err := region.OpenFile(f, region.Options{NoMmap: config.NoMmap})
	if err != nil {
		return nil, err
	}
	return newAutomaton(r, c, config.logger()), nil
}

// FromBytes opens an in-memory image. b must not be modified while the
// automaton is in use.
func FromBytes(b []byte, config Config) (*Automaton, error) {
	c, err := newCodec(config.Charset)
	if err != nil {
		return nil, err
	}
	r, err := region.FromBytes(b)
	if err != nil {
		return nil, err
	}
	return newAutomaton(r, c, config.logger()), nil
}

func newAutomaton(r *region.Regions, c codec, logger *slog.Logger) *Automaton {
	h := r.Header()
	a := &Automaton{
		regions:   r,
		codec:     c,
		logger:    logger,
		start:     StateID(h.Start),
		fixedSize: -1,
	}
	if h.DataType == region.DataFixed {
		a.fixedSize = int(h.FixedDataSize)
	}
	logger.Debug("fsa opened",
		"path", r.Path(),
		"version", h.Version,
		"serial", h.Serial,
		"size", h.Size,
		"data_size", h.DataSize,
		"perfect_hash", h.HasPerfectHash,
		"mmap", r.Mapped(),
		"charset", c.name)
	return a
}

// Close releases the image. Every Cursor and Iterator of the automaton sees
// dead transitions afterwards. A second Close returns ErrClosed.
func (a *Automaton) Close() error {
	err := a.regions.Close()
	switch {
	case err == nil:
		a.start = DeadState
		a.logger.Debug("fsa closed", "path", a.regions.Path())
	case errors.Is(err, ErrClosed):
	default:
		a.logger.Warn("fsa close failed", "path", a.regions.Path(), "error", err)
	}
	return err
}

// IsOk reports whether the automaton is open.
func (a *Automaton) IsOk() bool {
	return !a.regions.Closed()
}

// Header returns the decoded image header.
func (a *Automaton) Header() region.Header {
	return a.regions.Header()
}

// Version returns the version recorded by the compiler.
func (a *Automaton) Version() int32 {
	return a.regions.Header().Version
}

// Serial returns the serial number recorded by the compiler.
func (a *Automaton) Serial() int32 {
	return a.regions.Header().Serial
}

// Checksum returns the checksum recorded by the compiler. It is not verified.
func (a *Automaton) Checksum() int32 {
	return a.regions.Header().Checksum
}

// HasPerfectHash reports whether the image carries a perfect hash.
func (a *Automaton) HasPerfectHash() bool {
	return a.regions.HasPerfectHash()
}

// Start returns the start state, DeadState after Close.
func (a *Automaton) Start() StateID {
	return a.start
}

// Size returns the slot count of the transition tables, 0 after Close.
func (a *Automaton) Size() int {
	return a.regions.Len()
}

// Charset returns the canonical name of the automaton's character encoding.
func (a *Automaton) Charset() string {
	return a.codec.name
}

// Encode returns s in the automaton's charset. ok is false if the charset
// cannot represent s.
func (a *Automaton) Encode(s string) (b []byte, ok bool) {
	return a.codec.encode(s)
}

// Decode converts automaton bytes to a string.
func (a *Automaton) Decode(b []byte) string {
	return a.codec.decode(b)
}

// Lookup returns the payload of text, or (nil, false) if text is not an
// entry.
func (a *Automaton) Lookup(text string) ([]byte, bool) {
	c := a.NewCursor()
	c.AdvanceString(text)
	if !c.IsFinal() {
		return nil, false
	}
	return c.Data(), true
}

// LookupString returns the payload of text as a string.
func (a *Automaton) LookupString(text string) (string, bool) {
	c := a.NewCursor()
	c.AdvanceString(text)
	if !c.IsFinal() {
		return "", false
	}
	return c.DataString(), true
}

// PerfectHash returns the rank of text among all entries, or (0, false) if
// text is not an entry or the automaton has no perfect hash.
func (a *Automaton) PerfectHash(text string) (int32, bool) {
	if !a.HasPerfectHash() {
		return 0, false
	}
	c := a.NewCursor()
	c.AdvanceString(text)
	if !c.IsFinal() {
		return 0, false
	}
	return c.Hash(), true
}
