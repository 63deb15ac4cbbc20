// Package gazetteer finds dictionary entries inside free text.
//
// The entries of an automaton are loaded once into an Aho-Corasick
// automaton, which locates the leftmost candidate in a single pass over the
// text. The candidate is then extended to the longest entry starting at the
// same offset by walking the dictionary automaton, which also yields the
// payload.
package gazetteer

import (
	"errors"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/fsa"
)

// ErrNoEntries is returned by New when the dictionary has no non-empty
// entries to search for.
var ErrNoEntries = errors.New("gazetteer: dictionary has no entries")

// Options controls matching.
type Options struct {
	// WholeWords rejects hits that start or end inside a word. Bytes that
	// are ASCII letters, digits, '_' or non-ASCII count as word bytes.
	// Default: false
	WholeWords bool
}

// Hit is one entry found in the text. Offsets are byte offsets into the
// text encoded in the dictionary's charset, which for UTF-8 dictionaries
// are offsets into the text itself.
type Hit struct {
	Start int
	End   int
	Key   string
	Data  []byte
}

// Gazetteer searches text for dictionary entries.
// It is safe for concurrent use.
type Gazetteer struct {
	fsa      *fsa.Automaton
	ac       *ahocorasick.Automaton
	opts     Options
	patterns int
}

// New loads every non-empty entry of a into a multi-pattern matcher.
// The automaton must stay open while the Gazetteer is used.
func New(a *fsa.Automaton, opts Options) (*Gazetteer, error) {
	builder := ahocorasick.NewBuilder().SetMatchKind(ahocorasick.LeftmostLongest)
	patterns := 0
	it := a.NewCursor().Iterator()
	for it.HasNext() {
		item := it.Next()
		if len(item.Bytes()) == 0 {
			continue
		}
		builder.AddPattern(item.Bytes())
		patterns++
	}
	if patterns == 0 {
		return nil, ErrNoEntries
	}
	ac, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Gazetteer{fsa: a, ac: ac, opts: opts, patterns: patterns}, nil
}

// Patterns returns the number of entries loaded into the matcher.
func (g *Gazetteer) Patterns() int {
	return g.patterns
}

// Contains reports whether text contains any entry.
func (g *Gazetteer) Contains(text string) bool {
	haystack, ok := g.fsa.Encode(text)
	if !ok {
		return false
	}
	if !g.opts.WholeWords {
		return g.ac.IsMatch(haystack)
	}
	_, found := g.next(haystack, 0)
	return found
}

// FindAll returns the non-overlapping hits in text, left to right. At each
// position the longest entry wins.
func (g *Gazetteer) FindAll(text string) []Hit {
	haystack, ok := g.fsa.Encode(text)
	if !ok {
		return nil
	}
	var hits []Hit
	for at := 0; at < len(haystack); {
		hit, found := g.next(haystack, at)
		if !found {
			break
		}
		hits = append(hits, hit)
		at = hit.End
	}
	return hits
}

// next returns the first acceptable hit starting at or after at.
func (g *Gazetteer) next(haystack []byte, at int) (Hit, bool) {
	for at < len(haystack) {
		m := g.ac.Find(haystack, at)
		if m == nil {
			return Hit{}, false
		}
		if hit, ok := g.longestAt(haystack, m.Start); ok {
			return hit, true
		}
		at = m.Start + 1
	}
	return Hit{}, false
}

// longestAt walks the dictionary from start and returns the longest
// acceptable entry beginning there.
func (g *Gazetteer) longestAt(haystack []byte, start int) (Hit, bool) {
	if g.opts.WholeWords && start > 0 && isWordByte(haystack[start-1]) {
		return Hit{}, false
	}
	c := g.fsa.NewCursor()
	end := -1
	var data []byte
	for i := start; i < len(haystack); i++ {
		c.Advance(haystack[i])
		if !c.IsValid() {
			break
		}
		if c.IsFinal() && g.endOK(haystack, i+1) {
			end = i + 1
			data = c.Data()
		}
	}
	if end < 0 {
		return Hit{}, false
	}
	return Hit{
		Start: start,
		End:   end,
		Key:   g.fsa.Decode(haystack[start:end]),
		Data:  data,
	}, true
}

func (g *Gazetteer) endOK(haystack []byte, end int) bool {
	return !g.opts.WholeWords || end == len(haystack) || !isWordByte(haystack[end])
}

func isWordByte(b byte) bool {
	return b >= 0x80 || b == '_' ||
		('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
