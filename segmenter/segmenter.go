// Package segmenter splits token sequences into dictionary phrases.
//
// A phrase dictionary stores multi-word entries as space-joined byte runs,
// e.g. "new york city". The segmenter walks the automaton a word at a time
// with Cursor.TryAdvanceWord, so it never re-encodes a joined phrase and
// stops as soon as no entry can continue.
package segmenter

import (
	"strings"

	"github.com/coregx/fsa"
)

// Segment is a span tokens[Start:End] of a token sequence.
type Segment struct {
	Start int
	End   int

	// Known is true when the span is a dictionary entry. Unknown segments
	// produced by Greedy cover exactly one token.
	Known bool

	// Data is the entry payload, nil for unknown segments.
	Data []byte
}

// Len returns the number of tokens in the segment.
func (s Segment) Len() int {
	return s.End - s.Start
}

// Phrase joins the segment's tokens with single spaces.
func (s Segment) Phrase(tokens []string) string {
	return strings.Join(tokens[s.Start:s.End], " ")
}

// Segmenter finds dictionary phrases in token sequences.
// It is safe for concurrent use.
type Segmenter struct {
	fsa *fsa.Automaton
}

// New returns a Segmenter over a phrase dictionary.
func New(a *fsa.Automaton) *Segmenter {
	return &Segmenter{fsa: a}
}

// Tokenize splits text on white space.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// Segments returns every span of tokens that is a dictionary entry, ordered
// by start token and then by length.
func (s *Segmenter) Segments(tokens []string) []Segment {
	var out []Segment
	c := s.fsa.NewCursor()
	for i := range tokens {
		out = s.appendFrom(out, c, tokens, i)
	}
	return out
}

// appendFrom appends the entries starting at token i, shortest first.
func (s *Segmenter) appendFrom(out []Segment, c *fsa.Cursor, tokens []string, i int) []Segment {
	c.Reset()
	for j := i; j < len(tokens); j++ {
		if !c.TryAdvanceWord(tokens[j]) {
			break
		}
		if c.IsFinal() {
			out = append(out, Segment{Start: i, End: j + 1, Known: true, Data: c.Data()})
		}
	}
	return out
}

// Greedy segments tokens left to right, taking the longest entry that
// starts at each position. Tokens not covered by any entry become unknown
// single-token segments. The segments cover tokens exactly once.
func (s *Segmenter) Greedy(tokens []string) []Segment {
	var out []Segment
	var scratch []Segment
	c := s.fsa.NewCursor()
	for i := 0; i < len(tokens); {
		scratch = s.appendFrom(scratch[:0], c, tokens, i)
		if len(scratch) == 0 {
			out = append(out, Segment{Start: i, End: i + 1})
			i++
			continue
		}
		longest := scratch[len(scratch)-1]
		out = append(out, longest)
		i = longest.End
	}
	return out
}
