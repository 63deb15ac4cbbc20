package fsa

import "unicode/utf8"

// Cursor walks an automaton one symbol at a time, accumulating the
// perfect hash of the consumed input.
//
// A cursor is either valid or dead. Failed transitions are not errors: they
// move the cursor to DeadState, where it stays until Reset. Advancing a dead
// cursor is always safe.
//
// Thread safety: not thread-safe. The Automaton can be shared, but each
// goroutine must use its own Cursor.
type Cursor struct {
	fsa   *Automaton
	state StateID
	hash  int32
}

// NewCursor returns a cursor at the start state with hash 0.
func (a *Automaton) NewCursor() *Cursor {
	return &Cursor{fsa: a, state: a.start}
}

// Automaton returns the automaton the cursor walks.
func (c *Cursor) Automaton() *Automaton {
	return c.fsa
}

// Clone returns an independent copy of the cursor.
func (c *Cursor) Clone() *Cursor {
	cp := *c
	return &cp
}

// Reset moves the cursor back to the start state and clears the hash.
func (c *Cursor) Reset() {
	c.state = c.fsa.start
	c.hash = 0
}

// Advance consumes one input byte. The hash contribution is taken from the
// state before the move.
func (c *Cursor) Advance(b byte) {
	c.hash += c.fsa.HashDelta(c.state, b)
	c.state = c.fsa.Delta(c.state, b)
}

// AdvanceBytes consumes b until it is exhausted or the cursor dies.
func (c *Cursor) AdvanceBytes(b []byte) {
	for i := 0; i < len(b) && c.state != DeadState; i++ {
		c.Advance(b[i])
	}
}

// AdvanceRune consumes the encoding of r in the automaton's charset.
func (c *Cursor) AdvanceRune(r rune) {
	if c.fsa.codec.utf8 {
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		c.AdvanceBytes(buf[:n])
		return
	}
	c.AdvanceString(string(r))
}

// AdvanceString consumes the encoding of s in the automaton's charset.
// A string the charset cannot represent kills the cursor.
func (c *Cursor) AdvanceString(s string) {
	if c.fsa.codec.utf8 {
		for i := 0; i < len(s) && c.state != DeadState; i++ {
			c.Advance(s[i])
		}
		return
	}
	b, ok := c.fsa.codec.encode(s)
	if !ok {
		c.state = DeadState
		return
	}
	c.AdvanceBytes(b)
}

// TryAdvance consumes b only if that leaves the cursor valid.
// On failure the cursor is unchanged.
func (c *Cursor) TryAdvance(b byte) bool {
	state, hash := c.state, c.hash
	c.Advance(b)
	if c.state != DeadState {
		return true
	}
	c.state, c.hash = state, hash
	return false
}

// TryAdvanceString consumes s only if that leaves the cursor valid.
// On failure the cursor is unchanged.
func (c *Cursor) TryAdvanceString(s string) bool {
	state, hash := c.state, c.hash
	c.AdvanceString(s)
	if c.state != DeadState {
		return true
	}
	c.state, c.hash = state, hash
	return false
}

// AdvanceWord consumes w as the next word of a multi-word entry. Unless the
// cursor is at the start state, a separating space is consumed first.
func (c *Cursor) AdvanceWord(w string) {
	if !c.IsStart() {
		c.Advance(SeparatorSymbol)
	}
	c.AdvanceString(w)
}

// TryAdvanceWord consumes an optional separating space and then w. It
// succeeds if the result is final, or valid with a space transition (so
// another word may follow). On failure the cursor is unchanged.
//
// The separator is advisory: it is consumed when a space transition exists
// and skipped otherwise.
func (c *Cursor) TryAdvanceWord(w string) bool {
	state, hash := c.state, c.hash
	c.TryAdvance(SeparatorSymbol)
	c.AdvanceString(w)
	if c.IsFinal() || (c.state != DeadState && c.fsa.Delta(c.state, SeparatorSymbol) != DeadState) {
		return true
	}
	c.state, c.hash = state, hash
	return false
}

// State returns the current state id.
func (c *Cursor) State() StateID {
	return c.state
}

// IsValid reports whether the cursor is not dead.
func (c *Cursor) IsValid() bool {
	return c.state != DeadState
}

// IsFinal reports whether the consumed input is a complete entry.
func (c *Cursor) IsFinal() bool {
	return c.fsa.IsFinal(c.state)
}

// IsStart reports whether the cursor is at the start state.
func (c *Cursor) IsStart() bool {
	return c.state != DeadState && c.state == c.fsa.start
}

// Hash returns the accumulated perfect hash. For a final cursor this is the
// rank of the consumed entry in byte order.
func (c *Cursor) Hash() int32 {
	return c.hash
}

// HasPerfectHash reports whether Hash is meaningful.
func (c *Cursor) HasPerfectHash() bool {
	return c.fsa.HasPerfectHash()
}

// Data returns the payload of the current state, or nil if it is not final.
func (c *Cursor) Data() []byte {
	return c.fsa.Data(c.state)
}

// DataString returns the payload of the current state as text, or "" if it
// is not final.
func (c *Cursor) DataString() string {
	return c.fsa.DataString(c.state)
}

// Lookup resets the cursor, consumes s and returns the payload, or nil if s
// is not an entry. The cursor is left after s.
func (c *Cursor) Lookup(s string) []byte {
	c.Reset()
	c.AdvanceString(s)
	return c.Data()
}

// Iterator enumerates the entries reachable from the cursor's current state.
// The cursor itself is not affected.
func (c *Cursor) Iterator() *Iterator {
	return newIterator(c.fsa, c.state, c.hash)
}
