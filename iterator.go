package fsa

import "iter"

// Iterator enumerates every entry reachable from a root state, in ascending
// byte order, parents before children (so "car" precedes "cart").
//
// Keys are the bytes consumed after the root; when the root itself is final
// the first item has an empty key.
//
// The walk is an explicit-stack depth-first search over the implicit trie:
// symbols are tried in order 1..254 at each depth, which is byte order
// because transitions are addressed by state+symbol. Memory is proportional
// to the longest key, and there is no recursion.
//
// An Iterator is finite and single use. Create a new one to enumerate again.
type Iterator struct {
	fsa *Automaton

	state  StateID
	hash   int32
	symbol int // last symbol tried at the current depth

	byteStack  []byte    // key bytes consumed below the root
	stateStack []StateID // parent of each pushed byte
	hashStack  []int32   // hash of each parent
}

// Item is one enumerated entry. Items do not alias iterator or mapping
// memory.
type Item struct {
	fsa  *Automaton
	key  []byte
	data []byte
	hash int32
}

// Iterator enumerates the entries reachable from c's current state.
func (a *Automaton) Iterator(c *Cursor) *Iterator {
	return newIterator(a, c.state, c.hash)
}

// All enumerates every entry of the automaton as (key, payload) pairs.
func (a *Automaton) All() iter.Seq2[string, []byte] {
	return newIterator(a, a.start, 0).All()
}

func newIterator(a *Automaton, root StateID, hash int32) *Iterator {
	it := &Iterator{fsa: a, state: root, hash: hash}
	if root != DeadState && !a.IsFinal(root) {
		it.advance()
	}
	return it
}

// HasNext reports whether Next will return another item.
func (it *Iterator) HasNext() bool {
	return it.state != DeadState
}

// Next returns the current item and moves to the following one. It returns
// the zero Item once the iterator is exhausted.
func (it *Iterator) Next() Item {
	if it.state == DeadState {
		return Item{}
	}
	item := Item{
		fsa:  it.fsa,
		key:  append([]byte(nil), it.byteStack...),
		data: it.fsa.Data(it.state),
		hash: it.hash,
	}
	it.advance()
	return item
}

// All adapts the iterator to a range-over-func sequence of (key, payload)
// pairs. It consumes the iterator.
func (it *Iterator) All() iter.Seq2[string, []byte] {
	return func(yield func(string, []byte) bool) {
		for it.HasNext() {
			item := it.Next()
			if !yield(item.String(), item.data) {
				return
			}
		}
	}
}

// advance moves to the next final state in preorder, or to DeadState when
// the subtree below the root is exhausted.
func (it *Iterator) advance() {
	for {
		it.symbol++
		if it.symbol < 256 {
			sym := byte(it.symbol)
			next := it.fsa.Delta(it.state, sym)
			if next == DeadState {
				continue
			}
			// An acyclic image never nests deeper than its slot count.
			if len(it.byteStack) >= it.fsa.regions.Len() {
				continue
			}
			it.byteStack = append(it.byteStack, sym)
			it.stateStack = append(it.stateStack, it.state)
			it.hashStack = append(it.hashStack, it.hash)
			it.hash += it.fsa.HashDelta(it.state, sym)
			it.state = next
			it.symbol = 0
			if it.fsa.IsFinal(next) {
				return
			}
			continue
		}

		// All symbols at this depth tried: resume the parent's scan one past
		// the byte that led here.
		top := len(it.stateStack) - 1
		if top < 0 {
			it.state = DeadState
			return
		}
		it.symbol = int(it.byteStack[top])
		it.state = it.stateStack[top]
		it.hash = it.hashStack[top]
		it.byteStack = it.byteStack[:top]
		it.stateStack = it.stateStack[:top]
		it.hashStack = it.hashStack[:top]
	}
}

// Bytes returns the raw key bytes.
func (i Item) Bytes() []byte {
	return i.key
}

// String returns the key decoded with the automaton's charset.
func (i Item) String() string {
	if i.fsa == nil {
		return string(i.key)
	}
	return i.fsa.codec.decode(i.key)
}

// Data returns the raw payload.
func (i Item) Data() []byte {
	return i.data
}

// DataString returns the payload decoded as text, one trailing NUL dropped.
func (i Item) DataString() string {
	d := i.data
	if n := len(d); n > 0 && d[n-1] == 0 {
		d = d[:n-1]
	}
	if i.fsa == nil {
		return string(d)
	}
	return i.fsa.codec.decode(d)
}

// Hash returns the perfect hash of the item: the hash accumulated by the
// root cursor plus the contributions of the key bytes.
func (i Item) Hash() int32 {
	return i.hash
}
