package fsa

import "math"

// StateID identifies an automaton state: the base index of its slots in the
// symbol and state tables.
type StateID int32

// DeadState is the sink state. Delta returns it whenever no transition
// exists, and every transition out of it leads back to it.
const DeadState StateID = 0

// Reserved symbols.
const (
	// FinalSymbol marks the slot state+255 of a final state. It is never a
	// valid input symbol.
	FinalSymbol byte = 0xFF

	// SeparatorSymbol joins the words of a multi-word entry.
	SeparatorSymbol byte = ' '
)

// Delta returns the state reached from state on symbol, or DeadState.
//
// The slot state+symbol may belong to another state's transition set; the
// symbol table records which symbol owns the slot, so a transition exists
// only if the stored symbol equals the input symbol.
func (a *Automaton) Delta(state StateID, symbol byte) StateID {
	if state == DeadState || symbol == 0 || symbol == FinalSymbol {
		return DeadState
	}
	slot := int(state) + int(symbol)
	if a.regions.SymbolAt(slot) != symbol {
		return DeadState
	}
	return StateID(a.regions.StateAt(slot))
}

// HashDelta returns the perfect-hash contribution of the transition from
// state on symbol. It is 0 when the transition does not exist or the
// automaton has no perfect hash.
func (a *Automaton) HashDelta(state StateID, symbol byte) int32 {
	if state == DeadState || symbol == 0 || symbol == FinalSymbol {
		return 0
	}
	slot := int(state) + int(symbol)
	if a.regions.SymbolAt(slot) != symbol {
		return 0
	}
	return a.regions.HashAt(slot)
}

// IsFinal reports whether state accepts, i.e. ends a dictionary entry.
func (a *Automaton) IsFinal(state StateID) bool {
	if state == DeadState {
		return false
	}
	return a.regions.SymbolAt(int(state)+int(FinalSymbol)) == FinalSymbol
}

// Data returns a copy of the payload of a final state, or nil if state is
// not final. The payload of a final state is never nil, though it may be
// empty.
func (a *Automaton) Data(state StateID) []byte {
	s := a.dataSlice(state)
	if s == nil {
		return nil
	}
	out := make([]byte, len(s))
	copy(out, s)
	return out
}

// DataString returns the payload of a final state decoded with the
// automaton's charset. A single trailing NUL is dropped.
func (a *Automaton) DataString(state StateID) string {
	s := a.dataSlice(state)
	if n := len(s); n > 0 && s[n-1] == 0 {
		s = s[:n-1]
	}
	return a.codec.decode(s)
}

// dataSlice aliases the payload in the data region.
func (a *Automaton) dataSlice(state StateID) []byte {
	if !a.IsFinal(state) {
		return nil
	}
	off := int(a.regions.StateAt(int(state) + int(FinalSymbol)))
	if a.fixedSize >= 0 {
		return a.regions.DataSlice(off, a.fixedSize)
	}
	n, ok := a.regions.Uint32At(off)
	if !ok || n > math.MaxInt32 {
		return nil
	}
	return a.regions.DataSlice(off+4, int(n))
}
