package fsa

import (
	"github.com/coregx/fsa/internal/conv"
	"github.com/coregx/fsa/internal/sparse"
)

// Stats summarizes the transition graph reachable from the start state.
// States shared by several keys (a minimized automaton) are counted once.
type Stats struct {
	States      int // Reachable states, including the start state
	FinalStates int // Reachable final states
	Transitions int // Distinct transitions between reachable states
	MaxKeyLen   int // Length in bytes of the longest key
}

// statsFrame is one state on the Stats walk stack.
type statsFrame struct {
	state  StateID
	symbol int // last symbol tried
}

// Stats walks every state reachable from the start state. It is linear in
// the number of reachable states times the alphabet size.
func (a *Automaton) Stats() Stats {
	var st Stats
	n := a.regions.Len()
	if a.start == DeadState || n == 0 || int(a.start) >= n {
		return st
	}

	// longest[s] is the longest path from s to a final state, -1 if none.
	// A state reached again while still on the stack (a cycle in a corrupt
	// image) contributes its partial value.
	visited := sparse.New(conv.IntToUint32(n))
	longest := make([]int32, n)
	enter := func(s StateID) {
		visited.Insert(uint32(s))
		longest[s] = -1
		if a.IsFinal(s) {
			longest[s] = 0
		}
	}
	fold := func(parent, child StateID) {
		if l := longest[child]; l >= 0 && l+1 > longest[parent] {
			longest[parent] = l + 1
		}
	}

	enter(a.start)
	stack := []statsFrame{{state: a.start}}
	for len(stack) > 0 {
		top := len(stack) - 1
		s := stack[top].state
		stack[top].symbol++
		sym := stack[top].symbol
		if sym >= int(FinalSymbol) {
			stack = stack[:top]
			if top > 0 {
				fold(stack[top-1].state, s)
			}
			continue
		}

		next := a.Delta(s, byte(sym))
		if next == DeadState {
			continue
		}
		st.Transitions++
		// A target outside the tables cannot have transitions of its own.
		if next < 0 || int(next) >= n {
			continue
		}
		if visited.Contains(uint32(next)) {
			fold(s, next)
			continue
		}
		enter(next)
		stack = append(stack, statsFrame{state: next})
	}

	for _, s := range visited.Values() {
		if a.IsFinal(StateID(s)) {
			st.FinalStates++
		}
	}
	st.States = visited.Len()
	st.MaxKeyLen = max(int(longest[a.start]), 0)
	return st
}
