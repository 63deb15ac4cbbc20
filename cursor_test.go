package fsa

import (
	"testing"

	"github.com/coregx/fsa/internal/fsatest"
)

func TestCursorCarScenario(t *testing.T) {
	a := newTestAutomaton(t, carEntries, fsatest.Options{})
	c := a.NewCursor()

	if !c.IsStart() || !c.IsValid() {
		t.Fatal("new cursor should be at a valid start state")
	}

	c.AdvanceString("ca")
	if !c.IsValid() {
		t.Error(`"ca" is a prefix, cursor should be valid`)
	}
	if c.IsFinal() {
		t.Error(`"ca" is not an entry`)
	}
	if c.Data() != nil {
		t.Error(`"ca" has no data`)
	}

	c.Advance('r')
	if !c.IsFinal() || c.DataString() != "B" {
		t.Errorf(`after "car": final=%v data=%q, want true "B"`, c.IsFinal(), c.DataString())
	}

	if got := c.Lookup("cart"); string(got) != "C" {
		t.Errorf("Lookup(cart) = %q, want C", got)
	}
	if got := c.Lookup("dog"); got != nil {
		t.Errorf("Lookup(dog) = %q, want nil", got)
	}
	if c.IsValid() {
		t.Error("cursor should be dead after failed Lookup")
	}

	c.Reset()
	if !c.IsStart() || c.Hash() != 0 {
		t.Error("Reset should return to start with hash 0")
	}
}

func TestCursorDeadStaysDead(t *testing.T) {
	a := newTestAutomaton(t, carEntries, fsatest.Options{PerfectHash: true})
	c := a.NewCursor()
	c.AdvanceString("cax")
	if c.IsValid() {
		t.Fatal(`"cax" should kill the cursor`)
	}
	hash := c.Hash()

	// "car" from a dead cursor must not resurrect it.
	for _, b := range []byte("car") {
		c.Advance(b)
		if c.State() != DeadState {
			t.Fatalf("Advance(%q) revived a dead cursor", b)
		}
	}
	c.AdvanceString("cart")
	c.AdvanceRune('c')
	if c.IsValid() || c.Hash() != hash {
		t.Error("dead cursor must keep its state and hash")
	}
}

func TestCursorHashOrder(t *testing.T) {
	a := newTestAutomaton(t, wordEntries, fsatest.Options{PerfectHash: true})
	c := a.NewCursor()

	for rank, key := range fsatest.SortedKeys(wordEntries) {
		c.Reset()
		c.AdvanceString(key)
		if !c.IsFinal() {
			t.Fatalf("%q should be final", key)
		}
		if c.Hash() != int32(rank) {
			t.Errorf("Hash(%q) = %d, want rank %d", key, c.Hash(), rank)
		}
		if !c.HasPerfectHash() {
			t.Error("HasPerfectHash() = false")
		}
	}
}

func TestCursorTryAdvance(t *testing.T) {
	a := newTestAutomaton(t, carEntries, fsatest.Options{PerfectHash: true})
	c := a.NewCursor()
	c.AdvanceString("ca")
	state, hash := c.State(), c.Hash()

	if c.TryAdvance('x') {
		t.Error("TryAdvance('x') should fail")
	}
	if c.State() != state || c.Hash() != hash {
		t.Error("failed TryAdvance must not move the cursor")
	}

	if !c.TryAdvance('t') {
		t.Error("TryAdvance('t') should succeed")
	}
	if !c.IsFinal() || c.DataString() != "A" {
		t.Error(`TryAdvance('t') should reach "cat"`)
	}
}

func TestCursorTryAdvanceStringNoOp(t *testing.T) {
	a := newTestAutomaton(t, wordEntries, fsatest.Options{PerfectHash: true})

	tests := []struct {
		prefix string
		input  string
		wantOK bool
	}{
		{"", "zoo", true},
		{"", "zoomx", false},
		{"", "q", false},
		{"ab", "c", true},
		{"ab", "cd", false},
		{"new", " york", true},
		{"new", "york", false},
		{"b", "", true},
	}

	for _, tt := range tests {
		c := a.NewCursor()
		c.AdvanceString(tt.prefix)
		state, hash := c.State(), c.Hash()

		ok := c.TryAdvanceString(tt.input)
		if ok != tt.wantOK {
			t.Errorf("TryAdvanceString(%q) after %q = %v, want %v", tt.input, tt.prefix, ok, tt.wantOK)
		}
		if !ok && (c.State() != state || c.Hash() != hash) {
			t.Errorf("failed TryAdvanceString(%q) after %q moved the cursor", tt.input, tt.prefix)
		}
	}
}

func TestCursorAdvanceWord(t *testing.T) {
	a := newTestAutomaton(t, wordEntries, fsatest.Options{})
	c := a.NewCursor()

	c.AdvanceWord("new")
	c.AdvanceWord("york")
	if !c.IsFinal() || c.DataString() != "13" {
		t.Errorf(`AdvanceWord new, york: final=%v data=%q`, c.IsFinal(), c.DataString())
	}
	c.AdvanceWord("city")
	if c.DataString() != "14" {
		t.Errorf(`AdvanceWord city: data=%q, want 14`, c.DataString())
	}
}

func TestCursorTryAdvanceWord(t *testing.T) {
	entries := []fsatest.Entry{
		fsatest.E("foo bar", "phrase"),
		fsatest.E("foo", "word"),
		fsatest.E("fob", "x"),
		fsatest.E("qux quux", "y"),
	}
	a := newTestAutomaton(t, entries, fsatest.Options{})

	tests := []struct {
		name  string
		words []string
		want  []bool
		final bool
	}{
		{"entry and prefix word", []string{"foo", "bar"}, []bool{true, true}, true},
		{"prefix word only", []string{"qux"}, []bool{true}, false},
		{"phrase", []string{"qux", "quux"}, []bool{true, true}, true},
		{"complete entry without continuation", []string{"fob"}, []bool{true}, true},
		{"partial word", []string{"fo"}, []bool{false}, false},
		{"unknown word", []string{"baz"}, []bool{false}, false},
		{"unknown second word", []string{"foo", "baz"}, []bool{true, false}, true},
		{"bare word without separator", []string{"fob", "bar"}, []bool{true, false}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := a.NewCursor()
			for i, w := range tt.words {
				state, hash := c.State(), c.Hash()
				got := c.TryAdvanceWord(w)
				if got != tt.want[i] {
					t.Fatalf("TryAdvanceWord(%q) = %v, want %v", w, got, tt.want[i])
				}
				if !got && (c.State() != state || c.Hash() != hash) {
					t.Fatalf("failed TryAdvanceWord(%q) moved the cursor", w)
				}
			}
			if c.IsFinal() != tt.final {
				t.Errorf("IsFinal() = %v, want %v", c.IsFinal(), tt.final)
			}
		})
	}
}

func TestCursorAdvanceRune(t *testing.T) {
	a := newTestAutomaton(t, []fsatest.Entry{fsatest.E("日本", "japan")}, fsatest.Options{})
	c := a.NewCursor()
	c.AdvanceRune('日')
	if !c.IsValid() || c.IsFinal() {
		t.Fatal("after first rune: want valid, non-final")
	}
	c.AdvanceRune('本')
	if c.DataString() != "japan" {
		t.Errorf("DataString() = %q, want japan", c.DataString())
	}
}

func TestCursorClone(t *testing.T) {
	a := newTestAutomaton(t, carEntries, fsatest.Options{})
	c := a.NewCursor()
	c.AdvanceString("ca")

	d := c.Clone()
	d.Advance('t')
	if c.IsFinal() {
		t.Error("advancing a clone must not move the original")
	}
	if !d.IsFinal() {
		t.Error("clone should reach cat")
	}
	if d.Automaton() != a {
		t.Error("clone should share the automaton")
	}
}
