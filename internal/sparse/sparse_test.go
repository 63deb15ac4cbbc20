package sparse

import (
	"testing"
)

func TestSet_Basic(t *testing.T) {
	s := New(100)

	// Empty set
	if s.Len() != 0 {
		t.Error("new set should be empty")
	}
	if s.Contains(0) {
		t.Error("empty set should not contain 0")
	}

	// Insert and contain
	if !s.Insert(5) {
		t.Error("first insert should return true")
	}
	if !s.Contains(5) {
		t.Error("set should contain 5 after insert")
	}
	if s.Insert(5) {
		t.Error("duplicate insert should return false")
	}
	if s.Len() != 1 {
		t.Errorf("len should be 1, got %d", s.Len())
	}

	// Multiple inserts
	s.Insert(10)
	s.Insert(3)
	s.Insert(7)
	if s.Len() != 4 {
		t.Errorf("len should be 4, got %d", s.Len())
	}
	if s.Contains(4) {
		t.Error("set should not contain 4")
	}
}

func TestSet_InsertionOrder(t *testing.T) {
	s := New(100)
	s.Insert(5)
	s.Insert(2)
	s.Insert(8)
	s.Insert(1)

	expected := []uint32{5, 2, 8, 1}
	values := s.Values()
	if len(values) != len(expected) {
		t.Fatalf("expected %d values, got %d", len(expected), len(values))
	}
	for i, v := range values {
		if v != expected[i] {
			t.Errorf("at index %d: expected %d, got %d", i, expected[i], v)
		}
	}
}

func TestSet_OutOfRange(t *testing.T) {
	s := New(10)
	if s.Insert(10) {
		t.Error("insert at capacity should be rejected")
	}
	if s.Contains(10) || s.Contains(1<<31) {
		t.Error("out-of-range values are never members")
	}
	if s.Len() != 0 {
		t.Errorf("len should be 0, got %d", s.Len())
	}
}

func TestSet_UninitializedSparse(t *testing.T) {
	s := New(16)
	s.Insert(9)

	// sparse[0] and sparse[3] both hold index 0, which holds 9.
	if s.Contains(0) || s.Contains(3) {
		t.Error("unset entries must not report membership")
	}
	if !s.Contains(9) {
		t.Error("9 should be a member")
	}
}

func TestSet_ZeroCapacity(t *testing.T) {
	s := New(0)
	if s.Insert(0) {
		t.Error("zero-capacity set accepts nothing")
	}
	if s.Len() != 0 || len(s.Values()) != 0 {
		t.Error("zero-capacity set should stay empty")
	}
}
