// Package sparse provides a sparse set of state ids.
//
// A sparse set supports O(1) insertion and membership testing while keeping a dense list of its elements in insertion order. The automaton
// uses it to mark states already visited while walking the transition graph,
// where the universe of ids is bounded by the slot count of the image.
package sparse

// Set is a set of uint32 values below a fixed capacity.
//
// It maintains both a sparse array (for membership testing) and a dense array
// (for iteration). The sparse array maps values to indices in the dense array
// and is never initialized; Contains validates entries against dense.
type Set struct {
	sparse []uint32 // Maps value -> index in dense
	dense  []uint32 // Contains the actual values, in insertion order
}

// New creates a set that can hold values in [0, capacity).
func New(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, 64),
	}
}

// Insert adds value to the set. It returns false if value was already
// present or lies outside the capacity.
func (s *Set) Insert(value uint32) bool {
	if uint64(value) >= uint64(len(s.sparse)) || s.Contains(value) {
		return false
	}
	//nolint:gosec // G115: dense never exceeds len(sparse), which fits in uint32
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains returns true if value is in the set.
func (s *Set) Contains(value uint32) bool {
	if uint64(value) >= uint64(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return int(idx) < len(s.dense) && s.dense[idx] == value
}

// Len returns the number of elements in the set.
func (s *Set) Len() int {
	return len(s.dense)
}

// Values returns the elements in insertion order.
// The returned slice is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}
