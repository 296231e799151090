package nodeset

import "github.com/RoaringBitmap/roaring/v2"

// Set is a set of dense node indices backed by a 32-bit Roaring Bitmap.
//
// Set is not thread-safe. The engine follows a snapshot-and-merge protocol:
// a search pass works on a Clone taken under the owner's lock and the owner
// merges the result back with Union/Subtract under the same lock.
type Set struct {
	rb *roaring.Bitmap
}

// New creates a new empty set.
func New() *Set {
	return &Set{rb: roaring.New()}
}

// Add inserts n into the set.
func (s *Set) Add(n uint32) {
	s.rb.Add(n)
}

// Remove deletes n from the set.
func (s *Set) Remove(n uint32) {
	s.rb.Remove(n)
}

// Contains reports whether n is in the set.
func (s *Set) Contains(n uint32) bool {
	return s.rb.Contains(n)
}

// Len returns the number of elements in the set.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// Clear removes all elements, releasing container memory.
func (s *Set) Clear() {
	s.rb.Clear()
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	return &Set{rb: s.rb.Clone()}
}

// Union adds every element of o to the set.
func (s *Set) Union(o *Set) {
	s.rb.Or(o.rb)
}

// Subtract removes every element of o from the set.
func (s *Set) Subtract(o *Set) {
	s.rb.AndNot(o.rb)
}

// Iterate calls fn for each element in ascending order until fn returns
// false.
func (s *Set) Iterate(fn func(n uint32) bool) {
	s.rb.Iterate(fn)
}
