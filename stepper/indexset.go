package stepper

// IndexSet is an insertion-only set of positions in [0, n).
// Once an index is added it is never removed, which is exactly the
// monotonicity a sorted region requires.
//
// Complexity: Add/Has are O(1); Sorted is O(n).
type IndexSet struct {
	member []bool
	count  int
}

// NewIndexSet returns an empty set over the index range [0, n).
func NewIndexSet(n int) IndexSet {
	if n < 0 {
		n = 0
	}

	return IndexSet{member: make([]bool, n)}
}

// Add inserts i. Out-of-range indices are ignored and reported as false.
func (s *IndexSet) Add(i int) bool {
	if i < 0 || i >= len(s.member) {
		return false
	}
	if !s.member[i] {
		s.member[i] = true
		s.count++
	}

	return true
}

// AddRange inserts every index in the closed range [lo, hi].
func (s *IndexSet) AddRange(lo, hi int) {
	for i := lo; i <= hi; i++ {
		s.Add(i)
	}
}

// Fill inserts every index of the range.
func (s *IndexSet) Fill() {
	for i := range s.member {
		s.member[i] = true
	}
	s.count = len(s.member)
}

// Has reports whether i is a member.
func (s *IndexSet) Has(i int) bool {
	return i >= 0 && i < len(s.member) && s.member[i]
}

// Len returns the number of members.
func (s *IndexSet) Len() int { return s.count }

// Full reports whether every index of the range is a member.
func (s *IndexSet) Full() bool { return s.count == len(s.member) }

// Sorted returns the members in ascending order as a fresh slice.
func (s *IndexSet) Sorted() []int {
	out := make([]int, 0, s.count)
	for i, ok := range s.member {
		if ok {
			out = append(out, i)
		}
	}

	return out
}
