package threading

// Range is a half-open interval [Lo, Hi) of the iteration space. It is
// empty iff Lo == Hi. Range is a plain value: copying it is always
// safe, and the zero Range is the empty range [0, 0).
type Range struct {
	Lo, Hi uint64
}

// Empty reports whether r covers no indices.
func (r Range) Empty() bool {
	return r.Lo >= r.Hi
}

// Len returns the number of indices covered by r, or 0 if r is empty.
func (r Range) Len() uint64 {
	if r.Empty() {
		return 0
	}
	return r.Hi - r.Lo
}
