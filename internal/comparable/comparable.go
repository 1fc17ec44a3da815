// Package comparable provides a small fluent wrapper over ad hoc total
// orders, for types that don't have one natively (phone numbers sort
// under a dedicated 12-symbol alphabet order, not byte order).
package comparable

// Comparable is implemented by any type with an ad hoc total order.
type Comparable interface {
	// CompareTo should return -1 or negative if the receiver is less
	// than other, 1 or positive if greater, 0 if equal.
	CompareTo(other interface{}) int
}

// HoldsComparable lets comparisons read as comparable.Is(x).LessThan(y)
// instead of a bare three-way CompareTo call.
type HoldsComparable struct {
	thing Comparable
}

// Is wraps thing so its comparisons against other Comparables can be
// expressed fluently.
func Is(thing Comparable) HoldsComparable {
	return HoldsComparable{thing: thing}
}

// LessThan reports whether the wrapped value sorts strictly before other.
func (cmp HoldsComparable) LessThan(other Comparable) bool {
	return cmp.thing.CompareTo(other) < 0
}

// EqualTo reports whether the wrapped value and other compare equal.
func (cmp HoldsComparable) EqualTo(other Comparable) bool {
	return cmp.thing.CompareTo(other) == 0
}
