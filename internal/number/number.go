// Package number validates phone numbers and implements the
// lexicographic ordering over the 12-symbol alphabet {0-9,*,#} that
// the forward/reverse tries and Registry.Reverse/GetReverse rely on.
package number

import "github.com/pkg/errors"

// Alphabet is the number of distinct symbols a Number may be built
// from, and the width of a trie node's children array.
const Alphabet = 12

// ErrInvalidNumber is returned when a string is not a Number: empty,
// or containing a character outside {0-9,*,#}.
var ErrInvalidNumber = errors.New("phonebook: not a valid phone number")

// Index maps a single symbol byte to its 0..11 child-array slot.
// Digits map to their numeric value, '*' to 10, '#' to 11.
func Index(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c == '*':
		return 10, true
	case c == '#':
		return 11, true
	default:
		return 0, false
	}
}

// Validate reports whether s is a Number: a non-empty string whose
// every character is in {0-9,*,#}.
func Validate(s string) error {
	if len(s) == 0 {
		return ErrInvalidNumber
	}
	for i := 0; i < len(s); i++ {
		if _, ok := Index(s[i]); !ok {
			return errors.Wrapf(ErrInvalidNumber, "character %q at offset %d", s[i], i)
		}
	}
	return nil
}

// IsValid is a boolean convenience wrapper around Validate.
func IsValid(s string) bool {
	return Validate(s) == nil
}

// Compare implements the dedicated lexicographic order: a shorter
// string is less than any of its strict extensions, and at the first
// differing position order follows the Index mapping (so '*' and '#'
// sort after every digit).
func Compare(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ai, _ := Index(a[i])
		bi, _ := Index(b[i])
		if ai != bi {
			if ai < bi {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Ordered adapts a Number string to internal/comparable's fluent
// Comparable interface, so sort/dedup call sites can read as
// comparable.Is(x).LessThan(y) rather than a bare three-way Compare.
type Ordered string

// CompareTo implements comparable.Comparable.
func (o Ordered) CompareTo(other interface{}) int {
	switch v := other.(type) {
	case Ordered:
		return Compare(string(o), string(v))
	case string:
		return Compare(string(o), v)
	default:
		return 0
	}
}
