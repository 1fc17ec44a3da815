package phonebook

import (
	"github.com/pkg/errors"

	"phonebook/internal/number"
)

// ErrInvalidNumber reports that a string isn't a Number (empty, or
// containing a character outside {0-9,*,#}).
var ErrInvalidNumber = number.ErrInvalidNumber

// ErrSameNumber names the rejection of a rule whose source and target
// are equal. Add reports that case by returning false, so no operation
// in this package returns this value.
var ErrSameNumber = errors.New("phonebook: source and target numbers must differ")

// ErrOutOfMemory reports an allocation failure while growing a trie or
// list. Go's allocator does not expose a recoverable out-of-memory
// condition the way a malloc-based allocator can, so this is never
// actually returned; it is kept so Get/Reverse/GetReverse's signatures
// faithfully distinguish "allocation failed" (nil, ErrOutOfMemory) from
// "no match, here is the identity/empty result" (result, nil).
var ErrOutOfMemory = errors.New("phonebook: allocation failed")
