// Package phonebook maintains a mutable database of phone-number
// forwarding rules over a dual-trie structure with cross-links, and
// answers the forward, reverse, and filtered-reverse queries against
// it.
package phonebook

import (
	"sort"

	"phonebook/internal/comparable"
	"phonebook/internal/number"
	"phonebook/internal/trie"
)

// Registry owns exactly one forward-trie and one reverse-trie and
// maintains the cross-trie invariants that bind them.
//
// Registry is single-writer: concurrent mutation is not safe, and
// concurrent reads are safe only while no writer is active. Callers
// supply their own synchronization if that is needed.
type Registry struct {
	forward *trie.ForwardTrie
	reverse *trie.ReverseTrie
}

// NewRegistry returns an empty Registry. There is nothing to
// configure: a Registry's shape (one forward-trie, one reverse-trie,
// string payloads) is fixed by this package, not by its caller.
func NewRegistry() *Registry {
	return &Registry{
		forward: trie.NewForwardTrie(),
		reverse: trie.NewReverseTrie(),
	}
}

// Add records that num1 forwards to num2, replacing any existing rule
// for num1. It returns false if num1 or num2 is not a valid Number, or
// if num1 == num2.
func (r *Registry) Add(num1, num2 string) bool {
	if err := number.Validate(num1); err != nil {
		return false
	}
	if err := number.Validate(num2); err != nil {
		return false
	}
	if num1 == num2 {
		return false
	}

	f, err := r.forward.InsertPath(num1)
	if err != nil {
		return false
	}

	// Clear any previous rule at num1 before writing the new one, so
	// at most one rule per source key ever exists.
	r.forward.ClearPayload(f, r.reverse)

	rv, err := r.reverse.InsertPath(num2)
	if err != nil {
		// A partially created chain has no payloads and is
		// structurally inert, reclaimed by the next prune through it.
		// Nothing to roll back explicitly here since InsertPath never
		// leaves a terminal id behind on failure.
		return false
	}

	handle, err := r.reverse.PushSource(rv, num1)
	if err != nil {
		r.reverse.PruneDeadPath(rv)
		return false
	}

	r.forward.SetPayload(f, num2, rv, handle)
	return true
}

// Remove deletes the rule at num, if any, along with every rule nested
// under it in the forward-trie. It is a no-op if num is not a Number
// or no forward-trie path for num exists.
func (r *Registry) Remove(num string) {
	if err := number.Validate(num); err != nil {
		return
	}
	id, ok := r.forward.WalkExact(num)
	if !ok {
		return
	}

	parent := r.forward.Detach(id)
	r.forward.DeleteSubtree(id, r.reverse)
	r.forward.PruneDeadPath(parent)
}

// Get returns the forwarded image of num under the longest matching
// rule prefix, or num itself if no prefix of num has a rule. It
// returns an empty result if num is not a Number.
func (r *Registry) Get(num string) (*PhoneNumbers, error) {
	if err := number.Validate(num); err != nil {
		return emptyPhoneNumbers(), nil
	}

	image, matchLen, found := r.forward.LongestPrefix(num)
	if !found {
		return singlePhoneNumber(num), nil
	}
	return singlePhoneNumber(image + num[matchLen:]), nil
}

// Reverse returns every x such that some rule (s, t) has t equal to a
// prefix of num with s recorded against that prefix, reconstructed as
// s concatenated with num's remaining suffix; num itself is always
// included. The result is sorted under the 12-symbol alphabet order
// and deduplicated. It returns an empty result if num is not a Number.
func (r *Registry) Reverse(num string) (*PhoneNumbers, error) {
	if err := number.Validate(num); err != nil {
		return emptyPhoneNumbers(), nil
	}
	return &PhoneNumbers{values: r.reverseCandidates(num)}, nil
}

// GetReverse is Reverse filtered down to candidates x for which
// Get(x) == num, i.e. whose own longest-prefix rule doesn't divert
// them elsewhere.
func (r *Registry) GetReverse(num string) (*PhoneNumbers, error) {
	if err := number.Validate(num); err != nil {
		return emptyPhoneNumbers(), nil
	}

	candidates := r.reverseCandidates(num)
	filtered := make([]string, 0, len(candidates))
	for _, x := range candidates {
		got, _ := r.Get(x)
		if v, ok := got.Get(0); ok && got.Size() == 1 && v == num {
			filtered = append(filtered, x)
		}
	}
	return &PhoneNumbers{values: filtered}, nil
}

// reverseCandidates computes Reverse(num)'s sorted, deduplicated
// candidate set: num is always present, plus every source key
// gathered by walking the reverse-trie, each reconstructed with num's
// unmatched suffix.
func (r *Registry) reverseCandidates(num string) []string {
	matches := r.reverse.CollectPreimages(num)

	values := make([]string, 0, len(matches)+1)
	for _, m := range matches {
		values = append(values, m.Source+num[m.MatchLen:])
	}
	values = append(values, num)

	return sortAndDedup(values)
}

// sortAndDedup sorts values under the 12-symbol alphabet order and
// collapses adjacent equal entries in place.
func sortAndDedup(values []string) []string {
	sort.Slice(values, func(i, j int) bool {
		return comparable.Is(number.Ordered(values[i])).LessThan(number.Ordered(values[j]))
	})

	out := values[:0]
	for i, v := range values {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// Dispose frees the Registry's two tries. The forward-trie is torn
// down first so that every live rule's payload-clearing hook runs and
// detaches its reverse-trie DList entry, then the reverse-trie pool is
// dropped. A disposed Registry must not be used again.
func (r *Registry) Dispose() {
	if r.forward != nil {
		r.forward.ClearAll(r.reverse)
	}
	r.forward = nil
	r.reverse = nil
}
