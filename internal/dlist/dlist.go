// Package dlist implements a doubly linked list of owned strings with
// stable, O(1)-unlinkable handles.
//
// The list is arena-backed: nodes live in a slice and are addressed
// by index rather than pointer, with a free-list recycling slots an
// Unlink releases. This is the same "arena + opaque handle" technique
// internal/trie uses for the forward/reverse node pools, applied here
// so that a Handle returned by PushFront stays valid across any other
// handle's Unlink in the same list.
package dlist

// Handle addresses a single list node by its slot index, starting at
// 0; NoHandle is the explicit "no node" value.
type Handle int32

// NoHandle is the handle equivalent of a nil/empty reference.
const NoHandle Handle = -1

type node struct {
	value      string
	prev, next Handle
	live       bool
}

// List is a doubly linked list of strings, newest-first.
type List struct {
	nodes []node
	free  []Handle
	head  Handle
}

// New returns an empty list, ready to use.
func New() *List {
	return &List{head: NoHandle}
}

// PushFront copies s into a new node at the head of the list and
// returns a handle that stays valid until that node is unlinked.
//
// PushFront keeps an error return for parity with the allocation-shaped
// operations elsewhere in this module: Go's slice growth cannot itself
// report a recoverable error, so this never actually fails, but callers
// (internal/trie) are written as though it could, leaving the list
// unchanged on a hypothetical failure.
func (l *List) PushFront(s string) (Handle, error) {
	h := l.alloc()
	n := &l.nodes[h]
	n.value = s
	n.live = true
	n.prev = NoHandle
	n.next = l.head

	if l.head != NoHandle {
		l.nodes[l.head].prev = h
	}
	l.head = h
	return h, nil
}

// alloc returns a handle to an unused node, recycling a freed slot
// when one is available.
func (l *List) alloc() Handle {
	if n := len(l.free); n > 0 {
		h := l.free[n-1]
		l.free = l.free[:n-1]
		return h
	}
	l.nodes = append(l.nodes, node{})
	return Handle(len(l.nodes) - 1)
}

// Unlink removes the node addressed by h and frees its string. It is
// a no-op if h is NoHandle, out of range, or already unlinked while its
// slot is still free. A later PushFront may reuse that slot, and from
// then on h addresses the new node.
func (l *List) Unlink(h Handle) {
	if h == NoHandle || int(h) >= len(l.nodes) || !l.nodes[h].live {
		return
	}
	n := &l.nodes[h]

	if n.prev != NoHandle {
		l.nodes[n.prev].next = n.next
	} else {
		l.head = n.next
	}
	if n.next != NoHandle {
		l.nodes[n.next].prev = n.prev
	}

	*n = node{prev: NoHandle, next: NoHandle}
	l.free = append(l.free, h)
}

// IsEmpty reports in O(1) whether the list holds any nodes. Trie
// liveness checks use this rather than Size, which is an O(N) walk
// meant only for sizing result buffers.
func (l *List) IsEmpty() bool {
	return l.head == NoHandle
}

// Size returns the number of nodes currently linked, via an O(N) walk.
func (l *List) Size() int {
	count := 0
	for h := l.head; h != NoHandle; h = l.nodes[h].next {
		count++
	}
	return count
}

// Values returns the list's strings in head-to-tail (most-recently
// pushed first) order.
func (l *List) Values() []string {
	out := make([]string, 0, l.Size())
	for h := l.head; h != NoHandle; h = l.nodes[h].next {
		out = append(out, l.nodes[h].value)
	}
	return out
}
