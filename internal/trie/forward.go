package trie

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"

	"phonebook/internal/dlist"
	"phonebook/internal/number"
)

// forwardNode is one node of a ForwardTrie. Only a forward node may
// carry a back-link, enforced here at the type level rather than via
// a runtime-tagged union.
type forwardNode struct {
	children  [childCount]nodeID
	mask      *bitset.BitSet // which of children[0:childCount] are occupied
	parent    nodeID
	selfIndex int8 // this node's slot in parent.children; rootSelfIndex at the root

	hasImage bool
	image    string

	// back-link into the paired ReverseTrie.
	backNode   nodeID
	backHandle dlist.Handle
}

// ForwardTrie is the forward-flavor trie: payload = one forwarded
// image string per node with a rule.
type ForwardTrie struct {
	nodes []forwardNode
	free  []nodeID
}

// NewForwardTrie returns a trie containing only its root.
func NewForwardTrie() *ForwardTrie {
	t := &ForwardTrie{}
	t.newNode(noID, rootSelfIndex)
	return t
}

func (t *ForwardTrie) newNode(parent nodeID, selfIndex int8) nodeID {
	var id nodeID
	if n := len(t.free); n > 0 {
		id = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		t.nodes = append(t.nodes, forwardNode{})
		id = nodeID(len(t.nodes) - 1)
	}

	n := &t.nodes[id]
	*n = forwardNode{
		parent:     parent,
		selfIndex:  selfIndex,
		mask:       bitset.New(uint(childCount)),
		backNode:   noID,
		backHandle: dlist.NoHandle,
	}
	for i := range n.children {
		n.children[i] = noID
	}
	return id
}

func (t *ForwardTrie) freeNode(id nodeID) {
	t.nodes[id] = forwardNode{}
	t.free = append(t.free, id)
}

func (t *ForwardTrie) isDead(id nodeID) bool {
	n := &t.nodes[id]
	return !n.hasImage && n.mask.Count() == 0
}

// InsertPath walks from the root, creating any missing nodes, and
// returns the terminal node. It does not touch the payload there.
func (t *ForwardTrie) InsertPath(num string) (nodeID, error) {
	cur := nodeID(0)
	for i := 0; i < len(num); i++ {
		idx, ok := number.Index(num[i])
		if !ok {
			return noID, errors.Wrapf(number.ErrInvalidNumber, "character %q at offset %d", num[i], i)
		}
		child := t.nodes[cur].children[idx]
		if child == noID {
			child = t.newNode(cur, int8(idx))
			t.nodes[cur].children[idx] = child
			t.nodes[cur].mask.Set(uint(idx))
		}
		cur = child
	}
	return cur, nil
}

// WalkExact follows num from the root and reports whether the full
// path already exists, without creating anything.
func (t *ForwardTrie) WalkExact(num string) (nodeID, bool) {
	cur := nodeID(0)
	for i := 0; i < len(num); i++ {
		idx, ok := number.Index(num[i])
		if !ok {
			return noID, false
		}
		child := t.nodes[cur].children[idx]
		if child == noID {
			return noID, false
		}
		cur = child
	}
	return cur, true
}

// ClearPayload is the payload-clearing hook run before a node's rule
// is replaced or removed: it unlinks this node's entry from the
// reverse-trie's DList, prunes the now possibly dead reverse path, and
// clears the forward payload and back-link. It never frees id itself,
// and is a no-op when id carries no payload, so Add can call it
// unconditionally even on a brand-new node.
func (t *ForwardTrie) ClearPayload(id nodeID, reverse *ReverseTrie) {
	n := &t.nodes[id]
	if !n.hasImage {
		return
	}
	reverse.Unlink(n.backNode, n.backHandle)
	reverse.PruneDeadPath(n.backNode)

	n.hasImage = false
	n.image = ""
	n.backNode = noID
	n.backHandle = dlist.NoHandle
}

// SetPayload writes a freshly-validated rule's image and back-link
// onto an already-cleared node.
func (t *ForwardTrie) SetPayload(id nodeID, image string, backNode nodeID, backHandle dlist.Handle) {
	n := &t.nodes[id]
	n.hasImage = true
	n.image = image
	n.backNode = backNode
	n.backHandle = backHandle
}

// Detach clears id out of its parent's children slot (and mask) and
// returns the parent, without freeing id itself.
func (t *ForwardTrie) Detach(id nodeID) nodeID {
	n := &t.nodes[id]
	parent := n.parent
	if parent == noID {
		return noID
	}
	t.nodes[parent].children[n.selfIndex] = noID
	t.nodes[parent].mask.Clear(uint(n.selfIndex))
	n.parent = noID
	return parent
}

// DeleteSubtree iteratively frees every node in the subtree rooted at
// id (which must already be detached from its parent), invoking
// ClearPayload on each node that carries a rule before freeing it.
func (t *ForwardTrie) DeleteSubtree(id nodeID, reverse *ReverseTrie) {
	if id == noID {
		return
	}

	// Collect the subtree first (parents before children); ids are
	// stable across the ClearPayload calls below since those only
	// touch the paired ReverseTrie, so a single pass suffices.
	order := []nodeID{id}
	for i := 0; i < len(order); i++ {
		n := &t.nodes[order[i]]
		for c := 0; c < childCount; c++ {
			if child := n.children[c]; child != noID {
				order = append(order, child)
			}
		}
	}

	for i := len(order) - 1; i >= 0; i-- {
		cur := order[i]
		t.ClearPayload(cur, reverse)
		t.freeNode(cur)
	}
}

// PruneDeadPath detaches and frees id and each successive dead
// ancestor, stopping at the first live ancestor or the root.
func (t *ForwardTrie) PruneDeadPath(id nodeID) {
	for id != 0 && t.isDead(id) {
		n := &t.nodes[id]
		parent := n.parent
		t.nodes[parent].children[n.selfIndex] = noID
		t.nodes[parent].mask.Clear(uint(n.selfIndex))
		t.freeNode(id)
		id = parent
	}
}

// LongestPrefix returns the image and matched-prefix length of the
// longest prefix of num that ends at a node with a rule, and whether
// any such prefix exists.
func (t *ForwardTrie) LongestPrefix(num string) (image string, matchLen int, found bool) {
	cur := nodeID(0)
	for i := 0; i < len(num); i++ {
		idx, ok := number.Index(num[i])
		if !ok {
			break
		}
		child := t.nodes[cur].children[idx]
		if child == noID {
			break
		}
		cur = child
		if t.nodes[cur].hasImage {
			image = t.nodes[cur].image
			matchLen = i + 1
			found = true
		}
	}
	return image, matchLen, found
}

// NodeCount reports how many node slots are currently live (allocated
// and not on the free list), including the root. Exposed for tests and
// diagnostics; not used by Registry itself.
func (t *ForwardTrie) NodeCount() int {
	return len(t.nodes) - len(t.free)
}

// ClearAll clears every remaining rule's payload, unlinking each from
// the paired reverse trie. Used by Registry.Dispose to run the
// cross-trie cleanup hook before both pools are dropped.
func (t *ForwardTrie) ClearAll(reverse *ReverseTrie) {
	for id := range t.nodes {
		if t.nodes[id].hasImage {
			t.ClearPayload(nodeID(id), reverse)
		}
	}
}
