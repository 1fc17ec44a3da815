package trie

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"

	"phonebook/internal/dlist"
	"phonebook/internal/number"
)

// reverseNode is one node of a ReverseTrie. Its payload is a DList of
// source keys rather than a single string.
type reverseNode struct {
	children  [childCount]nodeID
	mask      *bitset.BitSet
	parent    nodeID
	selfIndex int8

	sources *dlist.List
}

// ReverseTrie is the reverse-flavor trie: payload = the DList of
// source keys whose rule's image passes through this node.
type ReverseTrie struct {
	nodes []reverseNode
	free  []nodeID
}

// NewReverseTrie returns a trie containing only its root.
func NewReverseTrie() *ReverseTrie {
	t := &ReverseTrie{}
	t.newNode(noID, rootSelfIndex)
	return t
}

func (t *ReverseTrie) newNode(parent nodeID, selfIndex int8) nodeID {
	var id nodeID
	if n := len(t.free); n > 0 {
		id = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		t.nodes = append(t.nodes, reverseNode{})
		id = nodeID(len(t.nodes) - 1)
	}

	n := &t.nodes[id]
	*n = reverseNode{
		parent:    parent,
		selfIndex: selfIndex,
		mask:      bitset.New(uint(childCount)),
		sources:   dlist.New(),
	}
	for i := range n.children {
		n.children[i] = noID
	}
	return id
}

func (t *ReverseTrie) freeNode(id nodeID) {
	t.nodes[id] = reverseNode{}
	t.free = append(t.free, id)
}

func (t *ReverseTrie) isDead(id nodeID) bool {
	n := &t.nodes[id]
	return n.mask.Count() == 0 && n.sources.IsEmpty()
}

// InsertPath walks from the root, creating any missing nodes, and
// returns the terminal node.
func (t *ReverseTrie) InsertPath(num string) (nodeID, error) {
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

// PushSource records source as a rule key targeting node id.
func (t *ReverseTrie) PushSource(id nodeID, source string) (dlist.Handle, error) {
	return t.nodes[id].sources.PushFront(source)
}

// Unlink removes handle from node id's source list. A no-op for the
// noID/NoHandle sentinels, so callers can invoke it unconditionally
// on an already-cleared payload.
func (t *ReverseTrie) Unlink(id nodeID, handle dlist.Handle) {
	if id == noID {
		return
	}
	t.nodes[id].sources.Unlink(handle)
}

// PruneDeadPath detaches and frees id and each successive dead
// ancestor, stopping at the first live ancestor or the root. A no-op
// for the noID sentinel.
func (t *ReverseTrie) PruneDeadPath(id nodeID) {
	for id != noID && id != 0 && t.isDead(id) {
		n := &t.nodes[id]
		parent := n.parent
		t.nodes[parent].children[n.selfIndex] = noID
		t.nodes[parent].mask.Clear(uint(n.selfIndex))
		t.freeNode(id)
		id = parent
	}
}

// NodeCount reports how many node slots are currently live (allocated
// and not on the free list), including the root. Exposed for tests and
// diagnostics; not used by Registry itself.
func (t *ReverseTrie) NodeCount() int {
	return len(t.nodes) - len(t.free)
}

// Candidate is one entry gathered by CollectPreimages: a source key
// found at a node reached after depth MatchLen symbols of the query.
type Candidate struct {
	Source   string
	MatchLen int
}

// CollectPreimages walks num from the root, gathering every source
// key recorded at each node visited along the way, tagged with the
// depth at which it was found. It runs in two passes: the first sums
// each visited node's source-list length to size the result slice,
// then a second pass fills it, avoiding reallocation during collect.
func (t *ReverseTrie) CollectPreimages(num string) []Candidate {
	type visit struct {
		id       nodeID
		matchLen int
	}

	cur := nodeID(0)
	visited := make([]visit, 0, len(num))
	total := 0
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
		visited = append(visited, visit{id: cur, matchLen: i + 1})
		total += t.nodes[cur].sources.Size()
	}

	out := make([]Candidate, 0, total)
	for _, v := range visited {
		for _, s := range t.nodes[v.id].sources.Values() {
			out = append(out, Candidate{Source: s, MatchLen: v.matchLen})
		}
	}
	return out
}
