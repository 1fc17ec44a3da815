// Package trie implements the 12-ary prefix tree in its two flavors:
// ForwardTrie, whose payload is a single forwarded image string, and
// ReverseTrie, whose payload is a dlist.List of source keys. Both are
// arena-backed node pools addressed by an integer nodeID rather than a
// pointer graph, with a back-link connecting the two pools across a
// rule's forward and reverse nodes.
package trie

import "phonebook/internal/number"

// nodeID addresses a node within one trie's arena. Node 0 is always
// that trie's root.
type nodeID int32

// noID is the "no node" sentinel, used for an absent parent, an empty
// children slot, or an absent back-link.
const noID nodeID = -1

const childCount = number.Alphabet

// rootSelfIndex marks a node with no parent slot (only ever the root).
const rootSelfIndex int8 = -1
