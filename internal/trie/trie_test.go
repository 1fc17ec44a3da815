package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addRule(t *testing.T, f *ForwardTrie, r *ReverseTrie, num1, num2 string) {
	t.Helper()
	fid, err := f.InsertPath(num1)
	require.NoError(t, err)
	f.ClearPayload(fid, r)

	rid, err := r.InsertPath(num2)
	require.NoError(t, err)

	h, err := r.PushSource(rid, num1)
	require.NoError(t, err)

	f.SetPayload(fid, num2, rid, h)
}

func TestForwardInsertAndLongestPrefix(t *testing.T) {
	f := NewForwardTrie()
	r := NewReverseTrie()

	addRule(t, f, r, "12", "34")

	image, matchLen, found := f.LongestPrefix("1234567")
	require.True(t, found)
	assert.Equal(t, "34", image)
	assert.Equal(t, 2, matchLen)

	_, _, found = f.LongestPrefix("1")
	assert.False(t, found)
}

func TestForwardLongestPrefixPrefersDeepest(t *testing.T) {
	f := NewForwardTrie()
	r := NewReverseTrie()

	addRule(t, f, r, "12", "34")
	addRule(t, f, r, "123", "45")

	image, matchLen, found := f.LongestPrefix("1234")
	require.True(t, found)
	assert.Equal(t, "45", image)
	assert.Equal(t, 3, matchLen)
	assert.Equal(t, "454", image+"1234"[matchLen:])
}

func TestReAddSameSourceReplacesRule(t *testing.T) {
	f := NewForwardTrie()
	r := NewReverseTrie()

	addRule(t, f, r, "12", "34")
	addRule(t, f, r, "12", "56")

	image, matchLen, found := f.LongestPrefix("1299")
	require.True(t, found)
	assert.Equal(t, "56", image)
	assert.Equal(t, 2, matchLen)

	// Old reverse entry under "34" must be gone.
	candidates := r.CollectPreimages("34")
	assert.Empty(t, candidates)

	candidates = r.CollectPreimages("56")
	require.Len(t, candidates, 1)
	assert.Equal(t, "12", candidates[0].Source)
}

func TestRemovePrunesBothTries(t *testing.T) {
	f := NewForwardTrie()
	r := NewReverseTrie()

	addRule(t, f, r, "12", "34")

	id, ok := f.WalkExact("12")
	require.True(t, ok)

	parent := f.Detach(id)
	f.DeleteSubtree(id, r)
	f.PruneDeadPath(parent)

	_, ok = f.WalkExact("12")
	assert.False(t, ok)
	assert.Equal(t, 1, f.NodeCount()) // only the root remains

	candidates := r.CollectPreimages("34")
	assert.Empty(t, candidates)
	assert.Equal(t, 1, r.NodeCount()) // only the root remains
}

func TestCollectPreimagesGathersAlongPath(t *testing.T) {
	f := NewForwardTrie()
	r := NewReverseTrie()

	addRule(t, f, r, "4", "1")
	addRule(t, f, r, "42", "2")

	candidates := r.CollectPreimages("1")
	require.Len(t, candidates, 1)
	assert.Equal(t, "4", candidates[0].Source)
	assert.Equal(t, 1, candidates[0].MatchLen)
}

func TestClearPayloadIsNoopWithoutPayload(t *testing.T) {
	f := NewForwardTrie()
	r := NewReverseTrie()

	id, err := f.InsertPath("999")
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		f.ClearPayload(id, r)
	})
}
