package dlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushFrontOrderAndSize(t *testing.T) {
	l := New()
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Size())

	_, err := l.PushFront("a")
	require.NoError(t, err)
	_, err = l.PushFront("b")
	require.NoError(t, err)
	_, err = l.PushFront("c")
	require.NoError(t, err)

	assert.False(t, l.IsEmpty())
	assert.Equal(t, 3, l.Size())
	assert.Equal(t, []string{"c", "b", "a"}, l.Values())
}

func TestUnlinkMiddleKeepsOthersStable(t *testing.T) {
	l := New()
	ha, _ := l.PushFront("a")
	hb, _ := l.PushFront("b")
	hc, _ := l.PushFront("c")

	l.Unlink(hb)

	assert.Equal(t, []string{"c", "a"}, l.Values())
	assert.Equal(t, 2, l.Size())

	// ha and hc remain valid handles into their own nodes.
	l.Unlink(hc)
	assert.Equal(t, []string{"a"}, l.Values())
	l.Unlink(ha)
	assert.True(t, l.IsEmpty())
}

func TestUnlinkIsNoopOnBadHandle(t *testing.T) {
	l := New()
	h, _ := l.PushFront("only")

	l.Unlink(NoHandle)
	assert.Equal(t, 1, l.Size())

	l.Unlink(Handle(99))
	assert.Equal(t, 1, l.Size())

	l.Unlink(h)
	assert.True(t, l.IsEmpty())

	// Double-unlink is a no-op too.
	l.Unlink(h)
	assert.True(t, l.IsEmpty())
}

func TestHandleReuseAfterUnlink(t *testing.T) {
	l := New()
	h1, _ := l.PushFront("first")
	l.Unlink(h1)

	h2, _ := l.PushFront("second")
	assert.Equal(t, []string{"second"}, l.Values())
	assert.NotEqual(t, NoHandle, h2)
	assert.Equal(t, h1, h2) // the freed slot is reused
}
