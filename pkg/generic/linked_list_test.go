package generic

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guillemguerrero/povlist"
	"github.com/guillemguerrero/povlist/pkg/alloc"
)

type entry struct {
	key int
	seq int
}

func after(key int) func(Item) bool {
	return func(v Item) bool {
		return v.(entry).key > key
	}
}

func TestCreate(t *testing.T) {
	c := NewItemChain(nil)
	assert.NotNil(t, c.head)
	assert.True(t, c.previous == c.head)
	assert.Nil(t, c.head.next)
	assert.True(t, c.IsEmpty())
	assert.True(t, c.IsAtEnd())
}

func TestInsertBeforeStable(t *testing.T) {
	c := NewItemChain(nil)
	for i, k := range []int{2, 1, 2, 0, 2, 1} {
		require.NoError(t, c.InsertBefore(entry{key: k, seq: i}, after(k)))
	}

	want := []Item{
		entry{0, 3},
		entry{1, 1}, entry{1, 5},
		entry{2, 0}, entry{2, 2}, entry{2, 4},
	}
	assert.Equal(t, want, c.Values())
}

func TestInsertAtCursor(t *testing.T) {
	c := NewItemChain(nil)
	_ = c.InsertAtCursor("a")
	_ = c.InsertAtCursor("c")
	assert.True(t, c.IsAtEnd())

	c.GoToHead()
	require.NoError(t, c.Next())
	require.NoError(t, c.InsertAtCursor("b"))

	v, err := c.Get()
	require.NoError(t, err)
	assert.Equal(t, "c", v)
	assert.Equal(t, []Item{"a", "b", "c"}, c.Values())
	assert.Equal(t, 3, c.Len())
}

func TestPreviousStaysReachable(t *testing.T) {
	c := NewItemChain(nil)
	for i := 0; i < 6; i++ {
		_ = c.InsertBefore(entry{key: i}, after(i))
	}

	reachable := func() bool {
		for n := c.head; n != nil; n = n.next {
			if n == c.previous {
				return true
			}
		}
		return false
	}

	c.GoToHead()
	for !c.IsAtEnd() {
		require.True(t, reachable())
		if c.previous.next.value.(entry).key%2 == 0 {
			require.NoError(t, c.Remove())
			continue
		}
		require.NoError(t, c.Next())
	}

	assert.True(t, reachable())
	assert.Equal(t, []Item{entry{key: 1}, entry{key: 3}, entry{key: 5}}, c.Values())
}

func TestFailuresDoNotMutate(t *testing.T) {
	c := NewItemChain(alloc.NewTracker(2))
	require.NoError(t, c.InsertAtCursor("x"))
	head, prev := c.head, c.previous

	err := c.InsertBefore("y", func(Item) bool { return true })
	assert.Equal(t, povlist.ErrAlloc, errors.Cause(err))
	assert.Equal(t, povlist.ErrorMalloc, c.ErrorCode())

	err = c.Next()
	assert.Equal(t, povlist.ErrEnd, errors.Cause(err))
	_, err = c.Get()
	assert.Equal(t, povlist.ErrEnd, errors.Cause(err))
	err = c.Remove()
	assert.Equal(t, povlist.ErrEnd, errors.Cause(err))
	assert.Equal(t, povlist.ErrorEnd, c.ErrorCode())

	assert.True(t, head == c.head)
	assert.True(t, prev == c.previous)
	assert.Equal(t, []Item{"x"}, c.Values())
}

func TestDestroy(t *testing.T) {
	tracker := alloc.NewTracker(0)
	c := NewItemChain(tracker)
	for i := 0; i < 4; i++ {
		_ = c.InsertAtCursor(i)
	}

	c.Destroy()
	assert.Nil(t, c.head)
	assert.Nil(t, c.previous)
	assert.Equal(t, int64(0), tracker.Live())

	c.GoToHead()
	assert.True(t, c.IsAtEnd())
	assert.Empty(t, c.Values())
}
