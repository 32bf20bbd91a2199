package linkedlist

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guillemguerrero/povlist"
	"github.com/guillemguerrero/povlist/pkg/alloc"
)

func TestCreate(t *testing.T) {
	l := New()
	assert.True(t, l.IsEmpty())
	assert.True(t, l.IsAtEnd())
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, povlist.NoError, l.ErrorCode())
}

func TestAdd1(t *testing.T) {
	l := New()
	for _, v := range []int{5, 2, 8, 2} {
		require.NoError(t, l.Add(v))
	}

	assert.Equal(t, []int{5, 2, 8, 2}, l.Values())
	assert.Equal(t, 4, l.Len())
	assert.True(t, l.IsAtEnd())
}

func TestAdd2(t *testing.T) {
	l := New()
	_ = l.Add(1)
	_ = l.Add(3)

	l.GoToHead()
	require.NoError(t, l.Next())
	require.NoError(t, l.Add(2))

	v, err := l.Get()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, []int{1, 2, 3}, l.Values())

	l.GoToHead()
	require.NoError(t, l.Add(0))
	assert.Equal(t, []int{0, 1, 2, 3}, l.Values())
}

func TestNextPastEnd(t *testing.T) {
	l := New()
	_ = l.Add(3)

	l.GoToHead()
	require.NoError(t, l.Next())
	assert.True(t, l.IsAtEnd())

	err := l.Next()
	assert.Equal(t, povlist.ErrEnd, errors.Cause(err))
	assert.Equal(t, povlist.ErrorEnd, l.ErrorCode())
	assert.True(t, l.IsAtEnd())

	_, err = l.Get()
	assert.Equal(t, povlist.ErrEnd, errors.Cause(err))
	assert.Equal(t, []int{3}, l.Values())
}

func TestIterate(t *testing.T) {
	l := New()
	for i := 0; i < 5; i++ {
		_ = l.Add(i * i)
	}

	var sum, steps int
	for l.GoToHead(); !l.IsAtEnd(); steps++ {
		v, err := l.Get()
		require.NoError(t, err)
		sum += v
		require.NoError(t, l.Next())
	}

	assert.Equal(t, 5, steps)
	assert.Equal(t, 0+1+4+9+16, sum)
}

func TestRemove1(t *testing.T) {
	l := New()
	_ = l.Add(3)

	l.GoToHead()
	require.NoError(t, l.Remove())
	assert.True(t, l.IsEmpty())

	err := l.Remove()
	assert.Equal(t, povlist.ErrEnd, errors.Cause(err))
	assert.Equal(t, povlist.ErrorEnd, l.ErrorCode())
}

func TestRemoveAll(t *testing.T) {
	tracker := alloc.NewTracker(0)
	l := NewWithAllocator(tracker)
	for i := 0; i < 8; i++ {
		_ = l.Add(i)
	}

	l.GoToHead()
	for !l.IsEmpty() {
		require.NoError(t, l.Remove())
	}
	assert.Equal(t, int64(1), tracker.Live())

	l.Destroy()
	assert.Equal(t, int64(0), tracker.Live())
	assert.Equal(t, int64(9), tracker.Total())
}

func TestAllocFailure(t *testing.T) {
	l := NewWithAllocator(alloc.NewTracker(2))
	require.NoError(t, l.Add(7))

	fp := l.Fingerprint()
	err := l.Add(8)
	assert.Equal(t, povlist.ErrAlloc, errors.Cause(err))
	assert.Equal(t, povlist.ErrorMalloc, l.ErrorCode())
	assert.Equal(t, fp, l.Fingerprint())
	assert.True(t, l.IsAtEnd())

	l.GoToHead()
	v, err := l.Get()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, povlist.NoError, l.ErrorCode())
}

func TestDegenerate(t *testing.T) {
	l := NewWithAllocator(alloc.NewTracker(-1))
	require.Equal(t, povlist.NoError, l.ErrorCode())
	l.Destroy()

	assert.True(t, l.IsEmpty())
	assert.True(t, l.IsAtEnd())
	assert.Equal(t, povlist.ErrAlloc, errors.Cause(l.Add(1)))
	assert.Equal(t, povlist.ErrorMalloc, l.ErrorCode())
	assert.Equal(t, "[]", l.String())
}
