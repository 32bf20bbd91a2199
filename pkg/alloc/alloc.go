// Package alloc provides the allocators lists account their nodes with.
package alloc

import (
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/guillemguerrero/povlist"
)

var (
	_ povlist.Allocator = Heap{}
	_ povlist.Allocator = (*Tracker)(nil)
)

// Heap never refuses an allocation and keeps no books.
type Heap struct{}

func (Heap) Allocate() error { return nil }
func (Heap) Release()        {}

// Tracker counts the nodes handed out and given back. A Tracker with a
// positive limit refuses allocations once that many nodes are live. It is
// safe to share between lists and goroutines.
type Tracker struct {
	live  *atomic.Int64
	total *atomic.Int64
	limit int64
}

// NewTracker returns a Tracker allowing at most limit live nodes, sentinels
// included. A limit of 0 or less means no limit.
func NewTracker(limit int64) *Tracker {
	return &Tracker{
		live:  atomic.NewInt64(0),
		total: atomic.NewInt64(0),
		limit: limit,
	}
}

func (t *Tracker) Allocate() error {
	n := t.live.Inc()
	if t.limit > 0 && n > t.limit {
		t.live.Dec()
		return errors.Wrapf(povlist.ErrAlloc, "limit of %d nodes reached", t.limit)
	}

	t.total.Inc()
	return nil
}

func (t *Tracker) Release() {
	t.live.Dec()
}

// Live returns the number of nodes allocated and not yet released.
func (t *Tracker) Live() int64 {
	return t.live.Load()
}

// Total returns the number of successful allocations so far.
func (t *Tracker) Total() int64 {
	return t.total.Load()
}

func (t *Tracker) Limit() int64 {
	return t.limit
}
