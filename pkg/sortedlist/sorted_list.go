// Package sortedlist implements a list of integers kept in ascending order,
// traversed through a single point of view.
package sortedlist

import (
	"github.com/guillemguerrero/povlist"
	"github.com/guillemguerrero/povlist/pkg/chain"
)

// Assert that *SortedList implements povlist.List.
var _ povlist.List = (*SortedList)(nil)

// SortedList keeps its elements in non-decreasing order. Equal elements keep
// the order they were added in.
type SortedList struct {
	c *chain.IntChain
}

// New returns an empty list with the POV at the end.
func New() *SortedList {
	return NewWithAllocator(nil)
}

// NewWithAllocator is New with every node accounted through a. If the
// sentinel cannot be allocated the list is degenerate and ErrorCode reports
// povlist.ErrorMalloc.
func NewWithAllocator(a povlist.Allocator) *SortedList {
	return &SortedList{c: chain.NewIntChain(a)}
}

// SortedAdd inserts e after every element less than or equal to it. The
// scan starts at the head whatever the POV; the POV is not repositioned, so
// call GoToHead before traversing again.
func (l *SortedList) SortedAdd(e povlist.Element) error {
	return l.c.InsertBefore(e, func(v povlist.Element) bool {
		return v > e
	})
}

func (l *SortedList) Remove() error                 { return l.c.Remove() }
func (l *SortedList) Get() (povlist.Element, error) { return l.c.Get() }
func (l *SortedList) IsEmpty() bool                 { return l.c.IsEmpty() }
func (l *SortedList) GoToHead()                     { l.c.GoToHead() }
func (l *SortedList) Next() error                   { return l.c.Next() }
func (l *SortedList) IsAtEnd() bool                 { return l.c.IsAtEnd() }
func (l *SortedList) Destroy()                      { l.c.Destroy() }
func (l *SortedList) ErrorCode() povlist.Code       { return l.c.ErrorCode() }
func (l *SortedList) Len() int                      { return l.c.Len() }

// Values returns the elements in order without moving the POV.
func (l *SortedList) Values() []povlist.Element { return l.c.Values() }

func (l *SortedList) Fingerprint() uint64 { return l.c.Fingerprint() }
func (l *SortedList) String() string      { return l.c.String() }
