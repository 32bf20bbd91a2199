// Package linkedlist implements an unordered list of integers traversed
// through a single point of view.
package linkedlist

import (
	"github.com/guillemguerrero/povlist"
	"github.com/guillemguerrero/povlist/pkg/chain"
)

// Assert that *LinkedList implements povlist.List.
var _ povlist.List = (*LinkedList)(nil)

// LinkedList stores elements where they are added and never reorders them.
type LinkedList struct {
	c *chain.IntChain
}

func New() *LinkedList {
	return NewWithAllocator(nil)
}

// NewWithAllocator is New with every node accounted through a. If the
// sentinel cannot be allocated the list is degenerate and ErrorCode reports
// povlist.ErrorMalloc.
func NewWithAllocator(a povlist.Allocator) *LinkedList {
	return &LinkedList{c: chain.NewIntChain(a)}
}

// Add inserts e right before the POV. The POV stays on the element it was
// on, so adding with the POV at the end appends.
func (l *LinkedList) Add(e povlist.Element) error {
	return l.c.InsertAtCursor(e)
}

func (l *LinkedList) Remove() error                 { return l.c.Remove() }
func (l *LinkedList) Get() (povlist.Element, error) { return l.c.Get() }
func (l *LinkedList) IsEmpty() bool                 { return l.c.IsEmpty() }
func (l *LinkedList) GoToHead()                     { l.c.GoToHead() }
func (l *LinkedList) Next() error                   { return l.c.Next() }
func (l *LinkedList) IsAtEnd() bool                 { return l.c.IsAtEnd() }
func (l *LinkedList) Destroy()                      { l.c.Destroy() }
func (l *LinkedList) ErrorCode() povlist.Code       { return l.c.ErrorCode() }
func (l *LinkedList) Len() int                      { return l.c.Len() }
func (l *LinkedList) Values() []povlist.Element     { return l.c.Values() }
func (l *LinkedList) Fingerprint() uint64           { return l.c.Fingerprint() }
func (l *LinkedList) String() string                { return l.c.String() }
