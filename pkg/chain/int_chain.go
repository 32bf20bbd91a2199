// This file was automatically generated by genny.
// Any changes will be lost if this file is regenerated.
// see https://github.com/cheekybits/genny

package chain

import (
	"fmt"

	"github.com/dchest/siphash"
	"github.com/pkg/errors"

	"github.com/guillemguerrero/povlist"
	"github.com/guillemguerrero/povlist/pkg/alloc"
	"github.com/guillemguerrero/povlist/pkg/util"
)

// region Node
type intNode struct {
	value int
	next  *intNode
}

// endregion

// region Chain

// IntChain is a singly linked chain of nodes hanging off a sentinel node.
// The point of view (POV) is kept as previous, the node right before it:
// previous == head puts the POV on the first node and previous.next == nil
// puts it after the last one.
//
// A chain is not safe for concurrent use.
type IntChain struct {
	head     *intNode
	previous *intNode
	alloc    povlist.Allocator
	len      int
	code     povlist.Code
}

// NewIntChain allocates the sentinel through a and returns an empty chain
// with the POV at the end. A nil allocator means alloc.Heap. When the
// sentinel cannot be allocated the chain is degenerate: it reads as empty,
// every insert fails and ErrorCode reports povlist.ErrorMalloc.
func NewIntChain(a povlist.Allocator) *IntChain {
	if util.IsNil(a) {
		a = alloc.Heap{}
	}

	c := &IntChain{alloc: a}
	if err := a.Allocate(); err != nil {
		c.code = povlist.ErrorMalloc
		return c
	}

	c.head = &intNode{}
	c.previous = c.head
	return c
}

func (c *IntChain) newnode(v int) (*intNode, error) {
	if c.head == nil {
		return nil, errors.Wrap(povlist.ErrAlloc, "chain has no sentinel")
	}

	if err := c.alloc.Allocate(); err != nil {
		if errors.Cause(err) != povlist.ErrAlloc {
			err = errors.Wrap(povlist.ErrAlloc, err.Error())
		}
		return nil, err
	}

	return &intNode{value: v}, nil
}

// InsertAtCursor links v right before the POV. The POV keeps pointing at
// the node it pointed at, so inserting at the end appends.
func (c *IntChain) InsertAtCursor(v int) error {
	n, err := c.newnode(v)
	if err != nil {
		c.code = povlist.ErrorMalloc
		return err
	}

	n.next = c.previous.next
	c.previous.next = n
	c.previous = n
	c.len++
	c.code = povlist.NoError
	return nil
}

// InsertBefore scans from the head, not from the POV, and links v right
// before the first node whose value satisfies stop, or at the tail when
// none does. The POV reference is left as it was.
func (c *IntChain) InsertBefore(v int, stop func(int) bool) error {
	n, err := c.newnode(v)
	if err != nil {
		c.code = povlist.ErrorMalloc
		return err
	}

	left := c.head
	for left.next != nil && !stop(left.next.value) {
		left = left.next
	}

	n.next = left.next
	left.next = n
	c.len++
	c.code = povlist.NoError
	return nil
}

// Remove unlinks the node at the POV and releases it. The POV moves to the
// node that followed.
func (c *IntChain) Remove() error {
	if c.IsAtEnd() {
		c.code = povlist.ErrorEnd
		return errors.Wrap(povlist.ErrEnd, "remove")
	}

	n := c.previous.next
	c.previous.next = n.next
	n.next = nil
	c.alloc.Release()
	c.len--
	c.code = povlist.NoError
	return nil
}

func (c *IntChain) Get() (int, error) {
	if c.IsAtEnd() {
		c.code = povlist.ErrorEnd
		var zero int
		return zero, errors.Wrap(povlist.ErrEnd, "get")
	}

	c.code = povlist.NoError
	return c.previous.next.value, nil
}

func (c *IntChain) IsEmpty() bool {
	return c.head == nil || c.head.next == nil
}

func (c *IntChain) GoToHead() {
	if c.head != nil {
		c.previous = c.head
	}
}

func (c *IntChain) Next() error {
	if c.IsAtEnd() {
		c.code = povlist.ErrorEnd
		return errors.Wrap(povlist.ErrEnd, "next")
	}

	c.previous = c.previous.next
	c.code = povlist.NoError
	return nil
}

func (c *IntChain) IsAtEnd() bool {
	return c.previous == nil || c.previous.next == nil
}

// Destroy releases every node, the sentinel last. The chain is degenerate
// afterwards.
func (c *IntChain) Destroy() {
	for n := c.head; n != nil; {
		next := n.next
		n.next = nil
		c.alloc.Release()
		n = next
	}

	c.head, c.previous, c.len = nil, nil, 0
}

func (c *IntChain) ErrorCode() povlist.Code {
	return c.code
}

func (c *IntChain) Len() int {
	return c.len
}

// Values copies the chain from head to tail without moving the POV.
func (c *IntChain) Values() []int {
	vals := make([]int, 0, c.len)
	if c.head == nil {
		return vals
	}

	for n := c.head.next; n != nil; n = n.next {
		vals = append(vals, n.value)
	}

	return vals
}

// Fingerprint hashes the values in chain order. Two chains holding the same
// sequence share a fingerprint.
func (c *IntChain) Fingerprint() uint64 {
	buf := make([]byte, 0, 8*c.len)
	if c.head != nil {
		for n := c.head.next; n != nil; n = n.next {
			buf = append(buf, util.Bytes(n.value)...)
		}
	}

	return siphash.Hash(sipHashKey1, sipHashKey2, buf)
}

func (c *IntChain) String() string {
	return fmt.Sprint(c.Values())
}

// endregion

const (
	// generated by splitting the md5 sum of "povlist"
	sipHashKey1 = 0x5c1fb8e0a1d4c237
	sipHashKey2 = 0x9e03b76d4f2a81c5
)
