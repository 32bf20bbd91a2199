package generic

import (
	"fmt"

	"github.com/cheekybits/genny/generic"
	"github.com/dchest/siphash"
	"github.com/pkg/errors"

	"github.com/guillemguerrero/povlist"
	"github.com/guillemguerrero/povlist/pkg/alloc"
	"github.com/guillemguerrero/povlist/pkg/util"
)

//go:generate genny -in=$GOFILE -out=../chain/int_chain.go -pkg=chain gen "Item=int"

type Item generic.Type

// region Node
type itemNode struct {
	value Item
	next  *itemNode
}

// endregion

// region Chain

// ItemChain is a singly linked chain of nodes hanging off a sentinel node.
// The point of view (POV) is kept as previous, the node right before it:
// previous == head puts the POV on the first node and previous.next == nil
// puts it after the last one.
//
// A chain is not safe for concurrent use.
type ItemChain struct {
	head     *itemNode
	previous *itemNode
	alloc    povlist.Allocator
	len      int
	code     povlist.Code
}

// NewItemChain allocates the sentinel through a and returns an empty chain
// with the POV at the end. A nil allocator means alloc.Heap. When the
// sentinel cannot be allocated the chain is degenerate: it reads as empty,
// every insert fails and ErrorCode reports povlist.ErrorMalloc.
func NewItemChain(a povlist.Allocator) *ItemChain {
	if util.IsNil(a) {
		a = alloc.Heap{}
	}

	c := &ItemChain{alloc: a}
	if err := a.Allocate(); err != nil {
		c.code = povlist.ErrorMalloc
		return c
	}

	c.head = &itemNode{}
	c.previous = c.head
	return c
}

func (c *ItemChain) newnode(v Item) (*itemNode, error) {
	if c.head == nil {
		return nil, errors.Wrap(povlist.ErrAlloc, "chain has no sentinel")
	}

	if err := c.alloc.Allocate(); err != nil {
		if errors.Cause(err) != povlist.ErrAlloc {
			err = errors.Wrap(povlist.ErrAlloc, err.Error())
		}
		return nil, err
	}

	return &itemNode{value: v}, nil
}

// InsertAtCursor links v right before the POV. The POV keeps pointing at
// the node it pointed at, so inserting at the end appends.
func (c *ItemChain) InsertAtCursor(v Item) error {
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
func (c *ItemChain) InsertBefore(v Item, stop func(Item) bool) error {
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
func (c *ItemChain) Remove() error {
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

func (c *ItemChain) Get() (Item, error) {
	if c.IsAtEnd() {
		c.code = povlist.ErrorEnd
		var zero Item
		return zero, errors.Wrap(povlist.ErrEnd, "get")
	}

	c.code = povlist.NoError
	return c.previous.next.value, nil
}

func (c *ItemChain) IsEmpty() bool {
	return c.head == nil || c.head.next == nil
}

func (c *ItemChain) GoToHead() {
	if c.head != nil {
		c.previous = c.head
	}
}

func (c *ItemChain) Next() error {
	if c.IsAtEnd() {
		c.code = povlist.ErrorEnd
		return errors.Wrap(povlist.ErrEnd, "next")
	}

	c.previous = c.previous.next
	c.code = povlist.NoError
	return nil
}

func (c *ItemChain) IsAtEnd() bool {
	return c.previous == nil || c.previous.next == nil
}

// Destroy releases every node, the sentinel last. The chain is degenerate
// afterwards.
func (c *ItemChain) Destroy() {
	for n := c.head; n != nil; {
		next := n.next
		n.next = nil
		c.alloc.Release()
		n = next
	}

	c.head, c.previous, c.len = nil, nil, 0
}

func (c *ItemChain) ErrorCode() povlist.Code {
	return c.code
}

func (c *ItemChain) Len() int {
	return c.len
}

// Values copies the chain from head to tail without moving the POV.
func (c *ItemChain) Values() []Item {
	vals := make([]Item, 0, c.len)
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
func (c *ItemChain) Fingerprint() uint64 {
	buf := make([]byte, 0, 8*c.len)
	if c.head != nil {
		for n := c.head.next; n != nil; n = n.next {
			buf = append(buf, util.Bytes(n.value)...)
		}
	}

	return siphash.Hash(sipHashKey1, sipHashKey2, buf)
}

func (c *ItemChain) String() string {
	return fmt.Sprint(c.Values())
}

// endregion

const (
	// generated by splitting the md5 sum of "povlist"
	sipHashKey1 = 0x5c1fb8e0a1d4c237
	sipHashKey2 = 0x9e03b76d4f2a81c5
)
