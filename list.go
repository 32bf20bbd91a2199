package povlist

// Element is the value stored in every node.
type Element = int

// Cursor moves a point of view over a list and reads through it.
type Cursor interface {
	// GoToHead moves the POV to the first element, or to the end on an
	// empty list.
	GoToHead()
	// Next moves the POV one element forward. It fails with ErrEnd and
	// leaves the POV where it was when already at the end.
	Next() error
	// IsAtEnd reports whether the POV is after the last element.
	IsAtEnd() bool
	// Get returns the element at the POV, or ErrEnd when at the end.
	Get() (Element, error)
}

// List is the operation set common to both containers. Insertion is not part
// of it since each container has its own placement policy.
type List interface {
	Cursor
	// Remove deletes the element at the POV. The POV moves to the element
	// that followed it.
	Remove() error
	IsEmpty() bool
	Len() int
	// Destroy releases every node, sentinel included. The list must not be
	// used again.
	Destroy()
	// ErrorCode returns the code left by the last operation that can fail.
	ErrorCode() Code
}

// Allocator accounts for node storage. Allocate is called before a node is
// created and may refuse it; Release is called once per discarded node.
type Allocator interface {
	Allocate() error
	Release()
}
