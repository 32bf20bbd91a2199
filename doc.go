// Package povlist holds the contract shared by the sorted list and the linked
// list: the element type, the error codes, the cursor interfaces and the
// allocator hook every node allocation goes through.
//
// Both containers keep a sentinel ("phantom") node at the head of their chain
// and represent the point of view (POV) by the node right before it:
//
//	head -> [ ] -> [1] -> [2] -> [3] -> nil
//	         ^      ^
//	    previous   POV
//
// so the POV can sit before the first element (previous == head) or after
// the last one (previous.next == nil) without special cases.
package povlist
