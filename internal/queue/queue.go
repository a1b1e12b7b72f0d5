package queue

import "strings"

// ==================== SENTINEL RING ====================

// Element is a node in the ring owning exactly one payload string.
// Its links are only meaningful while the element is part of a ring.
type Element struct {
	value string
	next  *Element
	prev  *Element
}

// Value returns the payload string owned by the element.
func (e *Element) Value() string {
	return e.value
}

// Queue is a circular doubly linked list held together by a sentinel.
// The sentinel never carries a payload; an empty queue is a sentinel
// whose next and prev both point at itself. The *Queue handle is the
// sentinel handle.
type Queue struct {
	root  Element
	alloc Allocator
}

// New creates an empty queue using the default allocator.
func New() *Queue {
	return NewWithAllocator(defaultAllocator{})
}

// NewWithAllocator creates an empty queue whose elements are obtained
// from and returned to the given allocator.
func NewWithAllocator(alloc Allocator) *Queue {
	q := &Queue{alloc: alloc}
	q.root.next = &q.root
	q.root.prev = &q.root
	return q
}

// Free releases every remaining element and resets the sentinel to an
// empty ring. Safe to call on a nil or already-empty queue.
func (q *Queue) Free() {
	if q == nil {
		return
	}
	for e := q.root.next; e != &q.root; {
		next := e.next
		q.alloc.Release(e)
		e = next
	}
	q.root.next = &q.root
	q.root.prev = &q.root
}

// insertBetween links e into the ring between prev and next.
func insertBetween(e, prev, next *Element) {
	e.prev = prev
	e.next = next
	prev.next = e
	next.prev = e
}

// unlink removes e from its ring. e's own links are left dangling and
// must not be followed afterwards.
func unlink(e *Element) {
	e.prev.next = e.next
	e.next.prev = e.prev
}

// empty reports whether the ring holds no elements.
func (q *Queue) empty() bool {
	return q.root.next == &q.root
}

// ==================== BASIC OPERATIONS ====================

// InsertHead stores a copy of s as the first element - O(1).
// Returns false if q is nil or the allocator fails; a failed insert has
// no side effect on the ring.
func (q *Queue) InsertHead(s string) bool {
	if q == nil {
		return false
	}
	e := q.alloc.NewElement(strings.Clone(s))
	if e == nil {
		return false
	}
	insertBetween(e, &q.root, q.root.next)
	return true
}

// InsertTail stores a copy of s as the last element - O(1).
func (q *Queue) InsertTail(s string) bool {
	if q == nil {
		return false
	}
	e := q.alloc.NewElement(strings.Clone(s))
	if e == nil {
		return false
	}
	insertBetween(e, q.root.prev, &q.root)
	return true
}

// RemoveHead unlinks and returns the first element, or nil if q is nil
// or empty. If sp is non-empty, up to len(sp)-1 payload bytes are copied
// into it followed by a NUL terminator. Ownership of the element passes
// to the caller, who releases it with ReleaseElement.
func (q *Queue) RemoveHead(sp []byte) *Element {
	if q == nil || q.empty() {
		return nil
	}
	e := q.root.next
	unlink(e)
	copyOut(sp, e.value)
	return e
}

// RemoveTail unlinks and returns the last element; otherwise identical
// to RemoveHead.
func (q *Queue) RemoveTail(sp []byte) *Element {
	if q == nil || q.empty() {
		return nil
	}
	e := q.root.prev
	unlink(e)
	copyOut(sp, e.value)
	return e
}

// copyOut copies value into sp truncated to len(sp)-1 bytes, always
// NUL-terminated, matching the remove contract.
func copyOut(sp []byte, value string) {
	if len(sp) == 0 {
		return
	}
	n := copy(sp[:len(sp)-1], value)
	sp[n] = 0
}

// ReleaseElement frees a previously detached element. The handle must
// not be used afterwards. Safe on nil.
func (q *Queue) ReleaseElement(e *Element) {
	if e == nil {
		return
	}
	q.alloc.Release(e)
}

// Size returns the number of elements - O(n). The count is taken by a
// full traversal every call; no cached length is maintained, so the
// ring links stay the single source of truth across all rewiring
// operations. Returns 0 for a nil or empty queue.
func (q *Queue) Size() int {
	if q == nil {
		return 0
	}
	n := 0
	for e := q.root.next; e != &q.root; e = e.next {
		n++
	}
	return n
}

// ==================== TRAVERSAL ====================

// Front returns the first element, or nil if the queue is nil or empty.
func (q *Queue) Front() *Element {
	if q == nil || q.empty() {
		return nil
	}
	return q.root.next
}

// Back returns the last element, or nil if the queue is nil or empty.
func (q *Queue) Back() *Element {
	if q == nil || q.empty() {
		return nil
	}
	return q.root.prev
}

// Next returns the element after e, or nil once the traversal wraps
// back to the sentinel.
func (q *Queue) Next(e *Element) *Element {
	if q == nil || e == nil || e.next == &q.root {
		return nil
	}
	return e.next
}

// Prev returns the element before e, or nil at the sentinel.
func (q *Queue) Prev(e *Element) *Element {
	if q == nil || e == nil || e.prev == &q.root {
		return nil
	}
	return e.prev
}

// Values copies the payloads into a slice in ring order - O(n).
func (q *Queue) Values() []string {
	if q == nil {
		return nil
	}
	out := make([]string, 0, q.Size())
	for e := q.root.next; e != &q.root; e = e.next {
		out = append(out, e.value)
	}
	return out
}
