package queue

// ==================== STRUCTURAL TRANSFORMS ====================
//
// Every transform below rewires links in place. Traversals terminate by
// comparing against the sentinel, never against nil: the ring has no
// nil links while the invariants hold.

// DeleteMiddle removes the element at index ⌊n/2⌋ counting from the
// head (for six elements, the third). Returns false on a nil or empty
// queue. Two cursors start at the first element; fast advances two
// links per step and slow one, until fast reaches the sentinel or the
// node before it, which leaves slow on the middle element.
func (q *Queue) DeleteMiddle() bool {
	if q == nil || q.empty() {
		return false
	}

	slow := q.root.next
	for fast := q.root.next; fast != &q.root && fast.next != &q.root; fast = fast.next.next {
		slow = slow.next
	}

	unlink(slow)
	q.alloc.Release(slow)
	return true
}

// DeleteDup removes every element whose payload has an adjacent
// duplicate, deleting whole runs rather than just the extras, so only
// payloads unique within the sequence survive. The caller guarantees
// the queue is sorted ascending. Returns false only on a nil queue; an
// empty queue is success with no change.
func (q *Queue) DeleteDup() bool {
	if q == nil {
		return false
	}
	if q.empty() {
		return true
	}

	start := q.root.next
	for start != &q.root {
		end := start.next
		dup := false
		for end != &q.root && end.value == start.value {
			next := end.next
			unlink(end)
			q.alloc.Release(end)
			end = next
			dup = true
		}
		if dup {
			// The run head itself had a duplicate, so it goes too.
			unlink(start)
			q.alloc.Release(start)
		}
		start = end
	}
	return true
}

// SwapPairs exchanges the positions of every two adjacent elements,
// leaving an unpaired trailing element in place. Payloads are never
// touched; each first-of-pair node is unlinked and reinserted directly
// after what was its successor.
func (q *Queue) SwapPairs() {
	if q == nil {
		return
	}
	for e := q.root.next; e != &q.root && e.next != &q.root; e = e.next {
		next := e.next
		unlink(e)
		insertBetween(e, next, next.next)
	}
}

// Reverse reverses the element order in place by exchanging the next
// and prev fields of every node on the ring, the sentinel included, so
// the whole ring is flipped consistently. No element is allocated or
// released. No-op on a nil or empty queue.
func (q *Queue) Reverse() {
	if q == nil || q.empty() {
		return
	}

	e := &q.root
	for {
		e.next, e.prev = e.prev, e.next
		// next and prev were just swapped, so prev now advances the
		// original forward direction.
		e = e.prev
		if e == &q.root {
			break
		}
	}
}
