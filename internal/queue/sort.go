package queue

// ==================== MERGE SORT ====================
//
// The sort detaches the ring into a nil-terminated singly linked chain
// (prev links are ignored while sorting), merge-sorts the chain, then
// re-threads prev links in one forward pass and closes the ring again.

// Sort orders the elements ascending by payload under byte-wise string
// comparison. The merge prefers the left chain on equal payloads, so
// elements with equal payloads keep their relative order (stable sort).
// No-op on a nil, empty, or single-element queue. O(n log n), link
// rewiring only.
func (q *Queue) Sort() {
	if q.Size() <= 1 {
		return
	}

	// Break the circle: the last element's next becomes nil so the
	// chain is a conventional singly linked list.
	chain := q.root.next
	q.root.prev.next = nil
	chain = mergeSort(chain)

	// Re-thread prev pointers and close the ring around the sentinel.
	q.root.next = chain
	last := &q.root
	for e := chain; e != nil; e = e.next {
		e.prev = last
		last = e
	}
	last.next = &q.root
	q.root.prev = last
}

// mergeSort sorts a nil-terminated chain threaded through next links.
func mergeSort(head *Element) *Element {
	if head == nil || head.next == nil {
		return head
	}

	// Slow/fast split: fast moves two nodes per step, slow one; when
	// fast runs off the chain, slow sits at the end of the left half.
	slow := head
	for fast := head.next; fast != nil && fast.next != nil; fast = fast.next.next {
		slow = slow.next
	}
	right := slow.next
	slow.next = nil

	return mergeChains(mergeSort(head), mergeSort(right))
}

// mergeChains merges two ascending chains into one, taking from the
// left chain on ties so the merge is stable.
func mergeChains(left, right *Element) *Element {
	var head *Element
	tail := &head

	for left != nil && right != nil {
		if left.value <= right.value {
			*tail = left
			left = left.next
		} else {
			*tail = right
			right = right.next
		}
		tail = &(*tail).next
	}

	// One splice for whichever chain still has elements.
	if left != nil {
		*tail = left
	} else {
		*tail = right
	}

	return head
}
