package queue

// Allocator produces and reclaims elements. It stands in for the
// node-plus-payload allocation pair of the underlying model: NewElement
// returns nil to signal exhaustion, and insert operations surface that
// as a plain false with no change to the ring.
type Allocator interface {
	// NewElement returns a fresh unlinked element owning value, or nil
	// if no element can be produced.
	NewElement(value string) *Element

	// Release reclaims a detached element. The element must not be
	// linked into any ring.
	Release(e *Element)
}

// defaultAllocator allocates from the heap and never fails.
type defaultAllocator struct{}

func (defaultAllocator) NewElement(value string) *Element {
	return &Element{value: value}
}

func (defaultAllocator) Release(e *Element) {
	// Drop the payload and poison the links so a use-after-release
	// trips immediately instead of silently walking a stale ring.
	e.value = ""
	e.next = nil
	e.prev = nil
}
