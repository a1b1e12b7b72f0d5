package storage

import (
	"sort"

	"queue/internal/queue"
)

// Store holds named queues. It is the registry consumed by the command
// and scripting layers: every core queue operation is reachable here by
// queue name. The store itself is single-owner, like the queues it
// holds; callers serialize access.
type Store struct {
	queues map[string]*queue.Queue
}

func NewStore() *Store {
	return &Store{
		queues: make(map[string]*queue.Queue),
	}
}

// get is a helper resolving a name to its queue.
func (s *Store) get(name string) (*queue.Queue, error) {
	q, exists := s.queues[name]
	if !exists {
		return nil, ErrQueueNotFound
	}
	return q, nil
}

// Create registers a new empty queue under name.
func (s *Store) Create(name string) error {
	if _, exists := s.queues[name]; exists {
		return ErrQueueExists
	}
	s.queues[name] = queue.New()
	return nil
}

// Drop frees a queue and removes it from the registry.
func (s *Store) Drop(name string) error {
	q, err := s.get(name)
	if err != nil {
		return err
	}
	q.Free()
	delete(s.queues, name)
	return nil
}

// Names returns the registered queue names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.queues))
	for name := range s.queues {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ==================== QUEUE OPERATIONS ====================

// InsertHead prepends a value to the named queue - O(1).
func (s *Store) InsertHead(name, value string) error {
	q, err := s.get(name)
	if err != nil {
		return err
	}
	if !q.InsertHead(value) {
		return ErrOutOfMemory
	}
	return nil
}

// InsertTail appends a value to the named queue - O(1).
func (s *Store) InsertTail(name, value string) error {
	q, err := s.get(name)
	if err != nil {
		return err
	}
	if !q.InsertTail(value) {
		return ErrOutOfMemory
	}
	return nil
}

// RemoveHead removes the first element and returns its payload. The
// store accepts the ownership transfer from the queue and releases the
// detached element once the payload is copied out.
func (s *Store) RemoveHead(name string) (string, error) {
	q, err := s.get(name)
	if err != nil {
		return "", err
	}
	e := q.RemoveHead(nil)
	if e == nil {
		return "", ErrEmptyQueue
	}
	value := e.Value()
	q.ReleaseElement(e)
	return value, nil
}

// RemoveTail removes the last element and returns its payload.
func (s *Store) RemoveTail(name string) (string, error) {
	q, err := s.get(name)
	if err != nil {
		return "", err
	}
	e := q.RemoveTail(nil)
	if e == nil {
		return "", ErrEmptyQueue
	}
	value := e.Value()
	q.ReleaseElement(e)
	return value, nil
}

// Size returns the element count of the named queue - O(n).
func (s *Store) Size(name string) (int, error) {
	q, err := s.get(name)
	if err != nil {
		return 0, err
	}
	return q.Size(), nil
}

// Values returns the payloads of the named queue in order - O(n).
func (s *Store) Values(name string) ([]string, error) {
	q, err := s.get(name)
	if err != nil {
		return nil, err
	}
	return q.Values(), nil
}

// ==================== STRUCTURAL TRANSFORMS ====================

// Sort orders the named queue ascending by payload.
func (s *Store) Sort(name string) error {
	q, err := s.get(name)
	if err != nil {
		return err
	}
	q.Sort()
	return nil
}

// Reverse reverses the named queue in place.
func (s *Store) Reverse(name string) error {
	q, err := s.get(name)
	if err != nil {
		return err
	}
	q.Reverse()
	return nil
}

// SwapPairs swaps every two adjacent elements of the named queue.
func (s *Store) SwapPairs(name string) error {
	q, err := s.get(name)
	if err != nil {
		return err
	}
	q.SwapPairs()
	return nil
}

// DeleteMiddle deletes the middle element of the named queue.
func (s *Store) DeleteMiddle(name string) error {
	q, err := s.get(name)
	if err != nil {
		return err
	}
	if !q.DeleteMiddle() {
		return ErrEmptyQueue
	}
	return nil
}

// DeleteDup collapses adjacent duplicate runs in the named queue. The
// queue is expected to be sorted already.
func (s *Store) DeleteDup(name string) error {
	q, err := s.get(name)
	if err != nil {
		return err
	}
	q.DeleteDup()
	return nil
}

// Flush drops every queue, freeing all elements.
func (s *Store) Flush() {
	for name, q := range s.queues {
		q.Free()
		delete(s.queues, name)
	}
}
