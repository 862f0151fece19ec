package container

import (
	"github.com/c360/linearkit/errors"
)

// PriorityEntry pairs a stored value with its numeric priority.
type PriorityEntry[T any] struct {
	Value    T   `json:"item"`
	Priority int `json:"priority"`
}

// PriorityQueue dequeues the highest-priority element first. Entries are
// kept in non-increasing priority order; equal priorities keep FIFO order.
// The zero value is an empty queue, ready to use.
//
// Insertion is an O(n) ordered scan. A heap would cut this to O(log n) but
// would need an extra sequence number to keep the stable tie-break, which
// is not worth it at teaching-demo sizes.
//
// PriorityQueue is not safe for concurrent use; callers serialize access.
type PriorityQueue[T any] struct {
	entries []PriorityEntry[T]
}

// NewPriorityQueue creates an empty priority queue.
func NewPriorityQueue[T any]() *PriorityQueue[T] {
	return &PriorityQueue[T]{}
}

// Enqueue inserts a value with the given priority (higher = served sooner)
// and returns the new size. The value lands immediately before the first
// entry with strictly lower priority, so earlier insertions win ties.
func (q *PriorityQueue[T]) Enqueue(v T, priority int) int {
	entry := PriorityEntry[T]{Value: v, Priority: priority}

	for i := range q.entries {
		if priority > q.entries[i].Priority {
			q.entries = append(q.entries, PriorityEntry[T]{})
			copy(q.entries[i+1:], q.entries[i:])
			q.entries[i] = entry
			return len(q.entries)
		}
	}

	q.entries = append(q.entries, entry)
	return len(q.entries)
}

// Dequeue removes and returns the front value: highest priority, earliest
// among ties. Returns ErrUnderflow when the queue is empty.
func (q *PriorityQueue[T]) Dequeue() (T, error) {
	if len(q.entries) == 0 {
		var zero T
		return zero, errors.ErrUnderflow
	}

	v := q.entries[0].Value
	copy(q.entries, q.entries[1:])
	q.entries[len(q.entries)-1] = PriorityEntry[T]{}
	q.entries = q.entries[:len(q.entries)-1]
	return v, nil
}

// Front returns the front value without removing it. The second return is
// false when the queue is empty.
func (q *PriorityQueue[T]) Front() (T, bool) {
	if len(q.entries) == 0 {
		var zero T
		return zero, false
	}
	return q.entries[0].Value, true
}

// IsEmpty reports whether the queue holds no entries.
func (q *PriorityQueue[T]) IsEmpty() bool {
	return len(q.entries) == 0
}

// Size returns the number of entries in the queue.
func (q *PriorityQueue[T]) Size() int {
	return len(q.entries)
}

// Clear removes all entries from the queue.
func (q *PriorityQueue[T]) Clear() {
	q.entries = nil
}

// Items returns a snapshot copy of value+priority pairs in current
// front-to-back order.
func (q *PriorityQueue[T]) Items() []PriorityEntry[T] {
	out := make([]PriorityEntry[T], len(q.entries))
	copy(out, q.entries)
	return out
}
