package container

import (
	"github.com/c360/linearkit/errors"
)

// unset marks the front/rear indices of an empty ring.
const unset = -1

// Ring is a fixed-capacity FIFO over a circular slot array. Enqueue past
// capacity fails without mutation; slots are reused via modular indexing.
//
// Ring is not safe for concurrent use; callers serialize access.
type Ring[T any] struct {
	slots []T
	front int
	rear  int
	size  int
}

// NewRing creates an empty ring with the given fixed capacity.
// Returns ErrInvalidCapacity when capacity is not positive.
func NewRing[T any](capacity int) (*Ring[T], error) {
	if capacity <= 0 {
		return nil, errors.ErrInvalidCapacity
	}
	return &Ring[T]{
		slots: make([]T, capacity),
		front: unset,
		rear:  unset,
	}, nil
}

// Enqueue writes an element into the next ring slot and returns the new
// size. Returns ErrRingFull without mutating the ring when it is at
// capacity.
func (r *Ring[T]) Enqueue(v T) (int, error) {
	if r.IsFull() {
		return 0, errors.ErrRingFull
	}
	if r.IsEmpty() {
		r.front = 0
	}
	r.rear = (r.rear + 1) % len(r.slots)
	r.slots[r.rear] = v
	r.size++
	return r.size, nil
}

// Dequeue removes and returns the element at the logical front.
// Returns ErrUnderflow when the ring is empty. Removing the last element
// resets the front/rear indices to their unset sentinels.
func (r *Ring[T]) Dequeue() (T, error) {
	if r.IsEmpty() {
		var zero T
		return zero, errors.ErrUnderflow
	}

	v := r.slots[r.front]
	var zero T
	r.slots[r.front] = zero

	if r.size == 1 {
		r.front = unset
		r.rear = unset
	} else {
		r.front = (r.front + 1) % len(r.slots)
	}
	r.size--
	return v, nil
}

// Front returns the element at the logical front without removing it.
// The second return is false when the ring is empty.
func (r *Ring[T]) Front() (T, bool) {
	if r.IsEmpty() {
		var zero T
		return zero, false
	}
	return r.slots[r.front], true
}

// Rear returns the most recently enqueued element without removing it.
// The second return is false when the ring is empty.
func (r *Ring[T]) Rear() (T, bool) {
	if r.IsEmpty() {
		var zero T
		return zero, false
	}
	return r.slots[r.rear], true
}

// IsEmpty reports whether the ring holds no elements.
func (r *Ring[T]) IsEmpty() bool {
	return r.size == 0
}

// IsFull reports whether the ring is at capacity.
func (r *Ring[T]) IsFull() bool {
	return r.size == len(r.slots)
}

// Size returns the number of elements in the ring.
func (r *Ring[T]) Size() int {
	return r.size
}

// Capacity returns the fixed slot count.
func (r *Ring[T]) Capacity() int {
	return len(r.slots)
}

// Clear resets all slots and the front/rear sentinels.
func (r *Ring[T]) Clear() {
	clear(r.slots)
	r.front = unset
	r.rear = unset
	r.size = 0
}

// Items returns a snapshot copy in front-to-rear order, walking exactly
// size modular steps from the logical front. Order starts at the front even
// when the slot array has wrapped.
func (r *Ring[T]) Items() []T {
	out := make([]T, 0, r.size)
	if r.IsEmpty() {
		return out
	}
	current := r.front
	for i := 0; i < r.size; i++ {
		out = append(out, r.slots[current])
		current = (current + 1) % len(r.slots)
	}
	return out
}
