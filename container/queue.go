package container

import (
	"github.com/c360/linearkit/errors"
)

// Queue is a FIFO container. The zero value is an empty unbounded queue,
// ready to use.
//
// Queue is not safe for concurrent use; callers serialize access.
type Queue[T comparable] struct {
	buf     linearBuffer[T]
	maxSize int // 0 means unbounded
}

// NewQueue creates an empty unbounded queue.
func NewQueue[T comparable]() *Queue[T] {
	return &Queue[T]{}
}

// NewBoundedQueue creates an empty queue that holds at most maxSize elements.
func NewBoundedQueue[T comparable](maxSize int) *Queue[T] {
	return &Queue[T]{maxSize: maxSize}
}

// Enqueue adds an element to the rear of the queue and returns the new size.
// Returns ErrCapacityExceeded without mutating the queue when a maximum
// size is set and already reached.
func (q *Queue[T]) Enqueue(v T) (int, error) {
	if q.maxSize > 0 && q.buf.len() >= q.maxSize {
		return 0, errors.ErrCapacityExceeded
	}
	q.buf.push(v)
	return q.buf.len(), nil
}

// Dequeue removes and returns the front element.
// Returns ErrUnderflow when the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.buf.len() == 0 {
		var zero T
		return zero, errors.ErrUnderflow
	}
	return q.buf.removeAt(0), nil
}

// Front returns the front element without removing it. The second return is
// false when the queue is empty.
func (q *Queue[T]) Front() (T, bool) {
	if q.buf.len() == 0 {
		var zero T
		return zero, false
	}
	return q.buf.at(0), true
}

// Rear returns the rear element without removing it. The second return is
// false when the queue is empty.
func (q *Queue[T]) Rear() (T, bool) {
	if q.buf.len() == 0 {
		var zero T
		return zero, false
	}
	return q.buf.last(), true
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.buf.len() == 0
}

// Size returns the number of elements in the queue.
func (q *Queue[T]) Size() int {
	return q.buf.len()
}

// Clear removes all elements from the queue.
func (q *Queue[T]) Clear() {
	q.buf.clear()
}

// SetMaxSize sets the maximum number of elements the queue may hold.
// Values <= 0 make the queue unbounded.
func (q *Queue[T]) SetMaxSize(n int) {
	if n < 0 {
		n = 0
	}
	q.maxSize = n
}

// MaxSize returns the configured maximum size, 0 meaning unbounded.
func (q *Queue[T]) MaxSize() int {
	return q.maxSize
}

// Items returns a snapshot copy in front-to-rear order.
func (q *Queue[T]) Items() []T {
	return q.buf.snapshot()
}

// Search returns the 0-based index from the front of the first matching
// element, or -1 when absent.
func (q *Queue[T]) Search(v T) int {
	for i := 0; i < q.buf.len(); i++ {
		if q.buf.at(i) == v {
			return i
		}
	}
	return -1
}

// ElementAt returns the element at the given position from the front
// (0 = front). The second return is false when the position is out of range.
func (q *Queue[T]) ElementAt(position int) (T, bool) {
	if position < 0 || position >= q.buf.len() {
		var zero T
		return zero, false
	}
	return q.buf.at(position), true
}
