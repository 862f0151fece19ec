package container

import (
	"github.com/c360/linearkit/errors"
)

// Deque is a double-ended container supporting insertion and removal at
// both ends. It has no capacity limit. The zero value is an empty deque,
// ready to use.
//
// Deque is not safe for concurrent use; callers serialize access.
type Deque[T any] struct {
	buf linearBuffer[T]
}

// NewDeque creates an empty deque.
func NewDeque[T any]() *Deque[T] {
	return &Deque[T]{}
}

// PushFront inserts an element at the front and returns the new size.
func (d *Deque[T]) PushFront(v T) int {
	d.buf.insert(0, v)
	return d.buf.len()
}

// PushBack inserts an element at the rear and returns the new size.
func (d *Deque[T]) PushBack(v T) int {
	d.buf.push(v)
	return d.buf.len()
}

// PopFront removes and returns the front element.
// Returns ErrUnderflow when the deque is empty.
func (d *Deque[T]) PopFront() (T, error) {
	if d.buf.len() == 0 {
		var zero T
		return zero, errors.ErrUnderflow
	}
	return d.buf.removeAt(0), nil
}

// PopBack removes and returns the rear element.
// Returns ErrUnderflow when the deque is empty.
func (d *Deque[T]) PopBack() (T, error) {
	if d.buf.len() == 0 {
		var zero T
		return zero, errors.ErrUnderflow
	}
	return d.buf.removeAt(d.buf.len() - 1), nil
}

// Front returns the front element without removing it. The second return
// is false when the deque is empty.
func (d *Deque[T]) Front() (T, bool) {
	if d.buf.len() == 0 {
		var zero T
		return zero, false
	}
	return d.buf.at(0), true
}

// Back returns the rear element without removing it. The second return is
// false when the deque is empty.
func (d *Deque[T]) Back() (T, bool) {
	if d.buf.len() == 0 {
		var zero T
		return zero, false
	}
	return d.buf.last(), true
}

// IsEmpty reports whether the deque holds no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.buf.len() == 0
}

// Size returns the number of elements in the deque.
func (d *Deque[T]) Size() int {
	return d.buf.len()
}

// Clear removes all elements from the deque.
func (d *Deque[T]) Clear() {
	d.buf.clear()
}

// Items returns a snapshot copy in front-to-rear order.
func (d *Deque[T]) Items() []T {
	return d.buf.snapshot()
}
