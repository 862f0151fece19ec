package container

import (
	"github.com/c360/linearkit/errors"
)

// Stack is a LIFO container. The zero value is an empty unbounded stack,
// ready to use.
//
// Stack is not safe for concurrent use; callers serialize access.
type Stack[T comparable] struct {
	buf     linearBuffer[T]
	maxSize int // 0 means unbounded
}

// NewStack creates an empty unbounded stack.
func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{}
}

// NewBoundedStack creates an empty stack that holds at most maxSize elements.
func NewBoundedStack[T comparable](maxSize int) *Stack[T] {
	return &Stack[T]{maxSize: maxSize}
}

// Push adds an element to the top of the stack and returns the new size.
// Returns ErrCapacityExceeded without mutating the stack when a maximum
// size is set and already reached.
func (s *Stack[T]) Push(v T) (int, error) {
	if s.maxSize > 0 && s.buf.len() >= s.maxSize {
		return 0, errors.ErrCapacityExceeded
	}
	s.buf.push(v)
	return s.buf.len(), nil
}

// Pop removes and returns the top element.
// Returns ErrUnderflow when the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	if s.buf.len() == 0 {
		var zero T
		return zero, errors.ErrUnderflow
	}
	return s.buf.removeAt(s.buf.len() - 1), nil
}

// Peek returns the top element without removing it. The second return is
// false when the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	if s.buf.len() == 0 {
		var zero T
		return zero, false
	}
	return s.buf.last(), true
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.buf.len() == 0
}

// Size returns the number of elements in the stack.
func (s *Stack[T]) Size() int {
	return s.buf.len()
}

// Clear removes all elements from the stack.
func (s *Stack[T]) Clear() {
	s.buf.clear()
}

// SetMaxSize sets the maximum number of elements the stack may hold.
// Values <= 0 make the stack unbounded. An existing excess of elements is
// kept; only subsequent pushes are rejected.
func (s *Stack[T]) SetMaxSize(n int) {
	if n < 0 {
		n = 0
	}
	s.maxSize = n
}

// MaxSize returns the configured maximum size, 0 meaning unbounded.
func (s *Stack[T]) MaxSize() int {
	return s.maxSize
}

// Items returns a snapshot copy in insertion order: index 0 is the bottom
// of the stack, the last index the top.
func (s *Stack[T]) Items() []T {
	return s.buf.snapshot()
}

// Search returns the 0-based distance from the top of the nearest matching
// element (topmost match wins), or -1 when absent.
func (s *Stack[T]) Search(v T) int {
	for i := s.buf.len() - 1; i >= 0; i-- {
		if s.buf.at(i) == v {
			return s.buf.len() - 1 - i
		}
	}
	return -1
}

// ElementAt returns the element at the given position from the top
// (0 = top). The second return is false when the position is out of range.
func (s *Stack[T]) ElementAt(position int) (T, bool) {
	if position < 0 || position >= s.buf.len() {
		var zero T
		return zero, false
	}
	return s.buf.at(s.buf.len() - 1 - position), true
}
