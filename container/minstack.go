package container

import "cmp"

// MinStack is a Stack that additionally reports the minimum of its current
// contents in O(1). It composes a plain Stack with an auxiliary sequence of
// running minimums rather than subclass-style embedding, so the Stack
// invariants cannot be bypassed.
//
// Invariant: the last auxiliary element equals the minimum of the stack
// contents, and the auxiliary is empty exactly when the stack is empty.
type MinStack[T cmp.Ordered] struct {
	stack Stack[T]
	mins  linearBuffer[T]
}

// NewMinStack creates an empty unbounded min-tracking stack.
func NewMinStack[T cmp.Ordered]() *MinStack[T] {
	return &MinStack[T]{}
}

// NewBoundedMinStack creates an empty min-tracking stack that holds at most
// maxSize elements.
func NewBoundedMinStack[T cmp.Ordered](maxSize int) *MinStack[T] {
	return &MinStack[T]{stack: Stack[T]{maxSize: maxSize}}
}

// Push adds an element and updates minimum tracking. The auxiliary sequence
// grows when the element is <= the current minimum, so duplicate minimums
// survive intermediate pops.
func (s *MinStack[T]) Push(v T) (int, error) {
	size, err := s.stack.Push(v)
	if err != nil {
		return 0, err
	}
	if s.mins.len() == 0 || v <= s.mins.last() {
		s.mins.push(v)
	}
	return size, nil
}

// Pop removes and returns the top element, retiring it from minimum
// tracking when it is the current minimum.
func (s *MinStack[T]) Pop() (T, error) {
	v, err := s.stack.Pop()
	if err != nil {
		return v, err
	}
	if s.mins.len() > 0 && v == s.mins.last() {
		s.mins.removeAt(s.mins.len() - 1)
	}
	return v, nil
}

// Min returns the minimum of the current stack contents. The second return
// is false when the stack is empty.
func (s *MinStack[T]) Min() (T, bool) {
	if s.mins.len() == 0 {
		var zero T
		return zero, false
	}
	return s.mins.last(), true
}

// Peek returns the top element without removing it.
func (s *MinStack[T]) Peek() (T, bool) {
	return s.stack.Peek()
}

// IsEmpty reports whether the stack holds no elements.
func (s *MinStack[T]) IsEmpty() bool {
	return s.stack.IsEmpty()
}

// Size returns the number of elements in the stack.
func (s *MinStack[T]) Size() int {
	return s.stack.Size()
}

// Clear removes all elements and resets minimum tracking.
func (s *MinStack[T]) Clear() {
	s.stack.Clear()
	s.mins.clear()
}

// SetMaxSize sets the maximum number of elements the stack may hold.
func (s *MinStack[T]) SetMaxSize(n int) {
	s.stack.SetMaxSize(n)
}

// Items returns a snapshot copy in insertion order (index 0 = bottom).
func (s *MinStack[T]) Items() []T {
	return s.stack.Items()
}

// Search returns the 0-based distance from the top of the nearest matching
// element, or -1 when absent.
func (s *MinStack[T]) Search(v T) int {
	return s.stack.Search(v)
}

// ElementAt returns the element at the given position from the top (0 = top).
func (s *MinStack[T]) ElementAt(position int) (T, bool) {
	return s.stack.ElementAt(position)
}
