package container

// linearBuffer is the shared backing store for Stack, Queue and Deque: a
// resizable ordered sequence with positional access. Index 0 is the oldest
// (bottom/front) position.
//
// The buffer performs no bounds or capacity policy of its own; callers own
// those invariants.
type linearBuffer[T any] struct {
	items []T
}

func (b *linearBuffer[T]) len() int {
	return len(b.items)
}

func (b *linearBuffer[T]) push(v T) {
	b.items = append(b.items, v)
}

// insert places v at index i, shifting later elements right.
// i must be in [0, len].
func (b *linearBuffer[T]) insert(i int, v T) {
	var zero T
	b.items = append(b.items, zero)
	copy(b.items[i+1:], b.items[i:])
	b.items[i] = v
}

// removeAt removes and returns the element at index i, shifting later
// elements left. i must be in [0, len).
func (b *linearBuffer[T]) removeAt(i int) T {
	v := b.items[i]
	copy(b.items[i:], b.items[i+1:])

	// Zero the vacated tail slot so removed values are collectable.
	var zero T
	b.items[len(b.items)-1] = zero
	b.items = b.items[:len(b.items)-1]
	return v
}

func (b *linearBuffer[T]) at(i int) T {
	return b.items[i]
}

func (b *linearBuffer[T]) last() T {
	return b.items[len(b.items)-1]
}

func (b *linearBuffer[T]) clear() {
	b.items = nil
}

// snapshot returns a copy of the buffer contents in insertion order.
// Callers may serialize or mutate the result without affecting the buffer.
func (b *linearBuffer[T]) snapshot() []T {
	out := make([]T, len(b.items))
	copy(out, b.items)
	return out
}
