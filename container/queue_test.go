package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/linearkit/errors"
)

func TestQueue_FIFOLaw(t *testing.T) {
	q := NewQueue[string]()

	enqueued := []string{"A", "B", "C", "D"}
	for i, v := range enqueued {
		size, err := q.Enqueue(v)
		require.NoError(t, err)
		assert.Equal(t, i+1, size)
	}

	for _, want := range enqueued {
		v, err := q.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	assert.True(t, q.IsEmpty())
}

func TestQueue_DequeueEmpty(t *testing.T) {
	q := NewQueue[int]()

	_, err := q.Dequeue()
	require.ErrorIs(t, err, errors.ErrUnderflow)
}

func TestQueue_FrontAndRear(t *testing.T) {
	q := NewQueue[string]()

	_, ok := q.Front()
	assert.False(t, ok)
	_, ok = q.Rear()
	assert.False(t, ok)

	for _, v := range []string{"A", "B", "C"} {
		_, err := q.Enqueue(v)
		require.NoError(t, err)
	}

	front, ok := q.Front()
	require.True(t, ok)
	assert.Equal(t, "A", front)

	rear, ok := q.Rear()
	require.True(t, ok)
	assert.Equal(t, "C", rear)

	assert.Equal(t, 3, q.Size(), "peeks must not mutate")
}

func TestQueue_MaxSize(t *testing.T) {
	q := NewBoundedQueue[int](2)

	_, err := q.Enqueue(1)
	require.NoError(t, err)
	_, err = q.Enqueue(2)
	require.NoError(t, err)

	_, err = q.Enqueue(3)
	require.ErrorIs(t, err, errors.ErrCapacityExceeded)
	assert.Equal(t, []int{1, 2}, q.Items(), "failed enqueue must not mutate the queue")
}

func TestQueue_SearchAndElementAt(t *testing.T) {
	q := NewQueue[string]()
	for _, v := range []string{"A", "B", "C", "B"} {
		_, err := q.Enqueue(v)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, q.Search("B"), "first match from the front")
	assert.Equal(t, 0, q.Search("A"))
	assert.Equal(t, -1, q.Search("missing"))

	v, ok := q.ElementAt(0)
	require.True(t, ok)
	assert.Equal(t, "A", v, "position 0 is the front")

	v, ok = q.ElementAt(2)
	require.True(t, ok)
	assert.Equal(t, "C", v)

	_, ok = q.ElementAt(4)
	assert.False(t, ok)
	_, ok = q.ElementAt(-1)
	assert.False(t, ok)
}

func TestQueue_ItemsIsACopy(t *testing.T) {
	q := NewQueue[int]()
	for _, v := range []int{1, 2, 3} {
		_, err := q.Enqueue(v)
		require.NoError(t, err)
	}

	snapshot := q.Items()
	snapshot[0] = 99
	assert.Equal(t, []int{1, 2, 3}, q.Items())
}

func TestQueue_ClearRoundTrip(t *testing.T) {
	q := NewQueue[int]()
	for v := range 4 {
		_, err := q.Enqueue(v)
		require.NoError(t, err)
	}

	q.Clear()
	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Size())
}

func TestQueue_EmptyIffSizeZero(t *testing.T) {
	q := NewQueue[int]()
	assert.Equal(t, q.Size() == 0, q.IsEmpty())

	_, err := q.Enqueue(1)
	require.NoError(t, err)
	assert.Equal(t, q.Size() == 0, q.IsEmpty())

	_, err = q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, q.Size() == 0, q.IsEmpty())
}
