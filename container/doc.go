// Package container implements the linear container core: Stack, MinStack,
// Queue, Ring (fixed-capacity circular queue), PriorityQueue and Deque.
//
// All containers are generic over their element type. Stack and Queue
// require comparable elements (they support equality search); MinStack
// requires an ordered element type. Stack, Queue and Deque share an
// internal linearBuffer substrate; Ring owns a fixed slot array;
// PriorityQueue keeps its own ordered entry slice.
//
// Failure semantics are uniform across the package:
//
//   - Removal from an empty container returns errors.ErrUnderflow.
//   - Insertion into a bounded container at capacity returns
//     errors.ErrCapacityExceeded (ErrRingFull for Ring) and leaves the
//     container unchanged.
//   - Peek-style accessors never fail; they return (zero, false) on an
//     empty container.
//
// Containers perform no locking. They assume exclusive single-caller
// access; a concurrent facade (see the session package) serializes access
// per container set.
package container
