// Package session manages per-session container instances for the service
// facade. Each session owns one instance of every container type, guarded
// by a single mutex so that the lock-free containers see strictly
// serialized access.
//
// Handlers receive explicit session state; there is no process-wide
// container global.
package session

import (
	"sync"
	"time"

	"github.com/c360/linearkit/config"
	"github.com/c360/linearkit/container"
)

// DefaultID is the session used when a request carries no session ID.
const DefaultID = "default"

// Containers is the set of container instances owned by one session.
type Containers struct {
	Stack    *container.Stack[string]
	MinStack *container.MinStack[string]
	Queue    *container.Queue[string]
	Ring     *container.Ring[string]
	Priority *container.PriorityQueue[string]
	Deque    *container.Deque[string]
}

// newContainers builds a fresh container set from configuration.
// The ring capacity has already been validated by config.Validate.
func newContainers(cfg config.ContainersConfig) (*Containers, error) {
	ring, err := container.NewRing[string](cfg.RingCapacity)
	if err != nil {
		return nil, err
	}
	return &Containers{
		Stack:    container.NewBoundedStack[string](cfg.StackMaxSize),
		MinStack: container.NewBoundedMinStack[string](cfg.StackMaxSize),
		Queue:    container.NewBoundedQueue[string](cfg.QueueMaxSize),
		Ring:     ring,
		Priority: container.NewPriorityQueue[string](),
		Deque:    container.NewDeque[string](),
	}, nil
}

// Session is one caller's container set plus access bookkeeping.
type Session struct {
	id string

	mu         sync.Mutex
	containers *Containers
	createdAt  time.Time
	lastActive time.Time
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Do runs fn with exclusive access to the session's containers and marks
// the session active. All container access goes through Do; the containers
// themselves hold no locks.
func (s *Session) Do(fn func(*Containers)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	fn(s.containers)
}

// CreatedAt returns when the session was created.
func (s *Session) CreatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createdAt
}

// LastActive returns when the session last ran an operation.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}
