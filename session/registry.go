package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/c360/linearkit/config"
	"github.com/c360/linearkit/errors"
	"github.com/c360/linearkit/health"
	"github.com/c360/linearkit/metric"
)

// sweepInterval is how often the idle reaper scans for stale sessions.
const sweepInterval = 30 * time.Second

// Option is a functional option for configuring the Registry
type Option func(*Registry)

// WithLogger sets a custom logger for the registry
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics sets the core metrics used for session accounting
func WithMetrics(metrics *metric.Metrics) Option {
	return func(r *Registry) {
		r.metrics = metrics
	}
}

// Registry tracks live sessions, creates them on demand and reaps idle
// ones in the background.
type Registry struct {
	sessionsCfg   config.SessionsConfig
	containersCfg config.ContainersConfig
	logger        *slog.Logger
	metrics       *metric.Metrics

	mu       sync.RWMutex
	sessions map[string]*Session

	// Lifecycle management
	done      chan struct{}
	waitGroup sync.WaitGroup
	started   bool
}

// NewRegistry creates a session registry. The container configuration is
// checked eagerly so a bad ring capacity fails at startup rather than on
// first request.
func NewRegistry(sessionsCfg config.SessionsConfig, containersCfg config.ContainersConfig, opts ...Option) (*Registry, error) {
	if containersCfg.RingCapacity <= 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidCapacity,
			"Registry", "NewRegistry", "ring capacity check")
	}
	if sessionsCfg.MaxSessions <= 0 {
		return nil, errors.WrapInvalid(
			fmt.Errorf("max_sessions must be at least 1"),
			"Registry", "NewRegistry", "session limit check")
	}

	r := &Registry{
		sessionsCfg:   sessionsCfg,
		containersCfg: containersCfg,
		logger:        slog.Default().With("component", "session-registry"),
		sessions:      make(map[string]*Session),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Get returns the session with the given ID, creating it when absent.
// An empty ID resolves to the default session. Returns ErrSessionLimit
// when creation would exceed the configured maximum.
func (r *Registry) Get(id string) (*Session, error) {
	if id == "" {
		id = DefaultID
	}

	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		return s, nil
	}

	return r.create(id)
}

// Create creates a new session with a generated UUID.
func (r *Registry) Create() (*Session, error) {
	return r.create(uuid.NewString())
}

// create inserts a session under the given ID, enforcing the session cap.
func (r *Registry) create(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		return s, nil
	}

	if len(r.sessions) >= r.sessionsCfg.MaxSessions {
		return nil, errors.Wrap(errors.ErrSessionLimit, "Registry", "create", "admit session")
	}

	containers, err := newContainers(r.containersCfg)
	if err != nil {
		return nil, errors.Wrap(err, "Registry", "create", "build containers")
	}

	now := time.Now()
	s := &Session{
		id:         id,
		containers: containers,
		createdAt:  now,
		lastActive: now,
	}
	r.sessions[id] = s

	if r.metrics != nil {
		r.metrics.RecordSessionCreated()
		r.metrics.RecordSessionCount(len(r.sessions))
	}
	r.logger.Debug("session created", "session_id", id, "total", len(r.sessions))

	return s, nil
}

// Delete removes a session. Deleting the default session resets it; the
// next request recreates it empty.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)

	if r.metrics != nil {
		r.metrics.RecordSessionCount(len(r.sessions))
	}
	r.logger.Debug("session deleted", "session_id", id, "total", len(r.sessions))
	return true
}

// Count returns the number of live sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// IDs returns the IDs of all live sessions.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	return ids
}

// Start launches the idle reaper. A zero idle timeout disables reaping.
func (r *Registry) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return errors.ErrAlreadyStarted
	}
	r.started = true
	r.done = make(chan struct{})
	r.mu.Unlock()

	if r.sessionsCfg.IdleTimeout() > 0 {
		r.waitGroup.Add(1)
		go r.reaper(ctx)
	}

	return nil
}

// Stop terminates the idle reaper and waits for it to exit.
func (r *Registry) Stop(timeout time.Duration) error {
	r.mu.Lock()
	if !r.started {
		r.mu.Unlock()
		return nil
	}
	r.started = false
	close(r.done)
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.waitGroup.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return errors.Wrap(context.DeadlineExceeded, "Registry", "Stop", "await reaper shutdown")
	}
}

// reaper periodically removes sessions idle past the configured timeout.
func (r *Registry) reaper(ctx context.Context) {
	defer r.waitGroup.Done()

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			reaped := r.SweepIdle(time.Now())
			if reaped > 0 {
				r.logger.Info("idle sessions reaped", "count", reaped)
			}
		}
	}
}

// SweepIdle removes sessions whose last activity is older than the idle
// timeout, returning how many were removed. The default session is
// recreated on demand, so reaping it only resets its contents.
func (r *Registry) SweepIdle(now time.Time) int {
	idleTimeout := r.sessionsCfg.IdleTimeout()
	if idleTimeout <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	reaped := 0
	for id, s := range r.sessions {
		if now.Sub(s.LastActive()) > idleTimeout {
			delete(r.sessions, id)
			reaped++
			if r.metrics != nil {
				r.metrics.RecordSessionReaped()
			}
		}
	}

	if reaped > 0 && r.metrics != nil {
		r.metrics.RecordSessionCount(len(r.sessions))
	}
	return reaped
}

// Health reports registry health: unhealthy at the session cap, degraded
// above 90% of it.
func (r *Registry) Health() health.Status {
	count := r.Count()
	limit := r.sessionsCfg.MaxSessions

	switch {
	case count >= limit:
		return health.NewUnhealthy("session-registry",
			fmt.Sprintf("Session limit reached (%d/%d)", count, limit))
	case count*10 >= limit*9:
		return health.NewDegraded("session-registry",
			fmt.Sprintf("Session count near limit (%d/%d)", count, limit))
	default:
		return health.NewHealthy("session-registry",
			fmt.Sprintf("%d/%d sessions in use", count, limit))
	}
}
