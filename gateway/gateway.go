// Package gateway provides the HTTP service facade over per-session
// container sets. Each route performs exactly one container operation;
// container-state failures (underflow, overflow) are reported inside the
// JSON envelope with HTTP 200, never as transport errors.
package gateway

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/c360/linearkit/config"
	"github.com/c360/linearkit/errors"
	"github.com/c360/linearkit/health"
	"github.com/c360/linearkit/metric"
	"github.com/c360/linearkit/session"
)

// fields is the extra payload merged into a success envelope.
type fields map[string]any

// Option is a functional option for configuring the Gateway
type Option func(*Gateway)

// WithLogger sets a custom logger for the gateway
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gateway) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithMetrics sets the core metrics recorded per operation
func WithMetrics(metrics *metric.Metrics) Option {
	return func(g *Gateway) {
		g.metrics = metrics
	}
}

// Gateway is the HTTP API server for the container service.
type Gateway struct {
	config   config.ServerConfig
	logger   *slog.Logger
	metrics  *metric.Metrics
	sessions *session.Registry
	hub      *Hub
	limiter  *rate.Limiter
	monitor  *health.Monitor

	mu        sync.Mutex // protects server field
	server    *http.Server
	startTime time.Time

	requestsTotal  atomic.Uint64
	requestsFailed atomic.Uint64
}

// New creates a gateway over the given session registry.
func New(cfg config.ServerConfig, sessions *session.Registry, opts ...Option) (*Gateway, error) {
	if sessions == nil {
		return nil, errors.WrapFatal(errors.ErrMissingConfig,
			"Gateway", "New", "session registry is required")
	}

	g := &Gateway{
		config:   cfg,
		logger:   slog.Default().With("component", "gateway"),
		sessions: sessions,
		monitor:  health.NewMonitor(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if cfg.RateLimit.RequestsPerSecond > 0 {
		g.limiter = rate.NewLimiter(
			rate.Limit(cfg.RateLimit.RequestsPerSecond),
			cfg.RateLimit.Burst)
	}
	g.hub = NewHub(g.logger, g.metrics)

	return g, nil
}

// Start starts the HTTP server and blocks until it stops.
func (g *Gateway) Start(_ context.Context) error {
	g.mu.Lock()
	if g.server != nil {
		g.mu.Unlock()
		return errors.WrapFatal(errors.ErrAlreadyStarted,
			"Gateway", "Start", "gateway already running")
	}

	g.startTime = time.Now()
	g.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", g.config.Port),
		Handler:           g.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	server := g.server
	g.mu.Unlock()

	g.logger.Info("gateway listening", "port", g.config.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.WrapFatal(err, "Gateway", "Start",
			fmt.Sprintf("failed to serve on port %d", g.config.Port))
	}
	return nil
}

// Stop gracefully shuts the server down and disconnects watch clients.
func (g *Gateway) Stop(timeout time.Duration) error {
	g.mu.Lock()
	server := g.server
	g.server = nil
	g.mu.Unlock()

	g.hub.Close()
	if server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "Gateway", "Stop", "shutdown HTTP server")
	}
	return nil
}

// Routes builds the full route table. Exposed for tests that drive the
// handler directly through httptest.
func (g *Gateway) Routes() http.Handler {
	mux := http.NewServeMux()

	for _, rt := range routeTable {
		h := rt.handler
		mux.HandleFunc(rt.Method+" "+rt.Path, g.wrap(rt.Path,
			func(w http.ResponseWriter, r *http.Request) { h(g, w, r) }))
	}

	// CORS preflight for every API path
	mux.HandleFunc("OPTIONS /api/", func(w http.ResponseWriter, r *http.Request) {
		if g.config.EnableCORS {
			g.applyCORS(w, r)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("GET /api/watch", g.hub.ServeHTTP)

	return mux
}

// getOrGenerateRequestID extracts the request ID from headers or generates
// a new one. Format: 16 hex characters (8 random bytes).
func getOrGenerateRequestID(r *http.Request) string {
	if reqID := r.Header.Get("X-Request-ID"); reqID != "" {
		return reqID
	}

	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("req-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}

// statusRecorder captures the written status code for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// wrap applies the common per-request pipeline: request ID, CORS, rate
// limiting, body size limits and request accounting.
func (g *Gateway) wrap(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := getOrGenerateRequestID(r)
		w.Header().Set("X-Request-ID", requestID)

		g.requestsTotal.Add(1)

		if g.config.EnableCORS {
			g.applyCORS(w, r)
		}

		if g.limiter != nil && !g.limiter.Allow() {
			if g.metrics != nil {
				g.metrics.RecordRateLimited()
			}
			g.requestsFailed.Add(1)
			g.writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		if r.Body != nil && g.config.MaxRequestSize > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, g.config.MaxRequestSize)
		}
		defer func() {
			if r.Body != nil {
				_ = r.Body.Close()
			}
		}()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h(rec, r)

		if rec.status >= http.StatusBadRequest {
			g.requestsFailed.Add(1)
		}
		if g.metrics != nil {
			g.metrics.RecordHTTPRequest(route, strconv.Itoa(rec.status))
		}
	}
}

// applyCORS applies CORS headers when the origin is allowed.
func (g *Gateway) applyCORS(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")

	allowed := false
	for _, allowedOrigin := range g.config.CORSOrigins {
		if allowedOrigin == "*" || allowedOrigin == origin {
			allowed = true
			break
		}
	}
	if !allowed {
		return
	}

	if origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
	} else {
		w.Header().Set("Access-Control-Allow-Origin", "*")
	}
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Session-ID, X-Request-ID")
	w.Header().Set("Access-Control-Max-Age", "3600")
}

// sessionID resolves the caller's session from the X-Session-ID header or
// the session query parameter. Empty means the default session.
func sessionID(r *http.Request) string {
	if id := r.Header.Get("X-Session-ID"); id != "" {
		return id
	}
	return r.URL.Query().Get("session")
}

// writeSuccess writes a success envelope with extra payload fields.
func (g *Gateway) writeSuccess(w http.ResponseWriter, extra fields) {
	body := fields{"status": "success"}
	for k, v := range extra {
		body[k] = v
	}
	g.writeJSON(w, http.StatusOK, body)
}

// writeError writes an error envelope with the given transport status.
func (g *Gateway) writeError(w http.ResponseWriter, code int, message string) {
	g.writeJSON(w, code, fields{"status": "error", "message": message})
}

func (g *Gateway) writeJSON(w http.ResponseWriter, code int, body fields) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		g.logger.Debug("response write failed", "error", err)
	}
}

// statusFor maps an operation error to a transport status. Container-state
// errors stay 200; the envelope carries the failure.
func statusFor(err error) int {
	switch {
	case errors.IsState(err):
		return http.StatusOK
	case goerrors.Is(err, errors.ErrSessionLimit):
		return http.StatusServiceUnavailable
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// run executes one container operation inside the caller's session and
// writes the response envelope. Successful mutations are published to the
// watch feed.
func (g *Gateway) run(w http.ResponseWriter, r *http.Request, container, op string, mutation bool, fn func(*session.Containers) (fields, error)) {
	sess, err := g.sessions.Get(sessionID(r))
	if err != nil {
		g.writeError(w, statusFor(err), err.Error())
		return
	}

	start := time.Now()
	var out fields
	var opErr error
	sess.Do(func(c *session.Containers) {
		out, opErr = fn(c)
	})

	if g.metrics != nil {
		g.metrics.RecordOperationDuration(container, op, time.Since(start))
	}

	if opErr != nil {
		outcome := errors.Classify(opErr).String()
		if g.metrics != nil {
			g.metrics.RecordOperation(container, op, outcome)
		}
		g.logger.Debug("operation failed",
			"session_id", sess.ID(), "container", container, "op", op, "error", opErr)
		g.writeError(w, statusFor(opErr), opErr.Error())
		return
	}

	if g.metrics != nil {
		g.metrics.RecordOperation(container, op, "success")
	}

	if mutation {
		ev := Event{
			Session:   sess.ID(),
			Container: container,
			Op:        op,
			Size:      intField(out, "size"),
			Time:      time.Now(),
		}
		if item, ok := out["item"].(string); ok {
			ev.Item = item
		}
		g.hub.Publish(ev)
	}

	g.writeSuccess(w, out)
}

// intField extracts an int payload field, tolerating absence.
func intField(f fields, key string) int {
	if n, ok := f[key].(int); ok {
		return n
	}
	return 0
}

// Health reports gateway health including session registry state.
func (g *Gateway) Health() health.Status {
	g.mu.Lock()
	running := g.server != nil
	startTime := g.startTime
	g.mu.Unlock()

	var self health.Status
	if running {
		self = health.NewHealthy("gateway", "Serving requests")
		self = self.WithMetrics(&health.Metrics{
			Uptime:     time.Since(startTime),
			ErrorCount: int(g.requestsFailed.Load()),
			Operations: int64(g.requestsTotal.Load()),
		})
	} else {
		self = health.NewUnhealthy("gateway", "Not running")
	}

	g.monitor.Update("gateway", self)
	g.monitor.Update("session-registry", g.sessions.Health())
	return g.monitor.AggregateHealth("linearkit")
}
