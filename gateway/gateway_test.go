package gateway

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/linearkit/config"
	"github.com/c360/linearkit/session"
)

func newTestGateway(t *testing.T, mutate func(*config.Config)) (*Gateway, *httptest.Server) {
	t.Helper()

	cfg := config.Default()
	cfg.Containers.RingCapacity = 2
	if mutate != nil {
		mutate(cfg)
	}

	sessions, err := session.NewRegistry(cfg.Sessions, cfg.Containers)
	require.NoError(t, err)

	g, err := New(cfg.Server, sessions)
	require.NoError(t, err)

	ts := httptest.NewServer(g.Routes())
	t.Cleanup(ts.Close)
	return g, ts
}

func doJSON(t *testing.T, ts *httptest.Server, method, path string, body any, headers map[string]string) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func TestStackLifecycle(t *testing.T) {
	_, ts := newTestGateway(t, nil)

	code, env := doJSON(t, ts, "POST", "/api/stack/push", map[string]any{"item": "a"}, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env["status"])
	assert.Equal(t, 1.0, env["size"])

	code, env = doJSON(t, ts, "POST", "/api/stack/push", map[string]any{"item": "b"}, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 2.0, env["size"])

	code, env = doJSON(t, ts, "GET", "/api/stack/peek", nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "b", env["item"])

	code, env = doJSON(t, ts, "POST", "/api/stack/pop", nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "b", env["item"])
	assert.Equal(t, 1.0, env["size"])

	code, env = doJSON(t, ts, "GET", "/api/stack/all", nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{"a"}, env["items"])
}

func TestStackUnderflowStaysHTTP200(t *testing.T) {
	_, ts := newTestGateway(t, nil)

	code, env := doJSON(t, ts, "POST", "/api/stack/pop", nil, nil)
	require.Equal(t, http.StatusOK, code, "state errors ride the envelope, not the transport")
	assert.Equal(t, "error", env["status"])
	assert.Contains(t, env["message"], "underflow")
}

func TestMalformedRequests(t *testing.T) {
	_, ts := newTestGateway(t, nil)

	req, err := http.NewRequest("POST", ts.URL+"/api/stack/push",
		bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Missing item field
	code, env := doJSON(t, ts, "POST", "/api/stack/push", map[string]any{}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "error", env["status"])

	// Non-numeric position
	code, _ = doJSON(t, ts, "GET", "/api/stack/element?position=abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestStackSearchAndElement(t *testing.T) {
	_, ts := newTestGateway(t, nil)

	for _, item := range []string{"x", "y", "z"} {
		code, _ := doJSON(t, ts, "POST", "/api/stack/push", map[string]any{"item": item}, nil)
		require.Equal(t, http.StatusOK, code)
	}

	code, env := doJSON(t, ts, "GET", "/api/stack/search?item=y", nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1.0, env["position"], "y is one below the top")

	code, env = doJSON(t, ts, "GET", "/api/stack/search?item=missing", nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, -1.0, env["position"])

	code, env = doJSON(t, ts, "GET", "/api/stack/element?position=0", nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "z", env["item"])

	code, env = doJSON(t, ts, "GET", "/api/stack/element?position=9", nil, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "error", env["status"])
}

func TestBoundedStackOverflowEnvelope(t *testing.T) {
	_, ts := newTestGateway(t, nil)

	code, env := doJSON(t, ts, "POST", "/api/stack/maxsize", map[string]any{"max_size": 1}, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1.0, env["max_size"])

	code, _ = doJSON(t, ts, "POST", "/api/stack/push", map[string]any{"item": "a"}, nil)
	require.Equal(t, http.StatusOK, code)

	code, env = doJSON(t, ts, "POST", "/api/stack/push", map[string]any{"item": "b"}, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "error", env["status"])
	assert.Contains(t, env["message"], "maximum size")

	// Rejected push left the stack untouched
	code, env = doJSON(t, ts, "GET", "/api/stack/size", nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1.0, env["size"])
}

func TestMinStackEndpoints(t *testing.T) {
	_, ts := newTestGateway(t, nil)

	for _, item := range []string{"m", "c", "x"} {
		code, _ := doJSON(t, ts, "POST", "/api/minstack/push", map[string]any{"item": item}, nil)
		require.Equal(t, http.StatusOK, code)
	}

	code, env := doJSON(t, ts, "GET", "/api/minstack/min", nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "c", env["min"])

	// Popping x does not disturb the minimum
	code, _ = doJSON(t, ts, "POST", "/api/minstack/pop", nil, nil)
	require.Equal(t, http.StatusOK, code)
	code, env = doJSON(t, ts, "GET", "/api/minstack/min", nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "c", env["min"])

	// Popping c restores the older minimum
	code, _ = doJSON(t, ts, "POST", "/api/minstack/pop", nil, nil)
	require.Equal(t, http.StatusOK, code)
	code, env = doJSON(t, ts, "GET", "/api/minstack/min", nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "m", env["min"])
}

func TestQueueEndpoints(t *testing.T) {
	_, ts := newTestGateway(t, nil)

	for _, item := range []string{"first", "second"} {
		code, _ := doJSON(t, ts, "POST", "/api/queue/enqueue", map[string]any{"item": item}, nil)
		require.Equal(t, http.StatusOK, code)
	}

	code, env := doJSON(t, ts, "GET", "/api/queue/front", nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "first", env["item"])

	code, env = doJSON(t, ts, "GET", "/api/queue/rear", nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "second", env["item"])

	code, env = doJSON(t, ts, "POST", "/api/queue/dequeue", nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "first", env["item"])
}

func TestCircularQueueOverflowEnvelope(t *testing.T) {
	// Ring capacity is 2 in the test config
	_, ts := newTestGateway(t, nil)

	for _, item := range []string{"a", "b"} {
		code, env := doJSON(t, ts, "POST", "/api/circular/enqueue", map[string]any{"item": item}, nil)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "success", env["status"])
	}

	code, env := doJSON(t, ts, "POST", "/api/circular/enqueue", map[string]any{"item": "c"}, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "error", env["status"])
	assert.Contains(t, env["message"], "full")

	// Wraparound after a dequeue
	code, _ = doJSON(t, ts, "POST", "/api/circular/dequeue", nil, nil)
	require.Equal(t, http.StatusOK, code)
	code, env = doJSON(t, ts, "POST", "/api/circular/enqueue", map[string]any{"item": "c"}, nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "success", env["status"])

	code, env = doJSON(t, ts, "GET", "/api/circular/all", nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{"b", "c"}, env["items"])
}

func TestPriorityQueueEndpoints(t *testing.T) {
	_, ts := newTestGateway(t, nil)

	entries := []struct {
		item     string
		priority int
	}{
		{"low", 1},
		{"high", 9},
		{"mid", 5},
	}
	for _, e := range entries {
		code, env := doJSON(t, ts, "POST", "/api/priority/enqueue",
			map[string]any{"item": e.item, "priority": e.priority}, nil)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "success", env["status"])
	}

	code, env := doJSON(t, ts, "POST", "/api/priority/dequeue", nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "high", env["item"])

	code, env = doJSON(t, ts, "POST", "/api/priority/dequeue", nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "mid", env["item"])

	// priority is required
	code, _ = doJSON(t, ts, "POST", "/api/priority/enqueue", map[string]any{"item": "x"}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestDequeEndpoints(t *testing.T) {
	_, ts := newTestGateway(t, nil)

	code, _ := doJSON(t, ts, "POST", "/api/deque/push-back", map[string]any{"item": "b"}, nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = doJSON(t, ts, "POST", "/api/deque/push-front", map[string]any{"item": "a"}, nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = doJSON(t, ts, "POST", "/api/deque/push-back", map[string]any{"item": "c"}, nil)
	require.Equal(t, http.StatusOK, code)

	code, env := doJSON(t, ts, "GET", "/api/deque/all", nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{"a", "b", "c"}, env["items"])

	code, env = doJSON(t, ts, "POST", "/api/deque/pop-back", nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "c", env["item"])

	code, env = doJSON(t, ts, "POST", "/api/deque/pop-front", nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "a", env["item"])
}

func TestUtilEndpoints(t *testing.T) {
	_, ts := newTestGateway(t, nil)

	code, env := doJSON(t, ts, "POST", "/api/util/balanced",
		map[string]any{"expression": "()[]{}"}, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, env["balanced"])

	code, env = doJSON(t, ts, "POST", "/api/util/balanced",
		map[string]any{"expression": "([)]"}, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, env["balanced"])

	code, env = doJSON(t, ts, "POST", "/api/util/reverse",
		map[string]any{"text": "Hello"}, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "olleH", env["reversed"])

	code, env = doJSON(t, ts, "POST", "/api/util/binary",
		map[string]any{"number": 42}, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "101010", env["binary"])

	code, env = doJSON(t, ts, "POST", "/api/util/binary",
		map[string]any{"number": -3}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "error", env["status"])
}

func TestSessionIsolation(t *testing.T) {
	_, ts := newTestGateway(t, nil)

	code, _ := doJSON(t, ts, "POST", "/api/stack/push",
		map[string]any{"item": "private"}, map[string]string{"X-Session-ID": "alpha"})
	require.Equal(t, http.StatusOK, code)

	code, env := doJSON(t, ts, "GET", "/api/stack/size", nil,
		map[string]string{"X-Session-ID": "beta"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0.0, env["size"])

	code, env = doJSON(t, ts, "GET", "/api/stack/size", nil,
		map[string]string{"X-Session-ID": "alpha"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1.0, env["size"])

	// Query parameter works as well
	code, env = doJSON(t, ts, "GET", "/api/stack/size?session=alpha", nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1.0, env["size"])
}

func TestSessionCreateAndDelete(t *testing.T) {
	_, ts := newTestGateway(t, nil)

	code, env := doJSON(t, ts, "POST", "/api/session", nil, nil)
	require.Equal(t, http.StatusCreated, code)
	id, ok := env["session_id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)

	code, _ = doJSON(t, ts, "POST", "/api/stack/push",
		map[string]any{"item": "x"}, map[string]string{"X-Session-ID": id})
	require.Equal(t, http.StatusOK, code)

	code, env = doJSON(t, ts, "DELETE", "/api/session/"+id, nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env["status"])

	code, env = doJSON(t, ts, "DELETE", "/api/session/"+id, nil, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "error", env["status"])
}

func TestRateLimiting(t *testing.T) {
	_, ts := newTestGateway(t, func(cfg *config.Config) {
		cfg.Server.RateLimit.RequestsPerSecond = 1
		cfg.Server.RateLimit.Burst = 1
	})

	code, _ := doJSON(t, ts, "GET", "/api/stack/size", nil, nil)
	require.Equal(t, http.StatusOK, code)

	code, env := doJSON(t, ts, "GET", "/api/stack/size", nil, nil)
	assert.Equal(t, http.StatusTooManyRequests, code)
	assert.Equal(t, "error", env["status"])
}

func TestCORSPreflight(t *testing.T) {
	_, ts := newTestGateway(t, func(cfg *config.Config) {
		cfg.Server.EnableCORS = true
	})

	req, err := http.NewRequest("OPTIONS", ts.URL+"/api/stack/push", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.com")

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://example.com", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestHealthEndpoint(t *testing.T) {
	_, ts := newTestGateway(t, nil)

	resp, err := ts.Client().Get(ts.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	var st map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.Equal(t, "linearkit", st["component"])
	assert.NotEmpty(t, st["sub_statuses"])
}

func TestInfoEndpoint(t *testing.T) {
	_, ts := newTestGateway(t, nil)

	code, env := doJSON(t, ts, "GET", "/api/info", nil, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "linearkit", env["service"])

	endpoints, ok := env["endpoints"].([]any)
	require.True(t, ok)
	assert.Greater(t, len(endpoints), 40)
}

func TestRequestIDHeader(t *testing.T) {
	_, ts := newTestGateway(t, nil)

	resp, err := ts.Client().Get(ts.URL + "/api/stack/size")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	req, err := http.NewRequest("GET", ts.URL+"/api/stack/size", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "trace-me")
	resp2, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, "trace-me", resp2.Header.Get("X-Request-ID"))
}
