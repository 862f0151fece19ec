// Package linearkit is a toolkit of classic linear containers with an
// HTTP service facade.
//
// # Layout
//
// The container core is a dependency-free generic library:
//
//   - container: Stack, MinStack, Queue, Ring (circular queue),
//     PriorityQueue and Deque over a shared buffer substrate
//   - stackops: utility functions built on Stack (bracket matching,
//     string reversal, decimal to binary)
//
// The service layers wrap the core with platform conventions:
//
//   - errors: classified errors (state, invalid, fatal)
//   - config: JSON/YAML configuration with defaults and validation
//   - health: per-component status tracking and aggregation
//   - metric: Prometheus registry and standalone metrics server
//   - session: per-caller container sets with idle reaping
//   - gateway: the HTTP API, one route per container operation, plus a
//     websocket feed of container mutations
//   - simulation: scripted demos driving the containers
//
// Containers hold no locks; the session layer serializes access. The
// facade reports container-state failures (underflow, overflow) inside
// the JSON response envelope with HTTP 200, reserving transport errors
// for malformed requests.
package linearkit
