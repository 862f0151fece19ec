package health

import (
	"sync"
	"testing"
)

func TestNewHealthy(t *testing.T) {
	status := NewHealthy("gateway", "All routes responding")

	if status.Component != "gateway" {
		t.Errorf("expected component gateway, got %s", status.Component)
	}
	if !status.IsHealthy() || !status.Healthy {
		t.Error("expected healthy status")
	}
	if status.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}

func TestNewUnhealthy(t *testing.T) {
	status := NewUnhealthy("sessions", "Session limit reached")

	if !status.IsUnhealthy() {
		t.Error("expected unhealthy status")
	}
	if status.Healthy {
		t.Error("Healthy flag must be false")
	}
}

func TestNewDegraded(t *testing.T) {
	status := NewDegraded("metrics", "Scrape latency elevated")

	if !status.IsDegraded() {
		t.Error("expected degraded status")
	}
	if status.Healthy {
		t.Error("Healthy flag must be false")
	}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		expected string
	}{
		{"empty", nil, "healthy"},
		{"all healthy", []Status{NewHealthy("a", ""), NewHealthy("b", "")}, "healthy"},
		{"one degraded", []Status{NewHealthy("a", ""), NewDegraded("b", "")}, "degraded"},
		{"one unhealthy", []Status{NewDegraded("a", ""), NewUnhealthy("b", "")}, "unhealthy"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := Aggregate("system", test.statuses)
			if result.Status != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result.Status)
			}
			if len(result.SubStatuses) != len(test.statuses) {
				t.Errorf("expected %d sub-statuses, got %d", len(test.statuses), len(result.SubStatuses))
			}
		})
	}
}

func TestMonitor_UpdateAndGet(t *testing.T) {
	m := NewMonitor()

	m.UpdateHealthy("gateway", "ok")
	m.UpdateUnhealthy("sessions", "limit reached")

	status, exists := m.Get("gateway")
	if !exists || !status.IsHealthy() {
		t.Error("expected healthy gateway status")
	}

	if _, exists := m.Get("missing"); exists {
		t.Error("expected missing component to not exist")
	}

	if m.Count() != 2 {
		t.Errorf("expected 2 components, got %d", m.Count())
	}
}

func TestMonitor_AggregateHealth(t *testing.T) {
	m := NewMonitor()
	m.UpdateHealthy("a", "ok")
	m.UpdateDegraded("b", "slow")

	agg := m.AggregateHealth("linearkit")
	if !agg.IsDegraded() {
		t.Errorf("expected degraded aggregate, got %s", agg.Status)
	}
	if len(agg.SubStatuses) != 2 {
		t.Fatalf("expected 2 sub-statuses, got %d", len(agg.SubStatuses))
	}
	// Stable name ordering
	if agg.SubStatuses[0].Component != "a" || agg.SubStatuses[1].Component != "b" {
		t.Error("expected sub-statuses ordered by component name")
	}
}

func TestMonitor_Remove(t *testing.T) {
	m := NewMonitor()
	m.UpdateHealthy("a", "ok")
	m.Remove("a")

	if m.Count() != 0 {
		t.Errorf("expected 0 components after remove, got %d", m.Count())
	}
}

func TestMonitor_ConcurrentAccess(t *testing.T) {
	m := NewMonitor()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			m.UpdateHealthy("gateway", "ok")
		}(i)
		go func(n int) {
			defer wg.Done()
			_ = m.AggregateHealth("system")
		}(i)
	}
	wg.Wait()

	if m.Count() != 1 {
		t.Errorf("expected 1 component, got %d", m.Count())
	}
}
