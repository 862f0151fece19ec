package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorClass_String(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ErrorState, "state"},
		{ErrorInvalid, "invalid"},
		{ErrorFatal, "fatal"},
		{ErrorClass(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := test.class.String()
			if result != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result)
			}
		})
	}
}

func TestIsState(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"underflow", ErrUnderflow, true},
		{"capacity exceeded", ErrCapacityExceeded, true},
		{"ring full", ErrRingFull, true},
		{"wrapped underflow", fmt.Errorf("stack: %w", ErrUnderflow), true},
		{"invalid capacity", ErrInvalidCapacity, false},
		{"session limit", ErrSessionLimit, false},
		{"classified state", &ClassifiedError{Class: ErrorState, Err: fmt.Errorf("test")}, true},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsState(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"invalid capacity", ErrInvalidCapacity, true},
		{"negative input", ErrNegativeInput, true},
		{"invalid config", ErrInvalidConfig, true},
		{"missing config", ErrMissingConfig, true},
		{"underflow", ErrUnderflow, false},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, true},
		{"classified state", &ClassifiedError{Class: ErrorState, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsInvalid(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"already started", ErrAlreadyStarted, true},
		{"not started", ErrNotStarted, true},
		{"underflow", ErrUnderflow, false},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsFatal(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorClass
	}{
		{"underflow", ErrUnderflow, ErrorState},
		{"already started", ErrAlreadyStarted, ErrorFatal},
		{"unknown", fmt.Errorf("something odd"), ErrorInvalid},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Classify(test.err); got != test.expected {
				t.Errorf("expected %v, got %v", test.expected, got)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	base := fmt.Errorf("boom")
	wrapped := Wrap(base, "Stack", "Push", "append element")

	if wrapped == nil {
		t.Fatal("expected non-nil error")
	}
	if !strings.Contains(wrapped.Error(), "Stack.Push: append element failed") {
		t.Errorf("unexpected message: %s", wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Error("expected wrapped error to unwrap to base")
	}

	if Wrap(nil, "Stack", "Push", "append element") != nil {
		t.Error("wrapping nil should return nil")
	}
}

func TestWrapState_PreservesSentinel(t *testing.T) {
	wrapped := WrapState(ErrUnderflow, "Queue", "Dequeue", "remove front")

	if !IsState(wrapped) {
		t.Error("expected state classification")
	}
	if !errors.Is(wrapped, ErrUnderflow) {
		t.Error("expected wrapped error to match ErrUnderflow")
	}

	var ce *ClassifiedError
	if !errors.As(wrapped, &ce) {
		t.Fatal("expected ClassifiedError in chain")
	}
	if ce.Component != "Queue" || ce.Operation != "Dequeue" {
		t.Errorf("unexpected context: %s.%s", ce.Component, ce.Operation)
	}
}

func TestWrapInvalid_Classification(t *testing.T) {
	wrapped := WrapInvalid(fmt.Errorf("bad priority"), "Gateway", "priorityEnqueue", "parse priority")
	if !IsInvalid(wrapped) {
		t.Error("expected invalid classification")
	}
	if IsState(wrapped) {
		t.Error("invalid error must not classify as state")
	}
}
