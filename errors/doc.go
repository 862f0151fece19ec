// Package errors provides standardized error handling patterns for linearkit.
//
// # Overview
//
// The errors package implements a three-class error classification system:
// State (expected container-state conditions such as underflow and overflow),
// Invalid (bad input, non-retryable), and Fatal (unrecoverable, stop
// processing).
//
// Container-state errors are a deliberate departure from the usual
// transient/invalid/fatal split: popping an empty stack or enqueueing into a
// full ring is an expected outcome that the service facade reports inside a
// normal response envelope, never as a transport-level failure.
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapState(err, "Component", "Method", "action")    // container state
//	errors.WrapInvalid(err, "Component", "Method", "action")  // validation errors
//	errors.WrapFatal(err, "Component", "Method", "action")    // unrecoverable errors
//
// The generic Wrap() function preserves the original error's classification
// through the chain.
//
// # Standard Error Variables
//
// Pre-defined variables cover the common conditions:
//
//   - Container state: ErrUnderflow, ErrCapacityExceeded, ErrRingFull
//   - Input: ErrInvalidCapacity, ErrNegativeInput
//   - Sessions: ErrSessionNotFound, ErrSessionLimit
//   - Configuration: ErrInvalidConfig, ErrMissingConfig
//   - Lifecycle: ErrAlreadyStarted, ErrNotStarted
//
// Use these variables instead of creating custom error messages so that
// errors.Is checks work across package boundaries.
//
// # Integration with errors.As/Is
//
// All error types support standard library error inspection:
//
//	var ce *errors.ClassifiedError
//	if errors.As(err, &ce) {
//	    log.Printf("Component: %s, Class: %s", ce.Component, ce.Class)
//	}
//
//	if errors.Is(err, errors.ErrUnderflow) {
//	    // report inside the response envelope
//	}
//
// Classification is preserved through wrapping chains.
package errors
