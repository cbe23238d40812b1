package uvm

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by the object store when no object exists under
// the requested id.
var ErrNotFound = errors.New("object not found")

// ErrMethodNotFound signals a resolution miss. It is control flow, not a
// fault: the orchestrator branches into the generation protocol on it.
var ErrMethodNotFound = errors.New("method not found in prototype chain")

// FailureKind classifies every terminal dispatch failure.
type FailureKind string

const (
	// FailureExecution: the method body raised inside the sandbox.
	FailureExecution FailureKind = "execution_fault"
	// FailureAudit: generated code was rejected by the security auditor.
	FailureAudit FailureKind = "audit_rejection"
	// FailureGeneration: the code generator returned nothing usable.
	FailureGeneration FailureKind = "generation_failure"
	// FailurePersistence: an object store write failed; the mutation is
	// lost and the object remains at its pre-mutation state.
	FailurePersistence FailureKind = "persistence_failure"
	// FailureTransport: an external call was unreachable or timed out.
	FailureTransport FailureKind = "transport_failure"
)

// Failure is the typed terminal outcome surfaced to callers. None of these
// are retried automatically by the core.
type Failure struct {
	Kind      FailureKind
	Component string
	Detail    string
	cause     error
}

func (f *Failure) Error() string {
	if f.Component != "" {
		return fmt.Sprintf("%s (%s): %s", f.Kind, f.Component, f.Detail)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
}

func (f *Failure) Unwrap() error { return f.cause }

func newFailure(kind FailureKind, component, detail string, cause error) *Failure {
	return &Failure{Kind: kind, Component: component, Detail: detail, cause: cause}
}

// AsFailure extracts the typed failure from an error chain, if present.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
