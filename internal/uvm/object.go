// Package uvm implements the prototype-object runtime core: the object
// model, delegation-based method resolution, and the dispatch orchestrator
// that drives the generate-audit-install loop when resolution misses.
package uvm

import "reflect"

// RootObjectID is the distinguished object terminating every prototype
// chain. It declares no methods and delegates to nothing.
const RootObjectID = "nil"

// Object is one document in the living image: a stable identity, an
// attribute mapping, a method mapping (name -> source body), and the ids
// of its prototype parents.
type Object struct {
	ID         string
	Attributes map[string]any
	Methods    map[string]string
	Prototypes []string
}

// Clone returns a deep-enough copy for snapshotting: the attribute map is
// copied one level down, which is sufficient because the executor works on
// a serialized snapshot anyway.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	cp := &Object{
		ID:         o.ID,
		Attributes: CloneAttributes(o.Attributes),
		Methods:    make(map[string]string, len(o.Methods)),
		Prototypes: append([]string(nil), o.Prototypes...),
	}
	for k, v := range o.Methods {
		cp.Methods[k] = v
	}
	return cp
}

// CloneAttributes copies an attribute mapping. Nested values are shared;
// callers that hand the copy across the sandbox boundary re-serialize it.
func CloneAttributes(attrs map[string]any) map[string]any {
	if attrs == nil {
		return map[string]any{}
	}
	cp := make(map[string]any, len(attrs))
	for k, v := range attrs {
		cp[k] = v
	}
	return cp
}

// AttributesEqual reports whether two attribute mappings are equal by
// value. Used to decide whether an execution actually mutated state.
func AttributesEqual(a, b map[string]any) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}

// DispatchRequest is one inbound message: ephemeral, never persisted.
type DispatchRequest struct {
	TargetID string
	Method   string
	Args     []any
	Kwargs   map[string]any
}

// Result is the success outcome of a dispatch. Output is opaque to the
// core; it is passed through from the executor uninterpreted.
type Result struct {
	Output       any
	StateChanged bool
}

// ObjectUpdate is published on the live-state feed after every successful
// mutating dispatch. Fire-and-forget, not transactional with the dispatch.
type ObjectUpdate struct {
	ObjectID   string         `json:"objectId"`
	Method     string         `json:"method"`
	Attributes map[string]any `json:"attributes"`
}
