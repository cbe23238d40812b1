package uvm

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
)

// fakeStore is an in-package store double so resolver and orchestrator
// tests can script edge cases without a real backend.
type fakeStore struct {
	mu      sync.Mutex
	objects map[string]*Object

	getCalls     int
	putCalls     int
	installCalls int

	installHook func(id, name, body string) error
	putHook     func(id string, attrs map[string]any) error
}

func newFakeStore(objects ...*Object) *fakeStore {
	s := &fakeStore{objects: make(map[string]*Object)}
	for _, o := range objects {
		s.objects[o.ID] = o.Clone()
	}
	return s
}

func (s *fakeStore) Get(_ context.Context, id string) (*Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getCalls++
	obj, ok := s.objects[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	return obj.Clone(), nil
}

func (s *fakeStore) Parents(_ context.Context, id string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	return append([]string(nil), obj.Prototypes...), nil
}

func (s *fakeStore) PutAttributes(_ context.Context, id string, attrs map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putCalls++
	if s.putHook != nil {
		if err := s.putHook(id, attrs); err != nil {
			return err
		}
	}
	obj, ok := s.objects[id]
	if !ok {
		return fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	obj.Attributes = CloneAttributes(attrs)
	return nil
}

func (s *fakeStore) InstallMethod(_ context.Context, id, name, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.installCalls++
	if s.installHook != nil {
		return s.installHook(id, name, body)
	}
	obj, ok := s.objects[id]
	if !ok {
		return fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	if obj.Methods == nil {
		obj.Methods = map[string]string{}
	}
	obj.Methods[name] = body
	return nil
}

func (s *fakeStore) attributes(id string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CloneAttributes(s.objects[id].Attributes)
}

func (s *fakeStore) methods(id string) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := map[string]string{}
	for k, v := range s.objects[id].Methods {
		out[k] = v
	}
	return out
}

func chain(ids ...string) []*Object {
	objs := make([]*Object, 0, len(ids))
	for i, id := range ids {
		obj := &Object{ID: id}
		if i+1 < len(ids) {
			obj.Prototypes = []string{ids[i+1]}
		}
		objs = append(objs, obj)
	}
	return objs
}

func mustResolver(t *testing.T, store ObjectReader, maxDepth int) *Resolver {
	t.Helper()
	r, err := NewResolver(store, maxDepth)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return r
}

func TestResolveClosestAncestorWins(t *testing.T) {
	objs := chain("a", "b", "nil")
	objs[1].Methods = map[string]string{"m": "body-b"}
	objs[2].Methods = map[string]string{"m": "body-nil"}
	store := newFakeStore(objs...)
	r := mustResolver(t, store, 0)

	got, err := r.Resolve(context.Background(), "a", "m")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.DeclaringID != "b" || got.Body != "body-b" || got.Depth != 1 {
		t.Fatalf("unexpected resolution: %+v", got)
	}
}

func TestResolveSelfAtDepthZero(t *testing.T) {
	objs := chain("a", "nil")
	objs[0].Methods = map[string]string{"m": "body-a"}
	store := newFakeStore(objs...)
	r := mustResolver(t, store, 0)

	got, err := r.Resolve(context.Background(), "a", "m")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.DeclaringID != "a" || got.Depth != 0 {
		t.Fatalf("expected depth-0 self hit, got %+v", got)
	}
}

func TestResolveMissReturnsMethodNotFound(t *testing.T) {
	store := newFakeStore(chain("a", "b", "nil")...)
	r := mustResolver(t, store, 0)

	_, err := r.Resolve(context.Background(), "a", "missing")
	if !errors.Is(err, ErrMethodNotFound) {
		t.Fatalf("expected ErrMethodNotFound, got %v", err)
	}
}

func TestResolveUnknownStartObject(t *testing.T) {
	store := newFakeStore()
	r := mustResolver(t, store, 0)

	_, err := r.Resolve(context.Background(), "ghost", "m")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveDepthBound(t *testing.T) {
	// Build a chain deeper than the bound; the declaration sits past it.
	ids := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		ids = append(ids, fmt.Sprintf("o%02d", i))
	}
	objs := chain(ids...)
	objs[len(objs)-1].Methods = map[string]string{"m": "deep"}
	store := newFakeStore(objs...)
	r := mustResolver(t, store, 3)

	_, err := r.Resolve(context.Background(), ids[0], "m")
	if !errors.Is(err, ErrMethodNotFound) {
		t.Fatalf("expected miss past depth bound, got %v", err)
	}
}

func TestResolveTerminatesOnCycle(t *testing.T) {
	a := &Object{ID: "a", Prototypes: []string{"b"}}
	b := &Object{ID: "b", Prototypes: []string{"a"}}
	store := newFakeStore(a, b)
	r := mustResolver(t, store, 100)

	_, err := r.Resolve(context.Background(), "a", "m")
	if !errors.Is(err, ErrMethodNotFound) {
		t.Fatalf("expected miss on cyclic graph, got %v", err)
	}
}

func TestResolveEqualDepthDeterministic(t *testing.T) {
	// Both parents declare m at depth 1; the smaller id must win every time.
	child := &Object{ID: "child", Prototypes: []string{"pz", "pa"}}
	pa := &Object{ID: "pa", Methods: map[string]string{"m": "body-pa"}}
	pz := &Object{ID: "pz", Methods: map[string]string{"m": "body-pz"}}
	store := newFakeStore(child, pa, pz)

	for i := 0; i < 10; i++ {
		r := mustResolver(t, store, 0)
		got, err := r.Resolve(context.Background(), "child", "m")
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if got.DeclaringID != "pa" {
			t.Fatalf("iteration %d: expected pa, got %q", i, got.DeclaringID)
		}
	}
}

func TestResolveCacheInvalidation(t *testing.T) {
	objs := chain("a", "b", "nil")
	objs[1].Methods = map[string]string{"m": "old"}
	store := newFakeStore(objs...)
	r := mustResolver(t, store, 0)

	first, err := r.Resolve(context.Background(), "a", "m")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if first.DeclaringID != "b" {
		t.Fatalf("expected b, got %q", first.DeclaringID)
	}

	// Installing on "a" shadows the ancestor; a purge must make the new
	// depth-0 declaration visible.
	if err := store.InstallMethod(context.Background(), "a", "m", "new"); err != nil {
		t.Fatalf("InstallMethod: %v", err)
	}

	cached, err := r.Resolve(context.Background(), "a", "m")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cached.DeclaringID != "b" {
		t.Fatalf("expected stale cache hit on b, got %q", cached.DeclaringID)
	}

	r.InvalidateAll()
	fresh, err := r.Resolve(context.Background(), "a", "m")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if fresh.DeclaringID != "a" || fresh.Body != "new" {
		t.Fatalf("expected fresh depth-0 hit, got %+v", fresh)
	}
}
