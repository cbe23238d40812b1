package object

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"aura/internal/uvm"
)

// MemoryStore is the DSN-less fallback used by tests and local runs. Each
// operation is atomic under the store lock, matching the per-document
// atomicity the postgres backend gives; it deliberately offers nothing
// stronger, so the documented same-object race is observable here too.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]*uvm.Object
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]*uvm.Object)}
}

func (s *MemoryStore) Get(_ context.Context, id string) (*uvm.Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.data[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, uvm.ErrNotFound)
	}
	return obj.Clone(), nil
}

func (s *MemoryStore) Parents(_ context.Context, id string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.data[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, uvm.ErrNotFound)
	}
	parents := append([]string(nil), obj.Prototypes...)
	sort.Strings(parents)
	return parents, nil
}

func (s *MemoryStore) PutAttributes(_ context.Context, id string, attrs map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.data[id]
	if !ok {
		return fmt.Errorf("%q: %w", id, uvm.ErrNotFound)
	}
	obj.Attributes = uvm.CloneAttributes(attrs)
	return nil
}

func (s *MemoryStore) InstallMethod(_ context.Context, id, name, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.data[id]
	if !ok {
		return fmt.Errorf("%q: %w", id, uvm.ErrNotFound)
	}
	if obj.Methods == nil {
		obj.Methods = map[string]string{}
	}
	obj.Methods[name] = body
	return nil
}

func (s *MemoryStore) Create(_ context.Context, obj *uvm.Object) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.data[obj.ID]; exists {
		return fmt.Errorf("object %q already exists", obj.ID)
	}
	s.data[obj.ID] = obj.Clone()
	return nil
}

func (s *MemoryStore) Ping(_ context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }
