// Package object implements the object store: persistence of object
// documents and prototype-link edges, with per-document atomic updates.
package object

import (
	"context"

	"aura/internal/uvm"
)

// Store owns all persistent object and link state.
type Store interface {
	// Get returns the object under id, or an error wrapping
	// uvm.ErrNotFound.
	Get(ctx context.Context, id string) (*uvm.Object, error)
	// Parents returns the outbound prototype edges of id in sorted order.
	Parents(ctx context.Context, id string) ([]string, error)
	// PutAttributes atomically replaces the attribute mapping of id.
	PutAttributes(ctx context.Context, id string, attrs map[string]any) error
	// InstallMethod atomically merges one method into the method mapping
	// of id, overwriting a same-named entry.
	InstallMethod(ctx context.Context, id, name, body string) error
	// Create inserts a new object with its prototype links.
	Create(ctx context.Context, obj *uvm.Object) error
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
	Close() error
}
