package uvm

import (
	"context"
	"errors"
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMaxDepth bounds the prototype walk. The link graph is supposed to
// be acyclic, but the bound guarantees termination even when that invariant
// is violated; exceeding it is a miss, not an error.
const DefaultMaxDepth = 100

const defaultResolverCacheSize = 4096

// ObjectReader is the read-only slice of the object store the resolver
// needs: point lookups and outbound prototype edges.
type ObjectReader interface {
	Get(ctx context.Context, id string) (*Object, error)
	Parents(ctx context.Context, id string) ([]string, error)
}

// ResolvedMethod locates the nearest declaring ancestor of a method.
// Resolution copies no code; the body is read from the declaring object.
type ResolvedMethod struct {
	DeclaringID string
	Body        string
	Depth       int
}

// Resolver walks prototype edges breadth-first from a start object and
// returns the shallowest declaration of a method. Hits are memoized in an
// LRU cache which the orchestrator purges whenever a method is installed.
type Resolver struct {
	store    ObjectReader
	maxDepth int
	cache    *lru.Cache[string, ResolvedMethod]
}

func NewResolver(store ObjectReader, maxDepth int) (*Resolver, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	cache, err := lru.New[string, ResolvedMethod](defaultResolverCacheSize)
	if err != nil {
		return nil, err
	}
	return &Resolver{store: store, maxDepth: maxDepth, cache: cache}, nil
}

func cacheKey(startID, method string) string {
	return startID + "\x00" + method
}

// Resolve finds the nearest ancestor (including start itself, depth 0)
// declaring method. Among equal-depth ancestors the smallest id wins, so
// resolution is deterministic. Returns ErrMethodNotFound when no ancestor
// within the depth bound declares it, and ErrNotFound when the start
// object itself does not exist.
func (r *Resolver) Resolve(ctx context.Context, startID, method string) (ResolvedMethod, error) {
	if hit, ok := r.cache.Get(cacheKey(startID, method)); ok {
		return hit, nil
	}

	visited := map[string]bool{startID: true}
	frontier := []string{startID}

	for depth := 0; depth <= r.maxDepth && len(frontier) > 0; depth++ {
		var next []string
		for _, id := range frontier {
			obj, err := r.store.Get(ctx, id)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					if depth == 0 {
						return ResolvedMethod{}, ErrNotFound
					}
					// Dangling prototype edge; skip the missing ancestor.
					continue
				}
				return ResolvedMethod{}, fmt.Errorf("resolver: get %q: %w", id, err)
			}
			if body, ok := obj.Methods[method]; ok {
				rm := ResolvedMethod{DeclaringID: id, Body: body, Depth: depth}
				r.cache.Add(cacheKey(startID, method), rm)
				return rm, nil
			}
			parents, err := r.store.Parents(ctx, id)
			if err != nil {
				return ResolvedMethod{}, fmt.Errorf("resolver: parents of %q: %w", id, err)
			}
			sort.Strings(parents)
			for _, p := range parents {
				if !visited[p] {
					visited[p] = true
					next = append(next, p)
				}
			}
		}
		// Keep equal-depth order deterministic across store backends.
		sort.Strings(next)
		frontier = next
	}

	return ResolvedMethod{}, ErrMethodNotFound
}

// InvalidateAll drops every memoized resolution. Called after a method
// install: an install on any object can change resolutions for all of its
// descendants, and installs are rare enough that a full purge is cheaper
// than tracking the affected subtree.
func (r *Resolver) InvalidateAll() {
	r.cache.Purge()
}
