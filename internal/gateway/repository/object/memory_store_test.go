package object

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aura/internal/uvm"
)

func seed(t *testing.T) *MemoryStore {
	t.Helper()
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, &uvm.Object{ID: uvm.RootObjectID}))
	require.NoError(t, s.Create(ctx, &uvm.Object{
		ID:         "system",
		Attributes: map[string]any{"name": "system"},
		Methods:    map[string]string{"ping": "def ping(self):\n    return 'pong'\n"},
		Prototypes: []string{uvm.RootObjectID},
	}))
	return s
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	s := seed(t)
	ctx := context.Background()

	got, err := s.Get(ctx, "system")
	require.NoError(t, err)
	got.Attributes["name"] = "mutated"
	got.Methods["ping"] = "mutated"

	again, err := s.Get(ctx, "system")
	require.NoError(t, err)
	assert.Equal(t, "system", again.Attributes["name"])
	assert.Contains(t, again.Methods["ping"], "pong")
}

func TestMemoryStoreGetMissing(t *testing.T) {
	s := seed(t)
	_, err := s.Get(context.Background(), "ghost")
	require.ErrorIs(t, err, uvm.ErrNotFound)
}

func TestMemoryStoreParentsSorted(t *testing.T) {
	s := seed(t)
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, &uvm.Object{
		ID:         "child",
		Prototypes: []string{"system", uvm.RootObjectID, "another"},
	}))

	parents, err := s.Parents(ctx, "child")
	require.NoError(t, err)
	assert.Equal(t, []string{"another", "nil", "system"}, parents)
}

func TestMemoryStorePutAttributesReplaces(t *testing.T) {
	s := seed(t)
	ctx := context.Background()

	require.NoError(t, s.PutAttributes(ctx, "system", map[string]any{"visits": 1}))

	got, err := s.Get(ctx, "system")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"visits": 1}, got.Attributes, "replace, not merge")
	assert.Contains(t, got.Methods, "ping", "methods untouched by attribute writes")
}

func TestMemoryStorePutAttributesMissing(t *testing.T) {
	s := seed(t)
	err := s.PutAttributes(context.Background(), "ghost", map[string]any{"x": 1})
	require.ErrorIs(t, err, uvm.ErrNotFound)
}

func TestMemoryStoreInstallMethodMerges(t *testing.T) {
	s := seed(t)
	ctx := context.Background()

	require.NoError(t, s.InstallMethod(ctx, "system", "greet", "def greet(self):\n    return 'hi'\n"))

	got, err := s.Get(ctx, "system")
	require.NoError(t, err)
	assert.Len(t, got.Methods, 2)
	assert.Contains(t, got.Methods, "ping")
	assert.Contains(t, got.Methods, "greet")
	assert.Equal(t, "system", got.Attributes["name"], "attributes untouched by installs")
}

func TestMemoryStoreInstallMethodOnMethodlessObject(t *testing.T) {
	s := seed(t)
	ctx := context.Background()

	require.NoError(t, s.InstallMethod(ctx, uvm.RootObjectID, "greet", "body"))
	got, err := s.Get(ctx, uvm.RootObjectID)
	require.NoError(t, err)
	assert.Equal(t, "body", got.Methods["greet"])
}

func TestMemoryStoreCreateRejectsDuplicates(t *testing.T) {
	s := seed(t)
	err := s.Create(context.Background(), &uvm.Object{ID: "system"})
	require.Error(t, err)
}

func TestMemoryStoreCreateDetachesInput(t *testing.T) {
	s := seed(t)
	ctx := context.Background()

	in := &uvm.Object{ID: "obj", Attributes: map[string]any{"k": "v"}}
	require.NoError(t, s.Create(ctx, in))
	in.Attributes["k"] = "mutated"

	got, err := s.Get(ctx, "obj")
	require.NoError(t, err)
	assert.Equal(t, "v", got.Attributes["k"])
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := seed(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.Get(ctx, "system")
		}()
		go func() {
			defer wg.Done()
			_ = s.PutAttributes(ctx, "system", map[string]any{"name": "system"})
		}()
	}
	wg.Wait()

	got, err := s.Get(ctx, "system")
	require.NoError(t, err)
	assert.Equal(t, "system", got.Attributes["name"])
}
