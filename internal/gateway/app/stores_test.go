package app

import (
	"context"
	"testing"

	"aura/internal/gateway/config"
	"aura/internal/uvm"
)

func TestInitStoreWithoutDSNSeedsGenesisObjects(t *testing.T) {
	store, err := initStore(&config.Config{})
	if err != nil {
		t.Fatalf("initStore: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	if _, err := store.Get(ctx, uvm.RootObjectID); err != nil {
		t.Fatalf("root object missing: %v", err)
	}
	system, err := store.Get(ctx, "system")
	if err != nil {
		t.Fatalf("system object missing: %v", err)
	}
	if len(system.Prototypes) != 1 || system.Prototypes[0] != uvm.RootObjectID {
		t.Fatalf("system must delegate to the root, got %v", system.Prototypes)
	}
}
