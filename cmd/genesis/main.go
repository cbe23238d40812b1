// Command genesis provisions the living image: it creates the database
// schema and seeds the distinguished nil root object and the initial
// system object delegating to it. Safe to re-run; existing objects are
// left alone.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"aura/internal/gateway/repository/object"
	"aura/internal/uvm"
)

func main() {
	_ = godotenv.Load()

	dsn := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := object.NewEntStore(dsn)
	if err != nil {
		log.Fatalf("open object store: %v", err)
	}
	defer store.Close()

	log.Println("--- Initializing persistence layer ---")
	if err := store.Migrate(ctx); err != nil {
		log.Fatalf("create schema: %v", err)
	}

	if err := ensureObject(ctx, store, &uvm.Object{ID: uvm.RootObjectID}); err != nil {
		log.Fatalf("seed %q: %v", uvm.RootObjectID, err)
	}
	if err := ensureObject(ctx, store, &uvm.Object{
		ID:         "system",
		Prototypes: []string{uvm.RootObjectID},
	}); err != nil {
		log.Fatalf("seed system: %v", err)
	}

	log.Println("--- Genesis complete ---")
}

func ensureObject(ctx context.Context, store object.Store, obj *uvm.Object) error {
	_, err := store.Get(ctx, obj.ID)
	if err == nil {
		log.Printf("object %q already exists", obj.ID)
		return nil
	}
	if !errors.Is(err, uvm.ErrNotFound) {
		return err
	}
	log.Printf("creating object %q", obj.ID)
	return store.Create(ctx, obj)
}
