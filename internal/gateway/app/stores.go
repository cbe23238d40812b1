package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"aura/internal/gateway/config"
	"aura/internal/gateway/repository/candidate"
	"aura/internal/gateway/repository/object"
	"aura/internal/llmclient"
	"aura/internal/uvm"
)

func initStore(cfg *config.Config) (object.Store, error) {
	if dsn := strings.TrimSpace(cfg.DatabaseURL); dsn != "" {
		store, err := object.NewEntStore(dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to init postgres object store: %w", err)
		}
		log.Printf("object store: postgres")
		return store, nil
	}
	log.Printf("object store: in-memory (no DATABASE_URL)")
	store := object.NewMemoryStore()
	seedMemoryObjects(store)
	return store, nil
}

// seedMemoryObjects provisions the root and system objects the way genesis
// does for postgres, so the DSN-less mode starts with a usable image.
func seedMemoryObjects(store object.Store) {
	ctx := context.Background()
	for _, obj := range []*uvm.Object{
		{ID: uvm.RootObjectID},
		{ID: "system", Prototypes: []string{uvm.RootObjectID}},
	} {
		if err := store.Create(ctx, obj); err != nil {
			log.Printf("seed %q: %v", obj.ID, err)
		}
	}
}

func initLLM(ctx context.Context, cfg *config.Config) (llmclient.LLMClient, error) {
	switch cfg.Generator.Provider {
	case "groq":
		return llmclient.NewGroqClient(cfg.Generator.GroqKey, cfg.Generator.Model)
	case "gemini":
		return llmclient.NewGeminiClient(ctx, cfg.Generator.Model)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Generator.Provider)
	}
}

func initArchiver(cfg *config.Config) uvm.Archiver {
	if !cfg.Archive.Enabled {
		return nil
	}
	store, err := candidate.NewS3Store(candidate.S3Config{
		Endpoint:  cfg.Archive.Endpoint,
		Region:    cfg.Archive.Region,
		AccessKey: cfg.Archive.AccessKey,
		SecretKey: cfg.Archive.SecretKey,
		Bucket:    cfg.Archive.Bucket,
		UseSSL:    cfg.Archive.UseSSL,
	})
	if err != nil {
		log.Printf("candidate archive disabled: %v", err)
		return nil
	}
	log.Printf("candidate archive: s3 bucket=%s endpoint=%s", cfg.Archive.Bucket, cfg.Archive.Endpoint)
	return store
}
