// Package app wires the runtime together: config, stores, the dispatch
// orchestrator and its collaborators, handlers, and the HTTP server. The
// orchestrator is an explicitly constructed, owned instance; there are no
// package-level singletons.
package app

import (
	"context"
	"fmt"
	"log"

	"aura/internal/codegen"
	"aura/internal/gateway/config"
	"aura/internal/gateway/handler"
	"aura/internal/gateway/handler/rpc"
	"aura/internal/gateway/repository/object"
	"aura/internal/gateway/server"
	"aura/internal/gateway/service/statefeed"
	"aura/internal/guardian"
	"aura/internal/llmclient"
	"aura/internal/sandbox"
	"aura/internal/uvm"
)

type App struct {
	server *server.Server
	store  object.Store
	feed   *statefeed.Feed
	llm    llmclient.LLMClient
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := initStore(cfg)
	if err != nil {
		return nil, err
	}

	llm, err := initLLM(ctx, cfg)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	feed := statefeed.New()
	executor := sandbox.NewClient(cfg.Sandbox.URL, cfg.Sandbox.Timeout)
	generator := codegen.New(llm)
	auditor := guardian.NewAuditor()

	resolver, err := uvm.NewResolver(store, cfg.Resolver.MaxDepth)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	orch, err := uvm.New(uvm.Deps{
		Store:     store,
		Resolver:  resolver,
		Executor:  executor,
		Generator: generator,
		Auditor:   auditor,
		Publisher: feed,
		Archiver:  initArchiver(cfg),
		Timeouts: uvm.Timeouts{
			Executor:  cfg.Sandbox.Timeout,
			Generator: cfg.Generator.Timeout,
		},
	})
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	dispatchHandler := rpc.NewDispatchHandler(orch, store)
	stateFeedHandler := rpc.NewStateFeedHandler(feed)
	healthHandler := handler.NewHealthHandler(store)

	mux := server.NewMux(dispatchHandler, stateFeedHandler, healthHandler)
	srv := server.New(cfg.Port, mux)

	return &App{
		server: srv,
		store:  store,
		feed:   feed,
		llm:    llm,
	}, nil
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.feed.Close()
	if err := a.llm.Close(); err != nil {
		log.Printf("llm client close: %v", err)
	}
	if err := a.store.Close(); err != nil {
		log.Printf("object store close: %v", err)
	}
	return a.server.Shutdown(ctx)
}
