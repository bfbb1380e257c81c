package main

import (
	"context"
	"fmt"
	"log"
	"time"

	adapter "campus_security_backend/internal/adapter/repository"
	"campus_security_backend/internal/config"
	"campus_security_backend/internal/core/port"
	"campus_security_backend/internal/core/service"
)

const connectTimeout = 10 * time.Second

// app owns the configuration and the store connection for one command run.
type app struct {
	cfg   *config.Config
	store port.DocumentStore
	repos *service.Repositories
	clock service.Clock
	ids   service.IDGenerator
}

// newApp loads the config and opens the store. The caller must defer Close.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	store, err := adapter.OpenStore(connectCtx, cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	return &app{
		cfg:   cfg,
		store: store,
		repos: service.NewRepositories(store.Collections()),
		clock: service.RealClock{},
		ids:   service.UUIDGenerator{},
	}, nil
}

func (a *app) Seeder() port.DemoSeeder {
	return service.NewDemoSeeder(a.repos, a.clock, a.ids)
}

func (a *app) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := a.store.Close(ctx); err != nil {
		log.Printf("[Store] Error closing store: %v", err)
	}
}
