package cmd

import (
	"fmt"
	"os"

	"deck-reconciler/core/config"
	"deck-reconciler/core/logger"
	"deck-reconciler/core/store"
	"deck-reconciler/feature/catalog"
	"deck-reconciler/feature/deck"

	"go.uber.org/zap"
)

// setup loads configuration and builds the logger shared by every command.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

// newStore connects the configured key-value store, degrading to in-memory
// operation when the backend is unreachable.
func newStore(cfg *config.Config, l *zap.Logger) store.Store {
	db, err := store.Connect(cfg.Store)
	if err != nil {
		l.Warn("Store connection failed, using in-memory store", zap.Error(err))
		return store.NewMemory()
	}
	return store.NewGorm(db)
}

// newDeckService wires the deck service with the catalog resolver and store.
func newDeckService(cfg *config.Config, l *zap.Logger) *deck.Service {
	client := catalog.NewClient(cfg.Catalog)
	resolver := catalog.NewResolver(client, l)
	return deck.NewService(newStore(cfg, l), resolver, l)
}

// readDecklist reads a decklist file for the CLI commands.
func readDecklist(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read decklist %q: %w", path, err)
	}
	return string(data), nil
}
