package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/letteragent/letteragent/pkg/config"
	"github.com/letteragent/letteragent/pkg/state"
	"github.com/letteragent/letteragent/pkg/store"
)

func loadConfig() config.Config {
	return config.LoadOrDefault(configPath)
}

// openStore builds the configured persistence backend.
func openStore(cfg config.Config) (store.Store, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		st, err := store.OpenSQLite(filepath.Join(cfg.DataDir, "letteragent.db"))
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return st, nil
	case config.StoreFile, "":
		st, err := store.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open file store: %w", err)
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (want %q or %q)", cfg.Store, config.StoreFile, config.StoreSQLite)
	}
}

// loadState opens the store and loads the application state. The
// caller must Close the returned store.
func loadState(cfg config.Config) (*state.State, store.Store, error) {
	st, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return state.Load(st, log), st, nil
}
