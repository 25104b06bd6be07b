package cmd

import (
	"fmt"

	"github.com/iksnae/tempo/internal"
)

// App bundles the resolved paths, loaded store, and timer engine shared by
// every command.
type App struct {
	Paths  *internal.Paths
	Config internal.Config
	Store  *internal.Store
	Engine *internal.Engine
}

// openApp resolves paths, loads config and history, and wires an engine.
func openApp() (*App, error) {
	paths, err := internal.ResolvePaths(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}
	internal.LogDebug("data directory: %s", paths.DataDir)

	cfg, err := internal.LoadConfig(paths.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := internal.OpenStore(paths.SessionsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load session history: %w", err)
	}
	internal.LogDebug("loaded %d session(s) from %s", store.Len(), paths.SessionsFile)

	return &App{
		Paths:  paths,
		Config: cfg,
		Store:  store,
		Engine: internal.NewEngine(store, cfg),
	}, nil
}
