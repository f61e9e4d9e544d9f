package zukan

import (
	"fmt"

	"github.com/colonyops/zukan/internal/core/config"
	"github.com/colonyops/zukan/internal/core/logging"
	"github.com/colonyops/zukan/internal/data/api"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// App is the central entry point for all zukan operations.
// Commands and the TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Config      *config.Config
	API         *api.Client
	Coordinator *Coordinator
	Build       BuildInfo
}

// NewApp wires the API client and mutation coordinator from cfg.
func NewApp(cfg *config.Config, build BuildInfo) (*App, error) {
	client, err := api.New(cfg.API.BaseURL, cfg.API.Timeout, logging.Component("api"))
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}

	return &App{
		Config:      cfg,
		API:         client,
		Coordinator: NewCoordinator(client, logging.Component("coordinator")),
		Build:       build,
	}, nil
}
