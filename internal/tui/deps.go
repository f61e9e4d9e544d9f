// Package tui implements the Bubble Tea TUI for zukan.
package tui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"

	"github.com/colonyops/zukan/internal/core/catalog"
	"github.com/colonyops/zukan/internal/core/config"
	"github.com/colonyops/zukan/internal/core/quiz"
	"github.com/colonyops/zukan/internal/zukan"
)

// Catalog lists collections and resolves image locators.
type Catalog interface {
	ListCollections(ctx context.Context) ([]catalog.CollectionSummary, error)
	ResolveRef(ref string) string
}

// Clipboard is the system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Deps are the services the TUI runs against.
type Deps struct {
	Config      *config.Config
	Coordinator *zukan.Coordinator
	Catalog     Catalog
	Clipboard   Clipboard // nil uses the system clipboard
	Build       zukan.BuildInfo
	Log         zerolog.Logger
}

// Opts select where the TUI starts.
type Opts struct {
	// CollectionID opens the detail view directly when non-zero.
	CollectionID int64
	Mode         quiz.Mode
	// Source drives hint selection; nil picks positions at random.
	Source quiz.Source
}
