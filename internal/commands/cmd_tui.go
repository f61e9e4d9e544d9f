package commands

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/zukan/internal/core/logging"
	"github.com/colonyops/zukan/internal/core/quiz"
	"github.com/colonyops/zukan/internal/tui"
	"github.com/colonyops/zukan/internal/zukan"
	"github.com/colonyops/zukan/pkg/profiler"
)

type TuiCmd struct {
	flags *Flags
	app   *zukan.App

	quiz bool
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *zukan.App) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		app:   app,
	}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof HTTP endpoint on 127.0.0.1 at the given port (e.g., 6060)",
			Sources:     cli.EnvVars("ZUKAN_PROFILER_PORT"),
			Destination: &cmd.flags.ProfilerPort,
		},
	}
}

// Register adds the browse command, which opens the TUI on one collection.
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "browse",
		Usage:     "Open a collection in the TUI",
		UsageText: "zukan browse <collection-id> [--quiz]",
		Description: `Opens the detail view of one collection, skipping the collection list.

With --quiz entry names are masked until revealed.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "quiz",
				Aliases:     []string{"q"},
				Usage:       "start in quiz mode",
				Destination: &cmd.quiz,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := collectionIDArg(c)
			if err != nil {
				return err
			}
			return cmd.run(ctx, tui.Opts{CollectionID: id, Mode: quiz.ModeFromFlag(cmd.quiz)})
		},
	})

	return app
}

// Run executes the TUI at the collection list. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, _ *cli.Command) error {
	return cmd.run(ctx, tui.Opts{})
}

func (cmd *TuiCmd) run(ctx context.Context, opts tui.Opts) error {
	deps := cmd.deps()

	if cmd.flags.ProfilerPort > 0 {
		profServer := profiler.New(cmd.flags.ProfilerPort, logging.Component("profiler"))
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		log.Info().
			Str("url", fmt.Sprintf("http://%s/debug/pprof/", profServer.Addr())).
			Msg("profiler endpoint available")
	}

	log.Info().
		Str("api", cmd.app.API.BaseURL()).
		Int64("collection", opts.CollectionID).
		Stringer("mode", opts.Mode).
		Msg("starting tui")

	p := tea.NewProgram(tui.New(ctx, deps, opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func (cmd *TuiCmd) deps() tui.Deps {
	return tui.Deps{
		Config:      cmd.app.Config,
		Coordinator: cmd.app.Coordinator,
		Catalog:     cmd.app.API,
		Build:       cmd.app.Build,
		Log:         logging.Component("tui"),
	}
}
