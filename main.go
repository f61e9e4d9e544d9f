package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/zukan/internal/commands"
	"github.com/colonyops/zukan/internal/core/config"
	"github.com/colonyops/zukan/internal/core/styles"
	"github.com/colonyops/zukan/internal/printer"
	"github.com/colonyops/zukan/internal/zukan"
	"github.com/colonyops/zukan/pkg/logutils"
	"github.com/colonyops/zukan/pkg/utils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() falls back
	// to runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func buildInfo() zukan.BuildInfo {
	b := zukan.BuildInfo{Version: version, Commit: commit, Date: date}

	// ldflags aren't set by `go install`, so read the module version and VCS
	// metadata Go records in the binary.
	if b.Version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				b.Version = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					b.Commit = s.Value
				case "vcs.time":
					b.Date = s.Value
				}
			}
		}
	}

	if len(b.Commit) > 7 {
		b.Commit = b.Commit[:7]
	}
	return b
}

func build() string {
	b := buildInfo()
	return fmt.Sprintf("%s (%s) %s", b.Version, b.Commit, b.Date)
}

func main() {
	ctx := context.Background()

	var (
		logCloser  func()
		logPending *utils.DeferredWriter
		zukanApp   = &zukan.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "zukan",
		Usage:     "Browse and quiz yourself on picture-book collections",
		UsageText: "zukan [global options] command [command options]",
		Description: `zukan is a terminal client for a picture-book service. Collections hold
entries, and every entry has a name, a category, a description and images.

Run 'zukan' with no arguments to open the collection list.
Run 'zukan browse <id> --quiz' to quiz yourself on one collection.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("ZUKAN_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (empty logs to stderr after exit)",
				Sources:     cli.EnvVars("ZUKAN_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("ZUKAN_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "api-url",
				Usage:       "base URL of the picture-book service (overrides api.base_url)",
				Sources:     cli.EnvVars("ZUKAN_API_URL"),
				Destination: &flags.APIURL,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Without a log file, logs are held back until exit so they
			// don't draw over the TUI.
			var (
				logger zerolog.Logger
				err    error
			)
			if flags.LogFile == "" {
				logPending = &utils.DeferredWriter{}
				logger, err = logutils.NewWriter(flags.LogLevel, logPending)
			} else {
				logger, logCloser, err = logutils.New(flags.LogLevel, flags.LogFile)
			}
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			if flags.APIURL != "" {
				cfg.API.BaseURL = flags.APIURL
				if err := cfg.Validate(); err != nil {
					return ctx, fmt.Errorf("invalid --api-url: %w", err)
				}
			}
			flags.Config = cfg

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.TUI.Theme)
			styles.SetTheme(palette)

			a, err := zukan.NewApp(cfg, buildInfo())
			if err != nil {
				return ctx, err
			}

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*zukanApp = *a

			log.Debug().
				Str("config", flags.ConfigPath).
				Str("api", cfg.API.BaseURL).
				Msg("zukan initialized")

			return printer.NewContext(ctx, printer.New(c.Root().Writer)), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			if logPending != nil {
				return logPending.Flush(os.Stderr)
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, zukanApp)

	app = tuiCmd.Register(app)
	app = commands.NewLsCmd(flags, zukanApp).Register(app)
	app = commands.NewShowCmd(flags, zukanApp).Register(app)
	app = commands.NewCollectionCmd(flags, zukanApp).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)

	// Register TUI flags on root command
	app.Flags = append(app.Flags, tuiCmd.Flags()...)

	// Open the collection list when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'zukan --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
