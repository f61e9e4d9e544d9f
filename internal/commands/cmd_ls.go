package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/zukan/internal/printer"
	"github.com/colonyops/zukan/internal/zukan"
	"github.com/colonyops/zukan/pkg/iojson"
)

type LsCmd struct {
	flags *Flags
	app   *zukan.App

	// flags
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags, app *zukan.App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List all collections",
		UsageText: "zukan ls [--json]",
		Description: `Displays a table of every collection with its id and thumbnail.

Output is JSON lines when --json is set or stdout is not a terminal.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// collectionInfo is the JSON output format for zukan ls --json.
type collectionInfo struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	cols, err := cmd.app.API.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}

	out := c.Root().Writer

	if wantJSON(cmd.jsonOutput, out) {
		for _, col := range cols {
			info := collectionInfo{ID: col.ID, Name: col.Name}
			if col.Thumbnail != nil {
				info.Thumbnail = cmd.app.API.ResolveRef(*col.Thumbnail)
			}
			if err := iojson.WriteLine(out, info); err != nil {
				return fmt.Errorf("encode collection: %w", err)
			}
		}
		return nil
	}

	if len(cols) == 0 {
		printer.Ctx(ctx).Infof("No collections found. Create one with 'zukan collection add'.")
		return nil
	}

	rows := make([][]string, 0, len(cols))
	for _, col := range cols {
		thumb := "-"
		if col.Thumbnail != nil {
			thumb = cmd.app.API.ResolveRef(*col.Thumbnail)
		}
		rows = append(rows, []string{strconv.FormatInt(col.ID, 10), col.Name, thumb})
	}

	_, err = fmt.Fprintln(out, renderTable(
		[]string{"ID", "NAME", "THUMBNAIL"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft},
	))
	return err
}
