package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/zukan/internal/core/catalog"
	"github.com/colonyops/zukan/internal/printer"
	"github.com/colonyops/zukan/internal/zukan"
	"github.com/colonyops/zukan/pkg/iojson"
)

type ShowCmd struct {
	flags *Flags
	app   *zukan.App

	jsonOutput bool
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags, app *zukan.App) *ShowCmd {
	return &ShowCmd{flags: flags, app: app}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Show the entries of a collection",
		UsageText: "zukan show <collection-id> [--json]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output the collection as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// entryInfo is one entry in zukan show --json.
type entryInfo struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images"`
}

type collectionDetail struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Categories []string    `json:"categories"`
	Entries    []entryInfo `json:"entries"`
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	id, err := collectionIDArg(c)
	if err != nil {
		return err
	}

	col, err := cmd.app.API.GetCollection(ctx, id)
	if err != nil {
		return fmt.Errorf("load collection %d: %w", id, err)
	}

	detail := cmd.detail(col)
	out := c.Root().Writer

	if wantJSON(cmd.jsonOutput, out) {
		return iojson.WriteWith(out, c.Root().ErrWriter, detail)
	}

	p := printer.Ctx(ctx)
	p.Section(fmt.Sprintf("%s (#%d)", detail.Name, detail.ID))
	if len(detail.Entries) == 0 {
		p.Infof("No entries yet")
		return nil
	}

	rows := make([][]string, 0, len(detail.Entries))
	for _, e := range detail.Entries {
		category := e.Category
		if category == "" {
			category = "-"
		}
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			e.Name,
			category,
			strconv.Itoa(len(e.Images)),
		})
	}

	_, err = fmt.Fprintln(out, renderTable(
		[]string{"ID", "NAME", "CATEGORY", "IMAGES"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
	))
	return err
}

func (cmd *ShowCmd) detail(col catalog.Collection) collectionDetail {
	d := collectionDetail{
		ID:         col.ID,
		Name:       col.Name,
		Categories: make([]string, 0, len(col.Categories)),
		Entries:    make([]entryInfo, 0, len(col.Entries)),
	}
	for _, cat := range col.Categories {
		d.Categories = append(d.Categories, cat.Name)
	}

	for _, e := range col.Entries {
		info := entryInfo{
			ID:          e.ID,
			Name:        e.Name,
			Category:    col.CategoryName(e.CategoryID),
			Description: e.Description,
			Images:      make([]string, 0, len(e.Images)),
		}
		for _, img := range e.Images {
			info.Images = append(info.Images, cmd.app.API.ResolveRef(img.FileRef))
		}
		d.Entries = append(d.Entries, info)
	}
	return d
}

// collectionIDArg parses the first positional argument as a collection id.
func collectionIDArg(c *cli.Command) (int64, error) {
	raw := c.Args().First()
	if raw == "" {
		return 0, fmt.Errorf("missing collection id. Usage: %s", c.UsageText)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid collection id %q", raw)
	}
	return id, nil
}
