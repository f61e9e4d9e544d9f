package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/zukan/internal/core/catalog"
	"github.com/colonyops/zukan/internal/core/styles"
	"github.com/colonyops/zukan/internal/core/validate"
	"github.com/colonyops/zukan/internal/printer"
	"github.com/colonyops/zukan/internal/zukan"
)

type CollectionCmd struct {
	flags *Flags
	app   *zukan.App

	name string

	// askName prompts for a collection name. Replaced in tests.
	askName func(title, current string) (string, error)
}

// NewCollectionCmd creates the collection command group
func NewCollectionCmd(flags *Flags, app *zukan.App) *CollectionCmd {
	return &CollectionCmd{flags: flags, app: app, askName: nameForm}
}

// Register adds the collection commands to the application
func (cmd *CollectionCmd) Register(app *cli.Command) *cli.Command {
	nameFlag := func() cli.Flag {
		return &cli.StringFlag{
			Name:        "name",
			Aliases:     []string{"n"},
			Usage:       "collection name (prompted when omitted)",
			Destination: &cmd.name,
		}
	}

	app.Commands = append(app.Commands, &cli.Command{
		Name:    "collection",
		Aliases: []string{"col"},
		Usage:   "Create and edit collections",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Create a collection",
				UsageText: "zukan collection add [--name NAME]",
				Flags:     []cli.Flag{nameFlag()},
				Action:    cmd.runAdd,
			},
			{
				Name:      "rename",
				Usage:     "Rename a collection",
				UsageText: "zukan collection rename <collection-id> [--name NAME]",
				Flags:     []cli.Flag{nameFlag()},
				Action:    cmd.runRename,
			},
			{
				Name:      "thumbnail",
				Usage:     "Set the thumbnail image of a collection",
				UsageText: "zukan collection thumbnail <collection-id> <file>",
				Description: `Uploads a local image as the collection thumbnail. The file must match
images.patterns and be no larger than images.max_bytes.`,
				Action: cmd.runThumbnail,
			},
		},
	})

	return app
}

func (cmd *CollectionCmd) runAdd(ctx context.Context, _ *cli.Command) error {
	name, err := cmd.resolveName("Collection name", "")
	if err != nil || name == "" {
		return err
	}

	summary, err := cmd.app.API.CreateCollection(ctx, name)
	if err != nil {
		return fmt.Errorf("create collection: %w", err)
	}

	printer.Ctx(ctx).Successf("Created collection %q (#%d)", summary.Name, summary.ID)
	return nil
}

func (cmd *CollectionCmd) runRename(ctx context.Context, c *cli.Command) error {
	id, err := collectionIDArg(c)
	if err != nil {
		return err
	}

	current := ""
	if cmd.name == "" {
		col, err := cmd.app.API.GetCollection(ctx, id)
		if err != nil {
			return fmt.Errorf("load collection %d: %w", id, err)
		}
		current = col.Name
	}

	name, err := cmd.resolveName("New name", current)
	if err != nil || name == "" {
		return err
	}

	if err := cmd.app.API.RenameCollection(ctx, id, name); err != nil {
		return fmt.Errorf("rename collection %d: %w", id, err)
	}

	printer.Ctx(ctx).Successf("Renamed collection #%d to %q", id, name)
	return nil
}

func (cmd *CollectionCmd) runThumbnail(ctx context.Context, c *cli.Command) error {
	id, err := collectionIDArg(c)
	if err != nil {
		return err
	}

	path := c.Args().Get(1)
	if path == "" {
		return fmt.Errorf("missing file. Usage: %s", c.UsageText)
	}

	f, err := catalog.LoadFile(path, cmd.app.Config.Images.Rules())
	if err != nil {
		return err
	}

	if err := cmd.app.API.SetThumbnail(ctx, id, f); err != nil {
		return fmt.Errorf("set thumbnail of collection %d: %w", id, err)
	}

	printer.Ctx(ctx).Successf("Set thumbnail of collection #%d to %s (%d bytes)", id, f.Name, len(f.Data))
	return nil
}

// resolveName returns the --name flag or asks for one. An aborted prompt
// yields "" and no error.
func (cmd *CollectionCmd) resolveName(title, current string) (string, error) {
	name := strings.TrimSpace(cmd.name)
	if name != "" {
		return name, nil
	}
	if cmd.name != "" {
		return "", validate.NameField("name", cmd.name)
	}

	name, err := cmd.askName(title, current)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", nil
		}
		return "", fmt.Errorf("form: %w", err)
	}
	return strings.TrimSpace(name), nil
}

func nameForm(title, current string) (string, error) {
	name := current
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Validate(validate.Name).
				Value(&name),
		),
	).WithTheme(styles.FormTheme()).Run()
	return name, err
}
