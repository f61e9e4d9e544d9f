package zukan

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"

	"github.com/colonyops/zukan/internal/core/catalog"
	"github.com/colonyops/zukan/internal/core/forms"
	"github.com/colonyops/zukan/internal/core/logging"
	"github.com/colonyops/zukan/internal/core/validate"
	"github.com/colonyops/zukan/internal/data/api"
)

// ErrValidation is wrapped around the field errors of a rejected mutation.
var ErrValidation = errors.New("validation failed")

// API is the subset of the REST client the coordinator needs.
type API interface {
	GetCollection(ctx context.Context, id int64) (catalog.Collection, error)
	CreateEntry(ctx context.Context, in api.EntryInput) error
	UpdateEntry(ctx context.Context, id int64, in api.EntryInput) error
	DeleteEntry(ctx context.Context, id int64) error
	CreateImage(ctx context.Context, entryID int64, f catalog.File) error
	ReplaceImage(ctx context.Context, id, entryID int64, f catalog.File) error
	DeleteImage(ctx context.Context, id int64) error
}

// Reposition tells the session how to move the cursor after a refresh.
type Reposition int

const (
	// KeepPosition keeps both indices, clamped to the new collection.
	KeepPosition Reposition = iota
	// ResetPosition moves to the first image of the first entry.
	ResetPosition
	// ResetImage keeps the entry and moves to its first image.
	ResetImage
)

func (r Reposition) String() string {
	switch r {
	case ResetPosition:
		return "reset"
	case ResetImage:
		return "reset-image"
	default:
		return "keep"
	}
}

// Refresh is the outcome of a fetch. Err is set when the fetch failed, in
// which case Collection is empty and must not be applied.
type Refresh struct {
	Ticket     Ticket
	Collection catalog.Collection
	Policy     Reposition
	Err        error
}

// Coordinator validates and performs mutations, then refetches the collection.
// Every successful mutation is followed by a full authoritative fetch.
type Coordinator struct {
	api API
	log zerolog.Logger
}

// NewCoordinator creates a coordinator over client.
func NewCoordinator(client API, log zerolog.Logger) *Coordinator {
	return &Coordinator{
		api: client,
		log: log.With().Str("component", "coordinator").Logger(),
	}
}

// Load fetches the collection for t. Initial and manual loads start at the
// first entry.
func (c *Coordinator) Load(ctx context.Context, t Ticket) Refresh {
	return c.fetch(ctx, t, ResetPosition)
}

// AddEntry creates an entry in col from buf.
func (c *Coordinator) AddEntry(ctx context.Context, t Ticket, col catalog.Collection, buf forms.EntryBuffer) (Refresh, error) {
	in, err := entryInput(col, buf)
	if err != nil {
		return Refresh{}, err
	}
	if err := checkFields(validate.RecordIDField("collection_id", col.ID)); err != nil {
		return Refresh{}, err
	}

	if err := c.api.CreateEntry(ctx, in); err != nil {
		return Refresh{}, fmt.Errorf("add entry: %w", err)
	}
	return c.fetch(ctx, t, KeepPosition), nil
}

// UpdateEntry overwrites entry entryID of col with buf.
func (c *Coordinator) UpdateEntry(ctx context.Context, t Ticket, entryID int64, col catalog.Collection, buf forms.EntryBuffer) (Refresh, error) {
	in, err := entryInput(col, buf)
	if err != nil {
		return Refresh{}, err
	}
	if err := checkFields(validate.RecordIDField("entry_id", entryID)); err != nil {
		return Refresh{}, err
	}

	if err := c.api.UpdateEntry(ctx, entryID, in); err != nil {
		return Refresh{}, fmt.Errorf("update entry %d: %w", entryID, err)
	}
	return c.fetch(ctx, t, KeepPosition), nil
}

// DeleteEntry removes entryID.
func (c *Coordinator) DeleteEntry(ctx context.Context, t Ticket, entryID int64) (Refresh, error) {
	if err := checkFields(validate.RecordIDField("entry_id", entryID)); err != nil {
		return Refresh{}, err
	}

	if err := c.api.DeleteEntry(ctx, entryID); err != nil {
		return Refresh{}, fmt.Errorf("delete entry %d: %w", entryID, err)
	}
	return c.fetch(ctx, t, ResetPosition), nil
}

// AddImage uploads f as a new image of entryID.
func (c *Coordinator) AddImage(ctx context.Context, t Ticket, entryID int64, f *catalog.File) (Refresh, error) {
	if err := checkFields(
		validate.RecordIDField("entry_id", entryID),
		fileField(f),
	); err != nil {
		return Refresh{}, err
	}

	if err := c.api.CreateImage(ctx, entryID, *f); err != nil {
		return Refresh{}, fmt.Errorf("add image: %w", err)
	}
	return c.fetch(ctx, t, KeepPosition), nil
}

// UpdateImage replaces the file behind imageID.
func (c *Coordinator) UpdateImage(ctx context.Context, t Ticket, imageID, entryID int64, f *catalog.File) (Refresh, error) {
	if err := checkFields(
		validate.RecordIDField("image_id", imageID),
		validate.RecordIDField("entry_id", entryID),
		fileField(f),
	); err != nil {
		return Refresh{}, err
	}

	if err := c.api.ReplaceImage(ctx, imageID, entryID, *f); err != nil {
		return Refresh{}, fmt.Errorf("update image %d: %w", imageID, err)
	}
	return c.fetch(ctx, t, KeepPosition), nil
}

// DeleteImage removes imageID.
func (c *Coordinator) DeleteImage(ctx context.Context, t Ticket, imageID int64) (Refresh, error) {
	if err := checkFields(validate.RecordIDField("image_id", imageID)); err != nil {
		return Refresh{}, err
	}

	if err := c.api.DeleteImage(ctx, imageID); err != nil {
		return Refresh{}, fmt.Errorf("delete image %d: %w", imageID, err)
	}
	return c.fetch(ctx, t, ResetImage), nil
}

func (c *Coordinator) fetch(ctx context.Context, t Ticket, policy Reposition) Refresh {
	ctx = logging.WithCollectionID(ctx, t.CollectionID)

	col, err := c.api.GetCollection(ctx, t.CollectionID)
	if err != nil {
		c.log.Error().Ctx(ctx).Err(err).Str("policy", policy.String()).Msg("refetch failed")
		return Refresh{Ticket: t, Policy: policy, Err: fmt.Errorf("load collection %d: %w", t.CollectionID, err)}
	}

	c.log.Debug().Ctx(ctx).Int("entries", len(col.Entries)).Str("policy", policy.String()).Msg("collection fetched")
	return Refresh{Ticket: t, Collection: col, Policy: policy}
}

// entryInput validates buf and builds the request body. The category is
// dropped when col has no categories.
func entryInput(col catalog.Collection, buf forms.EntryBuffer) (api.EntryInput, error) {
	var category *int64
	var errs criterio.FieldErrorsBuilder

	if err := validate.Name(buf.Name); err != nil {
		errs = errs.Append("name", err)
	}

	if col.HasCategories() && buf.CategoryID != nil {
		if col.CategoryName(buf.CategoryID) == "" {
			errs = errs.Append("category_id", fmt.Errorf("unknown category %d", *buf.CategoryID))
		} else {
			id := *buf.CategoryID
			category = &id
		}
	}

	if err := checkFields(errs.ToError()); err != nil {
		return api.EntryInput{}, err
	}

	return api.EntryInput{
		CollectionID: col.ID,
		Name:         buf.Name,
		CategoryID:   category,
		Description:  buf.Description,
	}, nil
}

func fileField(f *catalog.File) error {
	if f == nil || len(f.Data) == 0 {
		return criterio.NewFieldErrors("image", catalog.ErrNoFile)
	}
	return nil
}

// checkFields merges field errors and wraps them with ErrValidation.
func checkFields(errs ...error) error {
	if err := criterio.ValidateStruct(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
