package zukan

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/zukan/internal/core/catalog"
	"github.com/colonyops/zukan/internal/core/quiz"
	"github.com/colonyops/zukan/internal/data/api"
)

var errBoom = errors.New("boom")

// firstSource always picks the first hidden position.
type firstSource struct{}

func (firstSource) IntN(int) int { return 0 }

// memAPI is an in-memory REST service holding a single collection.
type memAPI struct {
	col       catalog.Collection
	nextID    int64
	mutateErr error
	fetchErr  error
	fetches   int
	lastEntry api.EntryInput
}

func newMemAPI(col catalog.Collection) *memAPI {
	return &memAPI{col: clone(col), nextID: 1000}
}

func (m *memAPI) GetCollection(_ context.Context, id int64) (catalog.Collection, error) {
	m.fetches++
	if m.fetchErr != nil {
		return catalog.Collection{}, m.fetchErr
	}
	if id != m.col.ID {
		return catalog.Collection{}, &api.StatusError{Method: "GET", StatusCode: 404}
	}
	return clone(m.col), nil
}

func (m *memAPI) CreateEntry(_ context.Context, in api.EntryInput) error {
	if m.mutateErr != nil {
		return m.mutateErr
	}
	m.lastEntry = in
	m.nextID++
	m.col.Entries = append(m.col.Entries, catalog.Entry{
		ID: m.nextID, CollectionID: in.CollectionID, Name: in.Name, CategoryID: in.CategoryID, Description: in.Description,
	})
	return nil
}

func (m *memAPI) UpdateEntry(_ context.Context, id int64, in api.EntryInput) error {
	if m.mutateErr != nil {
		return m.mutateErr
	}
	m.lastEntry = in
	i := m.entryIndex(id)
	m.col.Entries[i].Name = in.Name
	m.col.Entries[i].CategoryID = in.CategoryID
	m.col.Entries[i].Description = in.Description
	return nil
}

func (m *memAPI) DeleteEntry(_ context.Context, id int64) error {
	if m.mutateErr != nil {
		return m.mutateErr
	}
	m.col.Entries = slices.Delete(m.col.Entries, m.entryIndex(id), m.entryIndex(id)+1)
	return nil
}

func (m *memAPI) CreateImage(_ context.Context, entryID int64, f catalog.File) error {
	if m.mutateErr != nil {
		return m.mutateErr
	}
	m.nextID++
	i := m.entryIndex(entryID)
	m.col.Entries[i].Images = append(m.col.Entries[i].Images, catalog.Image{ID: m.nextID, EntryID: entryID, FileRef: f.Name})
	return nil
}

func (m *memAPI) ReplaceImage(_ context.Context, id, entryID int64, f catalog.File) error {
	if m.mutateErr != nil {
		return m.mutateErr
	}
	e := &m.col.Entries[m.entryIndex(entryID)]
	for j := range e.Images {
		if e.Images[j].ID == id {
			e.Images[j].FileRef = f.Name
		}
	}
	return nil
}

func (m *memAPI) DeleteImage(_ context.Context, id int64) error {
	if m.mutateErr != nil {
		return m.mutateErr
	}
	for i := range m.col.Entries {
		m.col.Entries[i].Images = slices.DeleteFunc(m.col.Entries[i].Images, func(img catalog.Image) bool {
			return img.ID == id
		})
	}
	return nil
}

func (m *memAPI) entryIndex(id int64) int {
	return slices.IndexFunc(m.col.Entries, func(e catalog.Entry) bool { return e.ID == id })
}

func clone(col catalog.Collection) catalog.Collection {
	out := col
	out.Categories = slices.Clone(col.Categories)
	out.Entries = make([]catalog.Entry, len(col.Entries))
	for i, e := range col.Entries {
		e.Images = slices.Clone(e.Images)
		out.Entries[i] = e
	}
	return out
}

// dogs is {Shiba[100,101], Akita[110,111,112], Pug[]}.
func dogs() catalog.Collection {
	return catalog.Collection{
		ID:   1,
		Name: "Dogs",
		Entries: []catalog.Entry{
			{ID: 10, CollectionID: 1, Name: "Shiba", Images: []catalog.Image{
				{ID: 100, EntryID: 10, FileRef: "a.png"},
				{ID: 101, EntryID: 10, FileRef: "b.png"},
			}},
			{ID: 11, CollectionID: 1, Name: "Akita", Images: []catalog.Image{
				{ID: 110, EntryID: 11, FileRef: "c.png"},
				{ID: 111, EntryID: 11, FileRef: "d.png"},
				{ID: 112, EntryID: 11, FileRef: "e.png"},
			}},
			{ID: 12, CollectionID: 1, Name: "Pug"},
		},
	}
}

func openSession(t *testing.T, mode quiz.Mode, m *memAPI) (*Session, *Coordinator) {
	t.Helper()
	s := NewSession(mode, firstSource{})
	c := NewCoordinator(m, zerolog.Nop())
	tk := s.Open(m.col.ID)
	require.True(t, s.Apply(c.Load(context.Background(), tk)))
	return s, c
}

var pngFile = catalog.File{Name: "new.png", ContentType: "image/png", Data: []byte("\x89PNG\r\n\x1a\n")}
