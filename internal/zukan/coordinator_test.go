package zukan

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/zukan/internal/core/forms"
	"github.com/colonyops/zukan/internal/core/quiz"
	"github.com/colonyops/zukan/internal/data/api"
)

const base = "http://zukan.test/api"

const dogsJSON = `{
	"id": 1, "name": "Dogs", "thumbnail": null, "categories": [],
	"entries": [
		{"id": 10, "collectionId": 1, "name": "Shiba", "categoryId": null, "description": "",
		 "images": [{"id": 100, "entryId": 10, "fileRef": "a.png"}]}
	]
}`

func newHTTPCoordinator(t *testing.T) *Coordinator {
	t.Helper()
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)

	client, err := api.New(base, time.Second, zerolog.Nop())
	require.NoError(t, err)
	return NewCoordinator(client, zerolog.Nop())
}

func TestCoordinator_HTTP_AddEntryRefetches(t *testing.T) {
	c := newHTTPCoordinator(t)

	var body map[string]any
	httpmock.RegisterResponder(http.MethodPost, base+"/entries", func(req *http.Request) (*http.Response, error) {
		bits, _ := io.ReadAll(req.Body)
		_ = json.Unmarshal(bits, &body)
		return httpmock.NewStringResponse(http.StatusCreated, `{"id": 11}`), nil
	})
	httpmock.RegisterResponder(http.MethodGet, base+"/collections/1",
		httpmock.NewStringResponder(http.StatusOK, dogsJSON))

	s := NewSession(quiz.ModeBrowse, nil)
	require.True(t, s.Apply(c.Load(ctx, s.Open(1))))

	cat := int64(3)
	r, err := c.AddEntry(ctx, s.Begin(), s.Collection(), forms.EntryBuffer{Name: "Corgi", CategoryID: &cat})
	require.NoError(t, err)
	require.NoError(t, r.Err)
	assert.Equal(t, KeepPosition, r.Policy)

	assert.Equal(t, "Corgi", body["name"])
	assert.Nil(t, body["categoryId"], "collection without categories sends null")
	assert.Equal(t, float64(1), body["collectionId"])

	info := httpmock.GetCallCountInfo()
	assert.Equal(t, 1, info["POST "+base+"/entries"])
	assert.Equal(t, 2, info["GET "+base+"/collections/1"])
}

func TestCoordinator_HTTP_MutationErrorSkipsRefetch(t *testing.T) {
	c := newHTTPCoordinator(t)

	httpmock.RegisterResponder(http.MethodGet, base+"/collections/1",
		httpmock.NewStringResponder(http.StatusOK, dogsJSON))
	httpmock.RegisterResponder(http.MethodDelete, base+"/images/100",
		httpmock.NewStringResponder(http.StatusInternalServerError, "disk full"))

	s := NewSession(quiz.ModeBrowse, nil)
	require.True(t, s.Apply(c.Load(ctx, s.Open(1))))

	_, err := c.DeleteImage(ctx, s.Begin(), 100)
	var se *api.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)

	assert.Equal(t, 1, httpmock.GetCallCountInfo()["GET "+base+"/collections/1"])
	assert.Len(t, s.Entry().Images, 1)
}

func TestCoordinator_HTTP_EmptyCollection(t *testing.T) {
	c := newHTTPCoordinator(t)

	httpmock.RegisterResponder(http.MethodGet, base+"/collections/4",
		httpmock.NewStringResponder(http.StatusOK, `{"id": 4, "name": "Empty", "thumbnail": null, "categories": [], "entries": []}`))

	s := NewSession(quiz.ModeQuiz, nil)
	require.True(t, s.Apply(c.Load(ctx, s.Open(4))))

	assert.True(t, s.Entry().IsPlaceholder())
	assert.False(t, s.Affordances().Hint)
	assert.Equal(t, Affordances{}, s.Affordances())
}

func TestCoordinator_HTTP_LoadNotFound(t *testing.T) {
	c := newHTTPCoordinator(t)

	httpmock.RegisterResponder(http.MethodGet, base+"/collections/9",
		httpmock.NewStringResponder(http.StatusNotFound, ""))

	s := NewSession(quiz.ModeBrowse, nil)
	r := c.Load(ctx, s.Open(9))
	require.Error(t, r.Err)
	assert.True(t, api.IsNotFound(r.Err))
	assert.False(t, s.Apply(r))
	assert.False(t, s.Loaded())
}
