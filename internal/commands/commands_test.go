package commands

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/ansi"
	"github.com/hay-kot/criterio"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/zukan/internal/core/config"
	"github.com/colonyops/zukan/internal/printer"
	"github.com/colonyops/zukan/internal/zukan"
)

const testBase = "http://zukan.test/api"

const dogsJSON = `{
	"id": 3,
	"name": "Dogs",
	"thumbnail": null,
	"categories": [{"id": 1, "name": "Small"}],
	"entries": [
		{"id": 10, "collectionId": 3, "name": "Shiba", "categoryId": 1, "description": "fox-like",
		 "images": [{"id": 100, "entryId": 10, "fileRef": "/media/shiba.png"}]},
		{"id": 11, "collectionId": 3, "name": "Akita", "categoryId": null, "description": "", "images": []}
	]
}`

type harness struct {
	flags *Flags
	app   *zukan.App
	out   bytes.Buffer
	err   bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)

	cfg := config.DefaultConfig()
	cfg.API.BaseURL = testBase

	app, err := zukan.NewApp(&cfg, zukan.BuildInfo{Version: "test"})
	require.NoError(t, err)

	return &harness{flags: &Flags{Config: &cfg}, app: app}
}

// run executes args against a root command with only reg registered.
func (h *harness) run(t *testing.T, reg func(*cli.Command) *cli.Command, args ...string) error {
	t.Helper()
	root := reg(&cli.Command{
		Name:      "zukan",
		Writer:    &h.out,
		ErrWriter: &h.err,
	})
	ctx := printer.NewContext(context.Background(), printer.New(&h.out))
	return root.Run(ctx, append([]string{"zukan"}, args...))
}

func (h *harness) output() string {
	return ansi.Strip(h.out.String())
}

func withTerminal(t *testing.T, tty bool) {
	t.Helper()
	prev := isTerminal
	isTerminal = func(io.Writer) bool { return tty }
	t.Cleanup(func() { isTerminal = prev })
}

func TestLs_JSON(t *testing.T) {
	h := newHarness(t)
	httpmock.RegisterResponder(http.MethodGet, testBase+"/collections",
		httpmock.NewStringResponder(http.StatusOK, `[{"id":3,"name":"Dogs","thumbnail":"/media/dogs.png"},{"id":4,"name":"Cats","thumbnail":null}]`))

	err := h.run(t, NewLsCmd(h.flags, h.app).Register, "ls", "--json")
	require.NoError(t, err)

	assert.Equal(t,
		`{"id":3,"name":"Dogs","thumbnail":"http://zukan.test/media/dogs.png"}`+"\n"+
			`{"id":4,"name":"Cats"}`+"\n",
		h.out.String())
}

func TestLs_PipedOutputIsJSON(t *testing.T) {
	h := newHarness(t)
	withTerminal(t, false)
	httpmock.RegisterResponder(http.MethodGet, testBase+"/collections",
		httpmock.NewStringResponder(http.StatusOK, `[{"id":3,"name":"Dogs","thumbnail":null}]`))

	require.NoError(t, h.run(t, NewLsCmd(h.flags, h.app).Register, "ls"))
	assert.Equal(t, `{"id":3,"name":"Dogs"}`+"\n", h.out.String())
}

func TestLs_Table(t *testing.T) {
	h := newHarness(t)
	withTerminal(t, true)
	httpmock.RegisterResponder(http.MethodGet, testBase+"/collections",
		httpmock.NewStringResponder(http.StatusOK, `[{"id":3,"name":"Dogs","thumbnail":null}]`))

	require.NoError(t, h.run(t, NewLsCmd(h.flags, h.app).Register, "ls"))

	out := h.output()
	assert.Contains(t, out, "THUMBNAIL")
	assert.Contains(t, out, "Dogs")
	assert.Contains(t, out, "╭")
}

func TestLs_EmptyTable(t *testing.T) {
	h := newHarness(t)
	withTerminal(t, true)
	httpmock.RegisterResponder(http.MethodGet, testBase+"/collections",
		httpmock.NewStringResponder(http.StatusOK, `[]`))

	require.NoError(t, h.run(t, NewLsCmd(h.flags, h.app).Register, "ls"))
	assert.Contains(t, h.output(), "No collections found")
}

func TestLs_ServiceError(t *testing.T) {
	h := newHarness(t)
	httpmock.RegisterResponder(http.MethodGet, testBase+"/collections",
		httpmock.NewStringResponder(http.StatusInternalServerError, ""))

	err := h.run(t, NewLsCmd(h.flags, h.app).Register, "ls")
	require.ErrorContains(t, err, "list collections")
}

func TestShow_JSON(t *testing.T) {
	h := newHarness(t)
	httpmock.RegisterResponder(http.MethodGet, testBase+"/collections/3",
		httpmock.NewStringResponder(http.StatusOK, dogsJSON))

	require.NoError(t, h.run(t, NewShowCmd(h.flags, h.app).Register, "show", "--json", "3"))

	out := h.out.String()
	assert.Contains(t, out, `"name": "Dogs"`)
	assert.Contains(t, out, `"category": "Small"`)
	assert.Contains(t, out, `"http://zukan.test/media/shiba.png"`)
	assert.Contains(t, out, `"images": []`)
}

func TestShow_Table(t *testing.T) {
	h := newHarness(t)
	withTerminal(t, true)
	httpmock.RegisterResponder(http.MethodGet, testBase+"/collections/3",
		httpmock.NewStringResponder(http.StatusOK, dogsJSON))

	require.NoError(t, h.run(t, NewShowCmd(h.flags, h.app).Register, "show", "3"))

	out := h.output()
	assert.Contains(t, out, "Dogs (#3)")
	assert.Contains(t, out, "Shiba")
	assert.Contains(t, out, "Akita")
	assert.Contains(t, out, "CATEGORY")
}

func TestShow_BadID(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing", []string{"show"}, "missing collection id"},
		{"not a number", []string{"show", "dogs"}, `invalid collection id "dogs"`},
		{"zero", []string{"show", "0"}, `invalid collection id "0"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			err := h.run(t, NewShowCmd(h.flags, h.app).Register, tt.args...)
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestShow_NotFound(t *testing.T) {
	h := newHarness(t)
	httpmock.RegisterResponder(http.MethodGet, testBase+"/collections/9",
		httpmock.NewStringResponder(http.StatusNotFound, `{"detail":"not found"}`))

	err := h.run(t, NewShowCmd(h.flags, h.app).Register, "show", "9")
	require.ErrorContains(t, err, "load collection 9")
}

func TestCollectionAdd_WithFlag(t *testing.T) {
	h := newHarness(t)
	var body string
	httpmock.RegisterResponder(http.MethodPost, testBase+"/collections",
		func(req *http.Request) (*http.Response, error) {
			b, _ := io.ReadAll(req.Body)
			body = string(b)
			return httpmock.NewStringResponse(http.StatusCreated, `{"id":7,"name":"Birds","thumbnail":null}`), nil
		})

	cmd := NewCollectionCmd(h.flags, h.app)
	cmd.askName = func(string, string) (string, error) {
		t.Fatal("prompted although --name was set")
		return "", nil
	}

	require.NoError(t, h.run(t, cmd.Register, "collection", "add", "--name", "  Birds "))
	assert.JSONEq(t, `{"name":"Birds"}`, body)
	assert.Contains(t, h.output(), `Created collection "Birds" (#7)`)
}

func TestCollectionAdd_Prompted(t *testing.T) {
	h := newHarness(t)
	httpmock.RegisterResponder(http.MethodPost, testBase+"/collections",
		httpmock.NewStringResponder(http.StatusCreated, `{"id":8,"name":"Fish","thumbnail":null}`))

	cmd := NewCollectionCmd(h.flags, h.app)
	cmd.askName = func(title, current string) (string, error) {
		assert.Equal(t, "Collection name", title)
		assert.Empty(t, current)
		return "Fish", nil
	}

	require.NoError(t, h.run(t, cmd.Register, "collection", "add"))
	assert.Contains(t, h.output(), `Created collection "Fish" (#8)`)
}

func TestCollectionAdd_AbortedPrompt(t *testing.T) {
	h := newHarness(t)

	cmd := NewCollectionCmd(h.flags, h.app)
	cmd.askName = func(string, string) (string, error) { return "", huh.ErrUserAborted }

	require.NoError(t, h.run(t, cmd.Register, "collection", "add"))
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestCollectionAdd_BlankName(t *testing.T) {
	h := newHarness(t)

	err := h.run(t, NewCollectionCmd(h.flags, h.app).Register, "collection", "add", "--name", "   ")
	require.ErrorContains(t, err, "name is required")
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestCollectionRename_PrefillsCurrentName(t *testing.T) {
	h := newHarness(t)
	httpmock.RegisterResponder(http.MethodGet, testBase+"/collections/3",
		httpmock.NewStringResponder(http.StatusOK, dogsJSON))
	var body string
	httpmock.RegisterResponder(http.MethodPut, testBase+"/collections/3",
		func(req *http.Request) (*http.Response, error) {
			b, _ := io.ReadAll(req.Body)
			body = string(b)
			return httpmock.NewStringResponse(http.StatusOK, `{}`), nil
		})

	cmd := NewCollectionCmd(h.flags, h.app)
	cmd.askName = func(_, current string) (string, error) {
		assert.Equal(t, "Dogs", current)
		return "Hounds", nil
	}

	require.NoError(t, h.run(t, cmd.Register, "collection", "rename", "3"))
	assert.JSONEq(t, `{"name":"Hounds"}`, body)
	assert.Contains(t, h.output(), `Renamed collection #3 to "Hounds"`)
}

func TestCollectionThumbnail(t *testing.T) {
	h := newHarness(t)
	httpmock.RegisterResponder(http.MethodPost, testBase+"/collections/3/thumbnail",
		httpmock.NewStringResponder(http.StatusOK, `{}`))

	path := filepath.Join(t.TempDir(), "dogs.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), 0o644))

	require.NoError(t, h.run(t, NewCollectionCmd(h.flags, h.app).Register, "collection", "thumbnail", "3", path))
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
	assert.Contains(t, h.output(), "Set thumbnail of collection #3 to dogs.png")
}

func TestCollectionThumbnail_RejectedFile(t *testing.T) {
	h := newHarness(t)

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	err := h.run(t, NewCollectionCmd(h.flags, h.app).Register, "collection", "thumbnail", "3", path)
	require.Error(t, err)
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestConfigValidate_Valid(t *testing.T) {
	h := newHarness(t)
	h.flags.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")

	require.NoError(t, h.run(t, NewConfigValidateCmd(h.flags).Register, "config", "validate"))
	assert.Contains(t, h.output(), "Configuration is valid")
}

func TestConfigValidate_JSON(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run(t, NewConfigValidateCmd(h.flags).Register, "config", "validate", "--format", "json"))
	assert.Contains(t, h.out.String(), `"valid": true`)
}

func TestIssuesOf(t *testing.T) {
	issues, err := issuesOf(nil)
	require.NoError(t, err)
	assert.Empty(t, issues)

	issues, err = issuesOf(criterio.NewFieldErrors("tui.theme", errors.New(`unknown theme "neon"`)))
	require.NoError(t, err)
	assert.Equal(t, []validationIssue{{Field: "tui.theme", Message: `unknown theme "neon"`}}, issues)

	_, err = issuesOf(errors.New("boom"))
	require.ErrorContains(t, err, "validate config: boom")
}

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"ID", "NAME"},
		[][]string{{"1", "Dogs"}, {"22"}},
		[]columnAlignment{alignRight, alignLeft},
	)

	assert.Contains(t, out, "│ ID │ NAME │")
	assert.Contains(t, out, "│  1 │ Dogs │")
	assert.Contains(t, out, "│ 22 │      │")
	assert.Empty(t, renderTable(nil, nil, nil))
}
