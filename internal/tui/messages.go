package tui

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/zukan/internal/core/catalog"
	"github.com/colonyops/zukan/internal/zukan"
)

type collectionsLoadedMsg struct {
	items []catalog.CollectionSummary
	err   error
}

// refreshMsg carries the result of a plain (re)load of the open collection.
type refreshMsg struct {
	refresh zukan.Refresh
}

// mutationDoneMsg reports a finished mutation and its follow-up refetch.
type mutationDoneMsg struct {
	op      string
	overlay overlay
	ticket  zukan.Ticket
	refresh zukan.Refresh
	err     error
}

type fileLoadedMsg struct {
	file catalog.File
	err  error
}

type pastedMsg struct {
	text string
	err  error
}

type copiedMsg struct {
	text string
	err  error
}

func (m Model) loadCollectionsCmd() tea.Cmd {
	ctx, lister := m.ctx, m.deps.Catalog
	return func() tea.Msg {
		items, err := lister.ListCollections(ctx)
		return collectionsLoadedMsg{items: items, err: err}
	}
}

func (m Model) loadCmd(t zukan.Ticket) tea.Cmd {
	ctx, coord := m.ctx, m.deps.Coordinator
	return func() tea.Msg {
		return refreshMsg{refresh: coord.Load(ctx, t)}
	}
}

// mutateCmd runs fn off the update loop. The ticket is issued by the caller
// at dispatch so the most recently dispatched request wins.
func (m Model) mutateCmd(op string, o overlay, t zukan.Ticket, fn func(context.Context) (zukan.Refresh, error)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		r, err := fn(ctx)
		return mutationDoneMsg{op: op, overlay: o, ticket: t, refresh: r, err: err}
	}
}

func loadFileCmd(path string, rules catalog.FileRules) tea.Cmd {
	return func() tea.Msg {
		f, err := catalog.LoadFile(path, rules)
		return fileLoadedMsg{file: f, err: err}
	}
}

func pasteCmd(cb Clipboard) tea.Cmd {
	return func() tea.Msg {
		text, err := cb.ReadAll()
		return pastedMsg{text: clipboardPath(text), err: err}
	}
}

func copyCmd(cb Clipboard, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{text: text, err: cb.WriteAll(text)}
	}
}

// clipboardPath turns copied text into a file path. File managers copy
// file:// URIs; only the first line is used.
func clipboardPath(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = strings.TrimSpace(text[:i])
	}
	return strings.TrimPrefix(text, "file://")
}
