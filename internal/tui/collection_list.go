package tui

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/zukan/internal/core/styles"
)

type collectionDelegate struct{}

func (collectionDelegate) Height() int                             { return 2 }
func (collectionDelegate) Spacing() int                            { return 1 }
func (collectionDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (collectionDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(collectionItem)
	if !ok {
		return
	}

	subtitle := fmt.Sprintf("#%d", it.summary.ID)
	if it.summary.Thumbnail != nil {
		subtitle += "  " + styles.IconImage + " thumbnail"
	}

	name := styles.IconBook + " " + it.summary.Name
	if index == m.Index() {
		name = styles.ListSelectedStyle.Render("> " + name)
	} else {
		name = styles.ListNormalStyle.Render("  " + name)
	}
	_, _ = fmt.Fprintf(w, "%s\n    %s", name, styles.ListSubtitleStyle.Render(subtitle))
}

var listKeys = struct {
	browse  key.Binding
	quiz    key.Binding
	refresh key.Binding
	info    key.Binding
}{
	browse:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "browse")),
	quiz:    key.NewBinding(key.WithKeys("Q"), key.WithHelp("Q", "quiz")),
	refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	info:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "info")),
}

func newCollectionList() list.Model {
	l := list.New(nil, collectionDelegate{}, 0, 0)
	l.Title = "Collections"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = styles.HeaderStyle
	l.SetStatusBarItemName("collection", "collections")

	helpStyle := styles.TextMutedStyle
	l.Help.Styles.ShortKey = helpStyle
	l.Help.Styles.ShortDesc = helpStyle
	l.Help.Styles.ShortSeparator = helpStyle
	l.Help.Styles.FullKey = helpStyle
	l.Help.Styles.FullDesc = helpStyle
	l.Help.Styles.FullSeparator = helpStyle

	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{listKeys.browse, listKeys.quiz, listKeys.refresh}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{listKeys.browse, listKeys.quiz, listKeys.refresh, listKeys.info}
	}
	return l
}
