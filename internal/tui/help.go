package tui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/zukan/internal/core/config"
	"github.com/colonyops/zukan/internal/core/notify"
	"github.com/colonyops/zukan/internal/core/quiz"
	"github.com/colonyops/zukan/internal/tui/components"
	"github.com/colonyops/zukan/internal/zukan"
)

const infoNotifications = 5

// actionEnabled maps a keybinding action to its affordance. Navigation and
// view actions are always enabled.
func actionEnabled(a zukan.Affordances) func(string) bool {
	return func(action string) bool {
		switch action {
		case config.ActionPickEntry:
			return a.PickEntry
		case config.ActionAddEntry:
			return a.AddEntry
		case config.ActionEditEntry:
			return a.EditEntry
		case config.ActionDeleteEntry:
			return a.DeleteEntry
		case config.ActionAddImage:
			return a.AddImage
		case config.ActionEditImage:
			return a.EditImage
		case config.ActionDeleteImage:
			return a.DeleteImage
		case config.ActionCopyImage:
			return a.CopyImage
		case config.ActionHint:
			return a.Hint
		case config.ActionReveal:
			return a.Reveal
		}
		return true
	}
}

type helpRow struct {
	action string
	desc   string
}

var helpNavigation = []helpRow{
	{config.ActionPrevImage, "previous image"},
	{config.ActionNextImage, "next image"},
	{config.ActionPrevEntry, "previous entry"},
	{config.ActionNextEntry, "next entry"},
	{config.ActionPickEntry, "jump to entry"},
}

var helpEditing = []helpRow{
	{config.ActionAddEntry, "add entry"},
	{config.ActionEditEntry, "edit entry"},
	{config.ActionDeleteEntry, "delete entry"},
	{config.ActionAddImage, "add image"},
	{config.ActionEditImage, "replace image"},
	{config.ActionDeleteImage, "delete image"},
	{config.ActionCopyImage, "copy image locator"},
}

var helpQuiz = []helpRow{
	{config.ActionHint, "reveal one more character"},
	{config.ActionReveal, "reveal the full name"},
	{config.ActionCopyImage, "copy image locator"},
}

var helpGeneral = []helpRow{
	{config.ActionRefresh, "reload collection"},
	{config.ActionBack, "back to collections"},
	{config.ActionInfo, "info"},
	{config.ActionHelp, "toggle help"},
}

func (m Model) helpSection(title string, rows []helpRow, enabled func(string) bool) components.HelpDialogSection {
	section := components.HelpDialogSection{Title: title}
	for _, r := range rows {
		keys := m.deps.Config.KeysFor(r.action)
		if len(keys) == 0 {
			continue
		}
		section.Entries = append(section.Entries, components.HelpEntry{
			Key:      strings.Join(keys, "/"),
			Desc:     r.desc,
			Disabled: !enabled(r.action),
		})
	}
	return section
}

func (m Model) openHelp() (Model, tea.Cmd) {
	var sections []components.HelpDialogSection

	if m.view == viewList {
		sections = []components.HelpDialogSection{{
			Title: "Collections",
			Entries: []components.HelpEntry{
				{Key: "↑/↓", Desc: "move"},
				{Key: "/", Desc: "filter"},
				{Key: "enter", Desc: "browse collection"},
				{Key: "Q", Desc: "quiz collection"},
				{Key: "r", Desc: "refresh"},
				{Key: "i", Desc: "info"},
				{Key: "q", Desc: "quit"},
			},
		}}
	} else {
		enabled := actionEnabled(m.session.Affordances())
		sections = append(sections, m.helpSection("Navigation", helpNavigation, enabled))
		if m.session.Mode() == quiz.ModeQuiz {
			sections = append(sections, m.helpSection("Quiz", helpQuiz, enabled))
		} else {
			sections = append(sections, m.helpSection("Editing", helpEditing, enabled))
		}
		general := m.helpSection("General", helpGeneral, enabled)
		general.Entries = append(general.Entries,
			components.HelpEntry{Key: "pgup/pgdown", Desc: "scroll description"},
			components.HelpEntry{Key: "q", Desc: "quit"},
		)
		sections = append(sections, general)
	}

	m.help = components.NewHelpDialog("Keybindings", sections)
	m.overlay = overlayHelp
	return m, nil
}

func (m Model) openInfo() (Model, tea.Cmd) {
	b := m.deps.Build
	sections := []components.InfoSection{
		{
			Title: "Build",
			Items: []components.InfoItem{
				{Label: "Version", Value: b.Version},
				{Label: "Commit", Value: b.Commit},
				{Label: "Date", Value: b.Date},
			},
		},
		m.serviceInfo(),
	}

	if m.view == viewDetail {
		sections = append(sections, m.collectionInfo())
	}
	sections = append(sections, m.notificationInfo())

	m.info = components.NewInfoDialog("zukan", sections, m.width, m.height)
	m.overlay = overlayInfo
	return m, nil
}

func (m Model) serviceInfo() components.InfoSection {
	cfg := m.deps.Config
	items := []components.InfoItem{
		{Label: "API", Value: cfg.API.BaseURL},
		{Label: "Timeout", Value: cfg.API.Timeout.String()},
	}

	if s := m.lastStatus; s != nil {
		item := components.InfoItem{
			Label:  "Last request",
			Value:  fmt.Sprintf("%s ok (%s)", s.op, s.at.Format(time.TimeOnly)),
			Status: components.InfoStatusPass,
		}
		if s.err != nil {
			item.Value = fmt.Sprintf("%s: %v", s.op, s.err)
			item.Status = components.InfoStatusFail
		}
		items = append(items, item)
	}
	return components.InfoSection{Title: "Service", Items: items}
}

func (m Model) collectionInfo() components.InfoSection {
	col := m.session.Collection()
	if !m.session.Loaded() {
		return components.InfoSection{
			Title: "Collection",
			Items: []components.InfoItem{{Label: "State", Value: "loading", Status: components.InfoStatusWarn}},
		}
	}

	entries, images := 0, 0
	for _, e := range col.Entries {
		if e.IsPlaceholder() {
			continue
		}
		entries++
		images += len(e.Images)
	}

	return components.InfoSection{
		Title: "Collection",
		Items: []components.InfoItem{
			{Label: "Name", Value: fmt.Sprintf("%s (#%d)", col.Name, col.ID)},
			{Label: "Mode", Value: m.session.Mode().String()},
			{Label: "Entries", Value: fmt.Sprint(entries)},
			{Label: "Images", Value: fmt.Sprint(images)},
			{Label: "Categories", Value: fmt.Sprint(len(col.Categories))},
		},
	}
}

func (m Model) notificationInfo() components.InfoSection {
	section := components.InfoSection{Title: "Recent notifications"}

	history, err := m.bus.History()
	if err != nil {
		section.Items = []components.InfoItem{{Label: "error", Value: err.Error(), Status: components.InfoStatusFail}}
		return section
	}
	if len(history) == 0 {
		section.Items = []components.InfoItem{{Label: "none", Value: ""}}
		return section
	}

	for _, n := range history[:min(len(history), infoNotifications)] {
		status := components.InfoStatusNone
		switch n.Level {
		case notify.LevelError:
			status = components.InfoStatusFail
		case notify.LevelWarning:
			status = components.InfoStatusWarn
		}
		section.Items = append(section.Items, components.InfoItem{
			Label:  n.CreatedAt.Format(time.TimeOnly),
			Value:  n.Message,
			Status: status,
		})
	}
	return section
}
