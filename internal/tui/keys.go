package tui

import (
	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/zukan/internal/core/config"
	"github.com/colonyops/zukan/internal/core/forms"
	"github.com/colonyops/zukan/internal/core/quiz"
)

const keyCtrlC = "ctrl+c"

func (m Model) handleKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == keyCtrlC {
		return m.quit()
	}

	switch m.overlay {
	case overlayEntryForm:
		return m.updateEntryForm(msg)
	case overlayImageForm:
		return m.updateImageForm(msg)
	case overlayConfirm:
		return m.updateConfirm(msg)
	case overlayPicker:
		return m.updatePicker(msg)
	case overlayHelp:
		return m.handleHelpKey(keyStr)
	case overlayInfo:
		return m.handleInfoKey(keyStr)
	}

	if m.view == viewList {
		return m.handleListKey(msg)
	}
	return m.handleDetailKey(msg)
}

func (m Model) handleListKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	if m.collections.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.collections, cmd = m.collections.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m.quit()
	case "enter":
		return m.openSelected(quiz.ModeBrowse)
	case "Q":
		return m.openSelected(quiz.ModeQuiz)
	case "r":
		m.listLoading = true
		return m, tea.Batch(m.loadCollectionsCmd(), m.spinner.Tick)
	case "?":
		return m.openHelp()
	case "i":
		return m.openInfo()
	}

	var cmd tea.Cmd
	m.collections, cmd = m.collections.Update(msg)
	return m, cmd
}

// handleDetailKey dispatches a key through the configured keybindings.
// Disabled actions ignore their key.
func (m Model) handleDetailKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == "q" {
		return m.quit()
	}

	switch keyStr {
	case "pgdown":
		m.desc.PageDown()
		return m, nil
	case "pgup":
		m.desc.PageUp()
		return m, nil
	}

	aff := m.session.Affordances()
	switch m.deps.Config.Action(keyStr) {
	case config.ActionPrevImage:
		m.session.PrevImage()
	case config.ActionNextImage:
		m.session.NextImage()
	case config.ActionPrevEntry:
		m.session.PrevEntry()
	case config.ActionNextEntry:
		m.session.NextEntry()
	case config.ActionPickEntry:
		if aff.PickEntry {
			return m.openPicker()
		}
	case config.ActionAddEntry:
		if aff.AddEntry {
			return m.openEntryForm(forms.KindAdd)
		}
	case config.ActionEditEntry:
		if aff.EditEntry {
			return m.openEntryForm(forms.KindUpdate)
		}
	case config.ActionDeleteEntry:
		if aff.DeleteEntry {
			return m.openConfirm(forms.TargetEntry)
		}
	case config.ActionAddImage:
		if aff.AddImage {
			return m.openImageForm(forms.KindAdd)
		}
	case config.ActionEditImage:
		if aff.EditImage {
			return m.openImageForm(forms.KindUpdate)
		}
	case config.ActionDeleteImage:
		if aff.DeleteImage {
			return m.openConfirm(forms.TargetImage)
		}
	case config.ActionCopyImage:
		if aff.CopyImage {
			img, _ := m.session.Image()
			return m, copyCmd(m.clip, m.deps.Catalog.ResolveRef(img.FileRef))
		}
	case config.ActionHint:
		m.session.Hint()
	case config.ActionReveal:
		m.session.ShowFull()
	case config.ActionRefresh:
		return m.reload()
	case config.ActionBack:
		return m.back()
	case config.ActionHelp:
		return m.openHelp()
	case config.ActionInfo:
		return m.openInfo()
	}
	return m, nil
}

func (m Model) handleHelpKey(keyStr string) (Model, tea.Cmd) {
	switch keyStr {
	case "esc", "?", "q":
		m.overlay = overlayNone
		m.help = nil
	}
	return m, nil
}

func (m Model) handleInfoKey(keyStr string) (Model, tea.Cmd) {
	switch keyStr {
	case "esc", "i", "q":
		m.overlay = overlayNone
		m.info = nil
	case "j", "down":
		m.info.ScrollDown()
	case "k", "up":
		m.info.ScrollUp()
	}
	return m, nil
}

// openSelected opens the cursored collection of the list.
func (m Model) openSelected(mode quiz.Mode) (Model, tea.Cmd) {
	it, ok := m.collections.SelectedItem().(collectionItem)
	if !ok {
		return m, nil
	}

	t := m.session.OpenAs(it.summary.ID, mode)
	m.view = viewDetail
	m.loading = true
	m.descKey = ""
	return m, tea.Batch(m.loadCmd(t), m.spinner.Tick)
}

// reload refetches the open collection from its first entry.
func (m Model) reload() (Model, tea.Cmd) {
	t := m.session.Begin()
	m.loading = true
	return m, tea.Batch(m.loadCmd(t), m.spinner.Tick)
}

// back leaves the detail view. Responses still in flight are discarded.
func (m Model) back() (Model, tea.Cmd) {
	m.session.Leave()
	m.loading = false
	m.view = viewList
	m.listLoading = true
	return m, tea.Batch(m.loadCollectionsCmd(), m.spinner.Tick)
}
