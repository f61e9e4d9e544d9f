package tui

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/zukan/internal/core/forms"
	"github.com/colonyops/zukan/internal/tui/components"
	"github.com/colonyops/zukan/internal/zukan"
)

const (
	opAddEntry     = "add entry"
	opUpdateEntry  = "update entry"
	opDeleteEntry  = "delete entry"
	opAddImage     = "add image"
	opReplaceImage = "replace image"
	opDeleteImage  = "delete image"
)

// doneText is the confirmation toast for a finished mutation.
func doneText(op string) string {
	switch op {
	case opAddEntry:
		return "entry added"
	case opUpdateEntry:
		return "entry updated"
	case opDeleteEntry:
		return "entry deleted"
	case opAddImage:
		return "image added"
	case opReplaceImage:
		return "image replaced"
	case opDeleteImage:
		return "image deleted"
	}
	return op + " done"
}

func (m Model) openEntryForm(kind forms.Kind) (Model, tea.Cmd) {
	if kind == forms.KindUpdate {
		m.entryDialog.OpenUpdate(m.session.Entry())
	} else {
		m.entryDialog.OpenAdd()
	}
	m.entryForm = newEntryForm(kind, m.entryDialog.Buffer(), m.session.Collection().Categories)
	m.overlay = overlayEntryForm
	return m, nil
}

func (m Model) openImageForm(kind forms.Kind) (Model, tea.Cmd) {
	position := ""
	if kind == forms.KindUpdate {
		img, _ := m.session.Image()
		m.imageDialog.OpenUpdate(img)
		pos := m.session.Position()
		position = fmt.Sprintf("%d/%d", pos.Image+1, len(m.session.Entry().Images))
	} else {
		m.imageDialog.OpenAdd(m.session.Entry().ID)
	}
	m.imageForm = newImageForm(kind, position)
	m.overlay = overlayImageForm
	return m, nil
}

func (m Model) openConfirm(target forms.Target) (Model, tea.Cmd) {
	e := m.session.Entry()
	switch target {
	case forms.TargetEntry:
		m.confirmDialog.Open(target, e.ID)
		m.confirm = components.NewConfirmModal("Delete entry",
			fmt.Sprintf("Delete %q and all %d of its images?", e.Name, len(e.Images)))
	case forms.TargetImage:
		img, _ := m.session.Image()
		pos := m.session.Position()
		m.confirmDialog.Open(target, img.ID)
		m.confirm = components.NewConfirmModal("Delete image",
			fmt.Sprintf("Delete image %d/%d of %q?", pos.Image+1, len(e.Images), e.Name))
	}
	m.overlay = overlayConfirm
	return m, nil
}

func (m Model) openPicker() (Model, tea.Cmd) {
	m.picker = newEntryPicker(m.session.Collection().Entries, m.session.Position().Entry, m.width, m.height)
	m.overlay = overlayPicker
	return m, nil
}

func (m Model) updateEntryForm(msg tea.Msg) (Model, tea.Cmd) {
	f := m.entryForm
	var cmd tea.Cmd
	f.dialog, cmd = f.dialog.Update(msg)

	if f.dialog.Cancelled() {
		m.closeOverlay(overlayEntryForm)
		return m, nil
	}
	if !f.dialog.Submitted() || f.dialog.Busy() {
		return m, cmd
	}

	m.entryDialog.SetBuffer(f.buffer())
	buf, ok := m.entryDialog.Submit()
	if !ok {
		f.dialog.Rearm()
		f.dialog.SetError("name is required")
		return m, cmd
	}
	f.dialog.SetError("")
	f.dialog.SetBusy(true)

	t := m.session.Begin()
	m.loading = true
	coord, col := m.deps.Coordinator, m.session.Collection()

	if m.entryDialog.Kind() == forms.KindUpdate {
		id := m.entryDialog.TargetID()
		return m, tea.Batch(m.mutateCmd(opUpdateEntry, overlayEntryForm, t, func(ctx context.Context) (zukan.Refresh, error) {
			return coord.UpdateEntry(ctx, t, id, col, buf)
		}), m.spinner.Tick)
	}
	return m, tea.Batch(m.mutateCmd(opAddEntry, overlayEntryForm, t, func(ctx context.Context) (zukan.Refresh, error) {
		return coord.AddEntry(ctx, t, col, buf)
	}), m.spinner.Tick)
}

func (m Model) updateImageForm(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	f := m.imageForm
	if msg.String() == "ctrl+v" && !f.dialog.Busy() {
		return m, pasteCmd(m.clip)
	}

	var cmd tea.Cmd
	f.dialog, cmd = f.dialog.Update(msg)

	if f.dialog.Cancelled() {
		m.closeOverlay(overlayImageForm)
		return m, nil
	}
	if !f.dialog.Submitted() || f.loading {
		return m, cmd
	}

	// The file is read off the update loop; submission continues in
	// handleFileLoaded.
	f.loading = true
	f.dialog.SetError("")
	f.dialog.SetBusy(true)
	return m, loadFileCmd(f.path.Text(), m.deps.Config.Images.Rules())
}

func (m Model) handleFileLoaded(msg fileLoadedMsg) (Model, tea.Cmd) {
	if m.overlay != overlayImageForm || m.imageForm == nil {
		return m, nil
	}
	f := m.imageForm
	f.loading = false

	if msg.err != nil {
		f.dialog.Rearm()
		f.dialog.SetBusy(false)
		f.dialog.SetError(msg.err.Error())
		return m, nil
	}

	m.imageDialog.Select(msg.file)
	f.path.SetHint(describeFile(msg.file))

	file, ok := m.imageDialog.Submit()
	if !ok {
		f.dialog.Rearm()
		f.dialog.SetBusy(false)
		return m, nil
	}

	t := m.session.Begin()
	m.loading = true
	coord := m.deps.Coordinator
	entryID := m.imageDialog.EntryID()

	if m.imageDialog.Kind() == forms.KindUpdate {
		imageID := m.imageDialog.ImageID()
		return m, tea.Batch(m.mutateCmd(opReplaceImage, overlayImageForm, t, func(ctx context.Context) (zukan.Refresh, error) {
			return coord.UpdateImage(ctx, t, imageID, entryID, &file)
		}), m.spinner.Tick)
	}
	return m, tea.Batch(m.mutateCmd(opAddImage, overlayImageForm, t, func(ctx context.Context) (zukan.Refresh, error) {
		return coord.AddImage(ctx, t, entryID, &file)
	}), m.spinner.Tick)
}

func (m Model) updateConfirm(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)

	if m.confirm.Cancelled() {
		m.closeOverlay(overlayConfirm)
		return m, nil
	}
	if !m.confirm.Confirmed() {
		return m, cmd
	}

	id, ok := m.confirmDialog.Submit()
	if !ok {
		return m, cmd
	}
	m.confirm.SetBusy(true)

	t := m.session.Begin()
	m.loading = true
	coord := m.deps.Coordinator

	if m.confirmDialog.Target() == forms.TargetImage {
		return m, tea.Batch(m.mutateCmd(opDeleteImage, overlayConfirm, t, func(ctx context.Context) (zukan.Refresh, error) {
			return coord.DeleteImage(ctx, t, id)
		}), m.spinner.Tick)
	}
	return m, tea.Batch(m.mutateCmd(opDeleteEntry, overlayConfirm, t, func(ctx context.Context) (zukan.Refresh, error) {
		return coord.DeleteEntry(ctx, t, id)
	}), m.spinner.Tick)
}

func (m Model) updatePicker(msg tea.Msg) (Model, tea.Cmd) {
	cmd := m.picker.Update(msg)
	if !m.picker.done {
		return m, cmd
	}

	if m.picker.chosen >= 0 {
		if err := m.session.SelectEntry(m.picker.chosen); err != nil {
			m.bus.Fail("pick entry", err)
		}
	}
	m.closeOverlay(overlayPicker)
	return m, nil
}

// handleMutationDone settles the dialog that dispatched a mutation. On
// failure the dialog stays open with its buffer so the user can retry.
func (m Model) handleMutationDone(msg mutationDoneMsg) (Model, tea.Cmd) {
	if m.session.IsCurrent(msg.ticket) {
		m.loading = false
	}

	if msg.err != nil {
		m.record(msg.op, msg.err)
		m.failOverlay(msg.op, msg.overlay, msg.err)
		return m, nil
	}

	m.record(msg.op, nil)
	if m.overlay == msg.overlay {
		m.closeOverlay(msg.overlay)
	}

	if msg.refresh.Err != nil {
		m.fail("refresh", msg.refresh.Err)
		return m, nil
	}
	m.session.Apply(msg.refresh)
	m.bus.Infof("%s", doneText(msg.op))
	return m, nil
}

// failOverlay re-enables the dialog for o. Validation errors are shown
// inside the dialog; anything else is toasted.
func (m *Model) failOverlay(op string, o overlay, err error) {
	invalid := errors.Is(err, zukan.ErrValidation)
	if !invalid {
		m.bus.Fail(op, err)
	}
	if m.overlay != o {
		return
	}

	switch o {
	case overlayEntryForm:
		m.entryDialog.Fail()
		m.entryForm.dialog.Rearm()
		m.entryForm.dialog.SetBusy(false)
		if invalid {
			m.entryForm.dialog.SetError(err.Error())
		}
	case overlayImageForm:
		m.imageDialog.Fail()
		m.imageForm.dialog.Rearm()
		m.imageForm.dialog.SetBusy(false)
		if invalid {
			m.imageForm.dialog.SetError(err.Error())
		}
	case overlayConfirm:
		m.confirmDialog.Fail()
		m.confirm.SetBusy(false)
	}
}

// closeOverlay discards the state of overlay o and hides it.
func (m *Model) closeOverlay(o overlay) {
	switch o {
	case overlayEntryForm:
		m.entryDialog.Close()
		m.entryForm = nil
	case overlayImageForm:
		m.imageDialog.Close()
		m.imageForm = nil
	case overlayConfirm:
		m.confirmDialog.Close()
		m.confirm = components.ConfirmModal{}
	case overlayPicker:
		m.picker = nil
	}
	m.overlay = overlayNone
}

func (m Model) handlePasted(msg pastedMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		m.bus.Fail("paste", msg.err)
		return m, nil
	}
	if m.overlay != overlayImageForm || m.imageForm == nil {
		return m, nil
	}
	if msg.text == "" {
		m.bus.Warnf("clipboard is empty")
		return m, nil
	}
	m.imageForm.path.SetText(msg.text)
	return m, nil
}

func (m Model) handleCopied(msg copiedMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		m.bus.Fail("copy image", msg.err)
		return m, nil
	}
	m.bus.Infof("copied %s", msg.text)
	return m, nil
}
