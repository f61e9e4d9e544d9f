// Package forms holds the transient state of the add/update/delete dialogs.
//
// Every dialog owns its own buffer. Nothing here reads or writes the browsing
// cursor; callers seed a dialog from the cursored record when opening it.
package forms

import (
	"strings"

	"github.com/colonyops/zukan/internal/core/catalog"
)

// Kind tells whether a dialog creates or updates a record.
type Kind int

const (
	KindAdd Kind = iota
	KindUpdate
)

func (k Kind) String() string {
	if k == KindUpdate {
		return "update"
	}
	return "add"
}

// EntryBuffer holds the editable fields of an entry.
type EntryBuffer struct {
	Name        string
	CategoryID  *int64
	Description string
}

// Valid reports whether the buffer can be submitted.
func (b EntryBuffer) Valid() bool {
	return strings.TrimSpace(b.Name) != ""
}

// dialog is the open/submitting lifecycle shared by all dialogs.
type dialog struct {
	open       bool
	submitting bool
}

// IsOpen reports whether the dialog is shown.
func (d *dialog) IsOpen() bool { return d.open }

// Submitting reports whether a request from this dialog is in flight.
func (d *dialog) Submitting() bool { return d.submitting }

// Fail marks the in-flight request as failed. The dialog stays open with its
// buffer so the user can retry.
func (d *dialog) Fail() { d.submitting = false }

// EntryDialog is the add/update entry form.
type EntryDialog struct {
	dialog
	kind     Kind
	targetID int64
	buf      EntryBuffer
}

// OpenAdd opens the dialog with an empty buffer.
func (d *EntryDialog) OpenAdd() {
	*d = EntryDialog{dialog: dialog{open: true}, kind: KindAdd}
}

// OpenUpdate opens the dialog seeded from e.
func (d *EntryDialog) OpenUpdate(e catalog.Entry) {
	var cat *int64
	if e.CategoryID != nil {
		id := *e.CategoryID
		cat = &id
	}
	*d = EntryDialog{
		dialog:   dialog{open: true},
		kind:     KindUpdate,
		targetID: e.ID,
		buf: EntryBuffer{
			Name:        e.Name,
			CategoryID:  cat,
			Description: e.Description,
		},
	}
}

// Kind returns whether the dialog adds or updates.
func (d *EntryDialog) Kind() Kind { return d.kind }

// TargetID returns the id of the entry being updated.
func (d *EntryDialog) TargetID() int64 { return d.targetID }

// Buffer returns a copy of the current field values.
func (d *EntryDialog) Buffer() EntryBuffer { return d.buf }

// SetBuffer replaces the field values.
func (d *EntryDialog) SetBuffer(b EntryBuffer) { d.buf = b }

// CanSubmit reports whether the submit control is enabled.
func (d *EntryDialog) CanSubmit() bool {
	return d.open && !d.submitting && d.buf.Valid()
}

// Submit marks the dialog as dispatched and returns its buffer. ok is false
// when the submit guard is not satisfied.
func (d *EntryDialog) Submit() (EntryBuffer, bool) {
	if !d.CanSubmit() {
		return EntryBuffer{}, false
	}
	d.submitting = true
	return d.buf, true
}

// Close discards the buffer and hides the dialog. Used for cancel and after
// a successful submit.
func (d *EntryDialog) Close() {
	*d = EntryDialog{}
}

// ImageDialog is the add/replace image form.
type ImageDialog struct {
	dialog
	kind     Kind
	entryID  int64
	imageID  int64
	selected *catalog.File
}

// OpenAdd opens the dialog for a new image on entryID.
func (d *ImageDialog) OpenAdd(entryID int64) {
	*d = ImageDialog{dialog: dialog{open: true}, kind: KindAdd, entryID: entryID}
}

// OpenUpdate opens the dialog to replace img.
func (d *ImageDialog) OpenUpdate(img catalog.Image) {
	*d = ImageDialog{dialog: dialog{open: true}, kind: KindUpdate, entryID: img.EntryID, imageID: img.ID}
}

// Kind returns whether the dialog adds or replaces.
func (d *ImageDialog) Kind() Kind { return d.kind }

// EntryID returns the entry the image belongs to.
func (d *ImageDialog) EntryID() int64 { return d.entryID }

// ImageID returns the id of the image being replaced.
func (d *ImageDialog) ImageID() int64 { return d.imageID }

// Select stores the file chosen by the user.
func (d *ImageDialog) Select(f catalog.File) { d.selected = &f }

// Selected returns the chosen file, or nil.
func (d *ImageDialog) Selected() *catalog.File { return d.selected }

// CanSubmit reports whether the submit control is enabled.
func (d *ImageDialog) CanSubmit() bool {
	return d.open && !d.submitting && d.selected != nil
}

// Submit marks the dialog as dispatched and returns the selected file.
func (d *ImageDialog) Submit() (catalog.File, bool) {
	if !d.CanSubmit() {
		return catalog.File{}, false
	}
	d.submitting = true
	return *d.selected, true
}

// Close discards the selection and hides the dialog.
func (d *ImageDialog) Close() {
	*d = ImageDialog{}
}

// Target names what a delete confirmation removes.
type Target int

const (
	TargetEntry Target = iota
	TargetImage
)

// ConfirmDialog asks before deleting an entry or image.
type ConfirmDialog struct {
	dialog
	target   Target
	targetID int64
}

// Open shows the confirmation for the given record.
func (d *ConfirmDialog) Open(target Target, id int64) {
	*d = ConfirmDialog{dialog: dialog{open: true}, target: target, targetID: id}
}

// Target returns what kind of record is being deleted.
func (d *ConfirmDialog) Target() Target { return d.target }

// TargetID returns the id of the record being deleted.
func (d *ConfirmDialog) TargetID() int64 { return d.targetID }

// Submit marks the deletion as dispatched.
func (d *ConfirmDialog) Submit() (int64, bool) {
	if !d.open || d.submitting {
		return 0, false
	}
	d.submitting = true
	return d.targetID, true
}

// Close hides the confirmation.
func (d *ConfirmDialog) Close() {
	*d = ConfirmDialog{}
}
