package tui

import (
	"fmt"
	"io"
	"strings"

	"charm.land/bubbles/v2/list"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/zukan/internal/core/catalog"
	"github.com/colonyops/zukan/internal/core/forms"
	"github.com/colonyops/zukan/internal/core/styles"
	"github.com/colonyops/zukan/internal/tui/components/form"
)

// entryForm renders an entry dialog buffer as editable fields.
type entryForm struct {
	dialog   *form.Dialog
	name     *form.TextField
	category *form.SelectFormField // nil when the collection has no categories
	catIDs   []*int64              // parallel to the category options
	desc     *form.TextAreaField
}

func newEntryForm(kind forms.Kind, buf forms.EntryBuffer, cats []catalog.Category) *entryForm {
	f := &entryForm{
		name: form.NewTextField("Name", "entry name", buf.Name),
		desc: form.NewTextAreaField("Description", "markdown supported", buf.Description),
	}

	fields := []form.Field{f.name}
	if len(cats) > 0 {
		options := []string{"(none)"}
		f.catIDs = []*int64{nil}
		selected := 0
		for i, c := range cats {
			id := c.ID
			options = append(options, c.Name)
			f.catIDs = append(f.catIDs, &id)
			if buf.CategoryID != nil && *buf.CategoryID == c.ID {
				selected = i + 1
			}
		}
		f.category = form.NewSelectFormField("Category", options, selected)
		fields = append(fields, f.category)
	}
	fields = append(fields, f.desc)

	title := "Add entry"
	if kind == forms.KindUpdate {
		title = "Edit entry"
	}
	f.dialog = form.NewDialog(title, fields...)
	return f
}

// buffer reads the field values back into a dialog buffer.
func (f *entryForm) buffer() forms.EntryBuffer {
	buf := forms.EntryBuffer{
		Name:        f.name.Text(),
		Description: f.desc.Text(),
	}
	if f.category != nil {
		if i := f.category.Selected(); i > 0 && i < len(f.catIDs) {
			buf.CategoryID = f.catIDs[i]
		}
	}
	return buf
}

// imageForm asks for the file to upload.
type imageForm struct {
	dialog  *form.Dialog
	path    *form.TextField
	loading bool
}

func newImageForm(kind forms.Kind, position string) *imageForm {
	path := form.NewTextField("Image file", "~/Pictures/shiba.png", "")
	path.SetHint("ctrl+v paste a path from the clipboard")

	title := "Add image"
	if kind == forms.KindUpdate {
		title = "Replace image " + position
	}
	return &imageForm{
		dialog: form.NewDialog(title, path),
		path:   path,
	}
}

// describeFile summarises a loaded upload for the field hint.
func describeFile(f catalog.File) string {
	size := len(f.Data)
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%s, %s, %.1f MB", f.Name, f.ContentType, float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%s, %s, %d KB", f.Name, f.ContentType, size>>10)
	}
	return fmt.Sprintf("%s, %s, %d B", f.Name, f.ContentType, size)
}

// pickerItem is one entry name in the picker, remembering its position in
// the collection.
type pickerItem struct {
	index int
	name  string
}

func (i pickerItem) FilterValue() string { return i.name }

type pickerDelegate struct{}

func (pickerDelegate) Height() int                             { return 1 }
func (pickerDelegate) Spacing() int                            { return 0 }
func (pickerDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (pickerDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(pickerItem)
	if !ok {
		return
	}
	label := fmt.Sprintf("%3d  %s", it.index+1, it.name)
	if index == m.Index() {
		_, _ = io.WriteString(w, styles.ListSelectedStyle.Render("> "+label))
		return
	}
	_, _ = io.WriteString(w, styles.ListNormalStyle.Render("  "+label))
}

// entryPicker jumps to an entry by name.
type entryPicker struct {
	input   textinput.Model
	list    list.Model
	entries []catalog.Entry
	chosen  int
	done    bool
}

func newEntryPicker(entries []catalog.Entry, current, width, height int) *entryPicker {
	ti := textinput.New()
	ti.Placeholder = "type to filter entries..."
	ti.CharLimit = 100
	ti.Focus()

	listHeight := max(min(len(entries), height-10), 3)
	l := list.New(nil, pickerDelegate{}, max(min(width-10, 60), 20), listHeight)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	p := &entryPicker{input: ti, list: l, entries: entries, chosen: -1}
	p.filter()
	p.list.Select(current)
	return p
}

func (p *entryPicker) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "esc":
		p.done = true
		return nil
	case "enter":
		if it, ok := p.list.SelectedItem().(pickerItem); ok {
			p.chosen = it.index
		}
		p.done = true
		return nil
	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		p.list, cmd = p.list.Update(msg)
		return cmd
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.filter()
	return cmd
}

// filter keeps entries whose name contains the query, ignoring case.
func (p *entryPicker) filter() {
	query := strings.ToLower(strings.TrimSpace(p.input.Value()))
	items := make([]list.Item, 0, len(p.entries))
	for i, e := range p.entries {
		if query == "" || strings.Contains(strings.ToLower(e.Name), query) {
			items = append(items, pickerItem{index: i, name: e.Name})
		}
	}
	p.list.SetItems(items)
	p.list.Select(0)
}

func (p *entryPicker) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render("Jump to entry"),
		p.input.View(),
		"",
		p.list.View(),
		styles.ModalHelpStyle.Render("↑/↓ move  enter jump  esc close"),
	)
}
