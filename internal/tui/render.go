package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/colonyops/zukan/internal/core/catalog"
	"github.com/colonyops/zukan/internal/core/config"
	"github.com/colonyops/zukan/internal/core/quiz"
	"github.com/colonyops/zukan/internal/core/styles"
	"github.com/colonyops/zukan/internal/tui/components"
)

// detailChrome is the number of detail view lines outside the description.
const detailChrome = 13

// View renders the model.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	main := m.renderList()
	if m.view == viewDetail {
		main = m.renderDetail()
	}

	w, h := m.width, m.height
	var content string
	switch m.overlay {
	case overlayEntryForm:
		content = m.renderForm(main, m.entryForm.dialog.Title, m.entryForm.dialog.View())
	case overlayImageForm:
		content = m.renderForm(main, m.imageForm.dialog.Title, m.imageForm.dialog.View())
	case overlayConfirm:
		content = m.confirm.Overlay(main, w, h)
	case overlayPicker:
		content = components.Center(main, styles.ModalStyle.Render(m.picker.View()), w, h)
	case overlayHelp:
		content = m.help.Overlay(main, w, h)
	case overlayInfo:
		content = m.info.Overlay(main, w, h)
	default:
		content = main
	}

	if m.toasts.HasToasts() {
		content = m.toastView.Overlay(content, w, h)
	}

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

func (m Model) renderForm(background, title, body string) string {
	modal := styles.ModalStyle.Width(min(max(m.width-8, 40), 72)).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(title),
		body,
	))
	return components.Center(background, modal, m.width, m.height)
}

func (m Model) renderList() string {
	body := m.collections.View()
	if m.listLoading {
		body = lipgloss.JoinVertical(lipgloss.Left,
			body,
			m.spinner.View()+" "+styles.TextMutedStyle.Render("loading collections..."),
		)
	} else if len(m.collections.Items()) == 0 {
		body = lipgloss.JoinVertical(lipgloss.Left,
			styles.HeaderStyle.Render("Collections"),
			"",
			styles.PlaceholderStyle.Render("  No collections yet. Create one with `zukan collection add`."),
			"",
			styles.StatusBarStyle.Render("r refresh  i info  q quit"),
		)
	}
	return lipgloss.NewStyle().Height(m.height).MaxHeight(m.height).Render(body)
}

func (m Model) renderDetail() string {
	col := m.session.Collection()
	e := m.session.Entry()
	pos := m.session.Position()

	header := styles.HeaderStyle.Render(styles.IconBook + " " + col.Name)
	if m.session.Mode() == quiz.ModeQuiz {
		header += " " + styles.ModeBadgeStyle.Render(styles.IconQuiz+" QUIZ")
	}
	counter := styles.CounterStyle.Render(fmt.Sprintf("entry %d/%d", pos.Entry+1, len(col.Entries)))
	gap := max(m.width-lipgloss.Width(header)-lipgloss.Width(counter)-1, 1)
	header = header + strings.Repeat(" ", gap) + counter

	category := ""
	if name := m.session.CategoryName(); name != "" {
		category = styles.CategoryStyle.Render(styles.IconCategory + " " + name)
	}

	nameStyle := styles.EntryNameStyle
	if m.session.Mode() == quiz.ModeQuiz && !e.IsPlaceholder() {
		nameStyle = styles.MaskedNameStyle
	}
	name := nameStyle.Render(m.session.DisplayName())

	status := ""
	if m.loading {
		status = m.spinner.View() + " " + styles.TextMutedStyle.Render("loading...")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		" "+category,
		" "+name,
		m.renderImage(e),
		styles.DescriptionStyle.Render(m.desc.View()),
		status,
		m.renderKeyBar(),
	)
}

// renderImage shows the locator of the cursored image. The terminal cannot
// draw the picture itself; the locator can be copied and opened elsewhere.
func (m Model) renderImage(e catalog.Entry) string {
	width := max(m.width-4, 20)
	img, ok := m.session.Image()

	var body string
	switch {
	case !ok:
		body = styles.PlaceholderStyle.Render("no images yet")
	case img.FileRef == catalog.NoImageRef:
		body = styles.PlaceholderStyle.Render("no image")
	default:
		pos := m.session.Position()
		body = lipgloss.JoinVertical(lipgloss.Left,
			styles.IconImage+" "+styles.ImageRefStyle.Render(m.deps.Catalog.ResolveRef(img.FileRef)),
			styles.CounterStyle.Render(fmt.Sprintf("image %d/%d", pos.Image+1, len(e.Images))),
		)
	}
	return styles.ImageFrameStyle.Width(width).Render(body)
}

// keyBarItem is one action shown in the detail key bar.
type keyBarItem struct {
	action string
	label  string
}

var browseKeyBar = []keyBarItem{
	{config.ActionPrevEntry, "entry"},
	{config.ActionPrevImage, "image"},
	{config.ActionPickEntry, "jump"},
	{config.ActionAddEntry, "add"},
	{config.ActionEditEntry, "edit"},
	{config.ActionDeleteEntry, "delete"},
	{config.ActionAddImage, "add image"},
	{config.ActionEditImage, "replace"},
	{config.ActionDeleteImage, "delete image"},
	{config.ActionCopyImage, "copy"},
	{config.ActionHelp, "help"},
}

var quizKeyBar = []keyBarItem{
	{config.ActionPrevEntry, "entry"},
	{config.ActionPrevImage, "image"},
	{config.ActionHint, "hint"},
	{config.ActionReveal, "reveal"},
	{config.ActionCopyImage, "copy"},
	{config.ActionHelp, "help"},
}

func (m Model) renderKeyBar() string {
	items := browseKeyBar
	if m.session.Mode() == quiz.ModeQuiz {
		items = quizKeyBar
	}

	enabled := actionEnabled(m.session.Affordances())
	parts := make([]string, 0, len(items))
	for _, it := range items {
		keys := m.deps.Config.KeysFor(it.action)
		if len(keys) == 0 {
			continue
		}
		label := keys[0] + " " + it.label
		if enabled(it.action) {
			parts = append(parts, styles.KeyEnabledStyle.Render(label))
		} else {
			parts = append(parts, styles.KeyDisabledStyle.Render(label))
		}
	}
	return styles.StatusBarStyle.Width(m.width).Render(strings.Join(parts, "  "))
}

// syncDescription re-renders the entry description when the entry, its text
// or the window width changed.
func (m *Model) syncDescription() {
	if m.view != viewDetail {
		return
	}

	width := max(m.width-4, 20)
	height := max(m.height-detailChrome, 3)
	text := m.session.Description()
	key := fmt.Sprintf("%d:%d:%d:%s", m.session.Entry().ID, width, height, text)
	if key == m.descKey {
		return
	}

	if m.desc.Width() != width || m.desc.Height() != height {
		m.desc = viewport.New(viewport.WithWidth(width), viewport.WithHeight(height))
	}
	m.descKey = key
	m.desc.SetContent(m.renderMarkdown(text, width))
	m.desc.GotoTop()
}

// renderMarkdown renders text with glamour, falling back to plain text.
func (m *Model) renderMarkdown(text string, width int) string {
	if m.markdown == nil || m.mdWidth != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStyles(styles.GlamourStyle()),
			glamour.WithWordWrap(width-2),
		)
		if err != nil {
			m.deps.Log.Warn().Err(err).Msg("markdown renderer unavailable")
			return text
		}
		m.markdown, m.mdWidth = r, width
	}

	out, err := m.markdown.Render(text)
	if err != nil {
		m.deps.Log.Warn().Err(err).Msg("failed to render description")
		return text
	}
	return strings.Trim(out, "\n")
}
