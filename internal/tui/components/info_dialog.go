package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/zukan/internal/core/styles"
)

const (
	infoMaxHeight = 30
	infoMargin    = 4
	infoChrome    = 6 // title, divider, help and padding
	infoMinWidth  = 50
)

// InfoStatus annotates an info row with an outcome.
type InfoStatus int

const (
	InfoStatusNone InfoStatus = iota
	InfoStatusPass
	InfoStatusWarn
	InfoStatusFail
)

// InfoItem is a single labeled row in an info section.
type InfoItem struct {
	Label  string
	Value  string
	Status InfoStatus
}

// InfoSection groups related info items under a section title.
type InfoSection struct {
	Title string
	Items []InfoItem
}

// InfoDialog shows read-only details in a scrollable modal.
type InfoDialog struct {
	title    string
	sections []InfoSection
	width    int
	height   int
	viewport viewport.Model
}

// NewInfoDialog sizes the dialog for a width x height screen.
func NewInfoDialog(title string, sections []InfoSection, width, height int) *InfoDialog {
	d := &InfoDialog{title: title, sections: sections}
	d.SetSize(width, height)
	return d
}

// SetSize recomputes the modal for a new screen size.
func (d *InfoDialog) SetSize(width, height int) {
	d.width = min(max(width*2/3, infoMinWidth), width-infoMargin)
	d.height = min(height-infoMargin, infoMaxHeight)

	d.viewport = viewport.New(
		viewport.WithWidth(max(d.width-4, 1)),
		viewport.WithHeight(max(d.height-infoChrome, 1)),
	)
	d.viewport.SetContent(d.render())
}

func (d *InfoDialog) render() string {
	rule := styles.TextSurfaceStyle.Render(strings.Repeat("─", max(d.width-6, 1)))

	var lines []string
	for i, section := range d.sections {
		if i > 0 {
			lines = append(lines, "")
		}
		if section.Title != "" {
			lines = append(lines, styles.HelpDialogSectionStyle.Render(section.Title), rule)
		}
		for _, item := range section.Items {
			lines = append(lines, infoRow(item))
		}
	}
	return strings.Join(lines, "\n")
}

func infoRow(item InfoItem) string {
	row := styles.TextForegroundBoldStyle.Render(item.Label) + "  " + styles.TextMutedStyle.Render(item.Value)

	switch item.Status {
	case InfoStatusPass:
		return styles.TextSuccessStyle.Render("✔") + " " + row
	case InfoStatusWarn:
		return styles.TextWarningStyle.Render("●") + " " + row
	case InfoStatusFail:
		return styles.TextErrorStyle.Render("✘") + " " + row
	}
	return row
}

// ScrollUp scrolls the viewport up.
func (d *InfoDialog) ScrollUp() { d.viewport.ScrollUp(1) }

// ScrollDown scrolls the viewport down.
func (d *InfoDialog) ScrollDown() { d.viewport.ScrollDown(1) }

// Overlay renders the dialog centered over the provided background.
func (d *InfoDialog) Overlay(background string, width, height int) string {
	title := d.title
	if d.viewport.TotalLineCount() > d.viewport.VisibleLineCount() {
		title += styles.TextMutedStyle.Render(fmt.Sprintf(" (%.0f%%)", d.viewport.ScrollPercent()*100))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(title),
		styles.TextSurfaceStyle.Render(strings.Repeat("─", max(d.width-6, 1))),
		d.viewport.View(),
		styles.ModalHelpStyle.Render("j/k scroll  esc/i close"),
	)

	modal := styles.ModalStyle.Width(d.width).Height(d.height).Render(content)
	return Center(background, modal, width, height)
}
