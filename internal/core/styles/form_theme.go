package styles

import (
	"image/color"

	"github.com/charmbracelet/huh"
	lipglossv1 "github.com/charmbracelet/lipgloss"
)

// FormTheme returns a huh theme drawn from the active palette. huh renders
// with lipgloss v1, so palette colors are passed through as hex strings.
func FormTheme() *huh.Theme {
	var (
		primary   = v1Color(ColorPrimary)
		secondary = v1Color(ColorSecondary)
		fg        = v1Color(ColorForeground)
		muted     = v1Color(ColorMuted)
		errc      = v1Color(ColorError)
	)

	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(primary)
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errc)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errc)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(secondary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(fg)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipglossv1.HiddenBorder())

	return t
}

func v1Color(c color.Color) lipglossv1.TerminalColor {
	hex := colorHexPtr(c)
	if hex == nil {
		return lipglossv1.NoColor{}
	}
	return lipglossv1.Color(*hex)
}
