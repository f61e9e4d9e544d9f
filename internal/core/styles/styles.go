// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	CommandStyle       lipgloss.Style
	DividerStyle       lipgloss.Style

	// Text styles.
	TextForegroundStyle     lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextMutedStyle          lipgloss.Style
	TextPrimaryStyle        lipgloss.Style
	TextPrimaryBoldStyle    lipgloss.Style
	TextErrorStyle          lipgloss.Style
	TextSuccessStyle        lipgloss.Style
	TextWarningStyle        lipgloss.Style
	TextSurfaceStyle        lipgloss.Style

	// Modal styles.
	ModalStyle          lipgloss.Style
	ModalTitleStyle     lipgloss.Style
	ModalHelpStyle      lipgloss.Style
	ConfirmMessageStyle lipgloss.Style

	HelpDialogModalStyle   lipgloss.Style
	HelpDialogSectionStyle lipgloss.Style
	HelpDialogHelpStyle    lipgloss.Style

	// Form styles.
	FormTitleStyle               lipgloss.Style
	FormFieldStyle               lipgloss.Style
	FormFieldFocusedStyle        lipgloss.Style
	FormErrorStyle               lipgloss.Style
	SelectFieldItemSelectedStyle lipgloss.Style

	// Detail view styles.
	HeaderStyle        lipgloss.Style
	ModeBadgeStyle     lipgloss.Style
	CategoryStyle      lipgloss.Style
	EntryNameStyle     lipgloss.Style
	MaskedNameStyle    lipgloss.Style
	ImageFrameStyle    lipgloss.Style
	ImageRefStyle      lipgloss.Style
	CounterStyle       lipgloss.Style
	DescriptionStyle   lipgloss.Style
	KeyEnabledStyle    lipgloss.Style
	KeyDisabledStyle   lipgloss.Style
	StatusBarStyle     lipgloss.Style
	ListSelectedStyle  lipgloss.Style
	ListNormalStyle    lipgloss.Style
	ListSubtitleStyle  lipgloss.Style
	SpinnerStyle       lipgloss.Style
	PlaceholderStyle   lipgloss.Style

	// Toast styles.
	ToastInfoStyle    lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	CommandStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextForegroundBoldStyle = TextForegroundStyle.Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	TextPrimaryBoldStyle = TextPrimaryStyle.Bold(true)
	TextErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	TextSurfaceStyle = lipgloss.NewStyle().Foreground(ColorSurface)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground).
		MarginBottom(1)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	ConfirmMessageStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		MarginBottom(1)

	HelpDialogModalStyle = ModalStyle
	HelpDialogSectionStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	HelpDialogHelpStyle = ModalHelpStyle

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	SelectFieldItemSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)
	ModeBadgeStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorWarning).
		Bold(true).
		Padding(0, 1)
	CategoryStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)
	EntryNameStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	MaskedNameStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true)
	ImageFrameStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	ImageRefStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Underline(true)
	CounterStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	DescriptionStyle = lipgloss.NewStyle().
		Padding(0, 1)
	KeyEnabledStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	KeyDisabledStyle = lipgloss.NewStyle().
		Foreground(ColorSurface).
		Strikethrough(true)
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 1)
	ListSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	ListNormalStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	ListSubtitleStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	SpinnerStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary)
	PlaceholderStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)

	toastBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	ToastInfoStyle = toastBase.
		BorderForeground(ColorPrimary).
		Foreground(ColorForeground)
	ToastWarningStyle = toastBase.
		BorderForeground(ColorWarning).
		Foreground(ColorWarning)
	ToastErrorStyle = toastBase.
		BorderForeground(ColorError).
		Foreground(ColorError)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
