package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"codeberg.org/snonux/linguist/internal/session"
)

// variantTheme pins the default theme to one variant so dark mode can be
// toggled from inside the application
type variantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func newVariantTheme(t session.Theme) fyne.Theme {
	variant := theme.VariantLight
	if t == session.ThemeDark {
		variant = theme.VariantDark
	}
	return &variantTheme{Theme: theme.DefaultTheme(), variant: variant}
}

// Color implements fyne.Theme
func (t *variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}
