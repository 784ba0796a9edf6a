package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// fyneTheme maps a Theme onto Fyne's colour names and defers everything else
// to the built-in theme.
type fyneTheme struct {
	t    *Theme
	base fyne.Theme
}

// Fyne returns a fyne.Theme that paints the window with t's colours.
func (t *Theme) Fyne() fyne.Theme {
	return &fyneTheme{t: t, base: fynetheme.DefaultTheme()}
}

func (f *fyneTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case fynetheme.ColorNameBackground:
		return f.t.Background
	case fynetheme.ColorNameForeground:
		return f.t.Text
	case fynetheme.ColorNamePrimary:
		return f.t.Accent
	case fynetheme.ColorNameInputBackground:
		return f.t.EditorBackground
	case fynetheme.ColorNameMenuBackground, fynetheme.ColorNameOverlayBackground:
		return f.t.SidebarBackground
	}
	return f.base.Color(name, variant)
}

func (f *fyneTheme) Font(style fyne.TextStyle) fyne.Resource {
	return f.base.Font(style)
}

func (f *fyneTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return f.base.Icon(name)
}

func (f *fyneTheme) Size(name fyne.ThemeSizeName) float32 {
	return f.base.Size(name)
}
