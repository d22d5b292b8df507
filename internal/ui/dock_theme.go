package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// DockTheme makes the window background transparent so only the dock
// surface is drawn, and tightens padding for menus and the settings form.
// Fonts and icons come from the embedded default theme.
type DockTheme struct {
	fyne.Theme
}

func NewDockTheme() fyne.Theme {
	return &DockTheme{Theme: theme.DefaultTheme()}
}

var (
	menuBackgroundDark  = color.NRGBA{R: 40, G: 40, B: 40, A: 240}
	menuBackgroundLight = color.NRGBA{R: 245, G: 245, B: 245, A: 240}
)

// Color overrides the window and popup backgrounds
func (t *DockTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.Transparent
	case theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		if variant == theme.VariantDark {
			return menuBackgroundDark
		}
		return menuBackgroundLight
	default:
		return t.Theme.Color(name, variant)
	}
}

// Size shrinks padding; icon spacing is laid out by dockRowLayout
func (t *DockTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 2
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	default:
		return t.Theme.Size(name)
	}
}
