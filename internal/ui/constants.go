package ui

import (
	"image/color"

	"github.com/dockstar/dockstar/internal/dock"
)

// UI-wide constants to avoid magic numbers scattered across the codebase.

// Icon sizing
const (
	IconSize     float32 = dock.IconSize
	IconSpacing  float32 = dock.IconPadding
	DockPadding  float32 = dock.DockMargin / 2
	CornerRadius float32 = 5
	BorderWidth  float32 = 2
)

// Colors
var (
	DockBackgroundColor = color.NRGBA{R: 128, G: 128, B: 128, A: 128}
	DockBorderColor     = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	PlaceholderColor    = color.NRGBA{R: 160, G: 160, B: 164, A: 255}
)

// AppID identifies the app for Fyne preferences storage
const AppID = "com.dockstar.dock"
