package dock

import "github.com/dockstar/dockstar/internal/model"

// Layout metrics in pixels
const (
	IconSize     = 48
	IconPadding  = 20 // horizontal room per icon
	DockMargin   = 20 // total margin around the row
	BottomOffset = 50 // gap between dock and bottom screen edge
)

// ComputeWindowSize returns the dock window size for iconCount icons.
// Negative counts are treated as zero.
func ComputeWindowSize(iconCount int) model.Size {
	if iconCount < 0 {
		iconCount = 0
	}
	return model.Size{
		Width:  (IconSize+IconPadding)*iconCount + DockMargin,
		Height: IconSize + IconPadding,
	}
}

// ComputeInitialPosition centers the dock horizontally and places it
// BottomOffset pixels above the bottom edge of the screen.
func ComputeInitialPosition(screenWidth, screenHeight, dockWidth, dockHeight int) model.Position {
	return model.Position{
		X: (screenWidth - dockWidth) / 2,
		Y: screenHeight - dockHeight - BottomOffset,
	}
}
