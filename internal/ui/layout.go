package ui

import (
	"fyne.io/fyne/v2"
)

// dockRowLayout places icons left to right in fixed slots. Every slot is
// IconSize+IconSpacing wide with the icon centered, and DockPadding surrounds
// the row, so the row's MinSize always matches dock.ComputeWindowSize.
type dockRowLayout struct{}

func newDockRowLayout() fyne.Layout {
	return &dockRowLayout{}
}

// slotOrigin returns the top-left of the icon in slot i
func slotOrigin(i int) fyne.Position {
	slot := IconSize + IconSpacing
	return fyne.NewPos(DockPadding+float32(i)*slot+IconSpacing/2, IconSpacing/2)
}

// Layout positions each visible object in its slot
func (l *dockRowLayout) Layout(objects []fyne.CanvasObject, _ fyne.Size) {
	i := 0
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		o.Move(slotOrigin(i))
		o.Resize(fyne.NewSquareSize(IconSize))
		i++
	}
}

// MinSize returns the width needed for every visible object
func (l *dockRowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	n := 0
	for _, o := range objects {
		if o.Visible() {
			n++
		}
	}
	return fyne.NewSize(float32(n)*(IconSize+IconSpacing)+2*DockPadding, IconSize+IconSpacing)
}
