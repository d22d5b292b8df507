package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// dockSurface is the dock background: it draws the panel and receives
// secondary taps and drags that miss every icon.
type dockSurface struct {
	widget.BaseWidget

	background *canvas.Rectangle
	row        *fyne.Container

	onSecondaryTapped func(pos fyne.Position)
	onDragged         func(delta fyne.Delta)
	onDragEnd         func()
}

func newDockSurface(row *fyne.Container) *dockSurface {
	bg := canvas.NewRectangle(DockBackgroundColor)
	bg.StrokeColor = DockBorderColor
	bg.StrokeWidth = BorderWidth
	bg.CornerRadius = CornerRadius

	s := &dockSurface{background: bg, row: row}
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer implements fyne.Widget
func (s *dockSurface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(s.background, s.row))
}

// TappedSecondary implements fyne.SecondaryTappable
func (s *dockSurface) TappedSecondary(e *fyne.PointEvent) {
	if s.onSecondaryTapped != nil {
		s.onSecondaryTapped(e.AbsolutePosition)
	}
}

// Dragged implements fyne.Draggable
func (s *dockSurface) Dragged(e *fyne.DragEvent) {
	if s.onDragged != nil {
		s.onDragged(e.Dragged)
	}
}

// DragEnd implements fyne.Draggable
func (s *dockSurface) DragEnd() {
	if s.onDragEnd != nil {
		s.onDragEnd()
	}
}
