package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// IconView renders one dock icon. Index is the position of its entry in the
// dock state at the time the view was built.
type IconView struct {
	widget.BaseWidget

	Index  int
	Path   string
	Loaded bool // false when the gray placeholder is shown

	content fyne.CanvasObject

	OnSecondaryTapped func(index int, pos fyne.Position)
	OnDragged         func(delta fyne.Delta)
	OnDragEnd         func()
}

// NewIconView creates a view for the icon at index
func NewIconView(index int, path string) *IconView {
	content, loaded := loadIconImage(path)
	v := &IconView{
		Index:   index,
		Path:    path,
		Loaded:  loaded,
		content: content,
	}
	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget
func (v *IconView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(v.content))
}

// MinSize keeps every icon the same size regardless of its image
func (v *IconView) MinSize() fyne.Size {
	return fyne.NewSquareSize(IconSize)
}

// TappedSecondary opens the icon context menu
func (v *IconView) TappedSecondary(e *fyne.PointEvent) {
	if v.OnSecondaryTapped != nil {
		v.OnSecondaryTapped(v.Index, e.AbsolutePosition)
	}
}

// Dragged forwards drags so the dock can be moved by grabbing an icon
func (v *IconView) Dragged(e *fyne.DragEvent) {
	if v.OnDragged != nil {
		v.OnDragged(e.Dragged)
	}
}

// DragEnd implements fyne.Draggable
func (v *IconView) DragEnd() {
	if v.OnDragEnd != nil {
		v.OnDragEnd()
	}
}
