package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/stretchr/testify/assert"

	"github.com/dockstar/dockstar/internal/dock"
)

func TestDockRowLayout_MinSizeMatchesWindowSize(t *testing.T) {
	l := newDockRowLayout()

	for n := 0; n <= 8; n++ {
		objects := make([]fyne.CanvasObject, n)
		for i := range objects {
			objects[i] = canvas.NewRectangle(PlaceholderColor)
		}

		expected := dock.ComputeWindowSize(n)
		assert.Equal(t, fyne.NewSize(float32(expected.Width), float32(expected.Height)), l.MinSize(objects), "n=%d", n)
	}
}

func TestDockRowLayout_Layout(t *testing.T) {
	l := newDockRowLayout()

	a := canvas.NewRectangle(PlaceholderColor)
	hidden := canvas.NewRectangle(PlaceholderColor)
	hidden.Hide()
	b := canvas.NewRectangle(PlaceholderColor)
	objects := []fyne.CanvasObject{a, hidden, b}

	l.Layout(objects, l.MinSize(objects))

	assert.Equal(t, fyne.NewPos(20, 10), a.Position())
	assert.Equal(t, fyne.NewPos(88, 10), b.Position())
	assert.Equal(t, fyne.NewSquareSize(IconSize), a.Size())
	assert.Equal(t, fyne.NewSize(156, 68), l.MinSize(objects))
}
