package ui

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dockstar/dockstar/internal/config"
	"github.com/dockstar/dockstar/internal/dock"
	"github.com/dockstar/dockstar/internal/model"
)

const testConfigPath = "/config/dockstar/config.json"

type testDock struct {
	ui       *DockUI
	state    *dock.State
	settings *config.Settings
	window   fyne.Window
	fs       afero.Fs
}

func newTestDock(t *testing.T) *testDock {
	t.Helper()

	fsys := afero.NewMemMapFs()
	prev := iconFs
	iconFs = fsys
	t.Cleanup(func() { iconFs = prev })

	app := test.NewApp()
	settings := config.NewSettings(app)
	state := dock.NewState(fsys, model.Size{Width: 1920, Height: 1080}, nil)
	state.Load(testConfigPath)

	window := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(window.Close)

	ui := NewDockUI(app, window, state, settings, testConfigPath, nil)
	return &testDock{ui: ui, state: state, settings: settings, window: window, fs: fsys}
}

func paths(views []*IconView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.Path)
	}
	return out
}

func TestNewDockUI_BuildsViewPerIcon(t *testing.T) {
	td := newTestDock(t)

	views := td.ui.Views()
	require.Len(t, views, len(dock.DefaultIconPaths))
	assert.Equal(t, dock.DefaultIconPaths, paths(views))
	for i, v := range views {
		assert.Equal(t, i, v.Index)
		assert.False(t, v.Loaded, "missing files render as placeholders")
	}
}

func TestDockUI_ViewsFollowState(t *testing.T) {
	td := newTestDock(t)

	td.state.AddIcon("/icons/new.svg")
	views := td.ui.Views()
	require.Len(t, views, 6)
	assert.Equal(t, "/icons/new.svg", views[5].Path)

	td.ui.removeIcon(0, views[0].Path)
	views = td.ui.Views()
	require.Len(t, views, 5)
	assert.Equal(t, td.state.Config().Paths(), paths(views))
	for i, v := range views {
		assert.Equal(t, i, v.Index, "views are re-keyed after removal")
	}

	td.ui.removeIcon(42, "/icons/new.svg")
	assert.Len(t, td.ui.Views(), 5)
}

func TestDockUI_RemoveAfterReloadKeepsOtherIcons(t *testing.T) {
	td := newTestDock(t)
	stale := td.ui.Views()[4]

	others := []string{"/x.png", "/y.png", "/z.png", "/w.png", "/v.png", "/u.png"}
	require.NoError(t, dock.WriteDocument(td.fs, testConfigPath, model.Document{Icons: others}))
	require.True(t, td.state.Reload(testConfigPath))

	td.ui.removeIcon(stale.Index, stale.Path)

	assert.Equal(t, others, td.state.Config().Paths())
	assert.Equal(t, others, paths(td.ui.Views()))
}

func TestDockUI_PositionChangeKeepsViews(t *testing.T) {
	td := newTestDock(t)
	before := td.ui.Views()

	td.state.MoveBy(10, 10)

	assert.Equal(t, before, td.ui.Views())
	for i := range before {
		assert.Same(t, before[i], td.ui.Views()[i])
	}
}

func TestDockUI_DragMovesRecordedPosition(t *testing.T) {
	td := newTestDock(t)
	start := td.state.Position()

	td.ui.onDragged(fyne.Delta{DX: 2.5, DY: -1.5})
	td.ui.onDragged(fyne.Delta{DX: 2.5, DY: -1.5})
	td.ui.onDragEnd()

	assert.Equal(t, model.Position{X: start.X + 5, Y: start.Y - 3}, td.state.Position())
	assert.Equal(t, fyne.Delta{}, td.ui.dragRemainder)
}

func TestDockUI_IconMenu(t *testing.T) {
	td := newTestDock(t)

	test.TapSecondary(td.ui.Views()[1])

	assert.NotNil(t, td.window.Canvas().Overlays().Top(), "context menu should be shown")
}

func TestDockUI_DockMenu(t *testing.T) {
	td := newTestDock(t)

	test.TapSecondary(td.ui.surface)

	assert.NotNil(t, td.window.Canvas().Overlays().Top(), "context menu should be shown")
}

func TestDockUI_AddIconPath(t *testing.T) {
	td := newTestDock(t)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	require.NoError(t, afero.WriteFile(td.fs, "/home/user/icons/app.png", buf.Bytes(), 0644))

	td.ui.addIconPath("/home/user/icons/app.png")
	td.ui.addIconPath("")

	views := td.ui.Views()
	require.Len(t, views, 6)
	assert.True(t, views[5].Loaded)
	assert.Equal(t, "/home/user/icons", td.settings.GetIconDirectory())
}

func TestDockUI_Save(t *testing.T) {
	td := newTestDock(t)
	td.ui.removeIcon(4, dock.DefaultIconPaths[4])

	td.ui.Save()

	doc, err := dock.ReadDocument(td.fs, testConfigPath)
	require.NoError(t, err)
	assert.Equal(t, dock.DefaultIconPaths[:4], doc.Icons)
	assert.Equal(t, model.StatusSaved, td.state.Status())
}

func TestDockUI_ReloadRebuildsViews(t *testing.T) {
	td := newTestDock(t)

	require.NoError(t, dock.WriteDocument(td.fs, testConfigPath, model.Document{
		Icons:    []string{"/one.png"},
		Position: model.Position{X: 1, Y: 1},
	}))
	require.True(t, td.state.Reload(testConfigPath))

	assert.Equal(t, []string{"/one.png"}, paths(td.ui.Views()))
}
