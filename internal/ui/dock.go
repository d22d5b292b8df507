package ui

import (
	"path/filepath"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/dockstar/dockstar/internal/config"
	"github.com/dockstar/dockstar/internal/dock"
	"github.com/dockstar/dockstar/internal/model"
	"github.com/dockstar/dockstar/internal/platform"
)

// Picker window sizing
const (
	PickerWidth  float32 = 720
	PickerHeight float32 = 520
)

// DockUI is the dock window and everything drawn in it
type DockUI struct {
	app          fyne.App
	window       fyne.Window
	state        dock.Dock
	settings     *config.Settings
	localization *Localization
	logger       *zap.SugaredLogger
	configPath   string

	row     *fyne.Container
	surface *dockSurface

	// views are keyed by index into state.Icons() as of the last rebuild
	views    []*IconView
	rendered []string

	// sub-pixel drag remainder not yet applied to the state
	dragRemainder fyne.Delta
}

// NewDockWindow creates the dock window: borderless when the desktop driver
// supports splash windows, a plain fixed-size window otherwise.
func NewDockWindow(app fyne.App, title string) fyne.Window {
	var w fyne.Window
	if drv, ok := app.Driver().(desktop.Driver); ok {
		w = drv.CreateSplashWindow()
		w.SetTitle(title)
	} else {
		w = app.NewWindow(title)
	}
	w.SetPadded(false)
	w.SetFixedSize(true)
	return w
}

// NewDockUI builds the dock content into window and keeps it in sync with state
func NewDockUI(app fyne.App, window fyne.Window, state dock.Dock, settings *config.Settings, configPath string, logger *zap.SugaredLogger) *DockUI {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &DockUI{
		app:          app,
		window:       window,
		state:        state,
		settings:     settings,
		localization: localization,
		logger:       logger,
		configPath:   configPath,
	}

	ui.setupUI()
	state.OnChange(func(model.DockConfig) { ui.refresh() })
	ui.refresh()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *DockUI) setupUI() {
	ui.row = container.New(newDockRowLayout())
	ui.surface = newDockSurface(ui.row)
	ui.surface.onSecondaryTapped = ui.showDockMenu
	ui.surface.onDragged = ui.onDragged
	ui.surface.onDragEnd = ui.onDragEnd

	ui.window.SetTitle(ui.localization.Text(KeyAppTitle))
	ui.window.SetContent(ui.surface)
	ui.setupTray()

	ui.logger.Debugw("dock UI set up", "config", ui.configPath)
}

// setupTray installs the system tray menu when the app runs on a desktop
func (ui *DockUI) setupTray() {
	desk, ok := ui.app.(desktop.App)
	if !ok {
		return
	}

	quit := fyne.NewMenuItem(ui.localization.Text(KeyQuit), ui.app.Quit)
	quit.IsQuit = true

	menu := fyne.NewMenu(ui.localization.Text(KeyAppTitle),
		fyne.NewMenuItem(ui.localization.Text(KeyAddIcon), ui.onAddIcon),
		fyne.NewMenuItem(ui.localization.Text(KeySaveNow), ui.Save),
		fyne.NewMenuItem(ui.localization.Text(KeySettings), ui.onShowSettings),
		fyne.NewMenuItemSeparator(),
		quit,
	)
	desk.SetSystemTrayMenu(menu)
	desk.SetSystemTrayIcon(AppIconResource())
}

// refresh rebuilds icon views when the icon list changed and resizes the window
func (ui *DockUI) refresh() {
	cfg := ui.state.Config()
	paths := cfg.Paths()

	if ui.views == nil || !slices.Equal(paths, ui.rendered) {
		ui.rebuildViews(paths)
	}

	size := dock.ComputeWindowSize(len(paths))
	ui.window.Resize(fyne.NewSize(float32(size.Width), float32(size.Height)))
}

// rebuildViews replaces every icon view; views never outlive a list change
func (ui *DockUI) rebuildViews(paths []string) {
	views := make([]*IconView, 0, len(paths))
	objects := make([]fyne.CanvasObject, 0, len(paths))
	for i, p := range paths {
		v := NewIconView(i, p)
		v.OnSecondaryTapped = ui.showIconMenu
		v.OnDragged = ui.onDragged
		v.OnDragEnd = ui.onDragEnd
		if !v.Loaded {
			ui.logger.Debugw("icon image unavailable, using placeholder", "path", p)
		}
		views = append(views, v)
		objects = append(objects, v)
	}

	ui.views = views
	ui.rendered = paths
	ui.row.Objects = objects
	ui.row.Refresh()
}

// showIconMenu shows the context menu for the icon at index
func (ui *DockUI) showIconMenu(index int, pos fyne.Position) {
	if index < 0 || index >= len(ui.views) {
		return
	}
	path := ui.views[index].Path

	menu := fyne.NewMenu("",
		fyne.NewMenuItem(ui.localization.Text(KeyRemoveIcon), func() {
			ui.removeIcon(index, path)
		}),
		fyne.NewMenuItem(ui.localization.Text(KeyShowInManager), func() {
			ui.onRevealFile(path)
		}),
	)
	widget.ShowPopUpMenuAtPosition(menu, ui.window.Canvas(), pos)
}

// showDockMenu shows the context menu for the dock background
func (ui *DockUI) showDockMenu(pos fyne.Position) {
	menu := fyne.NewMenu("",
		fyne.NewMenuItem(ui.localization.Text(KeyAddIcon), ui.onAddIcon),
		fyne.NewMenuItem(ui.localization.Text(KeySettings), ui.onShowSettings),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(ui.localization.Text(KeyQuit), ui.app.Quit),
	)
	widget.ShowPopUpMenuAtPosition(menu, ui.window.Canvas(), pos)
}

// removeIcon removes the icon at index from the state if it still holds path.
// A reload while the menu was open can shift the list under a stale index.
func (ui *DockUI) removeIcon(index int, path string) {
	icons := ui.state.Icons()
	if index < 0 || index >= len(icons) || icons[index].Path != path {
		ui.logger.Debugw("remove ignored, icon list changed", "index", index, "path", path)
		return
	}
	ui.state.RemoveIcon(index)
}

// addIconPath records a picked icon file
func (ui *DockUI) addIconPath(path string) {
	if path == "" {
		return
	}
	ui.settings.SetIconDirectory(filepath.Dir(path))
	ui.state.AddIcon(path)
	ui.logger.Infow("icon added", "path", path, "icons", ui.state.Len())
}

// onAddIcon opens the icon picker in its own window; the dock is too small
// to host a file dialog.
func (ui *DockUI) onAddIcon() {
	picker := ui.app.NewWindow(ui.localization.Text(KeySelectIcon))
	picker.Resize(fyne.NewSize(PickerWidth, PickerHeight))

	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.logger.Warnw("icon picker failed", "error", err)
			return
		}
		if reader == nil {
			return // cancelled
		}
		path := reader.URI().Path()
		reader.Close()

		if !platform.IsSupportedImage(path) {
			ui.logger.Warnw(ui.localization.Text(KeyUnsupportedImage), "path", path)
			return
		}
		ui.addIconPath(path)
	}, picker)

	fd.SetFilter(storage.NewExtensionFileFilter(platform.SupportedImageExtensions))
	if lister, err := storage.ListerForURI(storage.NewFileURI(ui.settings.GetIconDirectory())); err == nil {
		fd.SetLocation(lister)
	}
	fd.SetOnClosed(picker.Close)
	fd.Resize(fyne.NewSize(PickerWidth, PickerHeight))

	picker.Show()
	fd.Show()
}

// onRevealFile handles revealing an icon file in the file manager
func (ui *DockUI) onRevealFile(path string) {
	if err := platform.OpenFileInManager(path); err != nil {
		ui.logger.Warnw(ui.localization.Text(KeyErrorOpeningFile), "path", path, "error", err)
	}
}

// onShowSettings shows the settings dialog in its own window
func (ui *DockUI) onShowSettings() {
	sd := NewSettingsDialog(ui.app, ui.settings, ui.localization)
	sd.OnSaved = func() {
		ui.window.SetTitle(ui.localization.Text(KeyAppTitle))
		ui.setupTray()
		ui.logger.Infow(ui.localization.Text(KeySettingsSaved), "language", ui.localization.Language())
	}
	sd.Show()
}

// onDragged accumulates pointer movement into the recorded dock position
func (ui *DockUI) onDragged(delta fyne.Delta) {
	ui.dragRemainder.DX += delta.DX
	ui.dragRemainder.DY += delta.DY

	dx, dy := int(ui.dragRemainder.DX), int(ui.dragRemainder.DY)
	ui.dragRemainder.DX -= float32(dx)
	ui.dragRemainder.DY -= float32(dy)
	ui.state.MoveBy(dx, dy)
}

// onDragEnd drops any leftover fraction of a pixel
func (ui *DockUI) onDragEnd() {
	ui.dragRemainder = fyne.Delta{}
	ui.logger.Debugw("dock moved", "position", ui.state.Position())
}

// Save writes the dock state to the config file. Failures are logged only.
func (ui *DockUI) Save() {
	if _, err := ui.state.Save(ui.configPath); err != nil {
		ui.logger.Warnw(ui.localization.Text(KeyErrorSavingConfig), "path", ui.configPath, "error", err)
	}
}

// Views returns the current icon views in display order
func (ui *DockUI) Views() []*IconView {
	return ui.views
}
