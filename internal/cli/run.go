package cli

import (
	"context"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/dockstar/dockstar/internal/config"
	"github.com/dockstar/dockstar/internal/dock"
	"github.com/dockstar/dockstar/internal/logging"
	"github.com/dockstar/dockstar/internal/model"
	"github.com/dockstar/dockstar/internal/platform"
	"github.com/dockstar/dockstar/internal/shutdown"
	"github.com/dockstar/dockstar/internal/ui"
)

// runDock starts the GUI and blocks until the dock exits
func runDock(cmd *cobra.Command) error {
	logger := logging.NewLogger(debug)
	defer func() { _ = logger.Sync() }()

	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	a := app.NewWithID(ui.AppID)
	a.Settings().SetTheme(ui.NewDockTheme())
	a.SetIcon(ui.AppIconResource())

	settings := config.NewSettings(a)
	screen, err := screenOrDefault(settings.GetScreenSize())
	if err != nil {
		return err
	}

	state := dock.NewState(fsys, screen, logger)
	state.Load(path)

	window := ui.NewDockWindow(a, "dockstar")
	dockUI := ui.NewDockUI(a, window, state, settings, path, logger)
	if state.Status() == model.StatusDefault {
		// Fyne can't place windows, so a fresh dock is shown centered while the
		// recorded position stays 50 px above the bottom edge.
		window.CenterOnScreen()
	}

	registry := shutdown.NewRegistry(logger)
	registry.Register("save dock config", func() error {
		_, err := state.Save(path)
		return err
	})
	a.Lifecycle().SetOnStopped(registry.Run)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	shutdown.NotifySignals(ctx, func(sig os.Signal) {
		logger.Infow("signal received, quitting", "signal", sig.String())
		fyne.Do(a.Quit)
	})

	if settings.GetWatchConfig() && !noWatch {
		go func() {
			err := platform.WatchFile(ctx, path, func() {
				fyne.Do(func() { state.Reload(path) })
			}, logger)
			if err != nil {
				logger.Warnw("config watcher stopped", "path", path, "error", err)
			}
		}()
	}

	logger.Infow("starting dock", "config", path, "icons", len(dockUI.Views()), "screen", screen)
	window.ShowAndRun()

	// No-op when OnStopped already ran the hooks
	registry.Run()
	return nil
}
