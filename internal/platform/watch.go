package platform

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// WatchFile calls onChange whenever path is written, created or renamed into
// place. The parent directory is watched so editors that replace the file
// are still seen. Blocks until ctx is cancelled.
func WatchFile(ctx context.Context, path string, onChange func(), logger *zap.SugaredLogger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := CreateDirectoryIfNotExists(osFs, dir); err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		return err
	}
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&fsnotify.Chmod == fsnotify.Chmod {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Debugw("watcher error", "path", path, "error", err)
		}
	}
}
