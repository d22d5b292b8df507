package dock

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/mitchellh/hashstructure"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/dockstar/dockstar/internal/model"
	"github.com/dockstar/dockstar/internal/platform"
)

// File permissions for the config document
const (
	ConfigFilePermissions = 0644
)

// DefaultIconPaths is the icon list used when no config file exists
var DefaultIconPaths = []string{
	"/usr/share/icons/hicolor/scalable/apps/firefox.svg",
	"/usr/share/icons/breeze/apps/48/konsole.svg",
	"/usr/share/icons/breeze/apps/48/system-file-manager.svg",
	"/usr/share/icons/breeze/apps/48/kate.svg",
	"/usr/share/icons/breeze/apps/48/systemsettings.svg",
}

// DefaultConfig returns the built-in config positioned for the given screen
func DefaultConfig(screen model.Size) model.DockConfig {
	size := ComputeWindowSize(len(DefaultIconPaths))
	pos := ComputeInitialPosition(screen.Width, screen.Height, size.Width, size.Height)
	return model.NewDockConfig(DefaultIconPaths, pos)
}

// State holds the dock's icon list and position
type State struct {
	mu       sync.RWMutex
	fs       afero.Fs
	screen   model.Size
	logger   *zap.SugaredLogger
	onChange func(model.DockConfig) // callback for UI updates

	cfg        model.DockConfig
	status     model.Status
	cleanState model.Status // status to restore when edits cancel out
	cleanHash  uint64       // content hash at the last load or save
}

// NewState creates an unloaded dock state backed by fsys. screen is used to
// position the default config.
func NewState(fsys afero.Fs, screen model.Size, logger *zap.SugaredLogger) *State {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &State{
		fs:         fsys,
		screen:     screen,
		logger:     logger,
		status:     model.StatusUnloaded,
		cleanState: model.StatusUnloaded,
		cfg:        model.DockConfig{Icons: []model.IconEntry{}},
	}
}

// OnChange sets the callback invoked after every mutation
func (s *State) OnChange(callback func(model.DockConfig)) {
	s.mu.Lock()
	s.onChange = callback
	s.mu.Unlock()
}

// Load reads the config at path. A missing file yields the built-in
// defaults; an unreadable or malformed file yields an empty config and a
// logged warning.
func (s *State) Load(path string) model.DockConfig {
	cfg, status := s.read(path)

	s.mu.Lock()
	s.setClean(cfg, status)
	out := s.cfg.Clone()
	s.mu.Unlock()

	s.logger.Infow("dock config loaded", "path", path, "status", status, "icons", len(cfg.Icons))
	s.notify()
	return out
}

// Reload re-reads path and replaces the in-memory state only when the file
// holds a valid document that differs from it and there are no unsaved
// edits. Returns true if replaced.
func (s *State) Reload(path string) bool {
	doc, err := ReadDocument(s.fs, path)
	if err != nil {
		s.logger.Debugw("skipping config reload", "path", path, "error", err)
		return false
	}
	cfg := doc.ToConfig()

	s.mu.Lock()
	if hashConfig(s.cfg) == hashConfig(cfg) {
		s.mu.Unlock()
		return false
	}
	if s.status == model.StatusDirty {
		s.mu.Unlock()
		s.logger.Warnw("config changed on disk, keeping unsaved dock edits", "path", path)
		return false
	}
	s.setClean(cfg, model.StatusLoaded)
	s.mu.Unlock()

	s.logger.Infow("dock config reloaded", "path", path, "icons", len(cfg.Icons))
	s.notify()
	return true
}

// Save writes the current state to path, creating parent directories and
// overwriting any existing file. The document is returned even when the
// write fails.
func (s *State) Save(path string) (model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.cfg.ToDocument()
	if err := WriteDocument(s.fs, path, doc); err != nil {
		return doc, err
	}
	s.status = model.StatusSaved
	s.cleanState = model.StatusSaved
	s.cleanHash = hashConfig(s.cfg)

	s.logger.Debugw("dock config saved", "path", path, "icons", len(doc.Icons))
	return doc, nil
}

// AddIcon appends an icon to the end of the row
func (s *State) AddIcon(path string) {
	s.mu.Lock()
	s.cfg.Icons = append(s.cfg.Icons, model.IconEntry{Path: path})
	s.markChanged()
	s.mu.Unlock()

	s.notify()
}

// RemoveIcon removes the icon at index. Out of range indexes leave the list
// untouched and return false.
func (s *State) RemoveIcon(index int) bool {
	s.mu.Lock()
	if index < 0 || index >= len(s.cfg.Icons) {
		s.mu.Unlock()
		return false
	}
	icons := make([]model.IconEntry, 0, len(s.cfg.Icons)-1)
	icons = append(icons, s.cfg.Icons[:index]...)
	icons = append(icons, s.cfg.Icons[index+1:]...)
	s.cfg.Icons = icons
	s.markChanged()
	s.mu.Unlock()

	s.notify()
	return true
}

// Icons returns a copy of the icon list in display order
func (s *State) Icons() []model.IconEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Clone().Icons
}

// Len returns the number of icons
func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cfg.Icons)
}

// Position returns the recorded window position
func (s *State) Position() model.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Position
}

// SetPosition records a new window position
func (s *State) SetPosition(pos model.Position) {
	s.mu.Lock()
	if s.cfg.Position == pos {
		s.mu.Unlock()
		return
	}
	s.cfg.Position = pos
	s.markChanged()
	s.mu.Unlock()

	s.notify()
}

// MoveBy shifts the recorded window position by a drag delta
func (s *State) MoveBy(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	pos := s.Position()
	s.SetPosition(model.Position{X: pos.X + dx, Y: pos.Y + dy})
}

// WindowSize returns the dock window size for the current icon count
func (s *State) WindowSize() model.Size {
	return ComputeWindowSize(s.Len())
}

// Config returns a snapshot of the whole state
func (s *State) Config() model.DockConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Clone()
}

// Status returns the lifecycle status
func (s *State) Status() model.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Dirty reports whether the state differs from what was last loaded or saved
func (s *State) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return hashConfig(s.cfg) != s.cleanHash
}

// read resolves path into a config and the status it implies
func (s *State) read(path string) (model.DockConfig, model.Status) {
	doc, err := ReadDocument(s.fs, path)
	switch {
	case err == nil:
		return doc.ToConfig(), model.StatusLoaded
	case errors.Is(err, fs.ErrNotExist):
		return DefaultConfig(s.screen), model.StatusDefault
	default:
		s.logger.Warnw("config unreadable, starting with an empty dock", "path", path, "error", err)
		return model.DockConfig{Icons: []model.IconEntry{}}, model.StatusLoaded
	}
}

// setClean replaces the state and records it as the clean baseline. Caller
// holds s.mu.
func (s *State) setClean(cfg model.DockConfig, status model.Status) {
	s.cfg = cfg.Clone()
	s.status = status
	s.cleanState = status
	s.cleanHash = hashConfig(s.cfg)
}

// markChanged updates the status after a mutation. Caller holds s.mu.
func (s *State) markChanged() {
	if hashConfig(s.cfg) == s.cleanHash {
		s.status = s.cleanState
		return
	}
	s.status = model.StatusDirty
}

func (s *State) notify() {
	s.mu.RLock()
	callback := s.onChange
	cfg := s.cfg.Clone()
	s.mu.RUnlock()

	if callback != nil {
		callback(cfg)
	}
}

// ReadDocument reads and decodes a config document
func ReadDocument(fsys afero.Fs, path string) (model.Document, error) {
	var doc model.Document
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return doc, err
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.Document{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if doc.Icons == nil {
		doc.Icons = []string{}
	}
	return doc, nil
}

// WriteDocument encodes doc as indented JSON and writes it to path,
// creating parent directories as needed
func WriteDocument(fsys afero.Fs, path string, doc model.Document) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := platform.CreateDirectoryIfNotExists(fsys, filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := afero.WriteFile(fsys, path, data, ConfigFilePermissions); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

func hashConfig(cfg model.DockConfig) uint64 {
	h, err := hashstructure.Hash(cfg, nil)
	if err != nil {
		return 0
	}
	return h
}
