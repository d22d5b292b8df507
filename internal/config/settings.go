package config

import (
	"fyne.io/fyne/v2"

	"github.com/dockstar/dockstar/internal/model"
	"github.com/dockstar/dockstar/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyIconDirectory = "icon_directory"
	KeyWatchConfig   = "watch_config"
	KeyLanguage      = "app_language"
	KeyScreenWidth   = "screen_width"
	KeyScreenHeight  = "screen_height"
)

// Default values
const (
	DefaultIconDirectory = platform.DefaultIconDirectory
	DefaultWatchConfig   = true
	DefaultLanguage      = "system"
	DefaultScreenWidth   = 1920
	DefaultScreenHeight  = 1080
)

// Screen dimension bounds
const (
	MinScreenDimension = 320
	MaxScreenDimension = 16384
)

// Settings manages user preferences that live outside the dock config file
type Settings struct {
	app fyne.App
}

// NewSettings reads and writes preferences through app
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetIconDirectory returns the directory the icon picker opens in
func (s *Settings) GetIconDirectory() string {
	return s.app.Preferences().StringWithFallback(KeyIconDirectory, DefaultIconDirectory)
}

// SetIconDirectory remembers the directory of the last picked icon
func (s *Settings) SetIconDirectory(dir string) {
	if dir == "" {
		dir = DefaultIconDirectory
	}
	s.app.Preferences().SetString(KeyIconDirectory, dir)
}

// GetWatchConfig returns whether external edits to the config file are picked up
func (s *Settings) GetWatchConfig() bool {
	return s.app.Preferences().BoolWithFallback(KeyWatchConfig, DefaultWatchConfig)
}

// SetWatchConfig sets whether the config file is watched
func (s *Settings) SetWatchConfig(watch bool) {
	s.app.Preferences().SetBool(KeyWatchConfig, watch)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	return s.app.Preferences().StringWithFallback(KeyLanguage, DefaultLanguage)
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetScreenSize returns the screen geometry used to place the default dock.
// Fyne does not report monitor sizes, so this is a preference.
func (s *Settings) GetScreenSize() model.Size {
	w := s.app.Preferences().IntWithFallback(KeyScreenWidth, DefaultScreenWidth)
	h := s.app.Preferences().IntWithFallback(KeyScreenHeight, DefaultScreenHeight)
	return model.Size{Width: clampDimension(w), Height: clampDimension(h)}
}

// SetScreenSize stores the screen geometry
func (s *Settings) SetScreenSize(size model.Size) {
	s.app.Preferences().SetInt(KeyScreenWidth, clampDimension(size.Width))
	s.app.Preferences().SetInt(KeyScreenHeight, clampDimension(size.Height))
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clampDimension(v int) int {
	if v < MinScreenDimension {
		return MinScreenDimension
	}
	if v > MaxScreenDimension {
		return MaxScreenDimension
	}
	return v
}
