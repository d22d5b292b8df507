package model

// IconEntry represents a single launcher slot in the dock
type IconEntry struct {
	Path string // image file on disk; not required to exist
}

// Position is a top-left screen coordinate in pixels
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is a width/height pair in pixels
type Size struct {
	Width  int
	Height int
}

// DockConfig is the in-memory dock state: icons in display order (left to
// right) and the window position at the last save.
type DockConfig struct {
	Icons    []IconEntry
	Position Position
}

// Document is the persisted JSON form of a DockConfig
type Document struct {
	Icons    []string `json:"icons"`
	Position Position `json:"position"`
}

// NewDockConfig creates a config from the given icon paths and position
func NewDockConfig(paths []string, pos Position) DockConfig {
	icons := make([]IconEntry, 0, len(paths))
	for _, p := range paths {
		icons = append(icons, IconEntry{Path: p})
	}
	return DockConfig{Icons: icons, Position: pos}
}

// Clone returns a deep copy so callers can't mutate the icon slice in place
func (c DockConfig) Clone() DockConfig {
	icons := make([]IconEntry, len(c.Icons))
	copy(icons, c.Icons)
	return DockConfig{Icons: icons, Position: c.Position}
}

// Paths returns the icon paths in display order
func (c DockConfig) Paths() []string {
	paths := make([]string, 0, len(c.Icons))
	for _, icon := range c.Icons {
		paths = append(paths, icon.Path)
	}
	return paths
}

// ToDocument converts the config to its persisted form. Empty paths are
// dropped, they never reach the file.
func (c DockConfig) ToDocument() Document {
	paths := make([]string, 0, len(c.Icons))
	for _, icon := range c.Icons {
		if icon.Path != "" {
			paths = append(paths, icon.Path)
		}
	}
	return Document{Icons: paths, Position: c.Position}
}

// ToConfig converts a persisted document back into a DockConfig
func (d Document) ToConfig() DockConfig {
	return NewDockConfig(d.Icons, d.Position)
}
