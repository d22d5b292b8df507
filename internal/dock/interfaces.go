package dock

import (
	"github.com/dockstar/dockstar/internal/model"
)

// Dock defines the interface the presentation layer uses to read and mutate
// the dock state.
type Dock interface {
	OnChange(func(model.DockConfig))
	Load(path string) model.DockConfig
	Reload(path string) bool
	Save(path string) (model.Document, error)

	AddIcon(path string)
	RemoveIcon(index int) bool
	Icons() []model.IconEntry
	Len() int

	Position() model.Position
	SetPosition(pos model.Position)
	MoveBy(dx, dy int)

	// WindowSize returns the dock window size for the current icon count
	WindowSize() model.Size

	Config() model.DockConfig
	Status() model.Status
	Dirty() bool
}

var _ Dock = (*State)(nil)
