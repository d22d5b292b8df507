package model

// Status represents where a dock state is in its load/save lifecycle.
// Transitions are not enforced; saving is valid in every state.
type Status string

const (
	// StatusUnloaded means no configuration has been read yet
	StatusUnloaded Status = "Unloaded"

	// StatusDefault means the built-in defaults were used (no config file)
	StatusDefault Status = "Default"

	// StatusLoaded means the configuration was read from disk
	StatusLoaded Status = "Loaded"

	// StatusDirty means the icons or position changed since the last load or save
	StatusDirty Status = "Dirty"

	// StatusSaved means the current state has been written to disk
	StatusSaved Status = "Saved"
)

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsInitialized returns true once a configuration has been loaded or defaulted
func (s Status) IsInitialized() bool {
	return s != StatusUnloaded && s != ""
}

// NeedsSave returns true if in-memory changes may be lost without a save
func (s Status) NeedsSave() bool {
	return s == StatusDirty || s == StatusDefault
}
