// Package ui contains the Fyne-based presentation of the dock: the borderless
// dock window, icon views with their context menus, the icon file picker,
// the settings dialog, and the system tray menu. Views are rebuilt from the
// dock state on every change; the state never holds view references.
package ui
