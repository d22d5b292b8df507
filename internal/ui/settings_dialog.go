package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/dockstar/dockstar/internal/config"
)

// Settings window sizing
const (
	SettingsWidth  float32 = 420
	SettingsHeight float32 = 320
)

// SettingsDialog edits the preferences kept in config.Settings
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// OnSaved is called after settings were stored
	OnSaved func()

	screenWidthEntry  *widget.Entry
	screenHeightEntry *widget.Entry
	watchCheck        *widget.Check
	languageSelect    *widget.Select
}

// NewSettingsDialog creates a new settings dialog hosted in its own window
func NewSettingsDialog(app fyne.App, settings *config.Settings, localization *Localization) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       app.NewWindow(localization.Text(KeySettings)),
	}
	sd.window.Resize(fyne.NewSize(SettingsWidth, SettingsHeight))

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.window.Show()
	sd.dialog.Show()
}

// createUI builds the form and the confirm dialog wrapping it
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.screenWidthEntry = newDimensionEntry(config.DefaultScreenWidth)
	sd.screenHeightEntry = newDimensionEntry(config.DefaultScreenHeight)
	sd.watchCheck = widget.NewCheck(l.Text(KeyWatchConfig), nil)

	codes := make([]string, 0, len(sd.settings.GetLanguageOptions()))
	for code := range sd.settings.GetLanguageOptions() {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	sd.languageSelect = widget.NewSelect(codes, nil)

	form := widget.NewForm(
		widget.NewFormItem(l.Text(KeyScreenWidth), sd.screenWidthEntry),
		widget.NewFormItem(l.Text(KeyScreenHeight), sd.screenHeightEntry),
		widget.NewFormItem("", sd.watchCheck),
		widget.NewFormItem(l.Text(KeyLanguage), sd.languageSelect),
	)

	sd.dialog = dialog.NewCustomConfirm(l.Text(KeySettings), l.Text(KeySave), l.Text(KeyCancel), form, sd.onSave, sd.window)
	sd.dialog.SetOnClosed(sd.window.Close)
	sd.dialog.Resize(fyne.NewSize(SettingsWidth, SettingsHeight))
}

func newDimensionEntry(placeholder int) *widget.Entry {
	e := widget.NewEntry()
	e.SetPlaceHolder(strconv.Itoa(placeholder))
	e.Validator = func(text string) error {
		_, err := strconv.Atoi(text)
		return err
	}
	return e
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	screen := sd.settings.GetScreenSize()
	sd.screenWidthEntry.SetText(strconv.Itoa(screen.Width))
	sd.screenHeightEntry.SetText(strconv.Itoa(screen.Height))
	sd.watchCheck.SetChecked(sd.settings.GetWatchConfig())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave stores the form values. Unparsable dimensions keep their
// current value; out of range ones are clamped by Settings.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	screen := sd.settings.GetScreenSize()
	if w, err := strconv.Atoi(sd.screenWidthEntry.Text); err == nil {
		screen.Width = w
	}
	if h, err := strconv.Atoi(sd.screenHeightEntry.Text); err == nil {
		screen.Height = h
	}
	sd.settings.SetScreenSize(screen)
	sd.settings.SetWatchConfig(sd.watchCheck.Checked)

	if code := sd.languageSelect.Selected; code != "" {
		sd.settings.SetLanguage(code)
		sd.localization.SetLanguage(code)
	}

	if sd.OnSaved != nil {
		sd.OnSaved()
	}
}
