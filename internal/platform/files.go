package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

// DefaultDirPermissions is used for every directory the dock creates
const DefaultDirPermissions = 0755

// DefaultIconDirectory is where the icon picker starts on first use
const DefaultIconDirectory = "/usr/share/icons/"

// SupportedImageExtensions lists the icon formats offered by the file picker.
// XPM is left out: there is no Go decoder for it, so it could only ever be a
// placeholder.
var SupportedImageExtensions = []string{".png", ".jpg", ".jpeg", ".svg", ".bmp", ".webp", ".ico"}

// LinuxFileManagers are tried in order when xdg-open is unavailable
var LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}

// ErrNoFileManager is returned when nothing on the system can open a folder
var ErrNoFileManager = errors.New("no suitable file manager found")

var osFs = afero.NewOsFs()

// CreateDirectoryIfNotExists creates dir and its parents when missing
func CreateDirectoryIfNotExists(fsys afero.Fs, dir string) error {
	if _, err := fsys.Stat(dir); os.IsNotExist(err) {
		return fsys.MkdirAll(dir, DefaultDirPermissions)
	}
	return nil
}

// IsSupportedImage reports whether path has an icon image extension
func IsSupportedImage(path string) bool {
	return slices.Contains(SupportedImageExtensions, strings.ToLower(filepath.Ext(path)))
}

// OpenFileInManager reveals path in the system file manager. macOS and
// Windows select the file; Linux opens the containing folder.
func OpenFileInManager(path string) error {
	if path == "" {
		return fmt.Errorf("file path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file does not exist: %v", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	if runtime.GOOS == "linux" {
		return openFolderLinux(filepath.Dir(abs))
	}
	cmd, err := revealCommand(runtime.GOOS, abs)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// revealCommand returns the command that selects abs in the file manager of goos
func revealCommand(goos, abs string) (*exec.Cmd, error) {
	switch goos {
	case "darwin":
		return exec.Command("open", "-R", abs), nil
	case "windows":
		return exec.Command("explorer", "/select,", abs), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// openFolderLinux tries xdg-open first, then the first known file manager on PATH
func openFolderLinux(dir string) error {
	if err := exec.Command("xdg-open", dir).Run(); err == nil {
		return nil
	}
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}
	return ErrNoFileManager
}
