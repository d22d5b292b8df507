package ui

import (
	_ "embed"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/spf13/afero"

	"github.com/dockstar/dockstar/internal/platform"
)

// AppIcon is the name of the embedded application icon
const AppIcon = "dockstar.png"

//go:embed dockstar.png
var appIconPNG []byte

// iconFs is where icon images are read from
var iconFs afero.Fs = afero.NewOsFs()

// AppIconResource returns the application icon used for the app and the tray
func AppIconResource() fyne.Resource {
	return fyne.NewStaticResource(AppIcon, appIconPNG)
}

// loadIconImage returns a sized image for path, or a gray placeholder when
// the file can't be read or decoded. The bool reports whether the real image
// was used.
func loadIconImage(path string) (fyne.CanvasObject, bool) {
	if strings.EqualFold(filepath.Ext(path), ".ico") {
		if decoded, err := platform.DecodeICO(iconFs, path); err == nil {
			return sizeIcon(canvas.NewImageFromImage(decoded)), true
		}
		return newPlaceholder(), false
	}

	if err := platform.CanDecodeImage(iconFs, path); err == nil {
		if data, err := afero.ReadFile(iconFs, path); err == nil {
			return sizeIcon(canvas.NewImageFromResource(fyne.NewStaticResource(filepath.Base(path), data))), true
		}
	}
	return newPlaceholder(), false
}

func sizeIcon(img *canvas.Image) *canvas.Image {
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth
	img.SetMinSize(fyne.NewSquareSize(IconSize))
	return img
}

func newPlaceholder() fyne.CanvasObject {
	placeholder := canvas.NewRectangle(PlaceholderColor)
	placeholder.SetMinSize(fyne.NewSquareSize(IconSize))
	return placeholder
}
