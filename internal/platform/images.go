package platform

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/fyne-io/image/ico"
	"github.com/spf13/afero"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// svgSniffLimit bounds how much of an SVG file is scanned for the root element
const svgSniffLimit = 4096

// CanDecodeImage checks that path holds an image the dock can render.
// Raster formats are probed with image.DecodeConfig; SVG files are sniffed
// for an <svg element. ICO files are decoded in full.
func CanDecodeImage(fsys afero.Fs, path string) error {
	f, err := fsys.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if isICO(path) {
		img, err := ico.Decode(f)
		if err != nil {
			return fmt.Errorf("failed to decode %s: %w", path, err)
		}
		return checkBounds(path, img.Bounds().Dx(), img.Bounds().Dy())
	}

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		head := make([]byte, svgSniffLimit)
		n, err := io.ReadFull(f, head)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if !bytes.Contains(head[:n], []byte("<svg")) {
			return fmt.Errorf("not an svg document: %s", path)
		}
		return nil
	}

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return checkBounds(path, cfg.Width, cfg.Height)
}

// DecodeICO decodes a Windows icon file. Fyne can't render ICO data from a
// resource, so callers draw the decoded image directly.
func DecodeICO(fsys afero.Fs, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := ico.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

func isICO(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".ico")
}

func checkBounds(path string, width, height int) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("empty image: %s", path)
	}
	return nil
}
