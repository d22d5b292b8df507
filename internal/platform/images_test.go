package platform

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, afero.WriteFile(fsys, path, buf.Bytes(), 0644))
}

func TestCanDecodeImage(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writePNG(t, fsys, "/icons/ok.png")
	writePNG(t, fsys, "/icons/misnamed.jpg")
	require.NoError(t, afero.WriteFile(fsys, "/icons/broken.png", []byte("definitely not a png"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/icons/app.svg",
		[]byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg" width="48" height="48"></svg>`), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/icons/fake.svg", []byte("hello"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/icons/broken.ico", []byte{0, 0, 1, 0, 1}, 0644))
	require.NoError(t, afero.WriteFile(fsys, "/icons/legacy.xpm", []byte("/* XPM */\nstatic char *x[] = {};"), 0644))

	tests := []struct {
		path  string
		valid bool
	}{
		{"/icons/ok.png", true},
		{"/icons/misnamed.jpg", true},
		{"/icons/app.svg", true},
		{"/icons/broken.png", false},
		{"/icons/fake.svg", false},
		{"/icons/broken.ico", false},
		{"/icons/legacy.xpm", false},
		{"/icons/missing.png", false},
	}

	for _, test := range tests {
		err := CanDecodeImage(fsys, test.path)
		if test.valid {
			assert.NoError(t, err, test.path)
		} else {
			assert.Error(t, err, test.path)
		}
	}
}

func TestDecodeICO_Errors(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/icons/broken.ico", []byte("not an icon"), 0644))

	_, err := DecodeICO(fsys, "/icons/broken.ico")
	assert.Error(t, err)

	_, err = DecodeICO(fsys, "/icons/missing.ico")
	assert.Error(t, err)
}
