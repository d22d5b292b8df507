package platform

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	fsys := afero.NewMemMapFs()
	dir := "/tmp/dockstar/nested"

	require.NoError(t, CreateDirectoryIfNotExists(fsys, dir))
	exists, err := afero.DirExists(fsys, dir)
	require.NoError(t, err)
	assert.True(t, exists)

	// Existing directories are left alone
	assert.NoError(t, CreateDirectoryIfNotExists(fsys, dir))
}

func TestCreateDirectoryIfNotExists_ReadOnly(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())

	assert.Error(t, CreateDirectoryIfNotExists(fsys, "/cannot/create"))
}

func TestIsSupportedImage(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/usr/share/icons/firefox.svg", true},
		{"/icons/app.PNG", true},
		{"/icons/photo.jpeg", true},
		{"/icons/old.xpm", false},
		{"/icons/app.ico", true},
		{"/icons/notes.txt", false},
		{"/icons/noext", false},
		{"", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, IsSupportedImage(test.path), test.path)
	}
}

func TestOpenFileInManager_Errors(t *testing.T) {
	err := OpenFileInManager("")
	assert.EqualError(t, err, "file path is empty")

	err = OpenFileInManager(filepath.Join(t.TempDir(), "nonexistent.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file does not exist:")
}

func TestRevealCommand(t *testing.T) {
	cmd, err := revealCommand("darwin", "/icons/a.png")
	require.NoError(t, err)
	assert.Equal(t, []string{"open", "-R", "/icons/a.png"}, cmd.Args)

	cmd, err = revealCommand("windows", `C:\icons\a.png`)
	require.NoError(t, err)
	assert.Equal(t, []string{"explorer", "/select,", `C:\icons\a.png`}, cmd.Args)

	_, err = revealCommand("plan9", "/icons/a.png")
	assert.Error(t, err)
}
