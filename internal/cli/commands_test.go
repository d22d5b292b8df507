package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dockstar/dockstar/internal/dock"
	"github.com/dockstar/dockstar/internal/model"
)

const testConfigPath = "/home/user/.config/dockstar/config.json"

func decodeDocument(t *testing.T, out string) model.Document {
	t.Helper()
	var doc model.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	return doc
}

func TestConfigPath(t *testing.T) {
	t.Run("flag", func(t *testing.T) {
		out, _, err := executeCommand(t, afero.NewMemMapFs(), "config", "path", "--config", testConfigPath)
		require.NoError(t, err)
		assert.Equal(t, testConfigPath+"\n", out)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("DOCKSTAR_CONFIG", "/env/dock.json")
		out, _, err := executeCommand(t, afero.NewMemMapFs(), "config", "path")
		require.NoError(t, err)
		assert.Equal(t, "/env/dock.json", strings.TrimSpace(out))
	})
}

func TestConfigShow_MissingFileShowsDefaults(t *testing.T) {
	out, errOut, err := executeCommand(t, afero.NewMemMapFs(), "config", "show", "--config", testConfigPath)
	require.NoError(t, err)

	doc := decodeDocument(t, out)
	assert.Equal(t, dock.DefaultIconPaths, doc.Icons)
	assert.Equal(t, model.Position{X: 780, Y: 962}, doc.Position)
	assert.Contains(t, errOut, "showing defaults")
}

func TestConfigShow_ScreenFlagPlacesDefaults(t *testing.T) {
	out, _, err := executeCommand(t, afero.NewMemMapFs(), "config", "show", "--config", testConfigPath, "--screen", "2560x1440")
	require.NoError(t, err)

	doc := decodeDocument(t, out)
	assert.Equal(t, model.Position{X: 1100, Y: 1322}, doc.Position)
}

func TestConfigShow_InvalidScreen(t *testing.T) {
	_, _, err := executeCommand(t, afero.NewMemMapFs(), "config", "show", "--config", testConfigPath, "--screen", "big")
	assert.Error(t, err)
}

func TestConfigShow_ExistingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, dock.WriteDocument(fs, testConfigPath, model.Document{
		Icons:    []string{"/a.png", "/b.svg"},
		Position: model.Position{X: 10, Y: 20},
	}))

	out, errOut, err := executeCommand(t, fs, "config", "show", "--config", testConfigPath)
	require.NoError(t, err)

	doc := decodeDocument(t, out)
	assert.Equal(t, []string{"/a.png", "/b.svg"}, doc.Icons)
	assert.Equal(t, model.Position{X: 10, Y: 20}, doc.Position)
	assert.Empty(t, errOut)
}

func TestConfigShow_MalformedFileShowsEmptyDock(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testConfigPath, []byte("{not json"), 0644))

	out, _, err := executeCommand(t, fs, "config", "show", "--config", testConfigPath)
	require.NoError(t, err)

	doc := decodeDocument(t, out)
	assert.Empty(t, doc.Icons)
	assert.Equal(t, model.Position{}, doc.Position)
}

func TestReset(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testConfigPath, []byte(`{"icons": []}`), 0644))

	out, _, err := executeCommand(t, fs, "reset", "--config", testConfigPath)
	require.NoError(t, err)
	assert.Contains(t, out, "removed "+testConfigPath)

	exists, err := afero.Exists(fs, testConfigPath)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestReset_MissingFile(t *testing.T) {
	out, _, err := executeCommand(t, afero.NewMemMapFs(), "reset", "--config", testConfigPath)
	require.NoError(t, err)
	assert.Contains(t, out, "no config file")
}
