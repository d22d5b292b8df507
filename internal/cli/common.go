package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dockstar/dockstar/internal/config"
	"github.com/dockstar/dockstar/internal/model"
)

// resolveConfigPath returns the --config value or the default location
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultConfigPath()
}

// parseScreen parses a WIDTHxHEIGHT screen size
func parseScreen(s string) (model.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return model.Size{}, fmt.Errorf("invalid screen size %q: expected WIDTHxHEIGHT", s)
	}

	width, err := strconv.Atoi(w)
	if err != nil {
		return model.Size{}, fmt.Errorf("invalid screen width %q: %w", w, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return model.Size{}, fmt.Errorf("invalid screen height %q: %w", h, err)
	}
	if width < config.MinScreenDimension || height < config.MinScreenDimension ||
		width > config.MaxScreenDimension || height > config.MaxScreenDimension {
		return model.Size{}, fmt.Errorf("screen size %dx%d out of range [%d, %d]",
			width, height, config.MinScreenDimension, config.MaxScreenDimension)
	}
	return model.Size{Width: width, Height: height}, nil
}

// screenOrDefault returns the --screen size, or fallback when the flag is unset
func screenOrDefault(fallback model.Size) (model.Size, error) {
	if screenFlag == "" {
		return fallback, nil
	}
	return parseScreen(screenFlag)
}

func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}
