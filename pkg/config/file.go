// Package config locates and reads the files termprofile loads besides the
// profile itself, such as the user's color scheme catalog.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/macropower/termprofile/pkg/scheme"
)

const (
	appName = "termprofile"

	// SchemesFile is the name of the color scheme catalog in the config
	// directory.
	SchemesFile = "schemes.json"
)

// ErrNotRegularFile is returned by [ReadFile] for directories, devices and
// other non-regular files.
var ErrNotRegularFile = errors.New("not a regular file")

// GetPath returns the path to filename in the user's config directory.
// It checks $XDG_CONFIG_HOME first, then falls back to ~/.config, and
// finally to a temp directory.
func GetPath(filename string) string {
	if xdgHome, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && xdgHome != "" {
		return filepath.Join(xdgHome, appName, filename)
	}

	usrHome, err := os.UserHomeDir()
	if err == nil && usrHome != "" {
		return filepath.Join(usrHome, ".config", appName, filename)
	}

	tmpPath := filepath.Join(os.TempDir(), appName, filename)

	slog.Warn("could not determine user config directory, using temp path",
		slog.String("path", tmpPath),
		slog.Any("error", fmt.Errorf("$XDG_CONFIG_HOME is unset, fall back to home directory: %w", err)),
	)

	return tmpPath
}

// SchemesPath returns the default location of the color scheme catalog.
func SchemesPath() string {
	return GetPath(SchemesFile)
}

// ReadFile reads a regular file.
func ReadFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: Potential file inclusion via variable.
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// LoadSchemes returns the color schemes available for resolution: the
// schemes in the catalog at path, followed by the built-in schemes. Since
// lookups return the first match, catalog entries shadow built-in schemes
// of the same name.
//
// If path is empty, the default catalog at [SchemesPath] is used, and a
// missing default catalog is not an error.
func LoadSchemes(path string) ([]scheme.ColorScheme, error) {
	explicit := path != ""
	if !explicit {
		path = SchemesPath()
	}

	data, err := ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		slog.Debug("no color scheme catalog, using built-in schemes", slog.String("path", path))
		return scheme.Builtin(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load color schemes: %w", err)
	}

	user := scheme.ListFromJSON(data)
	slog.Debug("loaded color scheme catalog",
		slog.String("path", path),
		slog.Int("count", len(user)),
	)

	return append(user, scheme.Builtin()...), nil
}
