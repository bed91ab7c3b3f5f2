// Package expand substitutes environment variable references in paths.
//
// References use the %NAME% form. A reference to an undefined variable is
// left in place verbatim, and "%%" is a literal percent sign sequence that
// is never treated as a reference. Both rules keep expansion deterministic
// and idempotent on text without defined references.
package expand

import (
	"os"
	"path/filepath"
	"strings"
)

// Expander expands environment references and home-relative paths.
type Expander struct {
	// LookupEnv resolves a variable name. Defaults to [os.LookupEnv].
	LookupEnv func(key string) (string, bool)
	// HomeDir returns the base for relative paths. Defaults to [os.UserHomeDir].
	HomeDir func() (string, error)
}

// Default uses the process environment.
var Default = &Expander{}

// Env expands text with [Default].
func Env(text string) string {
	return Default.Env(text)
}

// StartingDirectory evaluates a directory with [Default].
func StartingDirectory(dir string) string {
	return Default.StartingDirectory(dir)
}

// Env substitutes every %NAME% reference in text whose variable is defined.
func (e *Expander) Env(text string) string {
	if !strings.Contains(text, "%") {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))

	rest := text
	for {
		start := strings.IndexByte(rest, '%')
		if start == -1 {
			sb.WriteString(rest)
			break
		}

		end := strings.IndexByte(rest[start+1:], '%')
		if end == -1 {
			sb.WriteString(rest)
			break
		}
		end += start + 1

		sb.WriteString(rest[:start])

		name := rest[start+1 : end]
		value, ok := e.lookupEnv(name)
		switch {
		case name == "":
			sb.WriteString("%%")
			rest = rest[end+1:]
		case ok:
			sb.WriteString(value)
			rest = rest[end+1:]
		default:
			// Keep the opening '%' and rescan from the closing one, which may
			// start a defined reference.
			sb.WriteString("%" + name)
			rest = rest[end:]
		}
	}

	return sb.String()
}

// StartingDirectory expands environment references in dir, replaces a
// leading "~" with the home directory, and resolves relative results
// against the home directory. An empty dir evaluates to the home directory.
//
// If the home directory cannot be determined, relative results are
// returned cleaned but unresolved.
func (e *Expander) StartingDirectory(dir string) string {
	expanded := e.Env(strings.TrimSpace(dir))

	home, err := e.homeDir()
	if err != nil || home == "" {
		if expanded == "" {
			return ""
		}

		return filepath.Clean(expanded)
	}

	switch {
	case expanded == "~":
		expanded = home
	case strings.HasPrefix(expanded, "~/"), strings.HasPrefix(expanded, `~\`):
		expanded = filepath.Join(home, expanded[2:])
	}

	if !isRooted(expanded) {
		expanded = filepath.Join(home, expanded)
	}

	return filepath.Clean(expanded)
}

func (e *Expander) lookupEnv(key string) (string, bool) {
	if e.LookupEnv != nil {
		return e.LookupEnv(key)
	}

	return os.LookupEnv(key)
}

func (e *Expander) homeDir() (string, error) {
	if e.HomeDir != nil {
		return e.HomeDir()
	}

	return os.UserHomeDir() //nolint:wrapcheck // Passed through to callers as-is.
}

// isRooted reports whether path is absolute on this platform, or is a
// drive-qualified or UNC path as written by Windows users.
func isRooted(path string) bool {
	if filepath.IsAbs(path) {
		return true
	}

	if strings.HasPrefix(path, `\\`) {
		return true
	}

	return len(path) >= 3 && path[1] == ':' && (path[2] == '\\' || path[2] == '/') && isLetter(path[0])
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
