package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/termprofile/internal/cli"
	"github.com/macropower/termprofile/pkg/color"
	"github.com/macropower/termprofile/pkg/scheme"
)

func TestSchemeColorScheme(t *testing.T) {
	t.Parallel()

	cs, ok := scheme.Find(scheme.Builtin(), "Campbell")
	require.True(t, ok)

	dark := cli.SchemeColorScheme(*cs, lipgloss.LightDark(true))
	assert.Equal(t, cs.Table[7], dark.Base)
	assert.Equal(t, cs.Table[12], dark.Title)
	assert.Equal(t, cs.Table[15], dark.ErrorHeader[0])
	assert.Equal(t, cs.Table[1], dark.ErrorHeader[1])

	light := cli.SchemeColorScheme(*cs, lipgloss.LightDark(false))
	assert.Equal(t, cs.Table[0], light.Base)
}

func TestColorSchemeFunc(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "termprofile"), 0o700))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "termprofile", "schemes.json"),
		[]byte(`[{"name": "Mine", "brightBlue": "#123456"}]`),
		0o600,
	))

	tcs := map[string]struct {
		env  string
		want color.Color
	}{
		"default scheme": {
			env:  "",
			want: mustFind(t, cli.DefaultCLIScheme).Table[12],
		},
		"catalog scheme": {
			env:  "Mine",
			want: color.RGB(0x12, 0x34, 0x56),
		},
		"unknown scheme falls back": {
			env:  "Nope",
			want: mustFind(t, cli.DefaultCLIScheme).Table[12],
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Setenv("TERMPROFILE_CLI_SCHEME", tc.env)

			got := cli.ColorSchemeFunc(lipgloss.LightDark(true))
			assert.Equal(t, tc.want, got.Title)
		})
	}
}

func mustFind(t *testing.T, name string) *scheme.ColorScheme {
	t.Helper()

	cs, ok := scheme.Find(scheme.Builtin(), name)
	require.True(t, ok)

	return cs
}
