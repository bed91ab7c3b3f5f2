package profile_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/termprofile/pkg/color"
	"github.com/macropower/termprofile/pkg/expand"
	"github.com/macropower/termprofile/pkg/guid"
	"github.com/macropower/termprofile/pkg/profile"
	"github.com/macropower/termprofile/pkg/settings"
)

func testExpander(env map[string]string) *expand.Expander {
	return &expand.Expander{
		LookupEnv: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
		HomeDir: func() (string, error) {
			return "/home/ada", nil
		},
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	p := profile.New()

	assert.Equal(t, profile.DefaultName, p.Name())
	assert.False(t, p.HasGUID())
	assert.Equal(t, guid.FromName(profile.DefaultName), p.GUID())
	assert.False(t, p.HasConnectionType())
	assert.Equal(t, uuid.Nil, p.ConnectionType())
	assert.False(t, p.HasIcon())
	assert.Empty(t, p.ExpandedIconPath())
	assert.True(t, p.CloseOnExit())

	_, ok := p.ColorSchemeName()
	assert.False(t, ok)
}

func TestNewWithGUID(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("61c54bbd-c2c6-5271-96e7-009a87ff44bf")
	p := profile.NewWithGUID(id, profile.WithName("Windows PowerShell"))

	assert.True(t, p.HasGUID())
	assert.Equal(t, id, p.GUID())

	// The explicit GUID does not follow the name.
	p.SetName("pwsh")
	assert.Equal(t, id, p.GUID())
}

func TestProfile_DerivedGUIDFollowsName(t *testing.T) {
	t.Parallel()

	p := profile.New(profile.WithName("Ubuntu"))
	assert.Equal(t, guid.FromName("Ubuntu"), p.GUID())

	other := profile.New(profile.WithName("Ubuntu"))
	assert.Equal(t, p.GUID(), other.GUID())

	p.SetName("Debian")
	assert.Equal(t, guid.FromName("Debian"), p.GUID())
	assert.NotEqual(t, other.GUID(), p.GUID())
}

func TestProfile_Options(t *testing.T) {
	t.Parallel()

	p := profile.New(
		profile.WithName("dev"),
		profile.WithCommandline("bash -l"),
		profile.WithColorScheme("Vintage"),
	)

	ts := p.CreateTerminalSettings(nil)
	assert.Equal(t, "dev", p.Name())
	assert.Equal(t, "bash -l", ts.Commandline)

	name, ok := p.ColorSchemeName()
	require.True(t, ok)
	assert.Equal(t, "Vintage", name)

	p.ClearColorScheme()
	_, ok = p.ColorSchemeName()
	assert.False(t, ok)
}

func TestProfile_Setters(t *testing.T) {
	t.Parallel()

	connection := uuid.MustParse("d9fcfdfa-a479-412c-83b7-c5640e61cd62")
	p := profile.New(profile.WithExpander(testExpander(map[string]string{"ICONS": "/usr/share/icons"})))

	p.SetConnectionType(connection)
	p.SetIconPath("%ICONS%/term.png")
	p.SetCloseOnExit(false)
	p.SetAcrylicOpacity(1.7)
	p.SetBackgroundImageOpacity(-0.2)
	p.SetColorTableEntry(2, color.RGB(1, 2, 3))
	p.SetColorTableEntry(99, color.RGB(1, 2, 3))

	assert.True(t, p.HasConnectionType())
	assert.Equal(t, connection, p.ConnectionType())
	assert.True(t, p.HasIcon())
	assert.Equal(t, "/usr/share/icons/term.png", p.ExpandedIconPath())
	assert.False(t, p.CloseOnExit())

	ts := p.CreateTerminalSettings(nil)
	assert.InDelta(t, 1.0, ts.TintOpacity, 0)
	assert.InDelta(t, 0.0, ts.BackgroundImageOpacity, 0)
	assert.Equal(t, color.RGB(1, 2, 3), ts.ColorTable[2])
	assert.Equal(t, connection, ts.ConnectionType)
}

func TestProfile_ExpandedBackgroundImagePath(t *testing.T) {
	t.Parallel()

	p := profile.New(profile.WithExpander(testExpander(map[string]string{"PICS": "/pics"})))
	assert.Empty(t, p.ExpandedBackgroundImagePath())

	p.SetBackgroundImage("%PICS%/bg.png")
	assert.Equal(t, "/pics/bg.png", p.ExpandedBackgroundImagePath())

	p.SetBackgroundImageStretchMode(settings.StretchFill)
	ts := p.CreateTerminalSettings(nil)
	assert.Equal(t, "/pics/bg.png", ts.BackgroundImage)
	assert.Equal(t, settings.StretchFill, ts.BackgroundImageStretchMode)
}

func TestEvaluateStartingDirectory(t *testing.T) {
	t.Setenv("TERMPROFILE_PROJECTS", "/srv/projects")

	got := profile.EvaluateStartingDirectory("%TERMPROFILE_PROJECTS%/app")
	assert.Equal(t, "/srv/projects/app", got)
	assert.Equal(t, got, profile.EvaluateStartingDirectory(got))

	for _, dir := range []string{"/", "/tmp", "/usr/local/bin"} {
		once := profile.EvaluateStartingDirectory(dir)
		assert.Equal(t, once, profile.EvaluateStartingDirectory(once))
	}
}
