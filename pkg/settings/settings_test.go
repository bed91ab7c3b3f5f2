package settings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/termprofile/pkg/color"
	"github.com/macropower/termprofile/pkg/settings"
)

func TestTerminalSettings_CommandArgs(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		commandline string
		want        []string
		wantErr     error
	}{
		"single": {
			commandline: "bash",
			want:        []string{"bash"},
		},
		"with args": {
			commandline: "bash --login -i",
			want:        []string{"bash", "--login", "-i"},
		},
		"quoted": {
			commandline: `ssh -t host "tmux attach"`,
			want:        []string{"ssh", "-t", "host", "tmux attach"},
		},
		"empty": {
			commandline: "  ",
			wantErr:     settings.ErrEmptyCommandline,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ts := settings.TerminalSettings{Commandline: tc.commandline}

			got, err := ts.CommandArgs()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTerminalSettings_CommandArgsUnterminatedQuote(t *testing.T) {
	t.Parallel()

	ts := settings.TerminalSettings{Commandline: `bash -c "echo`}

	_, err := ts.CommandArgs()
	require.Error(t, err)
}

func TestTerminalSettings_SetColorTableEntry(t *testing.T) {
	t.Parallel()

	ts := settings.TerminalSettings{}
	ts.SetColorTableEntry(3, color.RGB(1, 2, 3))
	ts.SetColorTableEntry(16, color.RGB(4, 5, 6))
	ts.SetColorTableEntry(-1, color.RGB(4, 5, 6))

	assert.Equal(t, color.RGB(1, 2, 3), ts.ColorTable[3])
	assert.Equal(t, color.Color(0), ts.ColorTable[15])
}
