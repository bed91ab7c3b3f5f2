package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRevision(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		settings []debug.BuildSetting
		want     string
	}{
		"no build info": {
			want: "unknown",
		},
		"clean": {
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.modified", Value: "false"},
			},
			want: "0123456",
		},
		"dirty": {
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.modified", Value: "true"},
			},
			want: "abc-dirty",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, getRevision(tc.settings))
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Contains(t, String(), GoVersion)
	assert.Contains(t, String(), GoOS+"/"+GoArch)
}
