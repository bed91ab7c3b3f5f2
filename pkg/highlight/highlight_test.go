package highlight_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/termprofile/pkg/highlight"
)

func TestHighlighter_Render(t *testing.T) {
	t.Parallel()

	src := "{\n  \"name\": \"zsh\",\n  \"fontSize\": 12\n}\n"

	tcs := map[string]struct {
		h         *highlight.Highlighter
		lang      string
		wantPlain bool
	}{
		"noop": {
			h:         highlight.New(),
			lang:      highlight.JSON,
			wantPlain: true,
		},
		"terminal256 json": {
			h:    highlight.New(highlight.WithFormatter("terminal256"), highlight.WithStyle("github-dark")),
			lang: highlight.JSON,
		},
		"terminal16m yaml": {
			h:    highlight.New(highlight.WithFormatter("terminal16m"), highlight.WithStyle("github")),
			lang: highlight.YAML,
		},
		"unknown language": {
			h:         highlight.New(),
			lang:      "not-a-language",
			wantPlain: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := tc.h.Render(tc.lang, src)
			require.NoError(t, err)

			if tc.wantPlain {
				assert.Equal(t, src, got)
				return
			}

			assert.Contains(t, got, "\x1b[")
			assert.Contains(t, got, "zsh")
		})
	}
}

func TestForWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	got, err := highlight.ForWriter(&buf).Render(highlight.YAML, "name: zsh\n")
	require.NoError(t, err)
	assert.Equal(t, "name: zsh\n", got)
}
