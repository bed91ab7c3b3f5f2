package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/macropower/termprofile/pkg/config"
	"github.com/macropower/termprofile/pkg/highlight"
)

// stdinPath reads input from stdin instead of a file.
const stdinPath = "-"

const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var AllOutputs = []string{OutputJSON, OutputYAML}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == stdinPath {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}

		return b, nil
	}

	b, err := config.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	return b, nil
}

// encode renders v in the output format, returning the data and the
// language to highlight it as.
func encode(v any, output string) ([]byte, string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, "", fmt.Errorf("marshal json: %w", err)
	}

	switch output {
	case OutputJSON:
		return pretty.Pretty(data), highlight.JSON, nil

	case OutputYAML:
		y, err := yaml.JSONToYAML(data)
		if err != nil {
			return nil, "", fmt.Errorf("convert to yaml: %w", err)
		}

		return y, highlight.YAML, nil
	}

	return nil, "", fmt.Errorf("%w: unknown output format %q, expected one of %v", errInvalidArgument, output, AllOutputs)
}

// writeHighlighted writes data to w, highlighted as lang if w is a terminal.
func writeHighlighted(w io.Writer, lang string, data []byte) error {
	out, err := highlight.ForWriter(w).Render(lang, string(data))
	if err != nil {
		return fmt.Errorf("highlight %s: %w", lang, err)
	}

	_, err = io.WriteString(w, out)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
