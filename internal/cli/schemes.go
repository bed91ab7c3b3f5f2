package cli

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/macropower/termprofile/pkg/config"
	"github.com/macropower/termprofile/pkg/highlight"
	"github.com/macropower/termprofile/pkg/scheme"
)

type SchemesArgs struct {
	*RootArgs

	SchemesPath string
	JSON        bool
}

func (sa *SchemesArgs) AddFlags(cmd *cobra.Command) {
	addSchemesFlag(cmd, &sa.SchemesPath)
	cmd.Flags().BoolVar(&sa.JSON, "json", false, "Print the schemes as a JSON catalog")
}

func NewSchemesCmd(rootArgs *RootArgs) *cobra.Command {
	sa := &SchemesArgs{RootArgs: rootArgs}

	cmd := &cobra.Command{
		Use:   "schemes",
		Short: "List the available color schemes",
		Long: `List the color schemes profiles can reference by name, in lookup order.

Schemes from the catalog come first, so they shadow built-in schemes with
the same name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSchemes(cmd, sa)
		},
	}
	sa.AddFlags(cmd)

	return cmd
}

func runSchemes(cmd *cobra.Command, sa *SchemesArgs) error {
	schemes, err := config.LoadSchemes(sa.SchemesPath)
	if err != nil {
		return err
	}

	if sa.JSON {
		return writeSchemesJSON(cmd, schemes)
	}

	nameStyle := lipgloss.NewStyle().Width(longestName(schemes) + 2)

	lines := make([]string, 0, len(schemes))
	for _, cs := range schemes {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			nameStyle.Render(cs.Name),
			swatch(cs.Foreground), swatch(cs.Background), " ",
			paletteRow(cs.Table),
		))
	}

	_, err = lipgloss.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

func writeSchemesJSON(cmd *cobra.Command, schemes []scheme.ColorScheme) error {
	var b strings.Builder

	b.WriteString(`{"schemes":[`)
	for i, cs := range schemes {
		data, err := cs.ToJSON()
		if err != nil {
			return fmt.Errorf("encode scheme %q: %w", cs.Name, err)
		}
		if i > 0 {
			b.WriteByte(',')
		}

		b.Write(data)
	}
	b.WriteString(`]}`)

	return writeHighlighted(cmd.OutOrStdout(), highlight.JSON, pretty.Pretty([]byte(b.String())))
}

func longestName(schemes []scheme.ColorScheme) int {
	n := 0
	for _, cs := range schemes {
		n = max(n, lipgloss.Width(cs.Name))
	}

	return n
}
