package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/macropower/termprofile/pkg/highlight"
	"github.com/macropower/termprofile/pkg/schema"
)

type SchemaArgs struct {
	*RootArgs

	OutFile string
}

func (sa *SchemaArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&sa.OutFile, "out-file", "f", "", "Write the schema to a file instead of stdout")
	must(cmd.MarkFlagFilename("out-file", "json"))
}

func NewSchemaCmd(rootArgs *RootArgs) *cobra.Command {
	sa := &SchemaArgs{RootArgs: rootArgs}

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of a profile document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := schema.Generate()
			if err != nil {
				return fmt.Errorf("generate JSON schema: %w", err)
			}

			if sa.OutFile != "" {
				err = os.WriteFile(sa.OutFile, data, 0o600)
				if err != nil {
					return fmt.Errorf("write schema file: %w", err)
				}

				return nil
			}

			return writeHighlighted(cmd.OutOrStdout(), highlight.JSON, append(data, '\n'))
		},
	}
	sa.AddFlags(cmd)

	return cmd
}
