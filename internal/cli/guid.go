package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/macropower/termprofile/pkg/guid"
)

type GUIDArgs struct {
	*RootArgs

	Namespace string
	NoBraces  bool
	Copy      bool
}

func (ga *GUIDArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ga.Namespace, "namespace", guid.Namespace.String(), "Namespace GUID to derive from")
	cmd.Flags().BoolVar(&ga.NoBraces, "no-braces", false, "Print the GUID without surrounding braces")
	cmd.Flags().BoolVarP(&ga.Copy, "copy", "c", false, "Copy the GUID to the system clipboard")
}

func NewGUIDCmd(rootArgs *RootArgs) *cobra.Command {
	ga := &GUIDArgs{RootArgs: rootArgs}

	cmd := &cobra.Command{
		Use:   "guid <name>...",
		Short: "Print the GUID derived from a profile name",
		Long: `Print the GUID a profile without an explicit "guid" gets from its name.

The GUID is a version 5 UUID of the UTF-16LE encoded name.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUID(cmd, ga, args)
		},
	}
	ga.AddFlags(cmd)

	return cmd
}

func runGUID(cmd *cobra.Command, ga *GUIDArgs, names []string) error {
	ns, err := guid.Parse(ga.Namespace)
	if err != nil {
		return fmt.Errorf("%w: --namespace: %w", errInvalidArgument, err)
	}

	var last string
	for _, name := range names {
		id := guid.Derive(ns, name)

		last = formatGUID(id, ga.NoBraces)
		if len(names) > 1 {
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", last, name)
		} else {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), last)
		}
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	if ga.Copy {
		err = clipboard.WriteAll(last)
		if err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}

	return nil
}

func formatGUID(id uuid.UUID, noBraces bool) string {
	if noBraces {
		return id.String()
	}

	return guid.Format(id)
}
