package cli

import (
	"fmt"
	"os"

	"github.com/aymanbagabas/go-udiff"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/macropower/termprofile/pkg/log"
	"github.com/macropower/termprofile/pkg/profile"
)

type FmtArgs struct {
	*RootArgs

	Diff  bool
	Write bool
}

func (fa *FmtArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&fa.Diff, "diff", "d", false, "Print a unified diff instead of the formatted profile")
	cmd.Flags().BoolVar(&fa.Write, "write", false, "Write the formatted profile back to the file")
	cmd.MarkFlagsMutuallyExclusive("diff", "write")
}

func NewFmtCmd(rootArgs *RootArgs) *cobra.Command {
	fa := &FmtArgs{RootArgs: rootArgs}

	cmd := &cobra.Command{
		Use:   "fmt <profile.json>",
		Short: "Normalize a profile document",
		Long: `Read a profile and write it back in normal form.

Unknown keys and malformed values are dropped, every key that always has a
value is written out, and an explicit GUID is added if the profile has none.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, fa, args[0])
		},
	}
	fa.AddFlags(cmd)

	return cmd
}

func runFmt(cmd *cobra.Command, fa *FmtArgs, path string) error {
	if fa.Write && path == stdinPath {
		return fmt.Errorf("%w: --write cannot be used with stdin", errInvalidArgument)
	}

	data, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	// A broken document would otherwise be replaced by defaults.
	p, err := profile.Parse(data, profile.WithLogger(log.WithContext(cmd.Context())))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	out, err := p.ToJSON()
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	out = pretty.Pretty(out)

	switch {
	case fa.Diff:
		diff := udiff.Unified(path, path, string(data), string(out))
		if diff == "" {
			return nil
		}

		return writeHighlighted(cmd.OutOrStdout(), "diff", []byte(diff))

	case fa.Write:
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat profile: %w", err)
		}

		err = os.WriteFile(path, out, info.Mode().Perm())
		if err != nil {
			return fmt.Errorf("write profile: %w", err)
		}

		return nil
	}

	_, err = cmd.OutOrStdout().Write(out)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
