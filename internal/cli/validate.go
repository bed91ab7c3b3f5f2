package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/macropower/termprofile/pkg/log"
	"github.com/macropower/termprofile/pkg/profile"
	"github.com/macropower/termprofile/pkg/schema"
)

// ErrInvalidProfile is returned by the validate command when the profile
// does not match the schema.
var ErrInvalidProfile = errors.New("invalid profile")

type ValidateArgs struct {
	*RootArgs
}

func NewValidateCmd(rootArgs *RootArgs) *cobra.Command {
	va := &ValidateArgs{RootArgs: rootArgs}

	cmd := &cobra.Command{
		Use:   "validate <profile.json>",
		Short: "Check a profile against the profile schema",
		Long: `Validate a profile against the profile JSON schema.

Terminals accept any profile and silently ignore values they cannot use.
This command reports those values instead, with the offending location
marked in the source.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, va, args[0])
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, _ *ValidateArgs, path string) error {
	data, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	v, err := schema.DefaultValidator()
	if err != nil {
		return fmt.Errorf("create validator: %w", err)
	}

	err = v.ValidateJSON(data)
	if err == nil {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}

		return nil
	}

	var verr *schema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	err = writeIgnored(cmd.Context(), cmd.ErrOrStderr(), data)
	if err != nil {
		return err
	}

	return &SourceError{
		Err:    fmt.Errorf("%w: %s: %w", ErrInvalidProfile, path, verr),
		Source: annotate(verr, data, isTerminal(cmd.ErrOrStderr())),
	}
}

// writeIgnored lists the values a terminal would ignore when reading data.
func writeIgnored(ctx context.Context, w io.Writer, data []byte) error {
	rec := log.NewRecorder(0, slog.LevelDebug)
	profile.FromJSON(data, profile.WithLogger(slog.New(rec)))

	if rec.Len() == 0 {
		return nil
	}

	_, err := fmt.Fprintln(w, "Values ignored when the profile is loaded:")
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Only the message and attributes are useful here.
			if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey) {
				return slog.Attr{}
			}

			return a
		},
	})

	err = rec.Replay(ctx, h)
	if err != nil {
		return fmt.Errorf("write ignored values: %w", err)
	}

	return nil
}

// annotate renders the source around the error location. It returns ""
// if the location cannot be found in the source.
func annotate(verr *schema.ValidationError, source []byte, colored bool) string {
	if verr.Path == nil {
		return ""
	}

	out, err := verr.Path.AnnotateSource(source, colored)
	if err != nil {
		slog.Debug("annotate source",
			slog.String("path", verr.Path.String()),
			slog.Any("error", err),
		)

		return ""
	}

	return string(out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: file descriptors fit in int.
}
