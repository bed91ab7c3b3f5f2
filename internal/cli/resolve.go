package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/macropower/termprofile/pkg/config"
	"github.com/macropower/termprofile/pkg/log"
	"github.com/macropower/termprofile/pkg/profile"
	"github.com/macropower/termprofile/pkg/scheme"
	"github.com/macropower/termprofile/pkg/settings"
	"github.com/macropower/termprofile/pkg/watch"
)

type ResolveArgs struct {
	*RootArgs

	SchemesPath string
	Output      string
	Summary     bool
	Watch       bool
}

func (ra *ResolveArgs) AddFlags(cmd *cobra.Command) {
	addSchemesFlag(cmd, &ra.SchemesPath)
	cmd.Flags().StringVarP(&ra.Output, "output", "o", OutputJSON, fmt.Sprintf("Output format, one of: %s", AllOutputs))
	cmd.Flags().BoolVar(&ra.Summary, "summary", false, "Print a human readable summary instead of the full settings")
	cmd.Flags().BoolVarP(&ra.Watch, "watch", "w", false, "Resolve again whenever the profile changes")

	must(cmd.RegisterFlagCompletionFunc("output",
		cobra.FixedCompletions(AllOutputs, cobra.ShellCompDirectiveNoFileComp),
	))
}

func NewResolveCmd(rootArgs *RootArgs) *cobra.Command {
	ra := &ResolveArgs{RootArgs: rootArgs}

	cmd := &cobra.Command{
		Use:   "resolve <profile.json>",
		Short: "Print the terminal settings a profile resolves to",
		Long: `Resolve a profile into the concrete settings a terminal session uses.

Values that are missing or malformed in the profile fall back to defaults.
If the profile names a color scheme that exists in the catalog, its colors
replace the profile's own colors. Paths are expanded from the environment.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, ra, args[0])
		},
	}
	ra.AddFlags(cmd)

	return cmd
}

func runResolve(cmd *cobra.Command, ra *ResolveArgs, path string) error {
	if ra.Watch && path == stdinPath {
		return fmt.Errorf("%w: --watch cannot be used with stdin", errInvalidArgument)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	resolve := func(ctx context.Context) error {
		ts, err := resolveFile(ctx, cmd, ra.SchemesPath, path)
		if err != nil {
			return err
		}

		if ra.Summary {
			return writeSummary(cmd.OutOrStdout(), ts)
		}

		data, lang, err := encode(ts, ra.Output)
		if err != nil {
			return err
		}

		return writeHighlighted(cmd.OutOrStdout(), lang, data)
	}

	err := resolve(ctx)
	if err != nil || !ra.Watch {
		return err
	}

	w, err := watch.New(path)
	if err != nil {
		return fmt.Errorf("watch profile: %w", err)
	}

	defer func() {
		if err := w.Close(); err != nil {
			log.WithContext(ctx).ErrorContext(ctx, "close watcher", slog.Any("error", err))
		}
	}()

	log.WithContext(ctx).InfoContext(ctx, "watching for changes", slog.String("path", path))

	return w.Run(ctx, func(ctx context.Context) error {
		err := resolve(ctx)
		if err != nil {
			// Keep watching; the file may be mid-edit.
			log.WithContext(ctx).ErrorContext(ctx, "resolve profile", slog.Any("error", err))
		}

		return nil
	})
}

func resolveFile(ctx context.Context, cmd *cobra.Command, schemesPath, path string) (settings.TerminalSettings, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return settings.TerminalSettings{}, err
	}

	schemes, err := config.LoadSchemes(schemesPath)
	if err != nil {
		return settings.TerminalSettings{}, err
	}

	logger := log.WithContext(ctx)
	p := profile.FromJSON(data, profile.WithLogger(logger))

	if name, ok := p.ColorSchemeName(); ok {
		if _, found := scheme.Find(schemes, name); !found {
			attrs := []any{slog.String("scheme", name)}
			if suggestion, ok := suggestScheme(name, scheme.Names(schemes)); ok {
				attrs = append(attrs, slog.String("suggestion", suggestion))
			}

			logger.WarnContext(ctx, "color scheme not found, using profile colors", attrs...)
		}
	}

	return p.CreateTerminalSettings(schemes), nil
}

// suggestScheme returns the scheme name that best matches name.
func suggestScheme(name string, names []string) (string, bool) {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return n, true
		}
	}

	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return "", false
	}

	return matches[0].Str, true
}

func addSchemesFlag(cmd *cobra.Command, dst *string) {
	cmd.Flags().StringVar(dst, "schemes", "",
		fmt.Sprintf("Path to a color scheme catalog, merged with the built-in schemes (default %s)", config.SchemesPath()))

	must(cmd.MarkFlagFilename("schemes", "json"))
}
