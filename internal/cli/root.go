package cli

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/macropower/termprofile/pkg/log"
)

const (
	cmdName = "termprofile"
	cmdDesc = `Resolve, format and validate terminal profiles.`

	cmdExamples = `  # Show the settings a terminal would use for a profile:
  termprofile resolve ./zsh.json

  # Resolve with a custom color scheme catalog, as YAML:
  termprofile resolve ./zsh.json --schemes ./schemes.json --output yaml

  # Re-resolve whenever the profile changes:
  termprofile resolve ./zsh.json --watch

  # Normalize a profile and show what changed:
  termprofile fmt ./zsh.json --diff

  # Print the GUID derived from a profile name:
  termprofile guid "Windows PowerShell"

  # Read a profile from stdin:
  cat ./zsh.json | termprofile validate -`
)

type RootArgs struct {
	LogLevel  string
	LogFormat string
	EnvFile   string
}

func NewRootArgs() *RootArgs {
	return &RootArgs{}
}

func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVar(&ra.LogLevel, "log-level", "info", fmt.Sprintf("Log level, one of: %s", log.AllLevels))
	cmd.PersistentFlags().
		StringVar(&ra.LogFormat, "log-format", "text", fmt.Sprintf("Log format, one of: %s", log.AllFormats))
	cmd.PersistentFlags().
		StringVar(&ra.EnvFile, "env-file", "", "Load environment variables used for path expansion from a dotenv file")

	must(cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(log.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	))
	must(cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(log.AllLevels, cobra.ShellCompDirectiveNoFileComp),
	))
	must(cmd.MarkPersistentFlagFilename("env-file", "env"))
}

func NewRootCmd() *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:               cmdName,
		Short:             cmdDesc,
		Example:           cmdExamples,
		PersistentPreRunE: setup(args),
		SilenceUsage:      true,
	}

	args.AddFlags(cmd)
	cmd.AddCommand(
		NewResolveCmd(args),
		NewFmtCmd(args),
		NewGUIDCmd(args),
		NewValidateCmd(args),
		NewSchemaCmd(args),
		NewSchemesCmd(args),
	)

	bindEnvVars(cmd)

	return cmd
}

func setup(ra *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		logHandler, err := log.CreateHandlerWithStrings(cmd.ErrOrStderr(), ra.LogLevel, ra.LogFormat)
		if err != nil {
			return fmt.Errorf("create log handler: %w", err)
		}

		slog.SetDefault(slog.New(logHandler))

		if ra.EnvFile != "" {
			// Existing variables take precedence over the file.
			err = godotenv.Load(ra.EnvFile)
			if err != nil {
				return fmt.Errorf("load env file: %w", err)
			}

			slog.Debug("loaded env file", slog.String("path", ra.EnvFile))
		}

		return nil
	}
}
