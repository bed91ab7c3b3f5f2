package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// bindEnvVars binds environment variables to the flags of cmd and all of its
// subcommands. Environment variable names are generated as
// TERMPROFILE_<FLAG_NAME>, where the flag name is converted to uppercase and
// dashes are replaced with underscores.
//
// For example:
//   - Flag "log-level" becomes environment variable "TERMPROFILE_LOG_LEVEL"
//   - Flag "schemes" becomes environment variable "TERMPROFILE_SCHEMES"
//
// Arguments take precedence over environment variables, which take precedence
// over default values. Flag usage is updated to show the variable name.
func bindEnvVars(cmd *cobra.Command) {
	cmd.Flags().VisitAll(bindFlagToEnv)
	cmd.PersistentFlags().VisitAll(bindFlagToEnv)

	for _, sub := range cmd.Commands() {
		bindEnvVars(sub)
	}
}

func bindFlagToEnv(flag *pflag.Flag) {
	envName := flagToEnvName(flag.Name)

	if !strings.Contains(flag.Usage, envName) {
		flag.Usage = fmt.Sprintf("%s ($%s)", flag.Usage, envName)
	}

	// Skip if flag was already set via command line arguments.
	if flag.Changed {
		return
	}

	envValue, ok := os.LookupEnv(envName)
	if !ok {
		return
	}

	err := flag.Value.Set(envValue)
	if err != nil {
		// Keep the default value.
		slog.Error("failed to set flag from environment variable",
			slog.String("flag", flag.Name),
			slog.String("env", envName),
			slog.String("value", envValue),
			slog.Any("error", err),
		)
	}
}

// flagToEnvName converts a flag name to its environment variable name.
// Example: "log-level" -> "TERMPROFILE_LOG_LEVEL".
func flagToEnvName(flagName string) string {
	envName := strings.ReplaceAll(flagName, "-", "_")
	return strings.ToUpper(cmdName + "_" + envName)
}
