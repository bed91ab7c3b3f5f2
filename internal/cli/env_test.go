package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/termprofile/internal/cli"
)

func TestBindEnvVars(t *testing.T) {
	tcs := map[string]struct {
		envVars       map[string]string
		wantLogLevel  string
		wantLogFormat string
		args          []string
	}{
		"environment variables are bound when no args provided": {
			envVars: map[string]string{
				"TERMPROFILE_LOG_LEVEL":  "debug",
				"TERMPROFILE_LOG_FORMAT": "json",
			},
			args:          []string{},
			wantLogLevel:  "debug",
			wantLogFormat: "json",
		},
		"command line args take precedence over environment variables": {
			envVars: map[string]string{
				"TERMPROFILE_LOG_LEVEL":  "debug",
				"TERMPROFILE_LOG_FORMAT": "json",
			},
			args:          []string{"--log-level", "error", "--log-format", "text"},
			wantLogLevel:  "error",
			wantLogFormat: "text",
		},
		"partial environment variable override": {
			envVars: map[string]string{
				"TERMPROFILE_LOG_LEVEL": "warn",
			},
			args:          []string{"--log-format", "json"},
			wantLogLevel:  "warn",
			wantLogFormat: "json",
		},
		"no environment variables uses defaults": {
			envVars:       map[string]string{},
			args:          []string{},
			wantLogLevel:  "info",
			wantLogFormat: "text",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			for key, val := range tc.envVars {
				t.Setenv(key, val)
			}

			cmd := cli.NewRootCmd()
			cmd.SetArgs(tc.args)

			err := cmd.ParseFlags(tc.args)
			require.NoError(t, err)

			logLevel, err := cmd.Flags().GetString("log-level")
			require.NoError(t, err)
			assert.Equal(t, tc.wantLogLevel, logLevel)

			logFormat, err := cmd.Flags().GetString("log-format")
			require.NoError(t, err)
			assert.Equal(t, tc.wantLogFormat, logFormat)
		})
	}
}

func TestBindEnvVars_Subcommands(t *testing.T) {
	t.Setenv("TERMPROFILE_OUTPUT", "yaml")
	t.Setenv("TERMPROFILE_NO_BRACES", "true")

	root := cli.NewRootCmd()

	resolve, _, err := root.Find([]string{"resolve"})
	require.NoError(t, err)

	output, err := resolve.Flags().GetString("output")
	require.NoError(t, err)
	assert.Equal(t, "yaml", output)

	guid, _, err := root.Find([]string{"guid"})
	require.NoError(t, err)

	noBraces, err := guid.Flags().GetBool("no-braces")
	require.NoError(t, err)
	assert.True(t, noBraces)
}

func TestEnvironmentVariableUsageUpdate(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCmd()

	logLevelFlag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, logLevelFlag)
	assert.Contains(t, logLevelFlag.Usage, "$TERMPROFILE_LOG_LEVEL")

	resolve, _, err := cmd.Find([]string{"resolve"})
	require.NoError(t, err)

	schemesFlag := resolve.Flags().Lookup("schemes")
	require.NotNil(t, schemesFlag)
	assert.Contains(t, schemesFlag.Usage, "$TERMPROFILE_SCHEMES")
}
