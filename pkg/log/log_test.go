package log_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/macropower/termprofile/pkg/log"
)

func TestGetLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		"error":   {input: "error", want: slog.LevelError},
		"warn":    {input: "warn", want: slog.LevelWarn},
		"warning": {input: "WARNING", want: slog.LevelWarn},
		"info":    {input: "Info", want: slog.LevelInfo},
		"debug":   {input: "debug", want: slog.LevelDebug},
		"unknown": {input: "trace", wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := log.GetLevel(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, log.ErrUnknownLogLevel)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetFormat(t *testing.T) {
	t.Parallel()

	for _, f := range log.AllFormats {
		got, err := log.GetFormat(f)
		require.NoError(t, err)
		assert.Equal(t, log.Format(f), got)
	}

	_, err := log.GetFormat("xml")
	require.ErrorIs(t, err, log.ErrUnknownLogFormat)
}

func TestCreateHandlerWithStrings(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		level    string
		format   string
		contains string
		wantErr  bool
	}{
		"json": {
			level:    "info",
			format:   "json",
			contains: `"msg":"resolved"`,
		},
		"logfmt": {
			level:    "debug",
			format:   "logfmt",
			contains: "msg=resolved",
		},
		"text": {
			level:    "info",
			format:   "text",
			contains: "resolved",
		},
		"bad level": {
			level:   "loud",
			format:  "json",
			wantErr: true,
		},
		"bad format": {
			level:   "info",
			format:  "yaml",
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			h, err := log.CreateHandlerWithStrings(&buf, tc.level, tc.format)
			if tc.wantErr {
				require.ErrorIs(t, err, log.ErrInvalidArgument)
				return
			}

			require.NoError(t, err)

			logger := slog.New(h)
			logger.Info("resolved", slog.String("profile", "zsh"))
			logger.Debug("hidden unless debug")

			assert.Contains(t, buf.String(), tc.contains)
			assert.Contains(t, buf.String(), "zsh")
			if tc.level != "debug" {
				assert.NotContains(t, buf.String(), "hidden unless debug")
			}
		})
	}
}

func TestWithContext(t *testing.T) {
	t.Parallel()

	t.Run("stored logger", func(t *testing.T) {
		t.Parallel()

		logger := slog.New(log.NewRecorder(1, slog.LevelDebug))
		ctx := log.NewContext(t.Context(), logger)

		assert.Same(t, logger, log.WithContext(ctx))
	})

	t.Run("trace id", func(t *testing.T) {
		t.Parallel()

		sc := trace.NewSpanContext(trace.SpanContextConfig{
			TraceID: trace.TraceID{0xde, 0xad, 0xbe, 0xef, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
			SpanID:  trace.SpanID{1, 2, 3, 4, 5, 6, 7, 8},
		})
		ctx := trace.ContextWithSpanContext(context.Background(), sc)

		logger := log.WithContext(ctx)
		require.NotNil(t, logger)
		assert.NotSame(t, slog.Default(), logger)
	})

	t.Run("default", func(t *testing.T) {
		t.Parallel()

		assert.Same(t, slog.Default(), log.WithContext(t.Context()))
	})
}
