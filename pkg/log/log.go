package log

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"go.opentelemetry.io/otel/trace"

	charmlog "github.com/charmbracelet/log"
)

type (
	Format string
	Level  string

	contextKey string
)

const (
	FormatJSON   Format = "json"
	FormatLogfmt Format = "logfmt"
	FormatText   Format = "text"

	LevelError Level = "error"
	LevelWarn  Level = "warn"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"

	loggerContextKey contextKey = "logger"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUnknownLogLevel  = errors.New("unknown log level")
	ErrUnknownLogFormat = errors.New("unknown log format")

	AllFormats = []string{
		string(FormatJSON),
		string(FormatLogfmt),
		string(FormatText),
	}
	AllLevels = []string{
		string(LevelError),
		string(LevelWarn),
		string(LevelInfo),
		string(LevelDebug),
	}
)

// CreateHandlerWithStrings creates a [slog.Handler] from the values of the
// --log-level and --log-format flags.
func CreateHandlerWithStrings(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	lvl, err := GetLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	format, err := GetFormat(logFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return CreateHandler(w, lvl, format), nil
}

// CreateHandler creates a [slog.Handler] writing to w. The text format is
// colored when w is a terminal.
func CreateHandler(w io.Writer, lvl slog.Level, format Format) slog.Handler {
	opts := &slog.HandlerOptions{AddSource: true, Level: lvl}

	switch format {
	case FormatJSON:
		return slog.NewJSONHandler(w, opts)
	case FormatLogfmt:
		return slog.NewTextHandler(w, opts)
	case FormatText:
		return newCharmLogHandler(w, lvl)
	}

	return nil
}

// GetLevel parses a level name. "warning" is accepted as an alias of "warn".
func GetLevel(level string) (slog.Level, error) {
	switch Level(strings.ToLower(level)) {
	case LevelError:
		return slog.LevelError, nil
	case LevelWarn, "warning":
		return slog.LevelWarn, nil
	case LevelInfo:
		return slog.LevelInfo, nil
	case LevelDebug:
		return slog.LevelDebug, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
}

func GetFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	if slices.Contains([]Format{FormatJSON, FormatLogfmt, FormatText}, f) {
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownLogFormat, format)
}

func newCharmLogHandler(w io.Writer, level slog.Level) slog.Handler {
	//nolint:gosec // G115: input from GetLevel.
	lvl := int32(level)

	logger := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(lvl),
		Formatter:       charmlog.TextFormatter,
		ReportTimestamp: true,
		ReportCaller:    level <= slog.LevelDebug,
		TimeFormat:      time.StampMilli,
	})
	logger.SetColorProfile(termenv.NewOutput(w).EnvColorProfile())

	return logger
}

// NewContext returns a copy of ctx carrying logger.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// WithContext returns the logger stored in ctx by [NewContext]. Otherwise it
// returns the default logger, annotated with the trace ID of the span in
// ctx if there is one.
func WithContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}

	if span := trace.SpanFromContext(ctx); span.SpanContext().IsValid() {
		traceID := span.SpanContext().TraceID().String()
		// Short IDs are enough to correlate lines within one run.
		if len(traceID) > 8 {
			traceID = traceID[:8]
		}

		return slog.With(slog.String("trace_id", traceID))
	}

	return slog.Default()
}
