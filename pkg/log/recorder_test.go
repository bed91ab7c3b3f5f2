package log_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/termprofile/pkg/log"
)

func messages(records []slog.Record) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.Message
	}

	return out
}

func attrs(rec slog.Record) map[string]string {
	out := map[string]string{}
	rec.Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value.String()
		return true
	})

	return out
}

func TestNewRecorder(t *testing.T) {
	t.Parallel()

	r := log.NewRecorder(0, nil)
	logger := slog.New(r)

	for range log.DefaultRecorderCapacity + 5 {
		logger.Info("x")
	}

	assert.Equal(t, log.DefaultRecorderCapacity, r.Len())
}

func TestRecorder_Level(t *testing.T) {
	t.Parallel()

	r := log.NewRecorder(10, slog.LevelWarn)
	logger := slog.New(r)

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	assert.Equal(t, []string{"warn", "error"}, messages(r.Records()))
}

func TestRecorder_Wraps(t *testing.T) {
	t.Parallel()

	r := log.NewRecorder(3, slog.LevelDebug)
	logger := slog.New(r)

	for _, msg := range []string{"one", "two", "three", "four", "five"} {
		logger.Debug(msg)
	}

	assert.Equal(t, []string{"three", "four", "five"}, messages(r.Records()))

	r.Reset()
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Records())

	logger.Debug("six")
	assert.Equal(t, []string{"six"}, messages(r.Records()))
}

func TestRecorder_Attrs(t *testing.T) {
	t.Parallel()

	r := log.NewRecorder(10, slog.LevelDebug)
	logger := slog.New(r).With(slog.String("file", "zsh.json"))

	logger.Debug("ignore json value", slog.String("key", "fontSize"))
	logger.WithGroup("scheme").With(slog.String("name", "Campbell")).Debug("not found", slog.Int("count", 2))

	recs := r.Records()
	require.Len(t, recs, 2)

	assert.Equal(t, map[string]string{"file": "zsh.json", "key": "fontSize"}, attrs(recs[0]))

	got := attrs(recs[1])
	assert.Equal(t, "zsh.json", got["file"])
	assert.Equal(t, "[name=Campbell count=2]", got["scheme"])
}

func TestRecorder_Replay(t *testing.T) {
	t.Parallel()

	r := log.NewRecorder(10, slog.LevelDebug)
	logger := slog.New(r)
	logger.Debug("quiet")
	logger.Warn("loud", slog.String("key", "cursorShape"))

	var buf bytes.Buffer
	require.NoError(t, r.Replay(t.Context(), slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "msg=loud key=cursorShape")
}

func TestRecorder_Concurrent(t *testing.T) {
	t.Parallel()

	r := log.NewRecorder(1000, slog.LevelDebug)
	logger := slog.New(r)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				logger.Info("entry")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 500, r.Len())
}
