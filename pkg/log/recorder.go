package log

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// DefaultRecorderCapacity is used when [NewRecorder] is given a
// non-positive capacity.
const DefaultRecorderCapacity = 100

// Recorder is a [slog.Handler] that keeps the most recent records in memory.
// When full, the oldest record is overwritten. Handlers derived with
// [Recorder.WithAttrs] and [Recorder.WithGroup] share the same storage.
//
// It is used to collect diagnostics, such as ignored profile values, so they
// can be reported after an operation completes.
type Recorder struct {
	ring   *recordRing
	level  slog.Leveler
	attrs  []slog.Attr
	groups []recordGroup
}

type recordGroup struct {
	name  string
	attrs []slog.Attr
}

type recordRing struct {
	records []slog.Record
	head    int
	size    int
	mu      sync.Mutex
}

// NewRecorder creates a [Recorder] holding up to capacity records at or above
// level.
func NewRecorder(capacity int, level slog.Leveler) *Recorder {
	if capacity <= 0 {
		capacity = DefaultRecorderCapacity
	}

	return &Recorder{
		ring:  &recordRing{records: make([]slog.Record, capacity)},
		level: level,
	}
}

// Enabled implements [slog.Handler].
func (r *Recorder) Enabled(_ context.Context, lvl slog.Level) bool {
	minLevel := slog.LevelInfo
	if r.level != nil {
		minLevel = r.level.Level()
	}

	return lvl >= minLevel
}

// Handle implements [slog.Handler]. The record is cloned before it is stored.
func (r *Recorder) Handle(_ context.Context, rec slog.Record) error {
	var attrs []slog.Attr
	rec.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})

	for i := len(r.groups) - 1; i >= 0; i-- {
		g := r.groups[i]
		inner := append(slices.Clone(g.attrs), attrs...)
		if len(inner) == 0 {
			attrs = nil
			continue
		}

		attrs = []slog.Attr{{Key: g.name, Value: slog.GroupValue(inner...)}}
	}

	out := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	out.AddAttrs(r.attrs...)
	out.AddAttrs(attrs...)

	r.ring.push(out)

	return nil
}

// WithAttrs implements [slog.Handler].
func (r *Recorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return r
	}

	nr := *r
	if n := len(r.groups); n > 0 {
		nr.groups = slices.Clone(r.groups)
		nr.groups[n-1].attrs = append(slices.Clone(r.groups[n-1].attrs), attrs...)

		return &nr
	}

	nr.attrs = append(slices.Clone(r.attrs), attrs...)

	return &nr
}

// WithGroup implements [slog.Handler].
func (r *Recorder) WithGroup(name string) slog.Handler {
	if name == "" {
		return r
	}

	nr := *r
	nr.groups = append(slices.Clone(r.groups), recordGroup{name: name})

	return &nr
}

// Records returns the stored records, oldest first.
func (r *Recorder) Records() []slog.Record {
	return r.ring.snapshot()
}

// Len returns the number of stored records.
func (r *Recorder) Len() int {
	r.ring.mu.Lock()
	defer r.ring.mu.Unlock()

	return r.ring.size
}

// Reset removes all stored records.
func (r *Recorder) Reset() {
	r.ring.mu.Lock()
	defer r.ring.mu.Unlock()

	clear(r.ring.records)
	r.ring.head = 0
	r.ring.size = 0
}

// Replay sends the stored records to h, oldest first, skipping records h is
// not enabled for.
func (r *Recorder) Replay(ctx context.Context, h slog.Handler) error {
	var errs []error
	for _, rec := range r.Records() {
		if !h.Enabled(ctx, rec.Level) {
			continue
		}
		if err := h.Handle(ctx, rec); err != nil {
			errs = append(errs, fmt.Errorf("replay %q: %w", rec.Message, err))
		}
	}

	return errors.Join(errs...)
}

func (rr *recordRing) push(rec slog.Record) {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	rr.records[rr.head] = rec
	rr.head = (rr.head + 1) % len(rr.records)
	if rr.size < len(rr.records) {
		rr.size++
	}
}

func (rr *recordRing) snapshot() []slog.Record {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	out := make([]slog.Record, 0, rr.size)
	start := (rr.head - rr.size + len(rr.records)) % len(rr.records)
	for i := range rr.size {
		out = append(out, rr.records[(start+i)%len(rr.records)].Clone())
	}

	return out
}
