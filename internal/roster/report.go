package roster

import (
	"context"
	"log/slog"
)

// Outcome names a branch taken while building the roster.
type Outcome string

const (
	// Photo outcomes, one per profile.
	OutcomeSigned        Outcome = "signed"
	OutcomeDirect        Outcome = "direct"
	OutcomeDefaultNoPath Outcome = "default_no_path"
	OutcomeDefaultFailed Outcome = "default_failed"

	// List outcomes, one per fetch.
	OutcomeListOK        Outcome = "list_ok"
	OutcomeListFailed    Outcome = "list_failed"
	OutcomeListMalformed Outcome = "list_malformed"
	OutcomeListTruncated Outcome = "list_truncated"
)

// IsFallback reports whether the outcome degraded to something other than
// what the backend was asked for.
func (o Outcome) IsFallback() bool {
	switch o {
	case OutcomeDirect, OutcomeDefaultFailed, OutcomeListFailed, OutcomeListMalformed, OutcomeListTruncated:
		return true
	}
	return false
}

// IsPhoto reports whether the outcome belongs to photo resolution.
func (o Outcome) IsPhoto() bool {
	switch o {
	case OutcomeSigned, OutcomeDirect, OutcomeDefaultNoPath, OutcomeDefaultFailed:
		return true
	}
	return false
}

// Decision is the diagnostic emitted for every branch taken.
type Decision struct {
	Outcome   Outcome `json:"outcome"`
	ProfileID int64   `json:"profile_id,omitempty"`
	Count     int     `json:"count,omitempty"`
	Reason    string  `json:"reason,omitempty"`
}

// Reporter receives decisions. Implementations must be safe for concurrent
// use; photo decisions arrive from parallel goroutines.
type Reporter interface {
	Report(ctx context.Context, d Decision)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(ctx context.Context, d Decision)

// Report implements Reporter.
func (f ReporterFunc) Report(ctx context.Context, d Decision) { f(ctx, d) }

// MultiReporter fans a decision out to several reporters.
type MultiReporter []Reporter

// Report implements Reporter.
func (m MultiReporter) Report(ctx context.Context, d Decision) {
	for _, r := range m {
		if r != nil {
			r.Report(ctx, d)
		}
	}
}

// LogReporter writes decisions to slog. Fallbacks log at warn level so that
// widespread photo failures stand out; expected outcomes log at debug.
type LogReporter struct {
	logger *slog.Logger
}

// NewLogReporter creates a LogReporter; a nil logger uses slog.Default().
func NewLogReporter(logger *slog.Logger) *LogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogReporter{logger: logger.With("component", "roster")}
}

// Report implements Reporter.
func (l *LogReporter) Report(ctx context.Context, d Decision) {
	level := slog.LevelDebug
	if d.Outcome.IsFallback() {
		level = slog.LevelWarn
	}
	attrs := []any{"outcome", string(d.Outcome)}
	if d.ProfileID != 0 {
		attrs = append(attrs, "profile_id", d.ProfileID)
	}
	if d.Count != 0 {
		attrs = append(attrs, "count", d.Count)
	}
	if d.Reason != "" {
		attrs = append(attrs, "reason", d.Reason)
	}
	l.logger.Log(ctx, level, "roster decision", attrs...)
}

type discardReporter struct{}

func (discardReporter) Report(context.Context, Decision) {}
