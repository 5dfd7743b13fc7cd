package metrics

import "time"

// FileKind labels generated files.
type FileKind string

const (
	KindNavigator FileKind = "navigator"
	KindEntryPage FileKind = "entry_page"
)

// OutcomeLabel is the final status of a run.
type OutcomeLabel string

const (
	OutcomeSuccess     OutcomeLabel = "success"
	OutcomeConfigError OutcomeLabel = "config_error"
	OutcomeFailed      OutcomeLabel = "failed"
)

// Recorder defines observability hooks for a generation run.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveRunDuration(d time.Duration)
	IncFilesWritten(kind FileKind)
	IncRewrites(n int)
	SetCollectedPaths(n int)
	IncOutcome(outcome OutcomeLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveRunDuration(time.Duration)           {}
func (NoopRecorder) IncFilesWritten(FileKind)                   {}
func (NoopRecorder) IncRewrites(int)                            {}
func (NoopRecorder) SetCollectedPaths(int)                      {}
func (NoopRecorder) IncOutcome(OutcomeLabel)                    {}
