package autotoc

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/autotoc/internal/config"
	"git.home.luguber.info/inful/autotoc/internal/docs"
	ferrors "git.home.luguber.info/inful/autotoc/internal/foundation/errors"
	"git.home.luguber.info/inful/autotoc/internal/logfields"
	"git.home.luguber.info/inful/autotoc/internal/metrics"
	"git.home.luguber.info/inful/autotoc/internal/navigator"
	"git.home.luguber.info/inful/autotoc/internal/paths"
	"git.home.luguber.info/inful/autotoc/internal/routes"
)

// Result summarizes one run.
type Result struct {
	BuildID        string
	Root           string
	Collected      int
	Navigators     []paths.Rel
	EntryPage      paths.Rel
	Rewrites       int
	StageDurations map[StageName]time.Duration
	Start          time.Time
	End            time.Time
}

// Duration is the wall time of the run.
func (r *Result) Duration() time.Duration { return r.End.Sub(r.Start) }

// FilesWritten counts navigators plus the entry page.
func (r *Result) FilesWritten() int {
	n := len(r.Navigators)
	if r.EntryPage != "" {
		n++
	}
	return n
}

// Plan is the collected and routed view of a docs tree, before anything is written.
type Plan struct {
	Root       string // absolute docs root
	ContentDir paths.Rel
	Collection *docs.Collection
	Table      *routes.Table
}

// Option customizes a run.
type Option func(*runState)

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(rs *runState) {
		if r != nil {
			rs.recorder = r
		}
	}
}

// WithLogger sets the base logger; the run id is added to it.
func WithLogger(l *slog.Logger) Option {
	return func(rs *runState) {
		if l != nil {
			rs.logger = l
		}
	}
}

type runState struct {
	cfg       *config.Config
	plan      *Plan
	generator *navigator.Generator
	result    *Result
	recorder  metrics.Recorder
	logger    *slog.Logger
}

func (rs *runState) navigatorOptions() navigator.Options {
	return navigator.Options{
		ProjectName:          rs.cfg.ProjectName,
		ContentDir:           rs.plan.ContentDir,
		HeaderText:           rs.cfg.HeaderText,
		TrimFolderNumbers:    rs.cfg.TrimFolderNumbers,
		HeadersFromSubfolder: rs.cfg.HeadersFromSubfolder,
		ReadmeNames:          rs.cfg.ReadmeNames,
	}
}

// Generate regenerates every navigator and the entry page under docsDir. It
// fails with a configuration error, before writing anything, when docsDir or
// its content folder is missing or empty.
func Generate(ctx context.Context, docsDir string, cfg *config.Config, opts ...Option) (*Result, error) {
	cfg, err := effectiveConfig(cfg)
	if err != nil {
		return nil, err
	}
	root, err := resolveRoot(docsDir)
	if err != nil {
		return nil, err
	}

	result := &Result{
		BuildID:        uuid.NewString(),
		Root:           root,
		StageDurations: make(map[StageName]time.Duration),
		Start:          time.Now(),
	}
	rs := &runState{
		cfg:      cfg,
		plan:     &Plan{Root: root, ContentDir: paths.Normalize(cfg.ContentDir)},
		result:   result,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, o := range opts {
		o(rs)
	}
	rs.logger = rs.logger.With(logfields.BuildID(result.BuildID))
	rs.logger.Info("Generating navigation", logfields.Path(root), logfields.Dir(rs.plan.ContentDir.String()))

	err = runStages(ctx, rs, defaultStages())
	result.End = time.Now()
	rs.recorder.ObserveRunDuration(result.Duration())

	switch {
	case err == nil:
		rs.recorder.IncOutcome(metrics.OutcomeSuccess)
		rs.logger.Info("Navigation generated",
			logfields.Count(result.FilesWritten()),
			slog.Int("rewrites", result.Rewrites),
			logfields.Elapsed(result.Start))
		return result, nil
	case ferrors.IsConfigError(err):
		rs.recorder.IncOutcome(metrics.OutcomeConfigError)
	default:
		rs.recorder.IncOutcome(metrics.OutcomeFailed)
	}
	return result, err
}

// Inspect collects and routes docsDir without writing anything.
func Inspect(docsDir string, cfg *config.Config) (*Plan, error) {
	cfg, err := effectiveConfig(cfg)
	if err != nil {
		return nil, err
	}
	root, err := resolveRoot(docsDir)
	if err != nil {
		return nil, err
	}
	rs := &runState{
		cfg:      cfg,
		plan:     &Plan{Root: root, ContentDir: paths.Normalize(cfg.ContentDir)},
		result:   &Result{StageDurations: make(map[StageName]time.Duration)},
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	if err := stageCollect(context.Background(), rs); err != nil {
		return nil, err
	}
	rs.plan.Table = routes.Build(rs.plan.Collection)
	return rs.plan, nil
}

// effectiveConfig returns a finalized copy of cfg; the caller's value is left untouched.
func effectiveConfig(cfg *config.Config) (*config.Config, error) {
	if cfg == nil {
		return config.Default(), nil
	}
	c := *cfg
	if err := config.Finalize(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func resolveRoot(docsDir string) (string, error) {
	root, err := filepath.Abs(docsDir)
	if err != nil {
		return "", ferrors.ConfigError("cannot resolve docs dir").WithContext("path", docsDir).Build()
	}
	if err := docs.CheckDir(root); err != nil {
		return "", err
	}
	return root, nil
}
