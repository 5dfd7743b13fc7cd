package autotoc

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/autotoc/internal/autosummary"
	"git.home.luguber.info/inful/autotoc/internal/docs"
	ferrors "git.home.luguber.info/inful/autotoc/internal/foundation/errors"
	"git.home.luguber.info/inful/autotoc/internal/logfields"
	"git.home.luguber.info/inful/autotoc/internal/navigator"
	"git.home.luguber.info/inful/autotoc/internal/routes"
)

// StageName identifies a pipeline stage.
type StageName string

const (
	StageCollect     StageName = "collect"
	StageRoutes      StageName = "routes"
	StageNavigators  StageName = "navigators"
	StageEntryPage   StageName = "entry_page"
	StageAutosummary StageName = "autosummary"
)

// Stage is a discrete unit of work in a run.
type Stage func(ctx context.Context, rs *runState) error

// StageDef pairs a stage name with its function.
type StageDef struct {
	Name StageName
	Fn   Stage
}

func defaultStages() []StageDef {
	return []StageDef{
		{StageCollect, stageCollect},
		{StageRoutes, stageRoutes},
		{StageNavigators, stageNavigators},
		{StageEntryPage, stageEntryPage},
		{StageAutosummary, stageAutosummary},
	}
}

// runStages executes stages in order, recording timing and stopping on the first error.
func runStages(ctx context.Context, rs *runState, stages []StageDef) error {
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryInternal, "generation canceled").
				WithContext("stage", string(st.Name)).
				Build()
		}
		t0 := time.Now()
		err := st.Fn(ctx, rs)
		dur := time.Since(t0)
		rs.result.StageDurations[st.Name] = dur
		rs.recorder.ObserveStageDuration(string(st.Name), dur)
		if err != nil {
			rs.logger.Error("Stage failed", logfields.Stage(string(st.Name)), logfields.Error(err))
			return err
		}
		rs.logger.Debug("Stage complete", logfields.Stage(string(st.Name)), logfields.DurationMS(float64(dur.Microseconds())/1000))
	}
	return nil
}

func stageCollect(_ context.Context, rs *runState) error {
	if err := docs.CheckDir(rs.plan.ContentDir.OS(rs.plan.Root)); err != nil {
		return err
	}
	collection, err := docs.Collect(rs.plan.Root, docs.Options{
		ExcludePatterns: rs.cfg.ExcludePatterns,
		SourceSuffixes:  rs.cfg.SourceSuffixes,
	})
	if err != nil {
		return err
	}
	rs.plan.Collection = collection
	rs.plan.ContentDir = collection.Resolve(rs.plan.ContentDir)
	if skipped := collection.Skipped(); len(skipped) > 0 {
		rs.logger.Warn("Some paths could not be read and were left out", logfields.Count(len(skipped)))
	}
	rs.result.Collected = collection.Len()
	rs.recorder.SetCollectedPaths(collection.Len())
	rs.logger.Info("Collected documentation paths", logfields.Count(collection.Len()))
	return nil
}

func stageRoutes(_ context.Context, rs *runState) error {
	rs.plan.Table = routes.Build(rs.plan.Collection)
	rs.generator = navigator.NewGenerator(rs.plan.Root, rs.plan.Table, rs.navigatorOptions()).
		WithRecorder(rs.recorder).
		WithLogger(rs.logger)
	return nil
}

func stageNavigators(_ context.Context, rs *runState) error {
	written, err := rs.generator.WriteNavigators()
	rs.result.Navigators = written
	return err
}

func stageEntryPage(_ context.Context, rs *runState) error {
	page, err := rs.generator.WriteEntryPage()
	rs.result.EntryPage = page
	return err
}

func stageAutosummary(_ context.Context, rs *runState) error {
	if !rs.cfg.AutosummaryActive() {
		rs.logger.Debug("Autosummary linking disabled")
		return nil
	}
	captures, err := autosummary.Find(rs.plan.Root, rs.plan.Collection.Files())
	if err != nil {
		return err
	}
	n, err := autosummary.Apply(rs.plan.Root, captures, rs.plan.ContentDir, navigator.EntryPage, rs.logger)
	rs.result.Rewrites = n
	rs.recorder.IncRewrites(n)
	if err != nil {
		return err
	}
	rs.logger.Info("Linked autosummary references", logfields.Count(n), slog.Int("placeholders", len(captures)))
	return nil
}
