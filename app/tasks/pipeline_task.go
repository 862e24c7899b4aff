package tasks

import (
	"context"
	"fmt"
	"log/slog"
)

// PipelineTask runs the full agent pipeline: collect funding data, analyze it,
// persist the enriched snapshot, and generate (optionally deliver) the report.
type PipelineTask struct {
	Task
	collector CollectorInterface
	analyzer  AnalyzerInterface
	store     AnalysisStore
	reporter  ReporterInterface
	emailer   EmailerInterface
}

func NewPipelineTask(c CollectorInterface, a AnalyzerInterface, store AnalysisStore,
	reporter ReporterInterface, emailer EmailerInterface) *PipelineTask {
	return &PipelineTask{
		Task:      NewTask(TaskTypePipeline),
		collector: c,
		analyzer:  a,
		store:     store,
		reporter:  reporter,
		emailer:   emailer,
	}
}

func (t *PipelineTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	slog.Info("Starting agent pipeline")

	events := t.collector.Run(ctx)
	profiles := t.analyzer.Run(ctx, events)

	if err := t.store.SaveAnalysis(profiles); err != nil {
		slog.Error("Failed to persist analysis snapshot", "error", err)
	}

	html, paths, err := t.reporter.Run(profiles)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}
	slog.Info("Report generated", "files", paths)

	if t.emailer != nil && t.emailer.Configured() {
		subject := t.reporter.Subject(profiles)
		if err := t.emailer.Send(subject, html); err != nil {
			slog.Error("Failed to send report email", "error", err)
		} else {
			slog.Info("Report email sent", "subject", subject)
		}
	}

	slog.Info("Agent pipeline complete", "startups", len(profiles), "duration", t.GetDuration().String())
	return nil
}

// CollectTask runs collection only, used for on-demand refreshes triggered
// through the API. A zero day window falls back to the configured default.
type CollectTask struct {
	Task
	collector CollectorInterface
	daysBack  int
}

func NewCollectTask(c CollectorInterface, daysBack int) *CollectTask {
	return &CollectTask{
		Task:      NewTask(TaskTypeCollect),
		collector: c,
		daysBack:  daysBack,
	}
}

func (t *CollectTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	var events int
	if t.daysBack > 0 {
		events = len(t.collector.RunWindow(ctx, t.daysBack))
	} else {
		events = len(t.collector.Run(ctx))
	}

	slog.Info("On-demand collection complete", "events", events, "duration", t.GetDuration().String())
	return nil
}
