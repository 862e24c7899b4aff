package tasks

import (
	"context"

	"github.com/lysyi3m/venture-watch/app/analyzer"
	"github.com/lysyi3m/venture-watch/app/collector"
)

// TaskSchedulerInterface defines the interface for task scheduling operations.
// Used by the main application and the API to manage background pipeline runs.
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
}

// CollectorInterface is the collection orchestrator as consumed by tasks.
type CollectorInterface interface {
	Run(ctx context.Context) []collector.FundingEvent
	RunWindow(ctx context.Context, daysBack int) []collector.FundingEvent
}

// AnalyzerInterface enriches collected events with company insights.
type AnalyzerInterface interface {
	Run(ctx context.Context, events []collector.FundingEvent) []analyzer.CompanyProfile
}

// AnalysisStore persists the enriched snapshot.
type AnalysisStore interface {
	SaveAnalysis(profiles []analyzer.CompanyProfile) error
}

// ReporterInterface renders the report and returns its HTML body.
type ReporterInterface interface {
	Run(profiles []analyzer.CompanyProfile) (string, []string, error)
	Subject(profiles []analyzer.CompanyProfile) string
}

// EmailerInterface delivers a rendered report.
type EmailerInterface interface {
	Configured() bool
	Send(subject, htmlBody string) error
}
