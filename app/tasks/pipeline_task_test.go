package tasks

import (
	"context"
	"errors"
	"testing"

	"github.com/lysyi3m/venture-watch/app/analyzer"
	"github.com/lysyi3m/venture-watch/app/collector"
)

type stubCollector struct {
	runCalls    int
	windowCalls int
	lastWindow  int
	events      []collector.FundingEvent
}

func (c *stubCollector) Run(ctx context.Context) []collector.FundingEvent {
	c.runCalls++
	return c.events
}

func (c *stubCollector) RunWindow(ctx context.Context, daysBack int) []collector.FundingEvent {
	c.windowCalls++
	c.lastWindow = daysBack
	return c.events
}

type stubAnalyzer struct {
	calls int
}

func (a *stubAnalyzer) Run(ctx context.Context, events []collector.FundingEvent) []analyzer.CompanyProfile {
	a.calls++
	profiles := make([]analyzer.CompanyProfile, 0, len(events))
	for _, event := range events {
		profiles = append(profiles, analyzer.CompanyProfile{FundingEvent: event})
	}
	return profiles
}

type stubAnalysisStore struct {
	saved []analyzer.CompanyProfile
	err   error
}

func (s *stubAnalysisStore) SaveAnalysis(profiles []analyzer.CompanyProfile) error {
	s.saved = profiles
	return s.err
}

type stubReporter struct {
	calls int
	err   error
}

func (r *stubReporter) Run(profiles []analyzer.CompanyProfile) (string, []string, error) {
	r.calls++
	return "<html>report</html>", []string{"report.html", "report.csv"}, r.err
}

func (r *stubReporter) Subject(profiles []analyzer.CompanyProfile) string {
	return "test subject"
}

type stubEmailer struct {
	configured bool
	sent       int
	subject    string
	body       string
	err        error
}

func (e *stubEmailer) Configured() bool {
	return e.configured
}

func (e *stubEmailer) Send(subject, htmlBody string) error {
	e.sent++
	e.subject = subject
	e.body = htmlBody
	return e.err
}

func pipelineEvents() []collector.FundingEvent {
	return []collector.FundingEvent{
		{CompanyName: "Acme", URL: "https://example.com/acme"},
		{CompanyName: "Nimbus", URL: "https://example.com/nimbus"},
	}
}

func TestPipelineTask_Execute(t *testing.T) {
	c := &stubCollector{events: pipelineEvents()}
	a := &stubAnalyzer{}
	store := &stubAnalysisStore{}
	reporter := &stubReporter{}
	emailer := &stubEmailer{configured: true}

	task := NewPipelineTask(c, a, store, reporter, emailer)
	task.Start()

	if err := task.Execute(context.Background()); err != nil {
		t.Fatalf("Unexpected pipeline error: %v", err)
	}

	if c.runCalls != 1 {
		t.Errorf("Expected 1 collection run, got %d", c.runCalls)
	}
	if a.calls != 1 {
		t.Errorf("Expected 1 analysis run, got %d", a.calls)
	}
	if len(store.saved) != 2 {
		t.Errorf("Expected 2 persisted profiles, got %d", len(store.saved))
	}
	if reporter.calls != 1 {
		t.Errorf("Expected 1 report run, got %d", reporter.calls)
	}
	if emailer.sent != 1 || emailer.subject != "test subject" || emailer.body != "<html>report</html>" {
		t.Errorf("Expected the report to be emailed, got %+v", emailer)
	}
}

func TestPipelineTask_NilEmailerSkipsDelivery(t *testing.T) {
	task := NewPipelineTask(&stubCollector{events: pipelineEvents()}, &stubAnalyzer{},
		&stubAnalysisStore{}, &stubReporter{}, nil)

	if err := task.Execute(context.Background()); err != nil {
		t.Fatalf("Unexpected pipeline error: %v", err)
	}
}

func TestPipelineTask_UnconfiguredEmailerSkipsDelivery(t *testing.T) {
	emailer := &stubEmailer{configured: false}
	task := NewPipelineTask(&stubCollector{events: pipelineEvents()}, &stubAnalyzer{},
		&stubAnalysisStore{}, &stubReporter{}, emailer)

	if err := task.Execute(context.Background()); err != nil {
		t.Fatalf("Unexpected pipeline error: %v", err)
	}
	if emailer.sent != 0 {
		t.Errorf("Expected no email delivery, got %d sends", emailer.sent)
	}
}

func TestPipelineTask_ReportFailureFailsTask(t *testing.T) {
	task := NewPipelineTask(&stubCollector{events: pipelineEvents()}, &stubAnalyzer{},
		&stubAnalysisStore{}, &stubReporter{err: errors.New("template broken")}, nil)

	if err := task.Execute(context.Background()); err == nil {
		t.Error("Expected a report failure to fail the task")
	}
}

func TestPipelineTask_StoreFailureDoesNotFailTask(t *testing.T) {
	task := NewPipelineTask(&stubCollector{events: pipelineEvents()}, &stubAnalyzer{},
		&stubAnalysisStore{err: errors.New("disk full")}, &stubReporter{}, nil)

	if err := task.Execute(context.Background()); err != nil {
		t.Errorf("A persistence failure must not fail the task, got %v", err)
	}
}

func TestPipelineTask_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	task := NewPipelineTask(&stubCollector{}, &stubAnalyzer{}, &stubAnalysisStore{}, &stubReporter{}, nil)

	if err := task.Execute(ctx); err == nil {
		t.Error("Expected an error for a cancelled context")
	}
}

func TestCollectTask_UsesExplicitWindow(t *testing.T) {
	c := &stubCollector{events: pipelineEvents()}
	task := NewCollectTask(c, 14)
	task.Start()

	if err := task.Execute(context.Background()); err != nil {
		t.Fatalf("Unexpected collection error: %v", err)
	}
	if c.windowCalls != 1 || c.lastWindow != 14 {
		t.Errorf("Expected a 14-day window run, got calls=%d window=%d", c.windowCalls, c.lastWindow)
	}
	if c.runCalls != 0 {
		t.Errorf("Expected no default run, got %d", c.runCalls)
	}
}

func TestCollectTask_ZeroWindowUsesDefault(t *testing.T) {
	c := &stubCollector{}
	task := NewCollectTask(c, 0)

	if err := task.Execute(context.Background()); err != nil {
		t.Fatalf("Unexpected collection error: %v", err)
	}
	if c.runCalls != 1 || c.windowCalls != 0 {
		t.Errorf("Expected the default run, got run=%d window=%d", c.runCalls, c.windowCalls)
	}
}
