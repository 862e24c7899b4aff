package collector

import (
	"context"
	"log/slog"
	"time"
)

// Source is one external discovery provider queried by the pipeline.
type Source interface {
	Name() string
	Collect(ctx context.Context, daysBack int) ([]FundingEvent, error)
}

// SnapshotWriter persists the final deduplicated list by overwriting a single
// snapshot in full.
type SnapshotWriter interface {
	SaveFunding(events []FundingEvent) error
}

// Collector sequences the discovery sources, deduplicates their results,
// substitutes the sample fixture when live collection is empty, and persists
// the final set. No error inside a run is fatal: the caller always receives a
// non-empty in-memory result.
type Collector struct {
	news     Source
	search   Source
	scrapers Source // optional, nil when disabled
	store    SnapshotWriter
	daysBack int
}

func NewCollector(news, search, scrapers Source, store SnapshotWriter, daysBack int) *Collector {
	return &Collector{
		news:     news,
		search:   search,
		scrapers: scrapers,
		store:    store,
		daysBack: daysBack,
	}
}

// Run executes a full collection over the configured day window.
func (c *Collector) Run(ctx context.Context) []FundingEvent {
	return c.RunWindow(ctx, c.daysBack)
}

// RunWindow executes a full collection looking back the given number of days.
func (c *Collector) RunWindow(ctx context.Context, daysBack int) []FundingEvent {
	slog.Info("Starting funding data collection", "days_back", daysBack)

	newsEvents := c.collect(ctx, c.news, daysBack)
	searchEvents := c.collect(ctx, c.search, daysBack)

	merged := Deduplicate(newsEvents, searchEvents)

	if c.scrapers != nil {
		merged = Deduplicate(merged, c.collect(ctx, c.scrapers, daysBack))
	}

	if len(merged) == 0 {
		slog.Warn("Live collection returned no results, falling back to sample data")
		merged = SampleEvents(time.Now())
	}

	if err := c.store.SaveFunding(merged); err != nil {
		slog.Error("Failed to persist funding snapshot", "error", err)
	}

	slog.Info("Funding data collection complete", "events", len(merged))
	return merged
}

func (c *Collector) collect(ctx context.Context, src Source, daysBack int) []FundingEvent {
	events, err := src.Collect(ctx, daysBack)
	if err != nil {
		slog.Error("Source collection failed", "source", src.Name(), "error", err)
		return nil
	}
	return events
}
