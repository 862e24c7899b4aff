package api

import (
	"github.com/lysyi3m/venture-watch/app/analyzer"
	"github.com/lysyi3m/venture-watch/app/collector"
	"github.com/lysyi3m/venture-watch/app/tasks"
)

// SnapshotReader reads the persisted pipeline snapshots fresh on every call.
type SnapshotReader interface {
	LoadFunding() ([]collector.FundingEvent, error)
	LoadAnalysis() ([]analyzer.CompanyProfile, error)
}

type Handler struct {
	store          SnapshotReader
	scheduler      tasks.TaskSchedulerInterface
	newCollectTask func(daysBack int) tasks.TaskInterface
}
