package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/venture-watch/app/tasks"
)

func NewHandler(store SnapshotReader, scheduler tasks.TaskSchedulerInterface,
	newCollectTask func(daysBack int) tasks.TaskInterface) *Handler {
	return &Handler{
		store:          store,
		scheduler:      scheduler,
		newCollectTask: newCollectTask,
	}
}

func (h *Handler) GetStartups(c *gin.Context) {
	events, err := h.store.LoadFunding()
	if err != nil {
		slog.Error("Failed to load funding snapshot", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load funding data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"startups": events,
		"total":    len(events),
	})
}

func (h *Handler) GetAnalyzedStartups(c *gin.Context) {
	profiles, err := h.store.LoadAnalysis()
	if err != nil {
		slog.Error("Failed to load analysis snapshot", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analysis data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"startups": profiles,
		"total":    len(profiles),
	})
}

func (h *Handler) GetStats(c *gin.Context) {
	events, err := h.store.LoadFunding()
	if err != nil {
		slog.Error("Failed to load funding snapshot", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load funding data"})
		return
	}

	byIndustry := make(map[string]int)
	byRound := make(map[string]int)
	var totalRaised float64

	for _, event := range events {
		if event.Industry != "" {
			byIndustry[event.Industry]++
		}
		if event.FundingRound != "" {
			byRound[event.FundingRound]++
		}
		if event.FundingAmount != nil {
			totalRaised += *event.FundingAmount
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total_startups":        len(events),
		"total_raised_millions": totalRaised,
		"startups_by_industry":  byIndustry,
		"startups_by_round":     byRound,
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if events, err := h.store.LoadFunding(); err == nil {
		health["startups"] = len(events)
	}

	c.JSON(http.StatusOK, health)
}

// APITriggerCollect enqueues an on-demand collection run. An optional "days"
// query parameter overrides the configured lookback window.
func (h *Handler) APITriggerCollect(c *gin.Context) {
	daysBack := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 30 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer between 1 and 30"})
			return
		}
		daysBack = parsed
	}

	task := h.newCollectTask(daysBack)
	if err := h.scheduler.EnqueueTask(task); err != nil {
		slog.Error("Failed to enqueue collect task", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "collection queue is full"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "queued",
		"task_id": task.GetID(),
	})
}
