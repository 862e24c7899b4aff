package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/venture-watch/app/analyzer"
	"github.com/lysyi3m/venture-watch/app/api"
	"github.com/lysyi3m/venture-watch/app/cfg"
	"github.com/lysyi3m/venture-watch/app/collector"
	"github.com/lysyi3m/venture-watch/app/report"
	"github.com/lysyi3m/venture-watch/app/storage"
	"github.com/lysyi3m/venture-watch/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	slog.Info("Starting Venture Watch", "version", appCfg.Version)

	store, err := storage.NewStore(appCfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	sourcesCfg, err := collector.LoadSourcesConfig(appCfg.SourcesFile)
	if err != nil {
		log.Fatalf("Failed to load sources configuration: %v", err)
	}
	slog.Info("Sources configured", "phrases", len(sourcesCfg.SearchPhrases), "scraper_feeds", len(sourcesCfg.ScraperFeeds))

	httpClient := &http.Client{Timeout: 30 * time.Second}
	extractor := collector.NewArticleExtractor(httpClient, appCfg.UserAgent)

	newsSource := collector.NewNewsSource(appCfg.NewsAPIKey, httpClient, extractor, sourcesCfg)
	webSource := collector.NewWebSearchSource(appCfg.GoogleAPIKey, appCfg.GoogleCSEID, httpClient, extractor, sourcesCfg)

	var scraperSource collector.Source
	if appCfg.ScrapersEnabled {
		scraperSource = collector.NewFeedSource(httpClient, appCfg.UserAgent, extractor, sourcesCfg)
		slog.Info("RSS scraper source enabled")
	}

	fundingCollector := collector.NewCollector(newsSource, webSource, scraperSource, store, appCfg.DaysBack)

	provider, err := newLLMProvider(appCfg, httpClient)
	if err != nil {
		slog.Warn("LLM analysis disabled", "reason", err)
	}
	startupAnalyzer := analyzer.NewAnalyzer(provider)

	reporter := report.NewGenerator(appCfg.ReportsDir, appCfg.Version)

	var emailer tasks.EmailerInterface
	if appCfg.EmailEnabled {
		emailer = report.NewEmailSender(appCfg.SMTPServer, appCfg.SMTPPort,
			appCfg.EmailSender, appCfg.EmailPassword, appCfg.EmailRecipient)
		slog.Info("Email delivery enabled", "recipient", appCfg.EmailRecipient)
	}

	newPipelineTask := func() tasks.TaskInterface {
		return tasks.NewPipelineTask(fundingCollector, startupAnalyzer, store, reporter, emailer)
	}

	scheduler := tasks.NewScheduler(newPipelineTask, tasks.IntervalFor(appCfg.ReportFrequency), appCfg.WorkerCount)
	scheduler.Start()
	defer scheduler.Stop()
	slog.Info("Background scheduler started", "frequency", appCfg.ReportFrequency, "workers", appCfg.WorkerCount)

	handler := api.NewHandler(store, scheduler, func(daysBack int) tasks.TaskInterface {
		return tasks.NewCollectTask(fundingCollector, daysBack)
	})
	server := api.NewServer(handler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	// Scheduler is stopped via defer
	slog.Info("Shutdown complete")
}

func newLLMProvider(appCfg *cfg.Cfg, httpClient *http.Client) (analyzer.Provider, error) {
	switch appCfg.LLMProvider {
	case "openai":
		return analyzer.NewProvider("openai", appCfg.OpenAIAPIKey, appCfg.OpenAIModel, httpClient)
	default:
		return analyzer.NewProvider("groq", appCfg.GroqAPIKey, appCfg.GroqModel, httpClient)
	}
}
