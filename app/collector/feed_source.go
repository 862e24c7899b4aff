package collector

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// fundingKeywords prefilter feed headlines so only likely funding articles are
// fetched in full.
var fundingKeywords = []string{
	"raise", "raises", "raised", "funding", "investment",
	"million", "billion", "seed", "series",
}

// FeedSource scrapes venture-news RSS feeds directly, without API credentials.
// It is a supplemental source, disabled by default.
type FeedSource struct {
	feeds     []ScraperFeed
	parser    *gofeed.Parser
	extractor *ArticleExtractor
}

func NewFeedSource(httpClient *http.Client, userAgent string, extractor *ArticleExtractor, sources *SourcesConfig) *FeedSource {
	parser := gofeed.NewParser()
	parser.Client = httpClient
	parser.UserAgent = userAgent

	return &FeedSource{
		feeds:     sources.ScraperFeeds,
		parser:    parser,
		extractor: extractor,
	}
}

func (s *FeedSource) Name() string {
	return "RSS Scrapers"
}

func (s *FeedSource) Collect(ctx context.Context, daysBack int) ([]FundingEvent, error) {
	cutoff := time.Now().AddDate(0, 0, -daysBack)

	var events []FundingEvent
	for _, feed := range s.feeds {
		parsed, err := s.parser.ParseURLWithContext(feed.URL, ctx)
		if err != nil {
			slog.Error("Feed fetch failed", "feed", feed.Name, "url", feed.URL, "error", err)
			continue
		}

		matched := 0
		for _, item := range parsed.Items {
			if item.Link == "" || !looksLikeFundingNews(item.Title) {
				continue
			}
			if item.PublishedParsed != nil && item.PublishedParsed.Before(cutoff) {
				continue
			}

			event, err := s.extractor.Run(ctx, item.Link)
			if err != nil {
				slog.Error("Article extraction failed", "url", item.Link, "error", err)
				continue
			}

			// Scraped hits are noisier than API hits, require both
			// a company name and an amount.
			if event.CompanyName == "" || event.FundingAmount == nil {
				continue
			}

			if event.Title == "" {
				event.Title = item.Title
			}
			event.Source = feed.Name
			if item.PublishedParsed != nil {
				event.PublishedDate = item.PublishedParsed.Format("2006-01-02")
			} else {
				event.PublishedDate = time.Now().Format("2006-01-02")
			}
			event.DiscoveryDate = time.Now().Format("2006-01-02")

			events = append(events, event)
			matched++
		}

		slog.Debug("Feed scraped", "feed", feed.Name, "items", len(parsed.Items), "matched", matched)
	}

	slog.Info("Feed scraper collection complete", "events", len(events), "feeds", len(s.feeds))
	return events, nil
}

func looksLikeFundingNews(title string) bool {
	lower := strings.ToLower(title)
	for _, keyword := range fundingKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
