package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const defaultNewsBaseURL = "https://newsapi.org/v2"

// NewsSource wraps a news-search API. One request is issued per configured
// search phrase, windowed to the last N days via the provider's native date
// filter. A missing API key short-circuits to an empty result.
type NewsSource struct {
	apiKey     string
	httpClient *http.Client
	extractor  *ArticleExtractor
	phrases    []string
	suffix     string
	baseURL    string
}

type newsResponse struct {
	Status   string        `json:"status"`
	Message  string        `json:"message"`
	Articles []newsArticle `json:"articles"`
}

type newsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

func NewNewsSource(apiKey string, httpClient *http.Client, extractor *ArticleExtractor, sources *SourcesConfig) *NewsSource {
	return &NewsSource{
		apiKey:     apiKey,
		httpClient: httpClient,
		extractor:  extractor,
		phrases:    sources.SearchPhrases,
		suffix:     sources.SearchSuffix,
		baseURL:    defaultNewsBaseURL,
	}
}

func (s *NewsSource) Name() string {
	return "Google News"
}

// Collect searches every configured phrase and extracts funding fields from
// each hit. A failing phrase is logged and skipped, it never aborts the
// remaining phrases. A hit is kept only when extraction produced an amount.
func (s *NewsSource) Collect(ctx context.Context, daysBack int) ([]FundingEvent, error) {
	if s.apiKey == "" {
		slog.Warn("News API key not configured, skipping news source")
		return nil, nil
	}

	var events []FundingEvent
	for _, phrase := range s.phrases {
		articles, err := s.search(ctx, phrase, daysBack)
		if err != nil {
			slog.Error("News search failed", "phrase", phrase, "error", err)
			continue
		}

		for _, article := range articles {
			if article.URL == "" {
				continue
			}

			event, err := s.extractor.Run(ctx, article.URL)
			if err != nil {
				slog.Error("Article extraction failed", "url", article.URL, "error", err)
				continue
			}
			if event.FundingAmount == nil {
				continue
			}

			if event.CompanyName == "" {
				event.CompanyName = companyFromTitle(article.Title)
			}
			if event.Title == "" {
				event.Title = article.Title
			}
			if event.Description == "" {
				event.Description = article.Description
			}
			event.Source = s.Name()
			event.PublishedDate = publishedDay(article.PublishedAt)
			event.DiscoveryDate = time.Now().Format("2006-01-02")

			events = append(events, event)
			slog.Debug("Extracted funding event", "source", s.Name(), "company", event.CompanyName, "url", event.URL)
		}
	}

	slog.Info("News source collection complete", "events", len(events), "phrases", len(s.phrases))
	return events, nil
}

func (s *NewsSource) search(ctx context.Context, phrase string, daysBack int) ([]newsArticle, error) {
	from := time.Now().AddDate(0, 0, -daysBack).Format("2006-01-02")

	params := url.Values{}
	params.Set("q", phrase+" "+s.suffix)
	params.Set("from", from)
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", "10")
	params.Set("apiKey", s.apiKey)

	endpoint := s.baseURL + "/everything?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news search returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read news response: %w", err)
	}

	var parsed newsResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse news response: %w", err)
	}

	if parsed.Status != "ok" {
		return nil, fmt.Errorf("news search error: %s", parsed.Message)
	}

	return parsed.Articles, nil
}

// publishedDay reduces an RFC 3339 timestamp to its date part. Today's date is
// used when the provider returned nothing parseable.
func publishedDay(timestamp string) string {
	if t, err := time.Parse(time.RFC3339, timestamp); err == nil {
		return t.Format("2006-01-02")
	}
	return time.Now().Format("2006-01-02")
}
