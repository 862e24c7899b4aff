package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultSearchBaseURL = "https://www.googleapis.com/customsearch/v1"

// WebSearchSource wraps the Google Custom Search API. It requires both an API
// key and a search-engine ID; if either is absent the source short-circuits
// and returns an empty list.
type WebSearchSource struct {
	apiKey     string
	engineID   string
	httpClient *http.Client
	extractor  *ArticleExtractor
	phrases    []string
	suffix     string
	baseURL    string
}

type customSearchResponse struct {
	Items []customSearchItem `json:"items"`
}

type customSearchItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

func NewWebSearchSource(apiKey, engineID string, httpClient *http.Client, extractor *ArticleExtractor, sources *SourcesConfig) *WebSearchSource {
	return &WebSearchSource{
		apiKey:     apiKey,
		engineID:   engineID,
		httpClient: httpClient,
		extractor:  extractor,
		phrases:    sources.SearchPhrases,
		suffix:     sources.SearchSuffix,
		baseURL:    defaultSearchBaseURL,
	}
}

func (s *WebSearchSource) Name() string {
	return "Google Custom Search"
}

func (s *WebSearchSource) Collect(ctx context.Context, daysBack int) ([]FundingEvent, error) {
	if s.apiKey == "" || s.engineID == "" {
		slog.Warn("Google Custom Search credentials not configured, skipping web search source")
		return nil, nil
	}

	var events []FundingEvent
	for _, phrase := range s.phrases {
		items, err := s.search(ctx, phrase, daysBack)
		if err != nil {
			slog.Error("Web search failed", "phrase", phrase, "error", err)
			continue
		}

		for _, item := range items {
			if item.Link == "" {
				continue
			}

			event, err := s.extractor.Run(ctx, item.Link)
			if err != nil {
				slog.Error("Article extraction failed", "url", item.Link, "error", err)
				continue
			}
			if event.FundingAmount == nil {
				continue
			}

			if event.CompanyName == "" {
				event.CompanyName = companyFromTitle(item.Title)
			}
			if event.Title == "" {
				event.Title = item.Title
			}
			if event.Description == "" {
				event.Description = item.Snippet
			}
			event.Source = s.Name()
			if event.PublishedDate == "" {
				event.PublishedDate = time.Now().Format("2006-01-02")
			}
			event.DiscoveryDate = time.Now().Format("2006-01-02")

			events = append(events, event)
			slog.Debug("Extracted funding event", "source", s.Name(), "company", event.CompanyName, "url", event.URL)
		}
	}

	slog.Info("Web search collection complete", "events", len(events), "phrases", len(s.phrases))
	return events, nil
}

func (s *WebSearchSource) search(ctx context.Context, phrase string, daysBack int) ([]customSearchItem, error) {
	params := url.Values{}
	params.Set("key", s.apiKey)
	params.Set("cx", s.engineID)
	params.Set("q", phrase+" "+s.suffix)
	params.Set("num", "10")
	params.Set("dateRestrict", "d"+strconv.Itoa(daysBack))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("web search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("web search returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	var parsed customSearchResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	return parsed.Items, nil
}
