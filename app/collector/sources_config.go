package collector

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// SourcesConfig tunes the discovery sources. All fields are optional, absent
// values fall back to the built-in defaults.
type SourcesConfig struct {
	SearchPhrases []string      `yaml:"search_phrases"`
	SearchSuffix  string        `yaml:"search_suffix"`
	ScraperFeeds  []ScraperFeed `yaml:"scraper_feeds"`
}

type ScraperFeed struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

var defaultSearchPhrases = []string{
	"startup funding",
	"seed round",
	"series A",
	"venture round",
}

const defaultSearchSuffix = "announcement"

var defaultScraperFeeds = []ScraperFeed{
	{Name: "TechCrunch", URL: "https://techcrunch.com/category/venture/feed/"},
	{Name: "VentureBeat", URL: "https://venturebeat.com/category/venture/feed/"},
	{Name: "Crunchbase News", URL: "https://news.crunchbase.com/feed/"},
}

// LoadSourcesConfig reads the YAML sources file. A missing file is not an
// error, the defaults are used instead.
func LoadSourcesConfig(path string) (*SourcesConfig, error) {
	config := &SourcesConfig{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("Sources file not found, using defaults", "path", path)
			config.setDefaults()
			return config, nil
		}
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}

	for i, feed := range config.ScraperFeeds {
		if feed.URL == "" {
			return nil, fmt.Errorf("scraper feed at index %d has no URL", i)
		}
	}

	config.setDefaults()
	return config, nil
}

func (c *SourcesConfig) setDefaults() {
	if len(c.SearchPhrases) == 0 {
		c.SearchPhrases = defaultSearchPhrases
	}
	if c.SearchSuffix == "" {
		c.SearchSuffix = defaultSearchSuffix
	}
	if len(c.ScraperFeeds) == 0 {
		c.ScraperFeeds = defaultScraperFeeds
	}
}
