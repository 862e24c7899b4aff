package collector

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

const (
	fetchTimeout = 10 * time.Second
	maxBodySize  = 2 << 20
)

// amountPatterns are tried in order, first match wins. Order matters: later
// patterns are intentionally lower-priority fallbacks.
var amountPatterns = []struct {
	re       *regexp.Regexp
	billions bool
}{
	{regexp.MustCompile(`(?i)\$\s?(\d+(?:\.\d+)?)\s?(?:million|M)`), false},
	{regexp.MustCompile(`(?i)\$\s?(\d+(?:\.\d+)?)\s?(?:billion|B)`), true},
	{regexp.MustCompile(`(?i)raised\s?\$\s?(\d+(?:\.\d+)?)\s?(?:million|M)`), false},
	{regexp.MustCompile(`(?i)raised\s?\$\s?(\d+(?:\.\d+)?)\s?(?:billion|B)`), true},
	{regexp.MustCompile(`(?i)secured\s?\$\s?(\d+(?:\.\d+)?)\s?(?:million|M)`), false},
	{regexp.MustCompile(`(?i)secured\s?\$\s?(\d+(?:\.\d+)?)\s?(?:billion|B)`), true},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s?(?:million|M)\s?(?:dollars|USD|\$)`), false},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s?(?:billion|B)\s?(?:dollars|USD|\$)`), true},
}

// roundPatterns are scanned in order, first match wins.
var roundPatterns = []struct {
	name     string
	patterns []*regexp.Regexp
}{
	{"Seed", []*regexp.Regexp{
		regexp.MustCompile(`(?i)seed\s?(?:round|funding)`),
		regexp.MustCompile(`(?i)seed\s?investment`),
		regexp.MustCompile(`(?i)seed\s?capital`),
	}},
	{"Series A", []*regexp.Regexp{regexp.MustCompile(`(?i)series\s?a`)}},
	{"Series B", []*regexp.Regexp{regexp.MustCompile(`(?i)series\s?b`)}},
	{"Series C", []*regexp.Regexp{regexp.MustCompile(`(?i)series\s?c`)}},
	{"Series D", []*regexp.Regexp{regexp.MustCompile(`(?i)series\s?d`)}},
	{"Pre-seed", []*regexp.Regexp{regexp.MustCompile(`(?i)pre-?seed`)}},
	{"Angel", []*regexp.Regexp{
		regexp.MustCompile(`(?i)angel\s?(?:round|funding|investment)`),
		regexp.MustCompile(`(?i)angel\s?investor`),
	}},
}

// industryTable is a linear ordered scan: the first category with any keyword
// present in the page text wins. The scan order is fixed, do not reorder.
var industryTable = []struct {
	category string
	keywords []string
}{
	{"AI", []string{"artificial intelligence", "machine learning", "AI", "deep learning", "neural networks", "NLP", "computer vision"}},
	{"Fintech", []string{"fintech", "financial technology", "banking", "finance", "payments", "insurtech", "regtech"}},
	{"Healthcare", []string{"healthcare", "health tech", "medical", "biotech", "healthtech", "life sciences", "pharma", "telemedicine"}},
	{"Cybersecurity", []string{"cybersecurity", "security", "infosec", "data protection", "encryption", "cyber defense"}},
	{"EdTech", []string{"education technology", "edtech", "learning platform", "e-learning", "online education"}},
	{"Cloud", []string{"cloud computing", "saas", "platform as a service", "paas", "iaas", "cloud infrastructure", "cloud services"}},
	{"E-commerce", []string{"e-commerce", "ecommerce", "online retail", "d2c", "direct-to-consumer", "retail tech"}},
	{"Mobile", []string{"mobile app", "smartphone", "ios", "android", "mobile technology", "mobile platform"}},
}

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:based in|headquartered in|located in)\s+([A-Za-z][A-Za-z\s,]+)`),
	regexp.MustCompile(`(?i)([A-Za-z]+(?:,\s*[A-Za-z]+)?-based)`),
	regexp.MustCompile(`(?i)from\s+([A-Za-z]+(?:,\s*[A-Za-z]+)?)`),
}

var investorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)led by ([^.]+)`),
	regexp.MustCompile(`(?i)investors include ([^.]+)`),
	regexp.MustCompile(`(?i)round was led by ([^.]+)`),
	regexp.MustCompile(`(?i)funding was led by ([^.]+)`),
	regexp.MustCompile(`(?i)investment from ([^.]+)`),
	regexp.MustCompile(`(?i)with participation from ([^.]+)`),
}

var investorSeparator = regexp.MustCompile(`,|\band\b`)

var titlePrefixes = []string{"Exclusive:", "Breaking:", "Just in:"}

// ArticleExtractor pulls structured funding fields out of unstructured article
// pages via pattern heuristics. Extraction is inherently approximate, any
// fetch or parse error yields an empty result rather than aborting the caller.
type ArticleExtractor struct {
	httpClient *http.Client
	userAgent  string
}

func NewArticleExtractor(httpClient *http.Client, userAgent string) *ArticleExtractor {
	return &ArticleExtractor{
		httpClient: httpClient,
		userAgent:  userAgent,
	}
}

// Run fetches pageURL and extracts funding fields from its content. The fetch
// is bounded by a 10 second timeout.
func (e *ArticleExtractor) Run(ctx context.Context, pageURL string) (FundingEvent, error) {
	data, err := e.fetch(ctx, pageURL)
	if err != nil {
		return FundingEvent{}, err
	}

	title, text, err := e.pageContent(data, pageURL)
	if err != nil {
		return FundingEvent{}, err
	}

	event := e.Parse(text, title)
	event.URL = pageURL
	return event, nil
}

func (e *ArticleExtractor) fetch(ctx context.Context, pageURL string) ([]byte, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, pageURL)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read page body: %w", err)
	}

	return data, nil
}

// pageContent returns the page title and the plain article text used for
// heuristic matching. Readability strips navigation and boilerplate; when it
// fails the raw document text is used instead.
func (e *ArticleExtractor) pageContent(data []byte, pageURL string) (string, string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	parsedURL, _ := url.Parse(pageURL)
	article, err := readability.FromReader(bytes.NewReader(data), parsedURL)
	if err != nil || strings.TrimSpace(article.TextContent) == "" {
		return title, doc.Text(), nil
	}

	if title == "" {
		title = article.Title
	}

	return title, article.TextContent, nil
}

// Parse applies the extraction heuristics to plain article text and title.
// Missing fields are simply absent from the result, never placeholders.
func (e *ArticleExtractor) Parse(text, title string) FundingEvent {
	var event FundingEvent

	event.CompanyName = companyFromTitle(title)
	if title != "" {
		event.Title = strings.TrimSpace(title)
	}

	for _, p := range amountPatterns {
		match := p.re.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		amount, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		if p.billions {
			amount *= 1000
		}
		event.FundingAmount = amountPtr(amount)
		break
	}

	for _, r := range roundPatterns {
		for _, p := range r.patterns {
			if p.MatchString(text) {
				event.FundingRound = r.name
				break
			}
		}
		if event.FundingRound != "" {
			break
		}
	}

	lowerText := strings.ToLower(text)
	for _, entry := range industryTable {
		for _, keyword := range entry.keywords {
			if strings.Contains(lowerText, strings.ToLower(keyword)) {
				event.Industry = entry.category
				break
			}
		}
		if event.Industry != "" {
			break
		}
	}

	for i, p := range locationPatterns {
		match := p.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		location := strings.TrimSpace(match[1])
		location = strings.TrimSuffix(location, "-based")
		// The primary pattern must be followed by a capitalized phrase,
		// otherwise prose like "based in the" produces junk.
		if i == 0 && !startsUpper(location) {
			continue
		}
		if location != "" {
			event.Location = location
			break
		}
	}

	for _, p := range investorPatterns {
		match := p.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		var investors []string
		for _, part := range investorSeparator.Split(match[1], -1) {
			if name := strings.TrimSpace(part); name != "" {
				investors = append(investors, name)
			}
		}
		if len(investors) > 0 {
			event.Investors = investors
		}
		break
	}

	return event
}

// companyFromTitle applies the headline split rules: the text preceding the
// announcement verb is taken as the company name.
func companyFromTitle(title string) string {
	if title == "" {
		return ""
	}

	lower := strings.ToLower(title)
	var company string

	switch {
	case strings.Contains(lower, "announces") && strings.Contains(lower, "funding"):
		company = title[:strings.Index(lower, "announces")]
	case strings.Contains(lower, " raises "):
		company = title[:strings.Index(lower, " raises ")]
	case strings.Contains(lower, " secures ") && strings.Contains(lower, "funding"):
		company = title[:strings.Index(lower, " secures ")]
	case strings.Contains(lower, " gets ") && strings.Contains(lower, "funding"):
		company = title[:strings.Index(lower, " gets ")]
	case strings.Contains(lower, " closes ") && (strings.Contains(lower, "round") || strings.Contains(lower, "funding")):
		company = title[:strings.Index(lower, " closes ")]
	default:
		return ""
	}

	company = strings.TrimSpace(company)
	for _, prefix := range titlePrefixes {
		if strings.HasPrefix(company, prefix) {
			company = strings.TrimSpace(strings.TrimPrefix(company, prefix))
		}
	}

	return company
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
