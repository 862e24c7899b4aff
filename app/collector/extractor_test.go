package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestExtractor() *ArticleExtractor {
	return NewArticleExtractor(&http.Client{Timeout: 5 * time.Second}, "Venture Watch Test/1.0")
}

func TestParse_MillionAmount(t *testing.T) {
	extractor := newTestExtractor()

	event := extractor.Parse("The company secured $2.5 million to expand.", "")

	if event.FundingAmount == nil {
		t.Fatal("Expected funding amount to be extracted")
	}
	if *event.FundingAmount != 2.5 {
		t.Errorf("Expected 2.5, got %v", *event.FundingAmount)
	}
}

func TestParse_BillionAmountScaledToMillions(t *testing.T) {
	extractor := newTestExtractor()

	event := extractor.Parse("The company secured $2.5 billion to expand.", "")

	if event.FundingAmount == nil {
		t.Fatal("Expected funding amount to be extracted")
	}
	if *event.FundingAmount != 2500 {
		t.Errorf("Expected 2500 (billions normalized to millions), got %v", *event.FundingAmount)
	}
}

func TestParse_AmountPatternPrecedence(t *testing.T) {
	extractor := newTestExtractor()

	// "$5 million" matches the first pattern even though "raised" appears later
	event := extractor.Parse("It has $5 million now after it raised $3 million last year.", "")

	if event.FundingAmount == nil {
		t.Fatal("Expected funding amount to be extracted")
	}
	if *event.FundingAmount != 5 {
		t.Errorf("Expected first pattern match 5, got %v", *event.FundingAmount)
	}
}

func TestParse_CompanyFromTitle(t *testing.T) {
	extractor := newTestExtractor()

	cases := []struct {
		title   string
		company string
	}{
		{"Acme raises $10 million in Series A funding", "Acme"},
		{"Orbit Labs announces new funding", "Orbit Labs"},
		{"DeepStack secures seed funding", "DeepStack"},
		{"Exclusive: Nimbus raises $4 million", "Nimbus"},
		{"Vertex closes $30 million round", "Vertex"},
		{"The weekly market report", ""},
	}

	for _, c := range cases {
		event := extractor.Parse("some text", c.title)
		if event.CompanyName != c.company {
			t.Errorf("Title %q: expected company %q, got %q", c.title, c.company, event.CompanyName)
		}
	}
}

func TestParse_FundingRound(t *testing.T) {
	extractor := newTestExtractor()

	event := extractor.Parse("The startup closed its Series B led by Baseline Partners.", "")

	if event.FundingRound != "Series B" {
		t.Errorf("Expected Series B, got %q", event.FundingRound)
	}
}

func TestParse_SeedBeforeSeriesInScanOrder(t *testing.T) {
	extractor := newTestExtractor()

	event := extractor.Parse("The seed round preceded the planned series a expansion.", "")

	if event.FundingRound != "Seed" {
		t.Errorf("Expected Seed to win the ordered scan, got %q", event.FundingRound)
	}
}

func TestParse_IndustryOrderedScan(t *testing.T) {
	extractor := newTestExtractor()

	// Text deliberately avoids any substring matching the AI keyword set.
	event := extractor.Parse("The fintech company secured $5 million.", "")
	if event.Industry != "Fintech" {
		t.Errorf("Expected Fintech, got %q", event.Industry)
	}

	// When both AI and Fintech keywords appear, AI is scanned first and wins.
	event = extractor.Parse("A machine learning fintech company secured $5 million.", "")
	if event.Industry != "AI" {
		t.Errorf("Expected AI to win the ordered scan, got %q", event.Industry)
	}
}

func TestParse_Location(t *testing.T) {
	extractor := newTestExtractor()

	event := extractor.Parse("The company is headquartered in Austin.", "")

	if event.Location != "Austin" {
		t.Errorf("Expected Austin, got %q", event.Location)
	}
}

func TestParse_Investors(t *testing.T) {
	extractor := newTestExtractor()

	event := extractor.Parse("The round was led by Acme Ventures and Beta Capital.", "")

	if len(event.Investors) != 2 {
		t.Fatalf("Expected 2 investors, got %v", event.Investors)
	}
	if event.Investors[0] != "Acme Ventures" || event.Investors[1] != "Beta Capital" {
		t.Errorf("Unexpected investors: %v", event.Investors)
	}
}

func TestParse_NoMatchingPatternsIsNotInformative(t *testing.T) {
	extractor := newTestExtractor()

	event := extractor.Parse("Quarterly weather update for the region.", "Weather update")

	if event.FundingAmount != nil {
		t.Errorf("Expected no funding amount, got %v", *event.FundingAmount)
	}
	if event.CompanyName != "" {
		t.Errorf("Expected no company name, got %q", event.CompanyName)
	}
	if event.Informative() {
		t.Error("Expected result to be classified as non-informative")
	}
}

func TestRun_ExtractsFromFetchedPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head><title>Acme raises $10 million in Series A funding</title></head>
<body><p>Acme, a machine learning company, raised $10 million in Series A funding.
The round was led by Baseline Partners.</p></body></html>`))
	}))
	defer server.Close()

	extractor := newTestExtractor()
	event, err := extractor.Run(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Unexpected extraction error: %v", err)
	}

	if event.CompanyName != "Acme" {
		t.Errorf("Expected company Acme, got %q", event.CompanyName)
	}
	if event.FundingAmount == nil || *event.FundingAmount != 10 {
		t.Errorf("Expected funding amount 10, got %v", event.FundingAmount)
	}
	if event.FundingRound != "Series A" {
		t.Errorf("Expected Series A, got %q", event.FundingRound)
	}
	if event.URL != server.URL {
		t.Errorf("Expected URL %s, got %s", server.URL, event.URL)
	}
}

func TestRun_NonOKStatusYieldsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	extractor := newTestExtractor()
	if _, err := extractor.Run(context.Background(), server.URL); err == nil {
		t.Error("Expected error for non-200 response")
	}
}
