package report

import (
	"encoding/csv"
	"os"
	"strings"
	"testing"

	"github.com/lysyi3m/venture-watch/app/analyzer"
	"github.com/lysyi3m/venture-watch/app/collector"
)

func testProfiles() []analyzer.CompanyProfile {
	acme := 10.0
	nimbus := 1500.0
	return []analyzer.CompanyProfile{
		{
			FundingEvent: collector.FundingEvent{
				CompanyName:   "Acme",
				URL:           "https://example.com/acme",
				FundingAmount: &acme,
				FundingRound:  "Series A",
				Industry:      "AI",
				Location:      "Austin, TX",
				Investors:     []string{"Acme Ventures", "Beta Capital"},
			},
			TechStack:    []string{"Python", "TensorFlow"},
			HiringNeeds:  []string{"ML Engineer"},
			ProductFocus: "Support automation",
		},
		{
			FundingEvent: collector.FundingEvent{
				CompanyName:   "Nimbus",
				URL:           "https://example.com/nimbus",
				FundingAmount: &nimbus,
			},
		},
		{
			FundingEvent: collector.FundingEvent{
				CompanyName: "Vertex",
				URL:         "https://example.com/vertex",
			},
		},
	}
}

func TestRun_WritesHTMLAndCSV(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(dir, "1.0.0")

	html, paths, err := g.Run(testProfiles())
	if err != nil {
		t.Fatalf("Unexpected generation error: %v", err)
	}

	if len(paths) != 2 {
		t.Fatalf("Expected 2 report files, got %d", len(paths))
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Report file %s was not written: %v", path, err)
		}
	}

	for _, fragment := range []string{"Acme", "Nimbus", "Vertex", "$10.0M", "Series A", "undisclosed", "ML Engineer"} {
		if !strings.Contains(html, fragment) {
			t.Errorf("Expected HTML report to contain %q", fragment)
		}
	}
	if !strings.Contains(html, "Venture Watch/1.0.0") {
		t.Error("Expected HTML report to carry the generator tag")
	}
}

func TestRun_CSVRows(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(dir, "1.0.0")

	_, paths, err := g.Run(testProfiles())
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(paths[1])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV report: %v", err)
	}

	if len(rows) != 4 {
		t.Fatalf("Expected header plus 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "company_name" || len(rows[0]) != 12 {
		t.Errorf("Unexpected CSV header: %v", rows[0])
	}
	if rows[1][0] != "Acme" || rows[1][1] != "10" || rows[1][2] != "Series A" {
		t.Errorf("Unexpected first CSV row: %v", rows[1])
	}
	if rows[1][8] != "Acme Ventures; Beta Capital" {
		t.Errorf("Expected joined investors, got %q", rows[1][8])
	}
	if rows[3][1] != "" {
		t.Errorf("Expected empty amount for an undisclosed round, got %q", rows[3][1])
	}
}

func TestSubject(t *testing.T) {
	g := NewGenerator(t.TempDir(), "1.0.0")

	subject := g.Subject(testProfiles())
	if !strings.HasPrefix(subject, "Venture Watch: 3 recently funded startups") {
		t.Errorf("Unexpected subject line: %q", subject)
	}
}

func TestFormatMillions(t *testing.T) {
	cases := []struct {
		amount   float64
		expected string
	}{
		{2.5, "$2.5M"},
		{18, "$18.0M"},
		{999, "$999.0M"},
		{1000, "$1.0B"},
		{2500, "$2.5B"},
	}

	for _, c := range cases {
		if got := formatMillions(c.amount); got != c.expected {
			t.Errorf("formatMillions(%v): expected %q, got %q", c.amount, c.expected, got)
		}
	}
}
