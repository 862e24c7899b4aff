package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lysyi3m/venture-watch/app/analyzer"
)

// Generator renders the analyzed startup list as an HTML report and a CSV
// export under the reports directory.
type Generator struct {
	reportsDir string
	version    string
}

func NewGenerator(reportsDir, version string) *Generator {
	return &Generator{
		reportsDir: reportsDir,
		version:    version,
	}
}

type reportData struct {
	Date         string
	TotalRaised  string
	Count        int
	Profiles     []analyzer.CompanyProfile
	GeneratorTag string
}

// Run renders both report formats and returns the HTML body (reused as the
// email body) together with the paths written.
func (g *Generator) Run(profiles []analyzer.CompanyProfile) (string, []string, error) {
	if err := os.MkdirAll(g.reportsDir, 0o755); err != nil {
		return "", nil, fmt.Errorf("failed to create reports directory: %w", err)
	}

	html, err := g.renderHTML(profiles)
	if err != nil {
		return "", nil, err
	}

	stamp := time.Now().Format("20060102")
	htmlPath := filepath.Join(g.reportsDir, fmt.Sprintf("startup_report_%s.html", stamp))
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return "", nil, fmt.Errorf("failed to write HTML report: %w", err)
	}

	csvPath := filepath.Join(g.reportsDir, fmt.Sprintf("startup_report_%s.csv", stamp))
	if err := g.writeCSV(csvPath, profiles); err != nil {
		return "", nil, err
	}

	return html, []string{htmlPath, csvPath}, nil
}

// Subject builds the digest subject line for email delivery.
func (g *Generator) Subject(profiles []analyzer.CompanyProfile) string {
	return fmt.Sprintf("Venture Watch: %d recently funded startups (%s)",
		len(profiles), time.Now().Format("Jan 2, 2006"))
}

func (g *Generator) renderHTML(profiles []analyzer.CompanyProfile) (string, error) {
	var total float64
	for _, p := range profiles {
		if p.FundingAmount != nil {
			total += *p.FundingAmount
		}
	}

	data := reportData{
		Date:         time.Now().Format("January 2, 2006"),
		TotalRaised:  formatMillions(total),
		Count:        len(profiles),
		Profiles:     profiles,
		GeneratorTag: "Venture Watch/" + g.version,
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render report template: %w", err)
	}
	return buf.String(), nil
}

func (g *Generator) writeCSV(path string, profiles []analyzer.CompanyProfile) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"company_name", "funding_amount_millions", "funding_round", "industry",
		"location", "published_date", "source", "url", "investors",
		"tech_stack", "hiring_needs", "product_focus",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, p := range profiles {
		amount := ""
		if p.FundingAmount != nil {
			amount = strconv.FormatFloat(*p.FundingAmount, 'f', -1, 64)
		}
		row := []string{
			p.CompanyName, amount, p.FundingRound, p.Industry,
			p.Location, p.PublishedDate, p.Source, p.URL,
			strings.Join(p.Investors, "; "),
			strings.Join(p.TechStack, "; "),
			strings.Join(p.HiringNeeds, "; "),
			p.ProductFocus,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

func formatMillions(amount float64) string {
	if amount >= 1000 {
		return fmt.Sprintf("$%.1fB", amount/1000)
	}
	return fmt.Sprintf("$%.1fM", amount)
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"millions": func(amount *float64) string {
		if amount == nil {
			return "undisclosed"
		}
		return formatMillions(*amount)
	},
	"join": func(items []string) string {
		return strings.Join(items, ", ")
	},
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Arial, sans-serif; color: #222; max-width: 720px; margin: 0 auto; }
  h1 { color: #1a4d8f; }
  .summary { background: #f0f4fa; padding: 12px 16px; border-radius: 6px; }
  .startup { border-bottom: 1px solid #ddd; padding: 16px 0; }
  .startup h2 { margin: 0 0 4px; font-size: 18px; }
  .meta { color: #666; font-size: 13px; }
  .tag { display: inline-block; background: #e4ecf7; border-radius: 4px; padding: 2px 8px; margin: 2px; font-size: 12px; }
</style>
</head>
<body>
<h1>Startup Funding Report</h1>
<p class="summary">{{.Date}} &mdash; {{.Count}} recently funded startups, {{.TotalRaised}} raised in total.</p>
{{range .Profiles}}
<div class="startup">
  <h2>{{.CompanyName}}</h2>
  <p class="meta">
    {{millions .FundingAmount}}{{if .FundingRound}} &middot; {{.FundingRound}}{{end}}{{if .Industry}} &middot; {{.Industry}}{{end}}{{if .Location}} &middot; {{.Location}}{{end}}
  </p>
  {{if .Description}}<p>{{.Description}}</p>{{end}}
  {{if .Investors}}<p class="meta">Investors: {{join .Investors}}</p>{{end}}
  {{if .TechStack}}<p>{{range .TechStack}}<span class="tag">{{.}}</span>{{end}}</p>{{end}}
  {{if .HiringNeeds}}<p class="meta">Likely hiring: {{join .HiringNeeds}}</p>{{end}}
  {{if .ProductFocus}}<p class="meta">Focus: {{.ProductFocus}}</p>{{end}}
  {{if .URL}}<p class="meta"><a href="{{.URL}}">{{.URL}}</a></p>{{end}}
</div>
{{end}}
<p class="meta">Generated by {{.GeneratorTag}}</p>
</body>
</html>
`))
