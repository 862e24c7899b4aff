package collector

// FundingEvent is one structured record describing a startup's funding
// announcement. Amounts are normalized to millions of USD; billion-denominated
// amounts are scaled x1000 at extraction time so downstream comparisons work
// on a single unit.
type FundingEvent struct {
	CompanyName   string   `json:"company_name,omitempty"`
	Description   string   `json:"description,omitempty"`
	URL           string   `json:"url"`
	Title         string   `json:"title,omitempty"`
	Source        string   `json:"source,omitempty"`
	PublishedDate string   `json:"published_date,omitempty"` // YYYY-MM-DD
	DiscoveryDate string   `json:"discovery_date,omitempty"` // YYYY-MM-DD
	FundingAmount *float64 `json:"funding_amount,omitempty"` // millions USD
	FundingRound  string   `json:"funding_round,omitempty"`
	Industry      string   `json:"industry,omitempty"`
	Location      string   `json:"location,omitempty"`
	Investors     []string `json:"investors,omitempty"`
}

// Key returns the deduplication identity. Empty components are allowed, two
// events sharing a key describe the same real-world announcement.
func (e FundingEvent) Key() string {
	return e.CompanyName + "_" + e.URL
}

// PopulatedFields counts non-empty field assignments. Used by Deduplicate to
// prefer the more complete record on a key collision.
func (e FundingEvent) PopulatedFields() int {
	count := 0
	for _, s := range []string{
		e.CompanyName, e.Description, e.URL, e.Title, e.Source,
		e.PublishedDate, e.DiscoveryDate, e.FundingRound, e.Industry, e.Location,
	} {
		if s != "" {
			count++
		}
	}
	if e.FundingAmount != nil {
		count++
	}
	if len(e.Investors) > 0 {
		count++
	}
	return count
}

// Informative reports whether extraction produced enough signal to keep the
// record. Pages yielding neither a company name nor an amount are discarded.
func (e FundingEvent) Informative() bool {
	return e.CompanyName != "" || e.FundingAmount != nil
}

func amountPtr(v float64) *float64 {
	return &v
}
