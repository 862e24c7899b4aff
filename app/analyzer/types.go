package analyzer

import "github.com/lysyi3m/venture-watch/app/collector"

// CompanyProfile is a FundingEvent enriched with LLM-inferred insights about
// the company's likely technology stack and hiring needs.
type CompanyProfile struct {
	collector.FundingEvent

	TechStack    []string `json:"tech_stack,omitempty"`
	HiringNeeds  []string `json:"hiring_needs,omitempty"`
	ProductFocus string   `json:"product_focus,omitempty"`
}

type analysis struct {
	TechStack    []string `json:"tech_stack"`
	HiringNeeds  []string `json:"hiring_needs"`
	ProductFocus string   `json:"product_focus"`
}
