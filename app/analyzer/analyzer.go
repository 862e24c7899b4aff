package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lysyi3m/venture-watch/app/collector"
)

const analysisPrompt = `You are an expert technology analyst who specializes in identifying the technology stack and potential hiring needs of startups based on their description and industry.

Company: %s
Description: %s
Industry: %s
Funding round: %s

Based solely on this information, please provide:
1. The likely technology stack this company uses (programming languages, frameworks, databases, cloud services)
2. Potential technical roles they might be hiring for
3. The company's main product focus

Format your response as a JSON object with these keys: "tech_stack" (list), "hiring_needs" (list), "product_focus" (string). Respond with ONLY the JSON object.`

// Analyzer enriches funding events with LLM-inferred company insights. A nil
// provider (credentials absent) passes events through unenriched.
type Analyzer struct {
	provider Provider
}

func NewAnalyzer(provider Provider) *Analyzer {
	return &Analyzer{provider: provider}
}

// Run analyzes every event in turn. A failing company contributes an
// unenriched profile, it never aborts the batch.
func (a *Analyzer) Run(ctx context.Context, events []collector.FundingEvent) []CompanyProfile {
	profiles := make([]CompanyProfile, 0, len(events))

	for _, event := range events {
		profile := CompanyProfile{FundingEvent: event}

		if a.provider == nil {
			profiles = append(profiles, profile)
			continue
		}

		result, err := a.analyze(ctx, event)
		if err != nil {
			slog.Error("Company analysis failed", "company", event.CompanyName, "error", err)
			profiles = append(profiles, profile)
			continue
		}

		profile.TechStack = result.TechStack
		profile.HiringNeeds = result.HiringNeeds
		profile.ProductFocus = result.ProductFocus
		profiles = append(profiles, profile)

		slog.Debug("Company analyzed", "company", event.CompanyName, "tech_stack", len(result.TechStack))
	}

	slog.Info("Startup analysis complete", "profiles", len(profiles), "enriched", a.provider != nil)
	return profiles
}

func (a *Analyzer) analyze(ctx context.Context, event collector.FundingEvent) (analysis, error) {
	prompt := fmt.Sprintf(analysisPrompt,
		event.CompanyName, event.Description, event.Industry, event.FundingRound)

	response, err := a.provider.Complete(ctx, prompt)
	if err != nil {
		return analysis{}, err
	}

	return parseAnalysis(response), nil
}

// parseAnalysis decodes the model's JSON answer, falling back to a forgiving
// section-based text scan when the model did not return valid JSON.
func parseAnalysis(response string) analysis {
	var result analysis

	cleaned := stripCodeFence(response)
	if err := json.Unmarshal([]byte(cleaned), &result); err == nil {
		return result
	}

	// Models occasionally wrap the JSON in prose, try the first {...} block.
	if start, end := strings.Index(cleaned, "{"), strings.LastIndex(cleaned, "}"); start >= 0 && end > start {
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &result); err == nil {
			return result
		}
	}

	return extractFromText(cleaned)
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

// extractFromText scans a free-text answer for the three expected sections.
func extractFromText(text string) analysis {
	var result analysis
	var section string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)

		switch {
		case strings.Contains(lower, "tech stack") || strings.Contains(lower, "technology stack"):
			section = "tech_stack"
			continue
		case strings.Contains(lower, "hiring") || strings.Contains(lower, "roles"):
			section = "hiring_needs"
			continue
		case strings.Contains(lower, "product") || strings.Contains(lower, "focus"):
			section = "product_focus"
			continue
		}

		if line == "" || strings.Contains(line, ":") {
			continue
		}

		switch section {
		case "tech_stack":
			result.TechStack = append(result.TechStack, splitList(line)...)
		case "hiring_needs":
			result.HiringNeeds = append(result.HiringNeeds, splitList(line)...)
		case "product_focus":
			if result.ProductFocus != "" {
				result.ProductFocus += " " + line
			} else {
				result.ProductFocus = line
			}
		}
	}

	return result
}

func splitList(line string) []string {
	var items []string
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(strings.TrimLeft(part, "-* "))
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}
