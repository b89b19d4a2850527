package experience

import (
	"strings"

	"github.com/jonathan/job-recommender/internal/parsing"
	"github.com/jonathan/job-recommender/internal/types"
)

// Industry labels produced by GuessIndustry.
const (
	IndustryTechnology = "Technology"
	IndustryFinance    = "Finance"
	IndustryHealthcare = "Healthcare"
	IndustryRetail     = "Retail"
	IndustryConsulting = "Consulting"
)

type industryRule struct {
	keywords []string
	label    string
}

// Evaluated in order; the first rule with a matching keyword wins.
var industryRules = []industryRule{
	{[]string{"tech", "software", "digital"}, IndustryTechnology},
	{[]string{"bank", "finance", "credit"}, IndustryFinance},
	{[]string{"health", "medical", "pharma"}, IndustryHealthcare},
	{[]string{"retail", "shop", "store"}, IndustryRetail},
	{[]string{"consult", "advisory"}, IndustryConsulting},
}

// GuessIndustry classifies a company by name. The boolean is false when no
// rule matches.
func GuessIndustry(companyName string) (string, bool) {
	name := parsing.Fold(companyName)
	for _, rule := range industryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.label, true
			}
		}
	}
	return "", false
}

// ExtractIndustries returns the distinct industries of the companies in the
// work history, in first-seen order. Unclassified companies are skipped.
func ExtractIndustries(entries []types.ExperienceEntry) []string {
	seen := make(map[string]bool)
	industries := []string{}
	for _, e := range entries {
		label, ok := GuessIndustry(e.Company)
		if !ok || seen[label] {
			continue
		}
		seen[label] = true
		industries = append(industries, label)
	}
	return industries
}
