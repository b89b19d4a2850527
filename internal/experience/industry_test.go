package experience

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-recommender/internal/types"
)

func TestGuessIndustry(t *testing.T) {
	tests := []struct {
		company  string
		expected string
		ok       bool
	}{
		{"Acme Software", IndustryTechnology, true},
		{"DIGITAL Ventures", IndustryTechnology, true},
		{"First National Bank", IndustryFinance, true},
		{"Credit Union West", IndustryFinance, true},
		{"Mercy Medical Center", IndustryHealthcare, true},
		{"BigPharma Inc", IndustryHealthcare, true},
		{"Corner Shop", IndustryRetail, true},
		{"Advisory Partners", IndustryConsulting, true},
		{"McKinsey Consulting", IndustryConsulting, true},
		// technology is checked before finance
		{"FinTech Bank", IndustryTechnology, true},
		// health matches before store
		{"Health Store", IndustryHealthcare, true},
		{"Acme Corp", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.company, func(t *testing.T) {
			label, ok := GuessIndustry(tt.company)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, label)
		})
	}
}

func TestExtractIndustries(t *testing.T) {
	entries := []types.ExperienceEntry{
		{Company: "First Bank"},
		{Company: "Unknown LLC"},
		{Company: "Acme Software"},
		{Company: "Credit Corp"},
		{Company: "Tech Retail"},
	}

	assert.Equal(t, []string{IndustryFinance, IndustryTechnology}, ExtractIndustries(entries))
}

func TestExtractIndustries_Empty(t *testing.T) {
	got := ExtractIndustries(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
