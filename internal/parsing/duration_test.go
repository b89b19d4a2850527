package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractYearsFromDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"years and months", "2 years 6 months", 2.5},
		{"empty", "", 0},
		{"months only", "3 months", 0.25},
		{"single year", "1 year", 1},
		{"capitalized units", "4 Years 3 Months", 4.25},
		{"no space before unit", "5years", 5},
		{"month range text", "Jan 2020 - Present", 0},
		{"garbage", "a long while", 0},
		{"first match wins", "2 years (then 3 years part-time)", 2},
		{"overflowing digits", "99999999999999999999999 years", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ExtractYearsFromDuration(tt.input), 1e-9)
		})
	}
}
