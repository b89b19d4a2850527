// Package parsing extracts structured values from free-text résumé and job fields.
package parsing

import (
	"regexp"
	"strconv"
)

var (
	yearsPattern  = regexp.MustCompile(`(?i)(\d+)\s*year`)
	monthsPattern = regexp.MustCompile(`(?i)(\d+)\s*month`)
)

// ExtractYearsFromDuration converts a duration description such as
// "2 years 6 months" into years (2.5). Only the first "<n> year" and the first
// "<n> month" token are read. Unparseable input yields 0.
func ExtractYearsFromDuration(duration string) float64 {
	years := firstInt(yearsPattern, duration)
	months := firstInt(monthsPattern, duration)
	return float64(years) + float64(months)/12
}

func firstInt(pattern *regexp.Regexp, text string) int {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return 0
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		// overflow on absurdly long digit runs
		return 0
	}
	return n
}
