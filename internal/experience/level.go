// Package experience derives seniority and industry signals from a résumé's work history.
package experience

import (
	"github.com/jonathan/job-recommender/internal/parsing"
	"github.com/jonathan/job-recommender/internal/types"
)

// levelThresholds maps exclusive upper bounds on total years to a tier.
// Anything at or above the last bound is executive.
var levelThresholds = []struct {
	below float64
	level types.ExperienceLevel
}{
	{1, types.LevelEntry},
	{3, types.LevelJunior},
	{5, types.LevelMid},
	{8, types.LevelSenior},
	{12, types.LevelLead},
}

// TotalYears sums the parsed duration of every entry.
func TotalYears(entries []types.ExperienceEntry) float64 {
	var total float64
	for _, e := range entries {
		total += parsing.ExtractYearsFromDuration(e.Duration)
	}
	return total
}

// LevelForYears maps a number of years to its tier. Each tier's lower bound is inclusive.
func LevelForYears(years float64) types.ExperienceLevel {
	for _, t := range levelThresholds {
		if years < t.below {
			return t.level
		}
	}
	return types.LevelExecutive
}

// DetermineExperienceLevel estimates seniority from work history.
// An empty history is entry level.
func DetermineExperienceLevel(entries []types.ExperienceEntry) types.ExperienceLevel {
	return LevelForYears(TotalYears(entries))
}
