package recommend

import (
	"sort"

	"github.com/jonathan/job-recommender/internal/parsing"
	"github.com/jonathan/job-recommender/internal/types"
)

// GetTopSkills counts every skill across jobs and returns them by descending
// frequency. Skills are compared exactly; ties keep first-seen order.
func GetTopSkills(jobs []types.JobPosting) []string {
	counts := make(map[string]int)
	order := []string{}
	for _, job := range jobs {
		for _, skill := range job.Skills {
			if _, ok := counts[skill]; !ok {
				order = append(order, skill)
			}
			counts[skill]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return order
}

// MissingSkills returns the market skills the user does not have, keeping
// market order. Matching ignores case and accepts substrings either way.
func MissingSkills(market, userSkills []string) []string {
	have := parsing.FoldAll(userSkills)
	missing := []string{}
	for _, skill := range market {
		folded := parsing.Fold(skill)
		found := false
		for _, h := range have {
			if parsing.Related(folded, h) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, skill)
		}
	}
	return missing
}
