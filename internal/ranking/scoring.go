// Package ranking scores job postings against a user profile and orders them by fit.
package ranking

import (
	"fmt"
	"math"
	"time"

	"github.com/jonathan/job-recommender/internal/parsing"
	"github.com/jonathan/job-recommender/internal/types"
)

// Factor weights. They sum to 1.
const (
	skillWeight    = 0.4
	levelWeight    = 0.2
	locationWeight = 0.15
	industryWeight = 0.1
	recencyWeight  = 0.1
	remoteWeight   = 0.05
)

// neutralScore is returned by a factor that lacks the data to compare.
const neutralScore = 0.5

// Reason strings
const (
	ReasonPerfectLevel   = "Perfect level match"
	ReasonCloseLevel     = "Close level match"
	ReasonLocation       = "Location match"
	ReasonNearby         = "Nearby location"
	ReasonRemote         = "Remote opportunity"
	ReasonIndustry       = "Industry match"
	ReasonRecentlyPosted = "Recently posted"
)

// DefaultWeights returns the fixed factor weights in evaluation order.
func DefaultWeights() []types.FactorScore {
	return []types.FactorScore{
		{Factor: types.FactorSkill, Weight: skillWeight},
		{Factor: types.FactorLevel, Weight: levelWeight},
		{Factor: types.FactorLocation, Weight: locationWeight},
		{Factor: types.FactorIndustry, Weight: industryWeight},
		{Factor: types.FactorRecency, Weight: recencyWeight},
		{Factor: types.FactorRemote, Weight: remoteWeight},
	}
}

// SkillMatch counts the user skills related to any job skill by substring in
// either direction, ignoring case. The match ratio is doubled and capped at 1
// so partial overlap still counts.
func SkillMatch(job *types.JobPosting, profile *types.UserProfile) types.FactorResult {
	if len(job.Skills) == 0 || len(profile.Skills) == 0 {
		return types.FactorResult{Score: 0}
	}

	jobSkills := parsing.FoldAll(job.Skills)
	matches := 0
	for _, userSkill := range parsing.FoldAll(profile.Skills) {
		for _, jobSkill := range jobSkills {
			if parsing.Related(jobSkill, userSkill) {
				matches++
				break
			}
		}
	}

	ratio := float64(matches) / float64(max(len(jobSkills), len(profile.Skills)))
	result := types.FactorResult{Score: math.Min(ratio*2, 1)}
	if matches > 0 {
		result.Reasons = []string{fmt.Sprintf("Matches %d of your skills", matches)}
	}
	return result
}

// LevelMatch loses 0.2 per tier of distance between the user's and the job's level.
func LevelMatch(job *types.JobPosting, userLevel types.ExperienceLevel) types.FactorResult {
	if !userLevel.Valid() {
		return types.FactorResult{Score: neutralScore}
	}

	diff := userLevel.Ordinal() - job.EffectiveLevel().Ordinal()
	if diff < 0 {
		diff = -diff
	}

	result := types.FactorResult{Score: clamp01(1 - float64(diff)*0.2)}
	switch diff {
	case 0:
		result.Reasons = []string{ReasonPerfectLevel}
	case 1:
		result.Reasons = []string{ReasonCloseLevel}
	}
	return result
}

// LocationMatch compares locations. An exact match beats a partial match on
// any comma-separated part, which beats the remote bonus.
func LocationMatch(job *types.JobPosting, userLocation string) types.FactorResult {
	jobLocation := job.LocationText()
	if jobLocation == "" || userLocation == "" {
		// a remote job without a location still earns the remote bonus
		if job.IsRemote() && userLocation != "" {
			return types.FactorResult{Score: 0.7, Reasons: []string{ReasonRemote}}
		}
		return types.FactorResult{Score: neutralScore}
	}

	if parsing.EqualFold(jobLocation, userLocation) {
		return types.FactorResult{Score: 1, Reasons: []string{ReasonLocation}}
	}

	// an empty part (e.g. from a trailing comma) relates to every part
	jobParts := parsing.SplitTrim(parsing.Fold(jobLocation), ",")
	for _, userPart := range parsing.SplitTrim(parsing.Fold(userLocation), ",") {
		for _, jobPart := range jobParts {
			if parsing.Related(jobPart, userPart) {
				return types.FactorResult{Score: 0.8, Reasons: []string{ReasonNearby}}
			}
		}
	}

	if job.IsRemote() {
		return types.FactorResult{Score: 0.7, Reasons: []string{ReasonRemote}}
	}
	return types.FactorResult{Score: 0.3}
}

// IndustryMatch checks the job's company industry against the user's industries.
func IndustryMatch(job *types.JobPosting, userIndustries []string) types.FactorResult {
	industry := job.Industry()
	if len(userIndustries) == 0 || industry == "" {
		return types.FactorResult{Score: neutralScore}
	}

	jobIndustry := parsing.Fold(industry)
	for _, ui := range userIndustries {
		if parsing.Related(jobIndustry, parsing.Fold(ui)) {
			return types.FactorResult{Score: 1, Reasons: []string{ReasonIndustry}}
		}
	}
	return types.FactorResult{Score: 0.3}
}

// Recency favors recently posted jobs. Ages are measured in fractional days
// relative to now.
func Recency(job *types.JobPosting, now time.Time) types.FactorResult {
	if job.PostedDate == nil {
		return types.FactorResult{Score: neutralScore}
	}

	days := now.Sub(*job.PostedDate).Hours() / 24
	switch {
	case days <= 7:
		return types.FactorResult{Score: 1, Reasons: []string{ReasonRecentlyPosted}}
	case days <= 30:
		return types.FactorResult{Score: 0.9}
	case days <= 90:
		return types.FactorResult{Score: 0.7}
	default:
		return types.FactorResult{Score: 0.5}
	}
}

// RemotePreference is a static bonus for remote jobs; users have no remote
// preference to compare against.
func RemotePreference(job *types.JobPosting) types.FactorResult {
	if job.IsRemote() {
		return types.FactorResult{Score: 0.8, Reasons: []string{ReasonRemote}}
	}
	return types.FactorResult{Score: neutralScore}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// roundScore rounds half up to 2 decimals.
func roundScore(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
