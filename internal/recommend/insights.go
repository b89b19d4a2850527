package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/job-recommender/internal/experience"
	"github.com/jonathan/job-recommender/internal/profile"
	"github.com/jonathan/job-recommender/internal/types"
)

// insightSkillCount caps the skill lists in Insights.
const insightSkillCount = 10

var levelAdvice = map[types.ExperienceLevel][]string{
	types.LevelEntry: {
		"Focus on building a strong foundation in core technologies",
		"Contribute to open source projects",
		"Build a portfolio of personal projects",
	},
	types.LevelJunior: {
		"Take on more complex projects",
		"Learn system design principles",
		"Start mentoring entry-level developers",
	},
	types.LevelMid: {
		"Lead small projects or features",
		"Develop expertise in specific domains",
		"Contribute to architectural decisions",
	},
	types.LevelSenior: {
		"Lead larger projects and teams",
		"Mentor junior and mid-level developers",
		"Drive technical strategy",
	},
	types.LevelLead: {
		"Lead engineering teams",
		"Define technical architecture",
		"Drive organizational change",
	},
	types.LevelExecutive: {
		"Lead entire engineering organizations",
		"Define company-wide technical strategy",
		"Represent company in technical matters",
	},
}

// LevelRecommendations returns career advice for a tier. Unknown tiers get none.
func LevelRecommendations(level types.ExperienceLevel) []string {
	advice := levelAdvice[level]
	out := make([]string, len(advice))
	copy(out, advice)
	return out
}

// IndustryRecommendations returns advice based on the industries a user has worked in.
func IndustryRecommendations(industries []string) []string {
	if len(industries) == 0 {
		return []string{
			"Consider exploring different industries to broaden your experience",
			"Look for roles in growing sectors like AI, FinTech, or HealthTech",
		}
	}
	return []string{
		fmt.Sprintf("Leverage your experience in %s", strings.Join(industries, ", ")),
		"Consider roles in related industries to expand your expertise",
		"Look for opportunities to apply your industry knowledge in new contexts",
	}
}

// Insights summarizes a user's standing against the job market.
type Insights struct {
	Level               types.ExperienceLevel `json:"level"`
	TotalYears          float64               `json:"total_years"`
	Industries          []string              `json:"industries"`
	LevelAdvice         []string              `json:"level_advice"`
	IndustryAdvice      []string              `json:"industry_advice"`
	TopMarketSkills     []string              `json:"top_market_skills"`
	MissingMarketSkills []string              `json:"missing_market_skills"`
}

// BuildInsights derives insights from a profile and the active job corpus.
func BuildInsights(p *types.UserProfile, jobs []types.JobPosting) *Insights {
	top := GetTopSkills(jobs)
	if len(top) > insightSkillCount {
		top = top[:insightSkillCount]
	}
	return &Insights{
		Level:               p.PreferredLevel,
		TotalYears:          experience.TotalYears(p.Experience),
		Industries:          p.PreferredIndustries,
		LevelAdvice:         LevelRecommendations(p.PreferredLevel),
		IndustryAdvice:      IndustryRecommendations(p.PreferredIndustries),
		TopMarketSkills:     top,
		MissingMarketSkills: MissingSkills(top, p.Skills),
	}
}

// Insights loads the user's profile and the corpus and summarizes them.
// It returns nil, nil when the user has no profile. Unlike Recommend,
// collaborator failures are returned.
func (s *Service) Insights(ctx context.Context, userID uuid.UUID) (*Insights, error) {
	fetchCtx, cancel := s.fetchContext(ctx)
	defer cancel()

	p, err := profile.Build(fetchCtx, s.resumes, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	jobs, err := s.jobs.ListActiveJobsWithCompany(fetchCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active jobs: %w", err)
	}
	return BuildInsights(p, jobs), nil
}

// TopSkills returns the most frequent skills across active jobs. A
// non-positive limit returns all of them.
func (s *Service) TopSkills(ctx context.Context, limit int) ([]string, error) {
	fetchCtx, cancel := s.fetchContext(ctx)
	defer cancel()

	jobs, err := s.jobs.ListActiveJobsWithCompany(fetchCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active jobs: %w", err)
	}
	skills := GetTopSkills(jobs)
	if limit > 0 && len(skills) > limit {
		skills = skills[:limit]
	}
	return skills, nil
}
