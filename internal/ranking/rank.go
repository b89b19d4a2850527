package ranking

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-recommender/internal/types"
)

// maxReasons caps the reasons attached to a JobScore.
const maxReasons = 3

// ScoreJob runs every factor against the job and combines them by weight.
// Reasons keep factor order and are truncated to the first three.
func ScoreJob(job *types.JobPosting, profile *types.UserProfile, now time.Time) types.JobScore {
	results := []types.FactorResult{
		SkillMatch(job, profile),
		LevelMatch(job, profile.PreferredLevel),
		LocationMatch(job, profile.Location),
		IndustryMatch(job, profile.PreferredIndustries),
		Recency(job, now),
		RemotePreference(job),
	}

	factors := DefaultWeights()
	var total float64
	reasons := make([]string, 0, maxReasons)
	for i, r := range results {
		factors[i].Score = r.Score
		total += r.Score * factors[i].Weight
		reasons = append(reasons, r.Reasons...)
	}
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}

	return types.JobScore{
		Job:     *job,
		Score:   roundScore(clamp01(total)),
		Reasons: reasons,
		Factors: factors,
	}
}

// ScoreJobs scores every job, fanning out across at most workers goroutines
// when workers > 1.
// Results are in input order. The only error is ctx cancellation.
func ScoreJobs(ctx context.Context, jobs []types.JobPosting, profile *types.UserProfile, now time.Time, workers int) ([]types.JobScore, error) {
	scores := make([]types.JobScore, len(jobs))
	if workers <= 1 {
		for i := range jobs {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("scoring cancelled: %w", err)
			}
			scores[i] = ScoreJob(&jobs[i], profile, now)
		}
		return scores, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range jobs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scores[i] = ScoreJob(&jobs[i], profile, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scoring cancelled: %w", err)
	}
	return scores, nil
}

// SortScores orders scores by aggregate descending. Equal scores keep their
// input order.
func SortScores(scores []types.JobScore) {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
}

// RankJobs scores, sorts and truncates jobs to limit. A non-positive limit
// keeps every job.
func RankJobs(ctx context.Context, jobs []types.JobPosting, profile *types.UserProfile, now time.Time, limit, workers int) ([]types.JobScore, error) {
	scores, err := ScoreJobs(ctx, jobs, profile, now, workers)
	if err != nil {
		return nil, err
	}
	SortScores(scores)
	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}
