package ranking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-recommender/internal/types"
)

var testNow = time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

func seniorGopher() *types.UserProfile {
	return &types.UserProfile{
		Skills:              []string{"Go", "React"},
		Location:            "Austin, TX",
		PreferredLevel:      types.LevelSenior,
		PreferredIndustries: []string{"Technology"},
	}
}

func TestScoreJob_StrongMatch(t *testing.T) {
	posted := testNow.AddDate(0, 0, -2)
	job := &types.JobPosting{
		ID:         uuid.New(),
		Title:      "Senior Engineer",
		Skills:     []string{"Go", "React", "SQL"},
		Level:      types.LevelSenior,
		Location:   strPtr("Austin, TX"),
		Remote:     boolPtr(true),
		PostedDate: &posted,
		Company:    &types.Company{Name: "Acme", Industry: strPtr("Technology")},
	}

	score := ScoreJob(job, seniorGopher(), testNow)

	assert.Equal(t, 0.99, score.Score)
	assert.Equal(t, []string{"Matches 2 of your skills", ReasonPerfectLevel, ReasonLocation}, score.Reasons)
	assert.Equal(t, job.ID, score.Job.ID)
	require.Len(t, score.Factors, 6)
	assert.Equal(t, types.FactorSkill, score.Factors[0].Factor)
	assert.Equal(t, 1.0, score.Factors[0].Score)
	assert.Equal(t, types.FactorRemote, score.Factors[5].Factor)
	assert.Equal(t, 0.8, score.Factors[5].Score)
}

func TestScoreJob_EmptyProfileAndJob(t *testing.T) {
	score := ScoreJob(&types.JobPosting{}, &types.UserProfile{}, testNow)

	assert.Equal(t, 0.3, score.Score)
	assert.Empty(t, score.Reasons)
}

func TestScoreJob_RemoteReasonCanRepeat(t *testing.T) {
	job := &types.JobPosting{Remote: boolPtr(true), Location: strPtr("Berlin")}
	profile := &types.UserProfile{Location: "Austin"}

	score := ScoreJob(job, profile, testNow)
	assert.Equal(t, []string{ReasonRemote, ReasonRemote}, score.Reasons)
}

func TestScoreJob_Bounded(t *testing.T) {
	posted := testNow.AddDate(0, -6, 0)
	jobs := []types.JobPosting{
		{},
		{Skills: []string{"COBOL"}, Level: types.LevelExecutive, Location: strPtr("Oslo"), PostedDate: &posted},
		{Skills: []string{"Go"}, Level: types.LevelSenior, Location: strPtr("Austin, TX"), Remote: boolPtr(true)},
	}
	profiles := []*types.UserProfile{{}, seniorGopher(), {Skills: []string{"x"}, PreferredLevel: types.LevelEntry}}

	for i := range jobs {
		for _, p := range profiles {
			s := ScoreJob(&jobs[i], p, testNow)
			assert.GreaterOrEqual(t, s.Score, 0.0)
			assert.LessOrEqual(t, s.Score, 1.0)
			assert.LessOrEqual(t, len(s.Reasons), 3)
		}
	}
}

func TestRankJobs_StableOrderForTies(t *testing.T) {
	jobs := []types.JobPosting{
		{Title: "first"},
		{Title: "strong", Skills: []string{"Go"}, Level: types.LevelSenior},
		{Title: "second"},
		{Title: "third"},
	}

	ranked, err := RankJobs(context.Background(), jobs, seniorGopher(), testNow, 0, 4)
	require.NoError(t, err)
	require.Len(t, ranked, 4)

	titles := make([]string, len(ranked))
	for i, s := range ranked {
		titles[i] = s.Job.Title
	}
	assert.Equal(t, []string{"strong", "first", "second", "third"}, titles)
}

func TestRankJobs_Limit(t *testing.T) {
	jobs := make([]types.JobPosting, 10)
	for i := range jobs {
		jobs[i] = types.JobPosting{Title: "job"}
	}

	ranked, err := RankJobs(context.Background(), jobs, seniorGopher(), testNow, 3, 1)
	require.NoError(t, err)
	assert.Len(t, ranked, 3)
}

func TestScoreJobs_ParallelMatchesSequential(t *testing.T) {
	posted := testNow.AddDate(0, 0, -20)
	jobs := []types.JobPosting{
		{Title: "a", Skills: []string{"Go"}},
		{Title: "b", Level: types.LevelLead, PostedDate: &posted},
		{Title: "c", Location: strPtr("Austin")},
	}

	seq, err := ScoreJobs(context.Background(), jobs, seniorGopher(), testNow, 1)
	require.NoError(t, err)
	par, err := ScoreJobs(context.Background(), jobs, seniorGopher(), testNow, 8)
	require.NoError(t, err)

	assert.Equal(t, seq, par)
}

func TestScoreJobs_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []types.JobPosting{{Title: "a"}}
	_, err := ScoreJobs(ctx, jobs, seniorGopher(), testNow, 1)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = ScoreJobs(ctx, jobs, seniorGopher(), testNow, 4)
	assert.ErrorIs(t, err, context.Canceled)
}
