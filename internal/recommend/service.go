// Package recommend produces ranked job recommendations for a user and falls
// back to the most recent postings whenever a profile or corpus is unavailable.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/job-recommender/internal/profile"
	"github.com/jonathan/job-recommender/internal/ranking"
	"github.com/jonathan/job-recommender/internal/types"
)

// DefaultLimit is used when a caller asks for a non-positive number of jobs.
const DefaultLimit = 10

// ErrNoProfile classifies the "user has no parsed résumé" outcome in logs.
var ErrNoProfile = errors.New("no active parsed resume")

// JobCorpus reads active job postings with their company joined.
// Both methods order jobs by posted date descending (missing dates last),
// then creation time descending.
type JobCorpus interface {
	ListActiveJobsWithCompany(ctx context.Context) ([]types.JobPosting, error)
	ListRecentActiveJobs(ctx context.Context, limit int) ([]types.JobPosting, error)
}

// FallbackReason says why a result was not ranked.
type FallbackReason string

// Fallback reasons
const (
	FallbackNone         FallbackReason = ""
	FallbackNoProfile    FallbackReason = "no_profile"
	FallbackProfileError FallbackReason = "profile_error"
	FallbackCorpusError  FallbackReason = "corpus_error"
	FallbackScoringError FallbackReason = "scoring_error"
)

// Result is a recommendation response. Scores is parallel to Jobs and empty
// for fallback results.
type Result struct {
	Jobs           []types.JobPosting `json:"jobs"`
	Scores         []types.JobScore   `json:"scores,omitempty"`
	Fallback       bool               `json:"fallback"`
	FallbackReason FallbackReason     `json:"fallback_reason,omitempty"`
}

// Options tunes a Service. Zero values select defaults.
type Options struct {
	DefaultLimit int
	ScoreWorkers int
	// FetchTimeout bounds the profile and corpus reads. Zero means no bound.
	FetchTimeout time.Duration
	Logger       *slog.Logger
	Now          func() time.Time
}

// Service ranks the job corpus for a user.
type Service struct {
	jobs    JobCorpus
	resumes profile.Source
	opts    Options
}

// NewService creates a recommendation service over the given collaborators.
func NewService(jobs JobCorpus, resumes profile.Source, opts Options) *Service {
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = DefaultLimit
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{jobs: jobs, resumes: resumes, opts: opts}
}

// GetRecommendations returns up to limit jobs ordered by fit. It never fails:
// any problem yields the most recently posted active jobs instead.
func (s *Service) GetRecommendations(ctx context.Context, userID uuid.UUID, limit int) []types.JobPosting {
	return s.Recommend(ctx, userID, limit).Jobs
}

// Recommend is GetRecommendations with scores and fallback details.
func (s *Service) Recommend(ctx context.Context, userID uuid.UUID, limit int) Result {
	if limit <= 0 {
		limit = s.opts.DefaultLimit
	}
	log := s.opts.Logger.With(slog.String("user_id", userID.String()))

	var (
		userProfile *types.UserProfile
		jobs        []types.JobPosting
		profileErr  error
		corpusErr   error
	)

	fetchCtx, cancel := s.fetchContext(ctx)
	defer cancel()

	// The reads are independent; one failing does not cancel the other.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		userProfile, profileErr = profile.Build(fetchCtx, s.resumes, userID)
	}()
	go func() {
		defer wg.Done()
		jobs, corpusErr = s.jobs.ListActiveJobsWithCompany(fetchCtx)
		if corpusErr != nil {
			corpusErr = fmt.Errorf("failed to list active jobs: %w", corpusErr)
		}
	}()
	wg.Wait()

	switch {
	case profileErr != nil:
		return s.fallback(ctx, log, limit, FallbackProfileError, profileErr)
	case userProfile == nil && corpusErr == nil:
		// the corpus is already in recency order
		logFallback(ctx, log, FallbackNoProfile, ErrNoProfile)
		return Result{Jobs: firstN(jobs, limit), Fallback: true, FallbackReason: FallbackNoProfile}
	case userProfile == nil:
		return s.fallback(ctx, log, limit, FallbackNoProfile, ErrNoProfile)
	case corpusErr != nil:
		return s.fallback(ctx, log, limit, FallbackCorpusError, corpusErr)
	}

	scores, err := ranking.RankJobs(ctx, jobs, userProfile, s.opts.Now(), limit, s.opts.ScoreWorkers)
	if err != nil {
		return s.fallback(ctx, log, limit, FallbackScoringError, err)
	}

	log.Debug("ranked recommendations",
		slog.Int("candidates", len(jobs)),
		slog.Int("returned", len(scores)),
		slog.String("level", string(userProfile.PreferredLevel)))

	result := Result{
		Jobs:   make([]types.JobPosting, len(scores)),
		Scores: scores,
	}
	for i, sc := range scores {
		result.Jobs[i] = sc.Job
	}
	return result
}

// RankForProfile ranks the active corpus for a profile built elsewhere, such
// as from a local résumé file. Errors are returned rather than masked.
func (s *Service) RankForProfile(ctx context.Context, p *types.UserProfile, limit int) ([]types.JobScore, error) {
	if limit <= 0 {
		limit = s.opts.DefaultLimit
	}

	fetchCtx, cancel := s.fetchContext(ctx)
	defer cancel()

	jobs, err := s.jobs.ListActiveJobsWithCompany(fetchCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active jobs: %w", err)
	}
	return ranking.RankJobs(ctx, jobs, p, s.opts.Now(), limit, s.opts.ScoreWorkers)
}

// fallback returns the limit most recent active jobs, or none if even that read fails.
func (s *Service) fallback(ctx context.Context, log *slog.Logger, limit int, reason FallbackReason, cause error) Result {
	logFallback(ctx, log, reason, cause)

	result := Result{Jobs: []types.JobPosting{}, Fallback: true, FallbackReason: reason}

	fetchCtx, cancel := s.fetchContext(ctx)
	defer cancel()

	jobs, err := s.jobs.ListRecentActiveJobs(fetchCtx, limit)
	if err != nil {
		log.Error("failed to load fallback jobs", slog.Any("error", err))
		return result
	}
	result.Jobs = firstN(jobs, limit)
	return result
}

// logFallback records why ranking was skipped. A missing profile is routine.
func logFallback(ctx context.Context, log *slog.Logger, reason FallbackReason, cause error) {
	level := slog.LevelWarn
	if reason == FallbackNoProfile {
		level = slog.LevelDebug
	}
	log.Log(ctx, level, "falling back to recent jobs",
		slog.String("reason", string(reason)),
		slog.Any("error", cause))
}

func firstN(jobs []types.JobPosting, n int) []types.JobPosting {
	if jobs == nil {
		return []types.JobPosting{}
	}
	if len(jobs) > n {
		return jobs[:n]
	}
	return jobs
}

func (s *Service) fetchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.FetchTimeout > 0 {
		return context.WithTimeout(ctx, s.opts.FetchTimeout)
	}
	return context.WithCancel(ctx)
}
