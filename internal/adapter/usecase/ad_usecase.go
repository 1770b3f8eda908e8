package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"pulse-ads/internal/core/domain"
	"pulse-ads/internal/core/port"
)

// AdService provides business logic for ad selection and report
// processing. It orchestrates the repository to implement the AdUseCase
// interface.
type AdService struct {
	repo port.AdRepository

	fallbackLimit  int
	scoringTimeout time.Duration

	// now and rng are injected so selection is deterministic under test.
	// rngMu guards rng: *rand.Rand is not safe for concurrent use.
	now   func() time.Time
	rng   *rand.Rand
	rngMu sync.Mutex
}

// Option customises an AdService.
type Option func(*AdService)

// WithFallbackLimit caps the unfiltered fallback query issued when the
// matched category has no eligible ads.
func WithFallbackLimit(n int) Option {
	return func(s *AdService) { s.fallbackLimit = n }
}

// WithScoringTimeout bounds the per-candidate signal fan-out. On expiry
// the first eligible candidate is served unscored.
func WithScoringTimeout(d time.Duration) Option {
	return func(s *AdService) { s.scoringTimeout = d }
}

// WithRand sets the randomness source used by the empty-question path.
func WithRand(r *rand.Rand) Option {
	return func(s *AdService) { s.rng = r }
}

// WithClock sets the time source used for scoring windows and day
// boundaries.
func WithClock(now func() time.Time) Option {
	return func(s *AdService) { s.now = now }
}

// NewAdService creates a new service with the provided repository.
func NewAdService(repo port.AdRepository, opts ...Option) *AdService {
	s := &AdService{
		repo:           repo,
		fallbackLimit:  5,
		scoringTimeout: 2 * time.Second,
		now:            time.Now,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ServeAd selects an ad for the request and records an impression. With a
// question, candidates are scored and the stable-sorted best one wins;
// without one, scoring is skipped and an eligible ad is picked uniformly
// at random. ErrNoActiveAds is returned when no candidate survives even
// the fallback widening.
func (s *AdService) ServeAd(ctx context.Context, req port.AdRequest) (*port.AdResponse, error) {
	if req.Question == "" {
		return s.serveRandom(ctx, req)
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	matchedSlug := MatchCategory(req.Question, categories)

	candidates, err := s.repo.ListEligibleAds(ctx, matchedSlug, 0)
	if err != nil {
		return nil, fmt.Errorf("list eligible ads: %w", err)
	}
	candidates = s.eligible(candidates)
	if len(candidates) == 0 && matchedSlug != "" {
		// The matched category is empty; widen to a bounded unfiltered set.
		candidates, err = s.repo.ListEligibleAds(ctx, "", s.fallbackLimit)
		if err != nil {
			return nil, fmt.Errorf("list fallback ads: %w", err)
		}
		candidates = s.eligible(candidates)
	}
	if len(candidates) == 0 {
		return nil, port.ErrNoActiveAds
	}

	switch err = s.scoreCandidates(ctx, candidates, matchedSlug); {
	case err == nil:
		// Stable sort keeps the repository's deterministic candidate
		// order as the effective tie-break.
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Score > candidates[j].Score
		})
	case errors.Is(err, context.DeadlineExceeded):
		// Scoring could not finish in time; serve the first eligible
		// candidate instead of blocking the request.
	default:
		return nil, fmt.Errorf("score candidates: %w", err)
	}

	return s.record(ctx, candidates[0], req)
}

func (s *AdService) serveRandom(ctx context.Context, req port.AdRequest) (*port.AdResponse, error) {
	candidates, err := s.repo.ListEligibleAds(ctx, "", 0)
	if err != nil {
		return nil, fmt.Errorf("list eligible ads: %w", err)
	}
	candidates = s.eligible(candidates)
	if len(candidates) == 0 {
		return nil, port.ErrNoActiveAds
	}
	s.rngMu.Lock()
	i := s.rng.Intn(len(candidates))
	s.rngMu.Unlock()
	return s.record(ctx, candidates[i], req)
}

// eligible re-checks each candidate's status and schedule against the
// service clock. The repository query filters on the database's NOW(),
// which may disagree with an injected clock.
func (s *AdService) eligible(candidates []port.Candidate) []port.Candidate {
	now := s.now()
	out := candidates[:0]
	for _, c := range candidates {
		if c.Ad.EligibleAt(now) {
			out = append(out, c)
		}
	}
	return out
}

func (s *AdService) newImpression(adID string, req port.AdRequest) *domain.Impression {
	imp := &domain.Impression{ID: uuid.NewString(), AdID: adID, Question: req.Question}
	if req.SessionID != "" {
		sid := req.SessionID
		imp.SessionID = &sid
	}
	return imp
}

// record persists the impression for the chosen candidate and builds the
// response. The response is never returned without a persisted impression
// since its id is the caller's only reporting handle.
func (s *AdService) record(ctx context.Context, chosen port.Candidate, req port.AdRequest) (*port.AdResponse, error) {
	imp := s.newImpression(chosen.Ad.ID, req)
	if err := s.repo.CreateImpression(ctx, imp); err != nil {
		return nil, fmt.Errorf("create impression: %w", err)
	}
	return &port.AdResponse{
		ID:           chosen.Ad.ID,
		ImageURL:     chosen.Ad.ImageURL,
		Headline:     chosen.Ad.Headline,
		CTAText:      chosen.Ad.CTAText,
		CTAURL:       chosen.Ad.CTAURL,
		Category:     chosen.CategoryName,
		Company:      chosen.CompanyName,
		ImpressionID: imp.ID,
	}, nil
}
