package usecase

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"pulse-ads/internal/core/domain"
	"pulse-ads/internal/core/port"
)

// Weight factors for the selection score. They sum to 1.0.
const (
	relevanceWeight   = 0.5
	performanceWeight = 0.3
	freshnessWeight   = 0.1
	budgetWeight      = 0.1
)

// ctrWindow is the trailing window over which CTR is computed.
// freshnessHorizon is the recency span after which an ad scores full
// freshness again.
const (
	ctrWindow        = 30 * 24 * time.Hour
	freshnessHorizon = 24 * time.Hour
)

// scoreCandidates fills in the Score of every candidate. Signal reads are
// independent per candidate and fan out concurrently so the step costs
// roughly one lookup, not the sum of all of them. The whole fan-out runs
// under the configured scoring timeout; the caller decides what to do on
// expiry.
func (s *AdService) scoreCandidates(ctx context.Context, candidates []port.Candidate, matchedSlug string) error {
	ctx, cancel := context.WithTimeout(ctx, s.scoringTimeout)
	defer cancel()

	now := s.now()
	since := now.Add(-ctrWindow)

	g, ctx := errgroup.WithContext(ctx)
	for i := range candidates {
		i := i
		g.Go(func() error {
			sig, err := s.repo.AdSignals(ctx, candidates[i].Ad.ID, since)
			if err != nil {
				return err
			}
			candidates[i].Score = score(candidates[i], sig, matchedSlug, now)
			return nil
		})
	}
	return g.Wait()
}

// score combines the four signals into one weighted value. Relevance is
// binary on the matched category; with no match every candidate gets 0 and
// ranking degenerates to the remaining signals.
func score(c port.Candidate, sig port.Signals, matchedSlug string, now time.Time) float64 {
	relevance := 0.0
	if matchedSlug != "" && c.CategorySlug == matchedSlug {
		relevance = 1.0
	}
	return relevance*relevanceWeight +
		performanceScore(sig)*performanceWeight +
		freshnessScore(sig, now)*freshnessWeight +
		budgetScore(c.Ad, sig)*budgetWeight
}

// performanceScore is the ad's CTR over the trailing window, 0 when it has
// no impressions there.
func performanceScore(sig port.Signals) float64 {
	if sig.Impressions == 0 {
		return 0
	}
	return float64(sig.Clicks) / float64(sig.Impressions)
}

// freshnessScore rewards ads not shown recently: 1.0 for never-shown ads,
// otherwise hours-since-last-impression over 24, capped at 1.0.
func freshnessScore(sig port.Signals, now time.Time) float64 {
	if sig.LastShownAt == nil {
		return 1
	}
	hours := now.Sub(*sig.LastShownAt).Hours()
	return math.Min(hours/freshnessHorizon.Hours(), 1)
}

// budgetScore is the remaining fraction of the ad's total budget, clamped
// to [0, 1]. Ads without a budget ceiling always score 1.
func budgetScore(ad domain.Ad, sig port.Signals) float64 {
	if ad.Budget == nil {
		return 1
	}
	budget := *ad.Budget
	if budget <= 0 {
		return 0
	}
	remaining := math.Max(0, budget-sig.TotalSpend)
	return math.Min(remaining/budget, 1)
}
