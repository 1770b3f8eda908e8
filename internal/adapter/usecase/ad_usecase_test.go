package usecase

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pulse-ads/internal/core/domain"
	"pulse-ads/internal/core/port"
	"pulse-ads/internal/core/port/mocks"
)

// TestServeAdPicksHighestScore runs the reference scenario end to end: the
// question matches cardiology, so the never-shown cardiology ad outranks
// an oncology ad with perfect CTR shown an hour ago, regardless of the
// candidate order returned by the repository.
func TestServeAdPicksHighestScore(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	cardio := port.Candidate{
		Ad:           domain.Ad{ID: "ad-cardio", Status: domain.AdStatusActive, Headline: "Heart Health", ImageURL: "img1", CTAText: "Learn More", CTAURL: "url1"},
		CategorySlug: "cardiology", CategoryName: "Cardiology", CompanyName: "Pfizer",
	}
	onco := port.Candidate{
		Ad:           domain.Ad{ID: "ad-onco", Status: domain.AdStatusActive, Headline: "Cancer Care"},
		CategorySlug: "oncology", CategoryName: "Oncology", CompanyName: "Genentech",
	}

	repo.EXPECT().ListCategories(mock.Anything).Return(testCategories(), nil)
	// oncology first: the winner must come from scoring, not input order
	repo.EXPECT().
		ListEligibleAds(mock.Anything, "cardiology", 0).
		Return([]port.Candidate{onco, cardio}, nil)

	lastShown := now.Add(-time.Hour)
	repo.EXPECT().AdSignals(mock.Anything, "ad-cardio", mock.Anything).Return(port.Signals{}, nil)
	repo.EXPECT().AdSignals(mock.Anything, "ad-onco", mock.Anything).
		Return(port.Signals{Impressions: 10, Clicks: 10, LastShownAt: &lastShown}, nil)

	var created *domain.Impression
	repo.EXPECT().
		CreateImpression(mock.Anything, mock.AnythingOfType("*domain.Impression")).
		Run(func(ctx context.Context, imp *domain.Impression) { created = imp }).
		Return(nil)

	svc := NewAdService(repo, WithClock(func() time.Time { return now }))

	question := "What causes chest pain and high blood pressure?"
	resp, err := svc.ServeAd(context.Background(), port.AdRequest{Question: question, SessionID: "sess-1"})
	require.NoError(t, err)
	require.Equal(t, "ad-cardio", resp.ID)
	require.Equal(t, "Cardiology", resp.Category)
	require.Equal(t, "Pfizer", resp.Company)

	require.NotNil(t, created)
	require.Equal(t, created.ID, resp.ImpressionID)
	require.Equal(t, question, created.Question)
	require.NotNil(t, created.SessionID)
	require.Equal(t, "sess-1", *created.SessionID)
	require.False(t, created.Clicked)
}

// TestServeAdEmptyQuestion ensures the empty-question path bypasses
// matching and scoring entirely and picks with the injected randomness
// source. The persisted impression keeps the empty question.
func TestServeAdEmptyQuestion(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)

	candidates := []port.Candidate{
		{Ad: domain.Ad{ID: "ad-1", Status: domain.AdStatusActive}, CategoryName: "Cardiology", CompanyName: "Pfizer"},
		{Ad: domain.Ad{ID: "ad-2", Status: domain.AdStatusActive}, CategoryName: "Neurology", CompanyName: "GSK"},
		{Ad: domain.Ad{ID: "ad-3", Status: domain.AdStatusActive}, CategoryName: "Oncology", CompanyName: "Eli Lilly"},
	}
	repo.EXPECT().ListEligibleAds(mock.Anything, "", 0).Return(candidates, nil)

	var created *domain.Impression
	repo.EXPECT().
		CreateImpression(mock.Anything, mock.AnythingOfType("*domain.Impression")).
		Run(func(ctx context.Context, imp *domain.Impression) { created = imp }).
		Return(nil)

	const seed = 42
	svc := NewAdService(repo, WithRand(rand.New(rand.NewSource(seed))))

	resp, err := svc.ServeAd(context.Background(), port.AdRequest{})
	require.NoError(t, err)

	want := candidates[rand.New(rand.NewSource(seed)).Intn(len(candidates))]
	require.Equal(t, want.Ad.ID, resp.ID)
	require.NotNil(t, created)
	require.Empty(t, created.Question)
	require.Nil(t, created.SessionID)
}

// TestServeAdNoActiveAds covers a system with zero eligible ads: the
// unfiltered query is empty and selection fails with ErrNoActiveAds.
func TestServeAdNoActiveAds(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)

	repo.EXPECT().ListCategories(mock.Anything).Return(testCategories(), nil)
	repo.EXPECT().ListEligibleAds(mock.Anything, "", 0).Return(nil, nil)

	svc := NewAdService(repo)

	_, err := svc.ServeAd(context.Background(), port.AdRequest{Question: "how do I file my taxes"})
	require.ErrorIs(t, err, port.ErrNoActiveAds)
}

// TestServeAdFallbackWidening covers a matched category with no eligible
// ads: the usecase issues a second unfiltered query capped at the fallback
// limit and scores that bounded set.
func TestServeAdFallbackWidening(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)

	repo.EXPECT().ListCategories(mock.Anything).Return(testCategories(), nil)
	repo.EXPECT().ListEligibleAds(mock.Anything, "oncology", 0).Return(nil, nil)

	fallback := port.Candidate{
		Ad:           domain.Ad{ID: "ad-cardio", Status: domain.AdStatusActive},
		CategorySlug: "cardiology", CategoryName: "Cardiology", CompanyName: "Pfizer",
	}
	repo.EXPECT().ListEligibleAds(mock.Anything, "", 5).Return([]port.Candidate{fallback}, nil)
	repo.EXPECT().AdSignals(mock.Anything, "ad-cardio", mock.Anything).Return(port.Signals{}, nil)
	repo.EXPECT().
		CreateImpression(mock.Anything, mock.AnythingOfType("*domain.Impression")).
		Return(nil)

	svc := NewAdService(repo)

	resp, err := svc.ServeAd(context.Background(), port.AdRequest{Question: "latest cancer treatment"})
	require.NoError(t, err)
	require.Equal(t, "ad-cardio", resp.ID)
}

// TestServeAdFiltersIneligibleCandidates ensures candidates that fail the
// status or schedule check against the service clock are dropped before
// scoring, even when the repository query let them through.
func TestServeAdFiltersIneligibleCandidates(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	ended := now.Add(-time.Hour)

	active := port.Candidate{
		Ad:           domain.Ad{ID: "ad-active", Status: domain.AdStatusActive},
		CategorySlug: "cardiology", CategoryName: "Cardiology", CompanyName: "Pfizer",
	}
	paused := port.Candidate{
		Ad:           domain.Ad{ID: "ad-paused", Status: domain.AdStatusPaused},
		CategorySlug: "cardiology", CategoryName: "Cardiology", CompanyName: "GSK",
	}
	expired := port.Candidate{
		Ad:           domain.Ad{ID: "ad-expired", Status: domain.AdStatusActive, EndDate: &ended},
		CategorySlug: "cardiology", CategoryName: "Cardiology", CompanyName: "Genentech",
	}

	repo.EXPECT().ListCategories(mock.Anything).Return(testCategories(), nil)
	repo.EXPECT().
		ListEligibleAds(mock.Anything, "cardiology", 0).
		Return([]port.Candidate{paused, expired, active}, nil)
	// only the surviving candidate is scored
	repo.EXPECT().AdSignals(mock.Anything, "ad-active", mock.Anything).Return(port.Signals{}, nil)
	repo.EXPECT().
		CreateImpression(mock.Anything, mock.AnythingOfType("*domain.Impression")).
		Return(nil)

	svc := NewAdService(repo, WithClock(func() time.Time { return now }))

	resp, err := svc.ServeAd(context.Background(), port.AdRequest{Question: "heart attack symptoms"})
	require.NoError(t, err)
	require.Equal(t, "ad-active", resp.ID)
}

// TestServeAdScoringTimeout ensures a stuck signal read does not block the
// request: once the scoring deadline expires the first eligible candidate
// is served unscored.
func TestServeAdScoringTimeout(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)

	first := port.Candidate{Ad: domain.Ad{ID: "ad-first", Status: domain.AdStatusActive}, CategorySlug: "cardiology", CategoryName: "Cardiology", CompanyName: "Pfizer"}
	second := port.Candidate{Ad: domain.Ad{ID: "ad-second", Status: domain.AdStatusActive}, CategorySlug: "cardiology", CategoryName: "Cardiology", CompanyName: "GSK"}

	repo.EXPECT().ListCategories(mock.Anything).Return(testCategories(), nil)
	repo.EXPECT().
		ListEligibleAds(mock.Anything, "cardiology", 0).
		Return([]port.Candidate{first, second}, nil)
	repo.EXPECT().
		AdSignals(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, adID string, since time.Time) (port.Signals, error) {
			<-ctx.Done()
			return port.Signals{}, ctx.Err()
		})
	repo.EXPECT().
		CreateImpression(mock.Anything, mock.AnythingOfType("*domain.Impression")).
		Return(nil)

	svc := NewAdService(repo, WithScoringTimeout(20*time.Millisecond))

	resp, err := svc.ServeAd(context.Background(), port.AdRequest{Question: "heart attack symptoms"})
	require.NoError(t, err)
	require.Equal(t, "ad-first", resp.ID)
}
