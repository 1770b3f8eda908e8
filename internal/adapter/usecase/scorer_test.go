package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pulse-ads/internal/core/domain"
	"pulse-ads/internal/core/port"
)

func f64(v float64) *float64 { return &v }

func TestFreshnessScore(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 1.0, freshnessScore(port.Signals{}, now), "never shown scores full freshness")

	oneHour := now.Add(-time.Hour)
	assert.InDelta(t, 1.0/24, freshnessScore(port.Signals{LastShownAt: &oneHour}, now), 1e-9)

	twelveHours := now.Add(-12 * time.Hour)
	assert.InDelta(t, 0.5, freshnessScore(port.Signals{LastShownAt: &twelveHours}, now), 1e-9)

	twoDays := now.Add(-48 * time.Hour)
	assert.Equal(t, 1.0, freshnessScore(port.Signals{LastShownAt: &twoDays}, now), "caps at 1.0 after 24h")
}

func TestBudgetScore(t *testing.T) {
	noBudget := domain.Ad{}
	assert.Equal(t, 1.0, budgetScore(noBudget, port.Signals{TotalSpend: 99999}), "no ceiling scores full regardless of spend")

	capped := domain.Ad{Budget: f64(1000)}
	assert.InDelta(t, 0.6, budgetScore(capped, port.Signals{TotalSpend: 400}), 1e-9)
	assert.Equal(t, 1.0, budgetScore(capped, port.Signals{}))
	assert.Equal(t, 0.0, budgetScore(capped, port.Signals{TotalSpend: 1500}), "overspend clamps to zero")
}

func TestPerformanceScore(t *testing.T) {
	assert.Equal(t, 0.0, performanceScore(port.Signals{}), "no impressions must not divide by zero")
	assert.InDelta(t, 0.1, performanceScore(port.Signals{Impressions: 50, Clicks: 5}), 1e-9)
	assert.Equal(t, 1.0, performanceScore(port.Signals{Impressions: 10, Clicks: 10}))
}

// TestScoreWeighting reproduces the reference scenario: a fresh Cardiology
// ad with no history beats an Oncology ad with perfect CTR shown an hour
// ago, when the question matched cardiology.
func TestScoreWeighting(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	cardio := port.Candidate{Ad: domain.Ad{ID: "a1"}, CategorySlug: "cardiology"}
	cardioScore := score(cardio, port.Signals{}, "cardiology", now)
	assert.InDelta(t, 0.70, cardioScore, 1e-9)

	lastShown := now.Add(-time.Hour)
	onco := port.Candidate{Ad: domain.Ad{ID: "a2"}, CategorySlug: "oncology"}
	oncoScore := score(onco, port.Signals{Impressions: 10, Clicks: 10, LastShownAt: &lastShown}, "cardiology", now)
	assert.InDelta(t, 0.5*0+0.3*1+0.1*(1.0/24)+0.1*1, oncoScore, 1e-9)

	assert.Greater(t, cardioScore, oncoScore)
}

// With no matched category, relevance is zero for everyone and ranking
// degenerates to the remaining signals.
func TestScoreNoMatchedCategory(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	c := port.Candidate{Ad: domain.Ad{ID: "a1"}, CategorySlug: "cardiology"}
	got := score(c, port.Signals{}, "", now)
	assert.InDelta(t, 0.3*0+0.1*1+0.1*1, got, 1e-9)
}
