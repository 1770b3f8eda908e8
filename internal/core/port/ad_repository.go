package port

import (
	"context"
	"errors"
	"time"

	"pulse-ads/internal/core/domain"
)

var (
	// ErrNoActiveAds is returned when neither the filtered nor the
	// fallback candidate query produced an eligible ad.
	ErrNoActiveAds = errors.New("no active ads available")
	// ErrInvalidImpression is returned when a report references an
	// impression id that does not exist.
	ErrInvalidImpression = errors.New("invalid impression id")
)

// Candidate pairs an eligible ad with the category and company display
// data needed for the response payload. Score is filled in by the scoring
// step.
type Candidate struct {
	Ad           domain.Ad
	CategorySlug string
	CategoryName string
	CompanyName  string
	Score        float64
}

// Signals holds the read-only inputs to one candidate's score.
// Impressions and Clicks are summed over the trailing CTR window;
// LastShownAt is the ad's most recent impression (nil if never shown);
// TotalSpend sums spend across all of the ad's daily metrics rows.
type Signals struct {
	Impressions int64
	Clicks      int64
	LastShownAt *time.Time
	TotalSpend  float64
}

// SummaryRow aggregates impressions and clicks per (company, category).
type SummaryRow struct {
	Company     string `json:"company"`
	Category    string `json:"category"`
	Impressions int64  `json:"impressions"`
	Clicks      int64  `json:"clicks"`
}

// DailyRow aggregates one company's impressions and clicks for one
// calendar day. Date is formatted YYYY-MM-DD.
type DailyRow struct {
	Date        string `json:"date"`
	Impressions int64  `json:"impressions"`
	Clicks      int64  `json:"clicks"`
}

// AdRepository defines the persistence layer for the ad engine. It is an
// outbound port in hexagonal architecture. Implementations must be
// concurrency-safe; RecordView and RecordClick must apply the impression
// mutation and the daily metrics recompute atomically per (ad, day) key.
type AdRepository interface {
	// ListCategories returns all categories with their keyword tables,
	// ordered by slug ascending so matching ties resolve deterministically.
	ListCategories(ctx context.Context) ([]domain.Category, error)
	// ListEligibleAds returns currently eligible ads with display data,
	// ordered deterministically. An empty categorySlug disables the
	// category filter; limit <= 0 means unlimited.
	ListEligibleAds(ctx context.Context, categorySlug string, limit int) ([]Candidate, error)
	// AdSignals reads one ad's scoring inputs. The CTR sums cover metrics
	// rows dated on or after since.
	AdSignals(ctx context.Context, adID string, since time.Time) (Signals, error)
	// CreateImpression persists a new impression and stamps its creation
	// time.
	CreateImpression(ctx context.Context, imp *domain.Impression) error
	// FindImpression returns the impression with the given id, or nil if
	// it does not exist.
	FindImpression(ctx context.Context, id string) (*domain.Impression, error)
	// RecordView attaches the session id (when non-nil) to the impression
	// and recomputes the owning ad's metrics row for day, in one
	// transaction.
	RecordView(ctx context.Context, impressionID string, sessionID *string, day time.Time) error
	// RecordClick marks the impression clicked and recomputes the owning
	// ad's metrics row for day, in one transaction. Repeated calls are
	// no-ops beyond the first.
	RecordClick(ctx context.Context, impressionID string, day time.Time) error
	// SummaryStats aggregates all impressions per (company, category).
	SummaryStats(ctx context.Context) ([]SummaryRow, error)
	// DailyStats aggregates one company's impressions per day, date
	// ascending.
	DailyStats(ctx context.Context, companyID string) ([]DailyRow, error)
}
