package port

import "context"

// ReportKind discriminates the two report types accepted by the metrics
// ledger. View and click reports are independent: a click may arrive
// without a prior view.
type ReportKind string

const (
	ReportView  ReportKind = "view"
	ReportClick ReportKind = "click"
)

// AdRequest carries the inputs of one selection call. Question may be
// empty, which switches selection to the random path. SessionID is
// attached to the created impression when present.
type AdRequest struct {
	Question  string
	SessionID string
}

// AdResponse is the selected ad as returned to the client. ImpressionID is
// the caller's sole handle for subsequent view/click reporting.
type AdResponse struct {
	ID           string `json:"id"`
	ImageURL     string `json:"imageUrl"`
	Headline     string `json:"headline"`
	CTAText      string `json:"ctaText"`
	CTAURL       string `json:"ctaUrl"`
	Category     string `json:"category"`
	Company      string `json:"company"`
	ImpressionID string `json:"impressionId"`
}

// AdUseCase defines the business operations exposed by the ad engine. This
// interface represents the primary port into the application domain. Mock
// implementations can be generated from this interface for testing.
type AdUseCase interface {
	// ServeAd selects an ad for the request, records an impression and
	// returns the creative with its impression id. It returns
	// ErrNoActiveAds when no eligible candidate exists even after
	// fallback widening.
	ServeAd(ctx context.Context, req AdRequest) (*AdResponse, error)

	// Report applies a view or click report to an impression and brings
	// the owning ad's daily metrics row up to date. Reports are
	// idempotent: repeating a call, in any order, converges to the same
	// metrics row. Unknown impression ids yield ErrInvalidImpression.
	Report(ctx context.Context, kind ReportKind, impressionID string, sessionID *string) error

	// SummaryStats returns impression and click totals per
	// (company, category).
	SummaryStats(ctx context.Context) ([]SummaryRow, error)

	// DailyStats returns per-day impression and click totals for one
	// company's ads.
	DailyStats(ctx context.Context, companyID string) ([]DailyRow, error)
}
