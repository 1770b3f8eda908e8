package domain

import "time"

// AdStatus is the lifecycle state of an ad. Archived is terminal: there is
// no transition out of it.
type AdStatus string

const (
	AdStatusActive   AdStatus = "active"
	AdStatusPaused   AdStatus = "paused"
	AdStatusArchived AdStatus = "archived"
)

// Ad is a single creative owned by a company and attached to a topical
// category. Budget is the total spend ceiling in currency units; SpendCap
// is an informational daily ceiling and is not enforced here. A nil budget
// means unlimited.
type Ad struct {
	ID         string
	CompanyID  string
	CategoryID string
	Status     AdStatus
	Headline   string
	ImageURL   string
	CTAText    string
	CTAURL     string
	Budget     *float64
	SpendCap   *float64
	StartDate  *time.Time
	EndDate    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EligibleAt reports whether the ad may be served at t: it must be active
// and t must fall inside the optional campaign window.
func (a *Ad) EligibleAt(t time.Time) bool {
	if a.Status != AdStatusActive {
		return false
	}
	if a.StartDate != nil && a.StartDate.After(t) {
		return false
	}
	if a.EndDate != nil && a.EndDate.Before(t) {
		return false
	}
	return true
}
