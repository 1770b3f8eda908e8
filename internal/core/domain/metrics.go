package domain

import "time"

// DailyMetrics is the per-(ad, day) aggregate over impression rows. It is
// derived state: Impressions and Clicks must always equal the counts
// obtainable by scanning the ad's impressions for that day, so the row can
// be rebuilt from source at any time.
type DailyMetrics struct {
	AdID        string
	Date        time.Time
	Impressions int64
	Clicks      int64
	CTR         float64
	Spend       float64
}
