package domain

import "time"

// Impression records one serving of an ad. It is created exactly once at
// selection time with Clicked=false and is never deleted. Clicked only
// moves from false to true; SessionID may be attached later by a view
// report. Question keeps the originating text and may be empty.
type Impression struct {
	ID        string
	AdID      string
	Question  string
	SessionID *string
	UserID    *string
	Clicked   bool
	CreatedAt time.Time
}
