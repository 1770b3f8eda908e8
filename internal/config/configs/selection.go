package configs

import "time"

// Selection tunes the ad selection engine. FallbackLimit caps the
// unfiltered candidate query issued when the matched category has no
// eligible ads, purely to bound scoring cost. ScoringTimeout bounds the
// per-candidate signal reads; on expiry the first eligible candidate is
// served without scoring.
type Selection struct {
	FallbackLimit  int           `env:"FALLBACK_LIMIT" envDefault:"5"`
	ScoringTimeout time.Duration `env:"SCORING_TIMEOUT" envDefault:"2s"`
}
