package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdEligibleAt(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name string
		ad   Ad
		want bool
	}{
		{"active without window", Ad{Status: AdStatusActive}, true},
		{"active inside window", Ad{Status: AdStatusActive, StartDate: &past, EndDate: &future}, true},
		{"not started yet", Ad{Status: AdStatusActive, StartDate: &future}, false},
		{"already ended", Ad{Status: AdStatusActive, EndDate: &past}, false},
		{"paused", Ad{Status: AdStatusPaused}, false},
		{"archived", Ad{Status: AdStatusArchived, StartDate: &past, EndDate: &future}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ad.EligibleAt(now))
		})
	}
}
