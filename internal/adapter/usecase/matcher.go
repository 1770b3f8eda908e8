package usecase

import (
	"strings"

	"pulse-ads/internal/core/domain"
)

// MatchCategory maps free question text to the slug of the best-matching
// category, or "" when nothing matches. Each category scores one hit per
// keyword occurring case-insensitively as a substring of the text; the
// strictly highest positive score wins. Categories are expected in slug
// order and the first strict maximum is kept, so ties resolve to the
// lexicographically lowest slug.
func MatchCategory(question string, categories []domain.Category) string {
	text := strings.ToLower(question)

	best := ""
	bestHits := 0
	for _, cat := range categories {
		hits := 0
		for _, kw := range cat.Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			best = cat.Slug
		}
	}
	return best
}
