package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pulse-ads/internal/core/domain"
)

// testCategories returns a keyword table in slug order, the order the
// repository delivers.
func testCategories() []domain.Category {
	return []domain.Category{
		{ID: "c1", Name: "Cardiology", Slug: "cardiology", Keywords: []string{"heart", "cardiac", "chest pain", "blood pressure", "cholesterol", "artery", "stroke"}},
		{ID: "c2", Name: "Neurology", Slug: "neurology", Keywords: []string{"brain", "nerve", "headache", "migraine", "seizure", "memory"}},
		{ID: "c3", Name: "Oncology", Slug: "oncology", Keywords: []string{"cancer", "tumor", "chemotherapy", "radiation", "lymphoma"}},
		{ID: "c4", Name: "Pediatrics", Slug: "pediatrics", Keywords: []string{"child", "baby", "infant", "vaccination", "growth"}},
	}
}

func TestMatchCategory(t *testing.T) {
	cats := testCategories()

	tests := []struct {
		name     string
		question string
		want     string
	}{
		{
			name:     "multiple hits win",
			question: "What causes chest pain and high blood pressure?",
			want:     "cardiology",
		},
		{
			name:     "case insensitive",
			question: "IS CHEST PAIN DANGEROUS?",
			want:     "cardiology",
		},
		{
			name:     "strict maximum beats single hit",
			question: "My child has a headache and a migraine",
			want:     "neurology",
		},
		{
			name:     "substring match",
			question: "advice on childhood nutrition",
			want:     "pediatrics",
		},
		{
			name:     "no keywords",
			question: "how do I file my taxes",
			want:     "",
		},
		{
			name:     "empty text",
			question: "",
			want:     "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchCategory(tt.question, cats))
		})
	}
}

// A tie on the maximum hit count resolves to the category listed first,
// i.e. the lexicographically lowest slug.
func TestMatchCategoryTieBreak(t *testing.T) {
	cats := testCategories()

	got := MatchCategory("heart and brain research", cats)
	assert.Equal(t, "cardiology", got)

	// Same tie with reversed input order picks the other category: the
	// deterministic order must come from the caller.
	reversed := []domain.Category{cats[1], cats[0]}
	got = MatchCategory("heart and brain research", reversed)
	assert.Equal(t, "neurology", got)
}
