package domain

// Category groups ads by topic. Keywords drive question matching: a
// category scores one hit per keyword found in the question text. The
// company link is optional; when set, the category belongs to exactly one
// company.
type Category struct {
	ID        string
	Name      string
	Slug      string
	CompanyID *string
	Keywords  []string
}
