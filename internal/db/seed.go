package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo categories, companies and ads. It is a no-op when
// companies already exist so repeated startups with PSQL_SEED_DEMO keep
// the data stable.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	var count int64
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM companies`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []struct {
		name     string
		slug     string
		keywords []string
	}{
		{"Cardiology", "cardiology", []string{"heart", "cardiac", "cardiovascular", "chest pain", "blood pressure", "cholesterol", "artery", "stroke"}},
		{"Neurology", "neurology", []string{"brain", "nerve", "neurological", "headache", "migraine", "seizure", "memory", "alzheimer", "parkinson"}},
		{"Oncology", "oncology", []string{"cancer", "tumor", "oncology", "chemotherapy", "radiation", "carcinoma", "lymphoma", "leukemia"}},
		{"Pediatrics", "pediatrics", []string{"child", "children", "kid", "baby", "infant", "pediatric", "vaccination", "growth", "development"}},
	}
	companies := []string{"Pfizer", "Genentech", "GSK", "Eli Lilly"}

	categoryIDs := make(map[string]string, len(categories))
	for _, c := range categories {
		id := uuid.NewString()
		categoryIDs[c.slug] = id
		_, err := pool.Exec(ctx,
			`INSERT INTO categories (id, name, slug, keywords) VALUES ($1, $2, $3, $4)`,
			id, c.name, c.slug, c.keywords)
		if err != nil {
			return err
		}
	}

	companyIDs := make(map[string]string, len(companies))
	for _, name := range companies {
		id := uuid.NewString()
		companyIDs[name] = id
		_, err := pool.Exec(ctx, `INSERT INTO companies (id, name) VALUES ($1, $2)`, id, name)
		if err != nil {
			return err
		}
	}

	// one ad per company and category pair
	now := time.Now()
	end := now.AddDate(0, 3, 0)
	budget := 10000.0
	spendCap := 1000.0
	for _, company := range companies {
		for _, c := range categories {
			slugLabel := strings.ReplaceAll(company, " ", "+") + "+" + c.name
			_, err := pool.Exec(ctx, `INSERT INTO ads
    (id, company_id, category_id, status, headline, image_url, cta_text, cta_url, budget, spend_cap, start_date, end_date)
VALUES ($1, $2, $3, 'active', $4, $5, 'Learn More', $6, $7, $8, $9, $10)`,
				uuid.NewString(),
				companyIDs[company],
				categoryIDs[c.slug],
				fmt.Sprintf("%s %s Innovation", company, c.name),
				fmt.Sprintf("https://placehold.co/600x200/EEE/31343C.png?text=%s", slugLabel),
				fmt.Sprintf("https://example.com/%s/%s", strings.ToLower(strings.ReplaceAll(company, " ", "-")), c.slug),
				budget, spendCap, now, end)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
