package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"pulse-ads/internal/core/domain"
	"pulse-ads/internal/core/port"
)

// DB is the subset of pgxpool.Pool the repository uses. Tests substitute
// it to drive the transaction path without a database.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// AdRepository implements port.AdRepository using pgx for PostgreSQL.
type AdRepository struct {
	pool DB
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool DB) *AdRepository {
	return &AdRepository{pool: pool}
}

// ListCategories returns all categories with their keywords, ordered by
// slug so the matcher's tie-break is stable.
func (r *AdRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, slug, company_id, keywords FROM categories ORDER BY slug`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Category, error) {
		var c domain.Category
		err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.CompanyID, &c.Keywords)
		return c, err
	})
}

// ListEligibleAds returns eligible ads with category and company display
// data. The ORDER BY on the ad id keeps the candidate order deterministic,
// which the stable-sort selector relies on.
func (r *AdRepository) ListEligibleAds(ctx context.Context, categorySlug string, limit int) ([]port.Candidate, error) {
	query := `
        SELECT
            a.id, a.company_id, a.category_id, a.status, a.headline,
            a.image_url, a.cta_text, a.cta_url, a.budget, a.spend_cap,
            a.start_date, a.end_date, a.created_at, a.updated_at,
            c.slug, c.name, co.name
        FROM ads a
        JOIN categories c ON a.category_id = c.id
        JOIN companies co ON a.company_id = co.id
        WHERE a.status = 'active'
          AND (a.start_date IS NULL OR a.start_date <= now())
          AND (a.end_date IS NULL OR a.end_date >= now())`
	var args []any
	if categorySlug != "" {
		args = append(args, categorySlug)
		query += fmt.Sprintf(" AND c.slug = $%d", len(args))
	}
	query += " ORDER BY a.id"
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.Candidate, error) {
		var c port.Candidate
		err := row.Scan(
			&c.Ad.ID,
			&c.Ad.CompanyID,
			&c.Ad.CategoryID,
			&c.Ad.Status,
			&c.Ad.Headline,
			&c.Ad.ImageURL,
			&c.Ad.CTAText,
			&c.Ad.CTAURL,
			&c.Ad.Budget,
			&c.Ad.SpendCap,
			&c.Ad.StartDate,
			&c.Ad.EndDate,
			&c.Ad.CreatedAt,
			&c.Ad.UpdatedAt,
			&c.CategorySlug,
			&c.CategoryName,
			&c.CompanyName,
		)
		return c, err
	})
}

// AdSignals reads one ad's scoring inputs: CTR sums over metrics rows
// dated on or after since, the most recent impression time, and the
// all-time spend sum.
func (r *AdRepository) AdSignals(ctx context.Context, adID string, since time.Time) (port.Signals, error) {
	var sig port.Signals
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(sum(impressions), 0), COALESCE(sum(clicks), 0) FROM ad_metrics WHERE ad_id = $1 AND date >= $2::date`,
		adID, since).Scan(&sig.Impressions, &sig.Clicks)
	if err != nil {
		return sig, err
	}
	err = r.pool.QueryRow(ctx, `SELECT max(created_at) FROM impressions WHERE ad_id = $1`, adID).Scan(&sig.LastShownAt)
	if err != nil {
		return sig, err
	}
	err = r.pool.QueryRow(ctx, `SELECT COALESCE(sum(spend), 0) FROM ad_metrics WHERE ad_id = $1`, adID).Scan(&sig.TotalSpend)
	return sig, err
}

// CreateImpression inserts a new impression with an explicit created_at.
func (r *AdRepository) CreateImpression(ctx context.Context, imp *domain.Impression) error {
	imp.CreatedAt = time.Now().UTC()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO impressions (id, ad_id, question, session_id, user_id, clicked, created_at) VALUES ($1, $2, $3, $4, $5, false, $6)`,
		imp.ID, imp.AdID, imp.Question, imp.SessionID, imp.UserID, imp.CreatedAt)
	return err
}

// FindImpression returns the impression by id, or nil when absent.
func (r *AdRepository) FindImpression(ctx context.Context, id string) (*domain.Impression, error) {
	var imp domain.Impression
	err := r.pool.QueryRow(ctx,
		`SELECT id, ad_id, question, session_id, user_id, clicked, created_at FROM impressions WHERE id = $1`, id).
		Scan(&imp.ID, &imp.AdID, &imp.Question, &imp.SessionID, &imp.UserID, &imp.Clicked, &imp.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &imp, nil
}

// RecordView attaches the session id (when provided) and recomputes the
// ad's metrics row for day in the same transaction.
func (r *AdRepository) RecordView(ctx context.Context, impressionID string, sessionID *string, day time.Time) error {
	return r.report(ctx, day, func(tx pgx.Tx) (string, error) {
		var adID string
		if sessionID != nil {
			err := tx.QueryRow(ctx,
				`UPDATE impressions SET session_id = $2 WHERE id = $1 RETURNING ad_id`,
				impressionID, *sessionID).Scan(&adID)
			return adID, err
		}
		err := tx.QueryRow(ctx, `SELECT ad_id FROM impressions WHERE id = $1`, impressionID).Scan(&adID)
		return adID, err
	})
}

// RecordClick flips the impression's clicked flag and recomputes the ad's
// metrics row for day in the same transaction. The flag only ever moves to
// true, so repeated clicks are no-ops.
func (r *AdRepository) RecordClick(ctx context.Context, impressionID string, day time.Time) error {
	return r.report(ctx, day, func(tx pgx.Tx) (string, error) {
		var adID string
		err := tx.QueryRow(ctx,
			`UPDATE impressions SET clicked = true WHERE id = $1 RETURNING ad_id`,
			impressionID).Scan(&adID)
		return adID, err
	})
}

// report runs the impression mutation and the daily metrics recompute in
// one serializable transaction, so concurrent reports for the same
// (ad, day) key cannot leave a stale aggregate behind.
func (r *AdRepository) report(ctx context.Context, day time.Time, mutate func(pgx.Tx) (string, error)) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		// Under serializable isolation a conflict between concurrent
		// reports may only surface at COMMIT, so its result must reach
		// the caller: a failed commit means the mutation did not persist.
		err = tx.Commit(ctx)
	}()
	adID, err := mutate(tx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = port.ErrInvalidImpression
		}
		return err
	}
	err = recomputeDailyMetrics(ctx, tx, adID, day)
	return err
}

// recomputeDailyMetrics rebuilds the (adID, day) metrics row from the
// impression rows of that day. Counts are always derived from source
// rather than incremented, which makes the upsert idempotent under
// duplicated or reordered reports. Spend is left untouched.
func recomputeDailyMetrics(ctx context.Context, tx pgx.Tx, adID string, day time.Time) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO ad_metrics (ad_id, date, impressions, clicks, ctr)
        SELECT $1, $2::date,
               count(*),
               count(*) FILTER (WHERE clicked),
               CASE WHEN count(*) > 0
                    THEN count(*) FILTER (WHERE clicked)::float8 / count(*)
                    ELSE 0 END
        FROM impressions
        WHERE ad_id = $1 AND created_at >= $3 AND created_at < $4
        ON CONFLICT (ad_id, date) DO UPDATE SET
            impressions = EXCLUDED.impressions,
            clicks = EXCLUDED.clicks,
            ctr = EXCLUDED.ctr`,
		adID, day, day, day.Add(24*time.Hour))
	return err
}

// SummaryStats aggregates all impressions per (company, category).
func (r *AdRepository) SummaryStats(ctx context.Context) ([]port.SummaryRow, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT co.name, c.name, count(*), count(*) FILTER (WHERE i.clicked)
        FROM impressions i
        JOIN ads a ON i.ad_id = a.id
        JOIN companies co ON a.company_id = co.id
        JOIN categories c ON a.category_id = c.id
        GROUP BY co.id, co.name, c.id, c.name
        ORDER BY co.name, c.name`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.SummaryRow, error) {
		var s port.SummaryRow
		err := row.Scan(&s.Company, &s.Category, &s.Impressions, &s.Clicks)
		return s, err
	})
}

// DailyStats aggregates one company's impressions per calendar day.
func (r *AdRepository) DailyStats(ctx context.Context, companyID string) ([]port.DailyRow, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT date_trunc('day', i.created_at)::date AS day, count(*), count(*) FILTER (WHERE i.clicked)
        FROM impressions i
        JOIN ads a ON i.ad_id = a.id
        WHERE a.company_id = $1
        GROUP BY day
        ORDER BY day`, companyID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.DailyRow, error) {
		var (
			d   port.DailyRow
			day time.Time
		)
		err := row.Scan(&day, &d.Impressions, &d.Clicks)
		d.Date = day.Format("2006-01-02")
		return d, err
	})
}
