package usecase

import (
	"context"
	"fmt"
	"time"

	"pulse-ads/internal/core/port"
)

// Report applies a view or click report to an impression and recomputes
// the owning ad's metrics row for today. Because the row is always derived
// fresh from impression rows, repeating or reordering reports converges to
// the same aggregate.
func (s *AdService) Report(ctx context.Context, kind port.ReportKind, impressionID string, sessionID *string) error {
	imp, err := s.repo.FindImpression(ctx, impressionID)
	if err != nil {
		return fmt.Errorf("find impression: %w", err)
	}
	if imp == nil {
		return port.ErrInvalidImpression
	}

	day := dayOf(s.now())
	switch kind {
	case port.ReportView:
		if err = s.repo.RecordView(ctx, impressionID, sessionID, day); err != nil {
			return fmt.Errorf("record view: %w", err)
		}
	case port.ReportClick:
		if err = s.repo.RecordClick(ctx, impressionID, day); err != nil {
			return fmt.Errorf("record click: %w", err)
		}
	default:
		return fmt.Errorf("unknown report kind %q", kind)
	}
	return nil
}

// SummaryStats returns impression and click totals per (company, category).
func (s *AdService) SummaryStats(ctx context.Context) ([]port.SummaryRow, error) {
	return s.repo.SummaryStats(ctx)
}

// DailyStats returns per-day impression and click totals for one company.
func (s *AdService) DailyStats(ctx context.Context, companyID string) ([]port.DailyRow, error) {
	return s.repo.DailyStats(ctx, companyID)
}

// dayOf truncates t to its UTC calendar day.
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
