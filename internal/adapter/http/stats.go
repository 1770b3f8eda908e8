package httpadapter

import (
	"log/slog"
	"net/http"
)

// handleStatsSummary returns impression and click totals grouped by
// company and category, derived from the impression ledger.
func (h *Handler) handleStatsSummary(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.SummaryStats(r.Context())
	if err != nil {
		h.logger.Error("summary stats error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.respondJSON(w, http.StatusOK, rows)
}

// handleStatsDaily returns per-day impression and click totals for one
// company's ads, date ascending. The companyId query parameter is
// required.
func (h *Handler) handleStatsDaily(w http.ResponseWriter, r *http.Request) {
	companyID := r.URL.Query().Get("companyId")
	if companyID == "" {
		h.respondError(w, http.StatusBadRequest, "Company ID is required")
		return
	}
	rows, err := h.svc.DailyStats(r.Context(), companyID)
	if err != nil {
		h.logger.Error("daily stats error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.respondJSON(w, http.StatusOK, rows)
}
