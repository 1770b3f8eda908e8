package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"pulse-ads/internal/core/port"
)

// handleReport accepts a view or click report for a previously served
// impression. Missing or unknown parameters produce HTTP 400 with a
// user-safe message; unknown impression ids are 400 as well since the id
// is caller-supplied input.
func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Type         string  `json:"type"`
		ImpressionID string  `json:"impressionId"`
		SessionID    *string `json:"sessionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if body.Type == "" {
		h.respondError(w, http.StatusBadRequest, "Missing required parameter: type")
		return
	}
	if body.ImpressionID == "" {
		h.respondError(w, http.StatusBadRequest, "Missing required parameter: impressionId")
		return
	}
	kind := port.ReportKind(body.Type)
	if kind != port.ReportView && kind != port.ReportClick {
		h.respondError(w, http.StatusBadRequest, "Invalid type parameter")
		return
	}

	if err := h.svc.Report(r.Context(), kind, body.ImpressionID, body.SessionID); err != nil {
		if errors.Is(err, port.ErrInvalidImpression) {
			h.respondError(w, http.StatusBadRequest, "Invalid impressionId")
			return
		}
		h.logger.Error("report error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{"ok": true, "impressionId": body.ImpressionID})
}
