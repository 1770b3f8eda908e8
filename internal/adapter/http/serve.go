package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"pulse-ads/internal/core/port"
)

// handleServeAd selects an ad for the question in the JSON body. An empty
// body is allowed and behaves like an empty question. On success it
// returns the creative and its impression id; when no eligible ad exists
// it returns HTTP 404. Parsing errors produce HTTP 400, internal errors
// HTTP 500.
func (h *Handler) handleServeAd(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Question  string `json:"question"`
		SessionID string `json:"sessionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		h.respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	h.serveAd(w, r, port.AdRequest{Question: body.Question, SessionID: body.SessionID})
}

// handleServeAdQuery is the GET variant of ad selection; question and
// sessionId arrive as query parameters.
func (h *Handler) handleServeAdQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.serveAd(w, r, port.AdRequest{Question: q.Get("question"), SessionID: q.Get("sessionId")})
}

func (h *Handler) serveAd(w http.ResponseWriter, r *http.Request, req port.AdRequest) {
	resp, err := h.svc.ServeAd(r.Context(), req)
	if err != nil {
		if errors.Is(err, port.ErrNoActiveAds) {
			h.respondError(w, http.StatusNotFound, "No active ads available")
			return
		}
		h.logger.Error("serve ad error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.respondJSON(w, http.StatusOK, resp)
}
