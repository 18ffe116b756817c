package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"dfp-sync/internal/core/domain"
)

func (h *Handler) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	var req deactivateRequest
	if !h.decode(w, r, &req) {
		return
	}
	changed, err := h.svc.Deactivate(r.Context(), req.Campaign)
	if err != nil {
		h.writeError(w, "deactivate campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, deactivateResponse{Changed: changed})
}

// handleListSyncs returns the sync history of a campaign. The optional
// limit query parameter must be a positive integer; the use case clamps it.
func (h *Handler) handleListSyncs(w http.ResponseWriter, r *http.Request) {
	fullname := chi.URLParam(r, "fullname")

	var limit int
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}

	events, err := h.svc.ListSyncs(r.Context(), fullname, limit)
	if err != nil {
		h.writeError(w, "list syncs", err)
		return
	}
	if events == nil {
		events = []domain.SyncEvent{}
	}
	h.writeJSON(w, http.StatusOK, events)
}
