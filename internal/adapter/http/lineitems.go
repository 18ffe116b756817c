package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"dfp-sync/internal/core/domain"
)

// handleUpsert creates or updates the line item of a campaign. It returns
// the remote line item as JSON. An archived line item results in HTTP 409.
func (h *Handler) handleUpsert(w http.ResponseWriter, r *http.Request) {
	var req upsertRequest
	if !h.decode(w, r, &req) {
		return
	}
	lineItem, err := h.svc.UpsertLineItem(r.Context(), req.User, req.Campaign)
	if err != nil {
		h.writeError(w, "upsert lineitem", err)
		return
	}
	h.writeJSON(w, http.StatusOK, lineItem)
}

// handleAssociate links the {id} line item to a creative.
func (h *Handler) handleAssociate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid lineitem id"})
		return
	}
	var req associateRequest
	if !h.decode(w, r, &req) {
		return
	}

	association, err := h.svc.AssociateWithCreative(r.Context(),
		domain.Record{"id": id},
		domain.Record{"id": req.CreativeID},
	)
	if err != nil {
		h.writeError(w, "associate creative", err)
		return
	}
	h.writeJSON(w, http.StatusOK, association)
}
