package httpadapter

import (
	"dfp-sync/internal/core/domain"
	"dfp-sync/internal/core/port"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

type upsertRequest struct {
	User     domain.User     `json:"user"`
	Campaign domain.Campaign `json:"campaign"`
}

type associateRequest struct {
	CreativeID int64 `json:"creative_id" validate:"required,gt=0"`
}

type deactivateRequest struct {
	Campaign domain.Campaign `json:"campaign"`
}

type deactivateResponse struct {
	Changed bool `json:"changed"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// decode reads a JSON body into dst and validates it. Any failure has
// already been written to w when false is returned.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, domain.ErrUnknownPriority) {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return false
		}
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return false
	}
	return true
}

// writeError maps a use case error onto a status code. Internal error text
// is only exposed for client and conflict errors.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	h.logger.Error(op+" error", slog.Any("error", err), slog.Int("status", status))

	msg := err.Error()
	switch status {
	case http.StatusInternalServerError:
		msg = "internal error"
	case http.StatusBadGateway:
		msg = "ad server error"
	}
	h.writeJSON(w, status, errorResponse{Error: msg})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMissingOrderOrLineItem),
		errors.Is(err, domain.ErrUnknownPriority),
		errors.Is(err, domain.ErrMissingID):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrArchivedLineItem):
		return http.StatusConflict
	case port.IsRemoteError(err), errors.Is(err, domain.ErrEmptyResult):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
