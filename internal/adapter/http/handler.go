package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"dfp-sync/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP
// that exposes the line item synchronization operations. Routes are
// registered on a chi.Router for convenient method handling.
type Handler struct {
	svc      port.LineItemUseCase
	logger   *slog.Logger
	validate *validator.Validate
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. Extra
// endpoints such as /metrics are mounted by the caller on Router().
func NewHandler(svc port.LineItemUseCase, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		svc:      svc,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/lineitems/upsert", h.handleUpsert)
		r.Post("/lineitems/{id}/creatives", h.handleAssociate)
		r.Post("/campaigns/deactivate", h.handleDeactivate)
		r.Get("/campaigns/{fullname}/syncs", h.handleListSyncs)
	})
	h.router = r
	return h
}

// Router returns the underlying chi.Router.
func (h *Handler) Router() chi.Router {
	return h.router
}

// ServeHTTP lets the handler be used directly as an http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}
