package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopflow/storefront/internal/modules/catalog"
)

// Handler exposes order HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Post("/", h.submitOrder)   // POST /api/v1/orders
		r.Get("/{id}", h.getOrder)   // GET  /api/v1/orders/{id}
	})
}

func (h *Handler) submitOrder(w http.ResponseWriter, r *http.Request) {
	var req SubmitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	o, err := h.service.SubmitOrder(r.Context(), req)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			respond(w, http.StatusBadRequest, map[string]interface{}{"errors": vErr.Fields})
		case errors.Is(err, ErrEmptyCart), errors.Is(err, catalog.ErrNotFound):
			respond(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		default:
			respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}
	respond(w, http.StatusCreated, o)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	o, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, o)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
