package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type addToCartRequest struct {
	ID       int `json:"id"`
	Quantity int `json:"qty"`
}

func (h *Handler) Cart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"items":   h.cartSvc.Items(ctx),
		"pricing": h.cartSvc.Quote(ctx),
	})
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	line, err := h.cartSvc.Add(r.Context(), req.ID, req.Quantity)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, line)
}

func (h *Handler) IncrementItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	if err := h.cartSvc.Increment(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DecrementItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	if err := h.cartSvc.Decrement(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	if err := h.cartSvc.Remove(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func itemID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid item id")
		return 0, false
	}
	return id, true
}
