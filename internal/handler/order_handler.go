package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fooddash-be/internal/invoice"
	"fooddash-be/internal/middleware"
	"fooddash-be/internal/order"
)

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var address order.Address
	if !decodeBody(w, r, &address) {
		return
	}

	sess := middleware.SessionFrom(r.Context())

	o, err := h.orderSvc.PlaceOrder(r.Context(), sess, address)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, o)
}

func (h *Handler) Orders(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	orders, err := h.orderSvc.ListOrders(r.Context(), sess.Email)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	sess := middleware.SessionFrom(r.Context())

	if err := h.orderSvc.CancelOrder(r.Context(), sess.Email, id); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Invoice(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	sess := middleware.SessionFrom(r.Context())

	o, err := h.orderSvc.GetOrder(r.Context(), sess.Email, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	pdf, err := invoice.Render(o)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice-%d.pdf"`, o.ID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func orderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid order id")
		return 0, false
	}
	return id, true
}
