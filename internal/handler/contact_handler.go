package handler

import (
	"net/http"

	"fooddash-be/internal/contact"
)

func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	var input contact.SubmitInput
	if !decodeBody(w, r, &input) {
		return
	}

	sub, err := h.contactSvc.Submit(r.Context(), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, sub)
}
