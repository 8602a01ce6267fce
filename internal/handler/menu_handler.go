package handler

import "net/http"

func (h *Handler) Menu(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	items := h.catalogSvc.Search(r.Context(), category, query)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	categories := h.catalogSvc.Categories(r.Context())

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}
