package handler

import (
	"net/http"

	"fooddash-be/internal/user"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string        `json:"token"`
	User  *user.Session `json:"user"`
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var input user.SignupInput
	if !decodeBody(w, r, &input) {
		return
	}

	token, sess, err := h.userSvc.Signup(r.Context(), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, authResponse{Token: token, User: sess})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, sess, err := h.userSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, authResponse{Token: token, User: sess})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.userSvc.Logout(r.Context()); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
