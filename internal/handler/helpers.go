package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"fooddash-be/internal/cart"
	"fooddash-be/internal/logger"
	"fooddash-be/internal/order"
	"fooddash-be/internal/user"
	"fooddash-be/internal/validate"

	"go.uber.org/zap"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.L().Error("failed to marshal response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to marshal response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondServiceError turns service errors into HTTP responses.
// Validation failures carry their per-field messages through.
func respondServiceError(w http.ResponseWriter, err error) {
	var fieldErrs validate.FieldErrors
	if errors.As(err, &fieldErrs) {
		respondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": fieldErrs,
		})
		return
	}
	respondWithError(w, mapErrorToStatusCode(err), err.Error())
}

func mapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, user.ErrEmailExists):
		return http.StatusConflict
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, order.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, order.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, cart.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, cart.ErrInvalidQuantity), errors.Is(err, order.ErrEmptyCart):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
