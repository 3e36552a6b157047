package interfaces

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/planz/planz/pkg/domain"
)

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithDomainError maps service errors to status codes. Anything
// unrecognized is reported as a 500 without leaking its message.
func respondWithDomainError(w http.ResponseWriter, err error) {
	var verr domain.ValidationError
	switch {
	case errors.As(err, &verr):
		respondWithError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrUnknownDimension):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrEventNotFound):
		respondWithError(w, http.StatusNotFound, "event not found")
	case errors.Is(err, domain.ErrSessionNotFound):
		respondWithError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, domain.ErrAppInfoNotFound):
		respondWithError(w, http.StatusNotFound, "app info not found")
	case errors.Is(err, domain.ErrDuplicateEvent):
		respondWithError(w, http.StatusConflict, "event already exists")
	case errors.Is(err, domain.ErrCatalogNotReady):
		respondWithError(w, http.StatusServiceUnavailable, "catalog not loaded")
	default:
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
