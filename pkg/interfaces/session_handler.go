package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/planz/planz/pkg/domain"
)

type SessionHandler struct {
	service domain.SessionService
	timeout time.Duration
}

func NewSessionHandler(service domain.SessionService, timeout time.Duration) *SessionHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SessionHandler{
		service: service,
		timeout: timeout,
	}
}

func (h *SessionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/sessions", h.OpenSession).Methods("POST")
	router.HandleFunc("/api/sessions/{id}", h.CloseSession).Methods("DELETE")
	router.HandleFunc("/api/sessions/{id}/events", h.GetEvents).Methods("GET")
	router.HandleFunc("/api/sessions/{id}/filters", h.ClearFilters).Methods("DELETE")
	router.HandleFunc("/api/sessions/{id}/filters/{dimension}", h.SetFilter).Methods("PUT")
}

type sessionResponse struct {
	ID      string             `json:"id"`
	Filters domain.FilterState `json:"filters"`
}

type setFilterRequest struct {
	Value *string `json:"value"`
}

func (h *SessionHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, state, err := h.service.OpenSession(ctx)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, sessionResponse{ID: id, Filters: state})
}

func (h *SessionHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	response, err := h.service.SessionEvents(ctx, mux.Vars(r)["id"])
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, response)
}

// SetFilter replaces one dimension. The body is {"value": "..."}; "all"
// or an empty string clears that dimension.
func (h *SessionHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	vars := mux.Vars(r)

	var req setFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Value == nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.service.SetFilter(ctx, vars["id"], domain.Dimension(vars["dimension"]), *req.Value)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, sessionResponse{ID: vars["id"], Filters: state})
}

func (h *SessionHandler) ClearFilters(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id := mux.Vars(r)["id"]
	state, err := h.service.ClearFilters(ctx, id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, sessionResponse{ID: id, Filters: state})
}

func (h *SessionHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.service.CloseSession(ctx, mux.Vars(r)["id"]); err != nil {
		respondWithDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
