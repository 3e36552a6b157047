package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/planz/planz/pkg/domain"
)

type AdminHandler struct {
	service domain.AdminService
	timeout time.Duration
}

func NewAdminHandler(service domain.AdminService, timeout time.Duration) *AdminHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &AdminHandler{
		service: service,
		timeout: timeout,
	}
}

func (h *AdminHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/admin/events", h.CreateEvent).Methods("POST")
	router.HandleFunc("/api/admin/events/{id}", h.GetEvent).Methods("GET")
	router.HandleFunc("/api/admin/events/{id}", h.UpdateEvent).Methods("PUT")
	router.HandleFunc("/api/admin/events/{id}", h.DeleteEvent).Methods("DELETE")
	router.HandleFunc("/api/app-info", h.UpdateAppInfo).Methods("PUT")
}

func (h *AdminHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var event domain.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.CreateEvent(ctx, &event)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

func (h *AdminHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	event, err := h.service.GetStoredEvent(ctx, mux.Vars(r)["id"])
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, event)
}

func (h *AdminHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var event domain.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.service.UpdateEvent(ctx, mux.Vars(r)["id"], &event)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}

func (h *AdminHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.service.DeleteEvent(ctx, mux.Vars(r)["id"]); err != nil {
		respondWithDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) UpdateAppInfo(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var info domain.AppInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.service.UpdateAppInfo(ctx, &info)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, saved)
}
