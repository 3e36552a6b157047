package interfaces

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/planz/planz/pkg/domain"
)

type EventHandler struct {
	service domain.EventService
	timeout time.Duration
}

func NewEventHandler(service domain.EventService, timeout time.Duration) *EventHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &EventHandler{
		service: service,
		timeout: timeout,
	}
}

func (h *EventHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/events", h.SearchEvents).Methods("GET")
	router.HandleFunc("/api/events/{id}", h.GetEvent).Methods("GET")
	router.HandleFunc("/api/filters", h.GetFilterOptions).Methods("GET")
	router.HandleFunc("/api/app-info", h.GetAppInfo).Methods("GET")
	router.HandleFunc("/api/admin/stats", h.GetAdminStats).Methods("GET")
}

// SearchEvents filters the catalog by the q, category, location,
// dateRange and priceRange query parameters. Absent parameters mean "all".
func (h *EventHandler) SearchEvents(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	response, err := h.service.SearchEvents(ctx, filterStateFromQuery(r))
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, response)
}

func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	vars := mux.Vars(r)
	id := vars["id"]

	event, err := h.service.GetEvent(ctx, id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, event)
}

func (h *EventHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.FilterOptions())
}

func (h *EventHandler) GetAppInfo(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	info, err := h.service.AppInfo(ctx)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, info)
}

func (h *EventHandler) GetAdminStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	stats, err := h.service.AdminStats(ctx)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}

func filterStateFromQuery(r *http.Request) domain.FilterState {
	q := r.URL.Query()
	state := domain.NewFilterState()
	state.SearchQuery = q.Get("q")

	if v := q.Get(string(domain.DimensionCategory)); v != "" {
		state.Category = domain.Category(v)
	}
	if v := q.Get(string(domain.DimensionLocation)); v != "" {
		state.Location = domain.Zone(v)
	}
	if v := q.Get(string(domain.DimensionDateRange)); v != "" {
		state.DateRange = domain.DateRange(v)
	}
	if v := q.Get(string(domain.DimensionPriceRange)); v != "" {
		state.PriceRange = domain.PriceRange(v)
	}
	return state
}
