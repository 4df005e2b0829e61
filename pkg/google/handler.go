package google

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campcal/campcal/internal/rest"
)

type CalendarItemDTO struct {
	ID      string `json:"id"`
	Summary string `json:"summary"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListCalendars(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	calendars, err := h.service.ListCalendars(r.Context())
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			w.WriteHeader(http.StatusUnauthorized)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error: "Google authentication required",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		http.Error(w, "Failed to list calendars", http.StatusInternalServerError)
		return
	}

	dtos := make([]CalendarItemDTO, 0, len(calendars))
	for _, c := range calendars {
		dtos = append(dtos, CalendarItemDTO{ID: c.ID, Summary: c.Summary})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
