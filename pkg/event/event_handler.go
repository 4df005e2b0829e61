package event

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/campcal/campcal/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type EventDTO struct {
	Id             string             `json:"id"`
	Title          string             `json:"title"`
	StartDate      string             `json:"startDate"`
	EndDate        string             `json:"endDate"`
	EventType      string             `json:"eventType"`
	Description    string             `json:"description,omitempty"`
	AgeGroup       string             `json:"ageGroup"`
	AgeMin         int                `json:"ageMin"`
	AgeMax         *int               `json:"ageMax,omitempty"`
	Gender         string             `json:"gender,omitempty"`
	Location       string             `json:"location"`
	PricingOptions []PricingOptionDTO `json:"pricingOptions"`
}

type PricingOptionDTO struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

type Handler struct {
	events Service
}

func NewHandler(events Service) *Handler {
	return &Handler{events: events}
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	id := vars["id"]
	log.Tracef("Getting event %s", id)

	event, err := h.events.GetEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			w.WriteHeader(http.StatusNotFound)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error: "Event not found",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		http.Error(w, "Failed to fetch event", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ToDTO(event)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetEventsByDateRange(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	from, err := time.Parse(DateFormat, vars["startDate"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid startDate format",
			Details: "startDate must be formatted as YYYY-MM-DD",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}
	to, err := time.Parse(DateFormat, vars["endDate"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid endDate format",
			Details: "endDate must be formatted as YYYY-MM-DD",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	events, err := h.events.GetEventsByDateRange(r.Context(), from, to)
	if err != nil {
		http.Error(w, "Failed to fetch events by date range", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ToDTOs(events)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetEventsByType(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	events, err := h.events.GetEventsByType(r.Context(), vars["eventType"])
	if err != nil {
		http.Error(w, "Failed to fetch events by type", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ToDTOs(events)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func ToDTO(e Event) EventDTO {
	pricing := make([]PricingOptionDTO, 0, len(e.PricingOptions))
	for _, p := range e.PricingOptions {
		pricing = append(pricing, PricingOptionDTO{
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Description,
		})
	}
	return EventDTO{
		Id:             e.Id,
		Title:          e.Title,
		StartDate:      e.StartDate.Format(DateFormat),
		EndDate:        e.EndDate.Format(DateFormat),
		EventType:      e.EventType,
		Description:    e.Description,
		AgeGroup:       e.AgeGroup,
		AgeMin:         e.AgeMin,
		AgeMax:         e.AgeMax,
		Gender:         e.Gender,
		Location:       e.Location,
		PricingOptions: pricing,
	}
}

func ToDTOs(events []Event) []EventDTO {
	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, ToDTO(e))
	}
	return dtos
}
