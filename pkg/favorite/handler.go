package favorite

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/campcal/campcal/internal/rest"
	"github.com/campcal/campcal/pkg/user"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type FavoriteEventDTO struct {
	Id                      string    `json:"id"`
	UserId                  string    `json:"userId"`
	EventId                 string    `json:"eventId"`
	AddedAt                 time.Time `json:"addedAt"`
	SyncedToCalendar        bool      `json:"syncedToCalendar"`
	ExternalCalendarEventId string    `json:"externalCalendarEventId,omitempty"`
}

type addFavoriteRequest struct {
	EventId string `json:"eventId"`
}

type isFavoriteResponse struct {
	IsFavorite bool `json:"isFavorite"`
}

type Handler struct {
	favorites *Service
}

func NewHandler(favorites *Service) *Handler {
	return &Handler{favorites: favorites}
}

func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !requireUser(w, r) {
		return
	}

	favorites, err := h.favorites.List(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch favorites", http.StatusInternalServerError)
		return
	}

	dtos := make([]FavoriteEventDTO, 0, len(favorites))
	for _, f := range favorites {
		dtos = append(dtos, favoriteToDTO(f))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !requireUser(w, r) {
		return
	}

	var req addFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}
	if req.EventId == "" {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "eventId is required",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	created, err := h.favorites.Add(r.Context(), req.EventId)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			w.WriteHeader(http.StatusConflict)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error: "Event is already a favorite",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
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
		http.Error(w, "Failed to add favorite", http.StatusInternalServerError)
		return
	}
	log.Tracef("Added favorite %s for event %s", created.Id, created.EventId)

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(favoriteToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !requireUser(w, r) {
		return
	}

	vars := mux.Vars(r)
	if err := h.favorites.Remove(r.Context(), vars["eventId"]); err != nil {
		http.Error(w, "Failed to remove favorite", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CheckFavorite(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !requireUser(w, r) {
		return
	}

	vars := mux.Vars(r)
	isFavorite, err := h.favorites.IsFavorite(r.Context(), vars["eventId"])
	if err != nil {
		http.Error(w, "Failed to check favorite", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(isFavoriteResponse{IsFavorite: isFavorite}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func requireUser(w http.ResponseWriter, r *http.Request) bool {
	if _, err := user.CurrentId(r.Context()); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Authentication required",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return false
	}
	return true
}

func favoriteToDTO(f FavoriteEvent) FavoriteEventDTO {
	return FavoriteEventDTO{
		Id:                      f.Id,
		UserId:                  f.UserId,
		EventId:                 f.EventId,
		AddedAt:                 f.AddedAt,
		SyncedToCalendar:        f.SyncedToCalendar,
		ExternalCalendarEventId: f.ExternalCalendarEventId,
	}
}
