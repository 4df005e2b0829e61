package calendar_sync

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/campcal/campcal/internal/rest"
	"github.com/campcal/campcal/pkg/user"
	log "github.com/sirupsen/logrus"
)

type SyncLogDTO struct {
	Id              string    `json:"id"`
	UserId          string    `json:"userId"`
	EventId         string    `json:"eventId"`
	Operation       string    `json:"operation"`
	Provider        string    `json:"provider"`
	Status          string    `json:"status"`
	ExternalEventId string    `json:"externalEventId,omitempty"`
	ErrorMessage    string    `json:"errorMessage,omitempty"`
	SyncedAt        time.Time `json:"syncedAt"`
}

type updatePreferencesRequest struct {
	Enabled           bool   `json:"enabled"`
	GoogleCalendarId  string `json:"googleCalendarId,omitempty"`
	OutlookCalendarId string `json:"outlookCalendarId,omitempty"`
}

type Handler struct {
	sync *Service
}

func NewHandler(sync *Service) *Handler {
	return &Handler{sync: sync}
}

func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !requireUser(w, r) {
		return
	}

	var req updatePreferencesRequest
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

	updated, err := h.sync.UpdatePreferences(r.Context(), user.CalendarSyncSettings{
		Enabled:           req.Enabled,
		GoogleCalendarId:  req.GoogleCalendarId,
		OutlookCalendarId: req.OutlookCalendarId,
	})
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update calendar sync settings", http.StatusInternalServerError)
		return
	}
	log.Tracef("Updated calendar sync settings for user %s", updated.Id)

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(user.ToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetSyncLogs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !requireUser(w, r) {
		return
	}

	logs, err := h.sync.GetLogs(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch sync logs", http.StatusInternalServerError)
		return
	}

	dtos := make([]SyncLogDTO, 0, len(logs))
	for _, entry := range logs {
		dtos = append(dtos, syncLogToDTO(entry))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
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

func syncLogToDTO(entry SyncLog) SyncLogDTO {
	return SyncLogDTO{
		Id:              entry.Id,
		UserId:          entry.UserId,
		EventId:         entry.EventId,
		Operation:       entry.Operation,
		Provider:        entry.Provider,
		Status:          entry.Status,
		ExternalEventId: entry.ExternalEventId,
		ErrorMessage:    entry.ErrorMessage,
		SyncedAt:        entry.SyncedAt,
	}
}
