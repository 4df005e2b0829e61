package user

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type UserDTO struct {
	Id          string          `json:"id"`
	Email       string          `json:"email,omitempty"`
	DisplayName string          `json:"displayName"`
	PhotoUrl    string          `json:"photoUrl,omitempty"`
	Settings    SyncSettingsDTO `json:"calendarSync"`
}

type SyncSettingsDTO struct {
	Enabled           bool   `json:"enabled"`
	GoogleCalendarId  string `json:"googleCalendarId,omitempty"`
	OutlookCalendarId string `json:"outlookCalendarId,omitempty"`
}

type Handler struct {
	userService Service
}

func NewHandler(userService Service) *Handler {
	return &Handler{
		userService: userService,
	}
}

func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Getting current user")

	currentUser, err := h.userService.GetCurrentUser(r.Context())
	if err != nil {
		if errors.Is(err, ErrNoUser) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if errors.Is(err, ErrUserNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ToDTO(currentUser)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func ToDTO(u User) UserDTO {
	return UserDTO{
		Id:          u.Id,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoUrl:    u.PhotoUrl,
		Settings: SyncSettingsDTO{
			Enabled:           u.Settings.Enabled,
			GoogleCalendarId:  u.Settings.GoogleCalendarId,
			OutlookCalendarId: u.Settings.OutlookCalendarId,
		},
	}
}
