package app

import (
	"github.com/campcal/campcal/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Events
	r.HandleFunc("/api/events", deps.FilterHandler.ListEvents).Methods("GET")
	r.HandleFunc("/api/events/range/{startDate}/{endDate}", deps.EventHandler.GetEventsByDateRange).Methods("GET")
	r.HandleFunc("/api/events/type/{eventType}", deps.EventHandler.GetEventsByType).Methods("GET")
	r.HandleFunc("/api/events/{id}", deps.EventHandler.GetEvent).Methods("GET")

	// Favorites
	r.HandleFunc("/api/favorites", deps.FavoriteHandler.ListFavorites).Methods("GET")
	r.HandleFunc("/api/favorites", deps.FavoriteHandler.AddFavorite).Methods("POST")
	r.HandleFunc("/api/favorites/check/{eventId}", deps.FavoriteHandler.CheckFavorite).Methods("GET")
	r.HandleFunc("/api/favorites/{eventId}", deps.FavoriteHandler.RemoveFavorite).Methods("DELETE")

	// Calendar sync
	r.HandleFunc("/api/calendar-sync", deps.CalendarSyncHandler.UpdatePreferences).Methods("PUT")
	r.HandleFunc("/api/sync-logs", deps.CalendarSyncHandler.GetSyncLogs).Methods("GET")

	// User management
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")

	// Authentication
	r.HandleFunc("/api/auth/google/login", deps.GoogleAuth.OAuthLogin).Methods("GET")
	r.HandleFunc("/api/auth/google/callback", deps.GoogleAuth.OAuthCallback).Methods("GET")
	r.HandleFunc("/api/auth/google/logout", deps.GoogleAuth.OAuthLogout).Methods("DELETE")

	// Google integration
	r.HandleFunc("/api/integrations/google/calendars", deps.GoogleHandler.ListCalendars).Methods("GET")

	// Health probes
	r.HandleFunc("/health", deps.HealthHandler.Health).Methods("GET")
	r.HandleFunc("/health/live", deps.HealthHandler.Live).Methods("GET")
	r.HandleFunc("/health/ready", deps.HealthHandler.Ready).Methods("GET")
}
