package favorite

import (
	"errors"
	"time"
)

var (
	ErrAlreadyExists = errors.New("event is already a favorite")
	ErrEventNotFound = errors.New("event not found")
)

// FavoriteEvent is a user-specific bookmark on an event, unique per
// (UserId, EventId) pair. Rows cascade-delete with either parent.
type FavoriteEvent struct {
	Id                      string
	UserId                  string
	EventId                 string
	AddedAt                 time.Time
	SyncedToCalendar        bool
	ExternalCalendarEventId string
}
