package user

import "time"

// User identities are created and updated by the external auth provider via
// upsert keyed by Sub (the provider's subject id).
type User struct {
	Id          string
	Sub         string
	Email       string
	DisplayName string
	PhotoUrl    string
	Settings    CalendarSyncSettings
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CalendarSyncSettings struct {
	Enabled           bool
	GoogleCalendarId  string
	OutlookCalendarId string
}
