package calendar_sync

import "time"

// Operations and providers recorded in the sync audit trail.
const (
	OperationAdd    = "add"
	OperationRemove = "remove"

	ProviderGoogle  = "google"
	ProviderOutlook = "outlook"

	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusPending = "pending"
)

// SyncLog is one append-only audit row per attempted calendar-sync operation.
// Rows are never mutated, only inserted and read back newest first.
type SyncLog struct {
	Id              string
	UserId          string
	EventId         string
	Operation       string
	Provider        string
	Status          string
	ExternalEventId string
	ErrorMessage    string
	SyncedAt        time.Time
}
