package calendar_sync

import (
	"context"
	"fmt"

	"github.com/campcal/campcal/internal/utils"
	"github.com/campcal/campcal/pkg/user"
	log "github.com/sirupsen/logrus"
)

// FavoriteSyncState propagates sync outcomes to the favorite rows they concern.
type FavoriteSyncState interface {
	UpdateSyncState(ctx context.Context, eventId string, synced bool, externalEventId string) error
}

type Service struct {
	repo      Repository
	users     user.Service
	favorites FavoriteSyncState
	clock     utils.Clock
}

func NewService(repo Repository, users user.Service, favorites FavoriteSyncState) *Service {
	return &Service{repo: repo, users: users, favorites: favorites, clock: utils.SystemClock{}}
}

func NewServiceWithClock(repo Repository, users user.Service, favorites FavoriteSyncState, clock utils.Clock) *Service {
	return &Service{repo: repo, users: users, favorites: favorites, clock: clock}
}

// UpdatePreferences stores the calling user's external-calendar sync settings
// and returns the updated user.
func (s *Service) UpdatePreferences(ctx context.Context, settings user.CalendarSyncSettings) (user.User, error) {
	return s.users.UpdateCalendarSync(ctx, settings)
}

// RecordAttempt appends an audit row for an attempted sync operation on behalf
// of the calling user. The log is append-only; there is no update or delete.
// Successful attempts also mark the favorite row as synced (or no longer
// synced, for removals).
func (s *Service) RecordAttempt(ctx context.Context, entry SyncLog) (SyncLog, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return SyncLog{}, fmt.Errorf("failed to get current user: %w", err)
	}
	entry.UserId = userId
	if entry.SyncedAt.IsZero() {
		entry.SyncedAt = s.clock.Now()
	}
	stored, err := s.repo.AddSyncLog(ctx, entry)
	if err != nil {
		return SyncLog{}, err
	}

	if stored.Status == StatusSuccess {
		synced := stored.Operation == OperationAdd
		externalId := ""
		if synced {
			externalId = stored.ExternalEventId
		}
		// The favorite may already be gone (removal deletes the row first).
		if err := s.favorites.UpdateSyncState(ctx, stored.EventId, synced, externalId); err != nil {
			log.Debugf("could not update favorite sync state for event %s: %v", stored.EventId, err)
		}
	}
	return stored, nil
}

// GetLogs returns the calling user's sync history, newest first.
func (s *Service) GetLogs(ctx context.Context) ([]SyncLog, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetSyncLogs(ctx, userId)
}
