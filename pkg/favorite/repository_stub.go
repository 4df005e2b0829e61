package favorite

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/jackc/pgx/v5"
)

// RepositoryStub keeps favorites in memory. KnownEventIds mimics the event
// foreign key: when non-nil, adds for unknown events fail like the database
// constraint would.
type RepositoryStub struct {
	mu            sync.RWMutex
	favorites     map[string]FavoriteEvent // id -> favorite
	KnownEventIds map[string]bool
	nextId        int
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{favorites: make(map[string]FavoriteEvent)}
}

func (r *RepositoryStub) AddFavorite(ctx context.Context, favorite FavoriteEvent) (FavoriteEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.KnownEventIds != nil && !r.KnownEventIds[favorite.EventId] {
		return FavoriteEvent{}, ErrEventNotFound
	}
	for _, existing := range r.favorites {
		if existing.UserId == favorite.UserId && existing.EventId == favorite.EventId {
			return FavoriteEvent{}, ErrAlreadyExists
		}
	}

	r.nextId++
	favorite.Id = "favorite-" + strconv.Itoa(r.nextId)
	r.favorites[favorite.Id] = favorite
	return favorite, nil
}

func (r *RepositoryStub) RemoveFavorite(ctx context.Context, userId string, eventId string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.favorites {
		if existing.UserId == userId && existing.EventId == eventId {
			delete(r.favorites, id)
		}
	}
	return nil
}

func (r *RepositoryStub) IsFavorite(ctx context.Context, userId string, eventId string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, existing := range r.favorites {
		if existing.UserId == userId && existing.EventId == eventId {
			return true, nil
		}
	}
	return false, nil
}

func (r *RepositoryStub) GetUserFavorites(ctx context.Context, userId string) ([]FavoriteEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]FavoriteEvent, 0, len(r.favorites))
	for _, existing := range r.favorites {
		if existing.UserId == userId {
			result = append(result, existing)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].AddedAt.After(result[j].AddedAt)
	})
	return result, nil
}

func (r *RepositoryStub) UpdateSyncState(ctx context.Context, userId string, eventId string, synced bool, externalEventId string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.favorites {
		if existing.UserId == userId && existing.EventId == eventId {
			existing.SyncedToCalendar = synced
			existing.ExternalCalendarEventId = externalEventId
			r.favorites[id] = existing
			return nil
		}
	}
	return pgx.ErrNoRows
}

// Count returns the total number of stored rows, useful for test assertions.
func (r *RepositoryStub) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.favorites)
}
