package favorite

import (
	"context"
	"fmt"

	"github.com/campcal/campcal/internal/utils"
	"github.com/campcal/campcal/pkg/user"
)

type Service struct {
	repo  Repository
	clock utils.Clock
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, clock: utils.SystemClock{}}
}

func NewServiceWithClock(repo Repository, clock utils.Clock) *Service {
	return &Service{repo: repo, clock: clock}
}

// Add creates a favorite for the calling user. Returns ErrAlreadyExists when
// the pair already exists and ErrEventNotFound when the event id is unknown.
func (s *Service) Add(ctx context.Context, eventId string) (FavoriteEvent, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return FavoriteEvent{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.AddFavorite(ctx, FavoriteEvent{
		UserId:  userId,
		EventId: eventId,
		AddedAt: s.clock.Now(),
	})
}

// Remove deletes the calling user's favorite for the event. Idempotent:
// removing an absent favorite is not an error.
func (s *Service) Remove(ctx context.Context, eventId string) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.RemoveFavorite(ctx, userId, eventId)
}

// IsFavorite reports whether the calling user has favorited the event.
// Unauthenticated callers have no favorites; storage is not consulted.
func (s *Service) IsFavorite(ctx context.Context, eventId string) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, nil
	}
	return s.repo.IsFavorite(ctx, userId, eventId)
}

// List returns the calling user's favorites, most recently added first.
func (s *Service) List(ctx context.Context) ([]FavoriteEvent, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetUserFavorites(ctx, userId)
}

// UpdateSyncState records the external-calendar state of the calling user's
// favorite for the event.
func (s *Service) UpdateSyncState(ctx context.Context, eventId string, synced bool, externalEventId string) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.UpdateSyncState(ctx, userId, eventId, synced, externalEventId)
}
