package favorite

import (
	"context"
	"testing"
	"time"

	"github.com/campcal/campcal/internal/test_utils"
	"github.com/campcal/campcal/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Add(t *testing.T) {
	ctx := test_utils.ContextWithTestUser(context.Background())
	now := time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)

	t.Run("adds a favorite for the current user", func(t *testing.T) {
		repo := NewRepositoryStub()
		service := NewServiceWithClock(repo, &utils.MockClock{FixedNow: now})

		created, err := service.Add(ctx, "event-1")
		require.NoError(t, err)

		assert.Equal(t, test_utils.TestUser.Id, created.UserId)
		assert.Equal(t, "event-1", created.EventId)
		assert.Equal(t, now, created.AddedAt)
		assert.NotEmpty(t, created.Id)

		isFavorite, err := service.IsFavorite(ctx, "event-1")
		require.NoError(t, err)
		assert.True(t, isFavorite)
	})

	t.Run("adding the same event twice fails and keeps one row", func(t *testing.T) {
		repo := NewRepositoryStub()
		service := NewServiceWithClock(repo, &utils.MockClock{FixedNow: now})

		_, err := service.Add(ctx, "event-1")
		require.NoError(t, err)
		_, err = service.Add(ctx, "event-1")
		assert.ErrorIs(t, err, ErrAlreadyExists)
		assert.Equal(t, 1, repo.Count())
	})

	t.Run("unknown event id fails", func(t *testing.T) {
		repo := NewRepositoryStub()
		repo.KnownEventIds = map[string]bool{"event-1": true}
		service := NewServiceWithClock(repo, &utils.MockClock{FixedNow: now})

		_, err := service.Add(ctx, "missing-event")
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("unauthenticated caller is rejected", func(t *testing.T) {
		service := NewService(NewRepositoryStub())

		_, err := service.Add(context.Background(), "event-1")
		assert.Error(t, err)
	})
}

func TestService_Remove(t *testing.T) {
	ctx := test_utils.ContextWithTestUser(context.Background())

	t.Run("removes an existing favorite", func(t *testing.T) {
		repo := NewRepositoryStub()
		service := NewService(repo)

		_, err := service.Add(ctx, "event-1")
		require.NoError(t, err)

		require.NoError(t, service.Remove(ctx, "event-1"))

		isFavorite, err := service.IsFavorite(ctx, "event-1")
		require.NoError(t, err)
		assert.False(t, isFavorite)
	})

	t.Run("removing an absent favorite is not an error", func(t *testing.T) {
		service := NewService(NewRepositoryStub())

		assert.NoError(t, service.Remove(ctx, "never-added"))
	})
}

func TestService_IsFavorite_Unauthenticated(t *testing.T) {
	service := NewService(NewRepositoryStub())

	isFavorite, err := service.IsFavorite(context.Background(), "event-1")

	assert.NoError(t, err)
	assert.False(t, isFavorite)
}

func TestService_List(t *testing.T) {
	ctx := test_utils.ContextWithTestUser(context.Background())
	repo := NewRepositoryStub()

	first := time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	clock := &utils.MockClock{FixedNow: first}
	service := NewServiceWithClock(repo, clock)

	_, err := service.Add(ctx, "event-1")
	require.NoError(t, err)
	clock.FixedNow = second
	_, err = service.Add(ctx, "event-2")
	require.NoError(t, err)

	favorites, err := service.List(ctx)
	require.NoError(t, err)

	// Most recently added first
	require.Len(t, favorites, 2)
	assert.Equal(t, "event-2", favorites[0].EventId)
	assert.Equal(t, "event-1", favorites[1].EventId)
}
