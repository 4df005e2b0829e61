package calendar_sync

import (
	"context"
	"testing"
	"time"

	"github.com/campcal/campcal/internal/test_utils"
	"github.com/campcal/campcal/internal/utils"
	"github.com/campcal/campcal/pkg/favorite"
	"github.com/campcal/campcal/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(repo *RepositoryStub, clock utils.Clock) *Service {
	return newTestServiceWithFavorites(repo, favorite.NewService(favorite.NewRepositoryStub()), clock)
}

func newTestServiceWithFavorites(repo *RepositoryStub, favorites *favorite.Service, clock utils.Clock) *Service {
	userRepo := user.NewStubUserRepo()
	userRepo.Users[test_utils.TestUser.Id] = test_utils.TestUser
	return NewServiceWithClock(repo, user.NewUserService(userRepo), favorites, clock)
}

func TestService_RecordAttempt(t *testing.T) {
	ctx := test_utils.ContextWithTestUser(context.Background())
	now := time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)

	t.Run("stamps user id and time from the clock", func(t *testing.T) {
		repo := NewRepositoryStub()
		service := newTestService(repo, &utils.MockClock{FixedNow: now})

		entry, err := service.RecordAttempt(ctx, SyncLog{
			EventId:   "event-1",
			Operation: OperationAdd,
			Provider:  ProviderGoogle,
			Status:    StatusSuccess,
		})
		require.NoError(t, err)

		assert.Equal(t, test_utils.TestUser.Id, entry.UserId)
		assert.Equal(t, now, entry.SyncedAt)
		assert.NotEmpty(t, entry.Id)
	})

	t.Run("keeps an explicit timestamp", func(t *testing.T) {
		repo := NewRepositoryStub()
		service := newTestService(repo, &utils.MockClock{FixedNow: now})

		explicit := now.Add(-2 * time.Hour)
		entry, err := service.RecordAttempt(ctx, SyncLog{
			EventId:   "event-1",
			Operation: OperationRemove,
			Provider:  ProviderGoogle,
			Status:    StatusFailed,
			SyncedAt:  explicit,
		})
		require.NoError(t, err)

		assert.Equal(t, explicit, entry.SyncedAt)
	})

	t.Run("unauthenticated caller is rejected", func(t *testing.T) {
		service := newTestService(NewRepositoryStub(), &utils.MockClock{FixedNow: now})

		_, err := service.RecordAttempt(context.Background(), SyncLog{EventId: "event-1"})
		assert.Error(t, err)
	})
}

func TestService_RecordAttempt_UpdatesFavoriteSyncState(t *testing.T) {
	ctx := test_utils.ContextWithTestUser(context.Background())
	now := time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)

	favorites := favorite.NewServiceWithClock(favorite.NewRepositoryStub(), &utils.MockClock{FixedNow: now})
	service := newTestServiceWithFavorites(NewRepositoryStub(), favorites, &utils.MockClock{FixedNow: now})

	_, err := favorites.Add(ctx, "event-1")
	require.NoError(t, err)

	t.Run("successful add marks the favorite synced", func(t *testing.T) {
		_, err := service.RecordAttempt(ctx, SyncLog{
			EventId:         "event-1",
			Operation:       OperationAdd,
			Provider:        ProviderGoogle,
			Status:          StatusSuccess,
			ExternalEventId: "gcal-42",
		})
		require.NoError(t, err)

		stored, err := favorites.List(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.True(t, stored[0].SyncedToCalendar)
		assert.Equal(t, "gcal-42", stored[0].ExternalCalendarEventId)
	})

	t.Run("failed attempt leaves the favorite untouched", func(t *testing.T) {
		_, err := service.RecordAttempt(ctx, SyncLog{
			EventId:   "event-1",
			Operation: OperationRemove,
			Provider:  ProviderGoogle,
			Status:    StatusFailed,
		})
		require.NoError(t, err)

		stored, err := favorites.List(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.True(t, stored[0].SyncedToCalendar)
	})

	t.Run("successful removal clears the sync state", func(t *testing.T) {
		_, err := service.RecordAttempt(ctx, SyncLog{
			EventId:   "event-1",
			Operation: OperationRemove,
			Provider:  ProviderGoogle,
			Status:    StatusSuccess,
		})
		require.NoError(t, err)

		stored, err := favorites.List(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.False(t, stored[0].SyncedToCalendar)
		assert.Empty(t, stored[0].ExternalCalendarEventId)
	})

	t.Run("recording for an absent favorite still succeeds", func(t *testing.T) {
		entry, err := service.RecordAttempt(ctx, SyncLog{
			EventId:   "never-favorited",
			Operation: OperationRemove,
			Provider:  ProviderGoogle,
			Status:    StatusSuccess,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, entry.Id)
	})
}

func TestService_GetLogs_NewestFirst(t *testing.T) {
	ctx := test_utils.ContextWithTestUser(context.Background())
	repo := NewRepositoryStub()
	clock := &utils.MockClock{FixedNow: time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)}
	service := newTestService(repo, clock)

	_, err := service.RecordAttempt(ctx, SyncLog{EventId: "event-1", Operation: OperationAdd, Provider: ProviderGoogle, Status: StatusSuccess})
	require.NoError(t, err)
	clock.SetNow(clock.FixedNow.Add(time.Hour))
	_, err = service.RecordAttempt(ctx, SyncLog{EventId: "event-2", Operation: OperationAdd, Provider: ProviderGoogle, Status: StatusFailed})
	require.NoError(t, err)

	logs, err := service.GetLogs(ctx)
	require.NoError(t, err)

	require.Len(t, logs, 2)
	assert.Equal(t, "event-2", logs[0].EventId)
	assert.Equal(t, "event-1", logs[1].EventId)
}

func TestService_UpdatePreferences(t *testing.T) {
	ctx := test_utils.ContextWithTestUser(context.Background())
	service := newTestService(NewRepositoryStub(), &utils.SystemClock{})

	updated, err := service.UpdatePreferences(ctx, user.CalendarSyncSettings{
		Enabled:          true,
		GoogleCalendarId: "work-calendar",
	})
	require.NoError(t, err)

	assert.True(t, updated.Settings.Enabled)
	assert.Equal(t, "work-calendar", updated.Settings.GoogleCalendarId)
}
