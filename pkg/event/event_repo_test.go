package event

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/campcal/campcal/internal/test_utils"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	container, connect := test_utils.TestWithDB()
	testDB = connect()
	code := m.Run()
	testDB.Close()
	_ = container.Terminate(context.Background())
	os.Exit(code)
}

func TestEventRepo_StoreAndGetEvent(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepo(testDB)

	stored, err := repo.StoreEvent(ctx, Event{
		Title:       "Winter Family Camp",
		StartDate:   date(2031, time.January, 10),
		EndDate:     date(2031, time.January, 12),
		EventType:   "Family Camp",
		Description: "Snow tubing and family worship.",
		AgeGroup:    "8+",
		AgeMin:      8,
		Gender:      "Coed",
		PricingOptions: []PricingOption{
			{Name: "Standard", Price: 299, Description: "Per person"},
			{Name: "Deluxe", Price: 359},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, stored.Id)

	found, err := repo.GetEvent(ctx, stored.Id)
	require.NoError(t, err)

	assert.Equal(t, "Winter Family Camp", found.Title)
	assert.Equal(t, "2031-01-10", found.StartDate.Format(DateFormat))
	assert.Equal(t, "2031-01-12", found.EndDate.Format(DateFormat))
	assert.Equal(t, "Coed", found.Gender)
	assert.Equal(t, DefaultLocation, found.Location)
	assert.Equal(t, 8, found.AgeMin)
	assert.Nil(t, found.AgeMax)

	// Pricing round-trips through jsonb intact
	require.Len(t, found.PricingOptions, 2)
	assert.Equal(t, "Standard", found.PricingOptions[0].Name)
	assert.Equal(t, 299.0, found.PricingOptions[0].Price)
	assert.Equal(t, "Per person", found.PricingOptions[0].Description)
	assert.Equal(t, 359.0, found.PricingOptions[1].Price)
}

func TestEventRepo_StoreEventWithoutGender(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepo(testDB)

	stored, err := repo.StoreEvent(ctx, Event{
		Title:          "Creative Arts Weekend",
		StartDate:      date(2031, time.February, 6),
		EndDate:        date(2031, time.February, 8),
		EventType:      "Conference",
		AgeGroup:       "16+",
		AgeMin:         16,
		PricingOptions: []PricingOption{{Name: "Standard", Price: 249}},
	})
	require.NoError(t, err)

	found, err := repo.GetEvent(ctx, stored.Id)
	require.NoError(t, err)
	assert.Empty(t, found.Gender)
}

func TestEventRepo_GetEventNotFound(t *testing.T) {
	repo := NewEventRepo(testDB)

	_, err := repo.GetEvent(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventRepo_GetEventsByDateRange(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepo(testDB)

	stored, err := repo.StoreEvent(ctx, Event{
		Title:          "Spring Men's Retreat",
		StartDate:      date(2032, time.March, 19),
		EndDate:        date(2032, time.March, 21),
		EventType:      "Men's Retreat",
		AgeGroup:       "18+",
		AgeMin:         18,
		PricingOptions: []PricingOption{{Name: "Standard", Price: 349}},
	})
	require.NoError(t, err)

	t.Run("range containing the event matches", func(t *testing.T) {
		events, err := repo.GetEventsByDateRange(ctx, date(2032, time.March, 1), date(2032, time.March, 31))
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, stored.Id, events[0].Id)
	})

	t.Run("range overlapping only the last day matches", func(t *testing.T) {
		events, err := repo.GetEventsByDateRange(ctx, date(2032, time.March, 21), date(2032, time.March, 25))
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("disjoint range matches nothing", func(t *testing.T) {
		events, err := repo.GetEventsByDateRange(ctx, date(2032, time.April, 1), date(2032, time.April, 30))
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestEventRepo_GetEventsByType(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepo(testDB)

	_, err := repo.StoreEvent(ctx, Event{
		Title:          "College Winter Retreat",
		StartDate:      date(2033, time.January, 9),
		EndDate:        date(2033, time.January, 11),
		EventType:      "Young Adults Retreat 2033",
		AgeGroup:       "18-25",
		AgeMin:         18,
		AgeMax:         intPtr(25),
		PricingOptions: []PricingOption{{Name: "Standard", Price: 229}},
	})
	require.NoError(t, err)

	events, err := repo.GetEventsByType(ctx, "Young Adults Retreat 2033")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "College Winter Retreat", events[0].Title)
	require.NotNil(t, events[0].AgeMax)
	assert.Equal(t, 25, *events[0].AgeMax)
}

func TestEventRepo_CountEvents(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepo(testDB)

	before, err := repo.CountEvents(ctx)
	require.NoError(t, err)

	_, err = repo.StoreEvent(ctx, Event{
		Title:          "Counted Camp",
		StartDate:      date(2034, time.June, 1),
		EndDate:        date(2034, time.June, 3),
		EventType:      "Youth Camp",
		AgeGroup:       "12-17",
		AgeMin:         12,
		AgeMax:         intPtr(17),
		PricingOptions: []PricingOption{{Name: "Standard", Price: 199}},
	})
	require.NoError(t, err)

	after, err := repo.CountEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+1, after)
}
