package event

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// Seeder populates the events table with the camp catalog. Seeding is an
// explicit bootstrap step and only inserts when the table is empty.
type Seeder struct {
	repo Repo
}

func NewSeeder(repo Repo) *Seeder {
	return &Seeder{repo: repo}
}

func (s *Seeder) Seed(ctx context.Context) error {
	count, err := s.repo.CountEvents(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing events: %w", err)
	}
	if count > 0 {
		log.Debug("Events already exist, skipping seed")
		return nil
	}

	log.Info("Seeding events")
	seeded := 0
	for _, e := range CatalogEvents() {
		if _, err := s.repo.StoreEvent(ctx, e); err != nil {
			return fmt.Errorf("failed to seed event %q: %w", e.Title, err)
		}
		seeded++
	}
	log.Infof("Seeded %d events", seeded)
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func seedEvent(e Event) Event {
	e.AgeMin, e.AgeMax = ParseAgeGroup(e.AgeGroup)
	if e.Location == "" {
		e.Location = DefaultLocation
	}
	return e
}

// CatalogEvents returns the camp events for the 2025-2026 season.
func CatalogEvents() []Event {
	events := []Event{
		{
			Title:       "Father/Son Adventure Camp",
			StartDate:   date(2025, time.August, 21),
			EndDate:     date(2025, time.August, 23),
			EventType:   "Family Event",
			Description: "An adventure-packed camp experience for fathers and sons with outdoor activities, team building, and faith-based programming.",
			AgeGroup:    "8+",
			Gender:      "Male",
			PricingOptions: []PricingOption{
				{Name: "Event Only Adult", Price: 329, Description: "Ages 18 and older"},
				{Name: "Single Family Housing with bathroom Adult", Price: 374, Description: "Ages 18 and older"},
				{Name: "Single Family Housing without bathroom Adult", Price: 359, Description: "Ages 18 and older"},
				{Name: "Shared Family Housing Adult", Price: 344, Description: "Ages 18 and older"},
				{Name: "RV Housing Adult", Price: 329, Description: "Ages 18 and older"},
				{Name: "Event Only Child", Price: 329, Description: "Ages 8 to 17"},
				{Name: "Single Family Housing with bathroom Child", Price: 374, Description: "Ages 8 to 17"},
				{Name: "Single Family Housing without bathroom Child", Price: 359, Description: "Ages 8 to 17"},
				{Name: "Shared Family Housing Child", Price: 344, Description: "Ages 8 to 17"},
				{Name: "RV Housing Child", Price: 329, Description: "Ages 8 to 17"},
			},
		},
		{
			Title:       "Rest and Renew - Pastors Retreat",
			StartDate:   date(2025, time.September, 8),
			EndDate:     date(2025, time.September, 10),
			EventType:   "Pastor Retreat",
			Description: "A time of spiritual renewal and rest specifically designed for pastors and ministry leaders.",
			AgeGroup:    "18+",
			Gender:      "Coed",
			PricingOptions: []PricingOption{
				{Name: "Rest & Renew Retreat", Price: 269, Description: "Ages 18 and older"},
				{Name: "Rest & Renew Retreat Event Only", Price: 249, Description: "Ages 18 and older"},
			},
		},
		{
			Title:       "Fall Women's Retreat 1",
			StartDate:   date(2025, time.September, 19),
			EndDate:     date(2025, time.September, 21),
			EventType:   "Women's Retreat",
			Description: "A transformative weekend retreat focused on rest, renewal, and spiritual growth for women.",
			AgeGroup:    "18+",
			Gender:      "Female",
			PricingOptions: []PricingOption{
				{Name: "Event Only (No Housing)", Price: 344, Description: "Ages 18 and older"},
				{Name: "Economy Housing", Price: 374, Description: "Ages 18 and older"},
				{Name: "Standard Housing", Price: 414, Description: "Ages 18 and older"},
				{Name: "Deluxe Housing", Price: 444, Description: "Ages 18 and older"},
			},
		},
		{
			Title:       "Fall Women's Retreat 2",
			StartDate:   date(2025, time.September, 26),
			EndDate:     date(2025, time.September, 28),
			EventType:   "Women's Retreat",
			Description: "A transformative weekend retreat focused on rest, renewal, and spiritual growth for women.",
			AgeGroup:    "18+",
			Gender:      "Female",
			PricingOptions: []PricingOption{
				{Name: "Event Only (No Housing)", Price: 344, Description: "Ages 18 and older"},
				{Name: "Economy Housing", Price: 374, Description: "Ages 18 and older"},
				{Name: "Standard Housing", Price: 414, Description: "Ages 18 and older"},
				{Name: "Deluxe Housing", Price: 444, Description: "Ages 18 and older"},
			},
		},
		{
			Title:       "Fall Marriage Retreat",
			StartDate:   date(2025, time.October, 3),
			EndDate:     date(2025, time.October, 5),
			EventType:   "Marriage Retreat",
			Description: "Strengthen your marriage with biblical teaching, fun activities, and quality time together in a beautiful mountain setting.",
			AgeGroup:    "18+",
			Gender:      "Coed",
			PricingOptions: []PricingOption{
				{Name: "Event Only", Price: 459.50, Description: "Ages 18 and older"},
				{Name: "Economy Housing", Price: 489.50, Description: "Ages 18 and older"},
				{Name: "Standard Housing", Price: 529.50, Description: "Ages 18 and older"},
				{Name: "Deluxe Housing", Price: 559.50, Description: "Ages 18 and older"},
				{Name: "RV Space", Price: 469.50, Description: "Ages 18 and older"},
			},
		},
		{
			Title:       "Men's Retreat",
			StartDate:   date(2025, time.October, 9),
			EndDate:     date(2025, time.October, 11),
			EventType:   "Men's Retreat",
			Description: "A powerful weekend designed to challenge and encourage men in their faith journey.",
			AgeGroup:    "18+",
			Gender:      "Male",
			PricingOptions: []PricingOption{
				{Name: "Event Only Adult", Price: 394, Description: "Ages 18 and older"},
				{Name: "Economy Housing Adult", Price: 424, Description: "Ages 18 and older"},
				{Name: "Standard Adult", Price: 464, Description: "Ages 18 and older"},
				{Name: "Deluxe Housing Adult", Price: 494, Description: "Ages 18 and older"},
				{Name: "RV Site Adult", Price: 414, Description: "Ages 18 and older"},
			},
		},
		{
			Title:       "Creative Arts Conference",
			StartDate:   date(2025, time.October, 16),
			EndDate:     date(2025, time.October, 18),
			EventType:   "Creative Arts",
			Description: "Explore and develop your creative gifts through workshops, performances, and inspiration.",
			AgeGroup:    "18+",
			Gender:      "Coed",
			PricingOptions: []PricingOption{
				{Name: "Adult Event Only", Price: 384, Description: "Ages 18 and older"},
				{Name: "Adult Economy Housing", Price: 414, Description: "Ages 18 and older"},
				{Name: "Adult Standard Housing", Price: 454, Description: "Ages 18 and older"},
				{Name: "Adult Deluxe Housing", Price: 484, Description: "Ages 18 and older"},
				{Name: "Adult RV Site", Price: 404, Description: "Ages 18 and older"},
			},
		},
		{
			Title:       "Youth Leaders Retreat",
			StartDate:   date(2025, time.November, 6),
			EndDate:     date(2025, time.November, 8),
			EventType:   "Youth Leaders",
			Description: "Equipping and encouraging those who work with youth in ministry settings.",
			AgeGroup:    "18+",
			Gender:      "Coed",
			PricingOptions: []PricingOption{
				{Name: "Youth Leaders Retreat Adult", Price: 209, Description: "Ages 18 and older"},
			},
		},
		{
			Title:       "Young Adults Fall Retreat",
			StartDate:   date(2025, time.November, 7),
			EndDate:     date(2025, time.November, 9),
			EventType:   "Young Adults",
			Description: "A retreat designed specifically for young adults to grow in faith and community.",
			AgeGroup:    "16-75",
			Gender:      "Coed",
			PricingOptions: []PricingOption{
				{Name: "Young Adults Adult", Price: 350, Description: "Ages 18 to 75"},
				{Name: "Young Adults Minor", Price: 350, Description: "Ages 16 to 17"},
			},
		},
		{
			Title:       "Father/Daughter Retreat",
			StartDate:   date(2025, time.November, 14),
			EndDate:     date(2025, time.November, 16),
			EventType:   "Family Event",
			Description: "A special retreat for fathers and daughters to strengthen their relationship and create lasting memories.",
			AgeGroup:    "8+",
			Gender:      "Coed",
			PricingOptions: []PricingOption{
				{Name: "Event Only Adult", Price: 365, Description: "Ages 18 and older"},
				{Name: "Economy Housing Adult", Price: 395, Description: "Ages 18 and older"},
				{Name: "Standard Housing Adult", Price: 435, Description: "Ages 18 and older"},
				{Name: "Deluxe Housing Adult", Price: 465, Description: "Ages 18 and older"},
				{Name: "RV Site Adult", Price: 385, Description: "Ages 18 and older"},
				{Name: "Event Only Child", Price: 365, Description: "Ages 8 to 17"},
				{Name: "Economy Housing Child", Price: 395, Description: "Ages 8 to 17"},
				{Name: "Standard Housing Child", Price: 435, Description: "Ages 8 to 17"},
				{Name: "Deluxe Housing Child", Price: 465, Description: "Ages 8 to 17"},
				{Name: "RV Site Child", Price: 385, Description: "Ages 8 to 17"},
			},
		},
		{
			Title:       "Young Adults Winter Retreat",
			StartDate:   date(2026, time.March, 6),
			EndDate:     date(2026, time.March, 8),
			EventType:   "Young Adults",
			Description: "A winter retreat for young adults featuring skiing, snowboarding, and spiritual growth.",
			AgeGroup:    "16-75",
			Gender:      "Coed",
			PricingOptions: []PricingOption{
				{Name: "Young Adults - Winter", Price: 225, Description: "Ages 18 to 75"},
				{Name: "Young Adults Minor - Winter", Price: 225, Description: "Ages 16 to 17"},
				{Name: "Young Adults Adult", Price: 395, Description: "Ages 18 to 75"},
				{Name: "Young Adults Minor", Price: 395, Description: "Ages 16 to 17"},
			},
		},
		{
			Title:       "Spring Women's Retreat 1",
			StartDate:   date(2026, time.April, 17),
			EndDate:     date(2026, time.April, 19),
			EventType:   "Women's Retreat",
			Description: "Spring renewal retreat for women featuring inspiring speakers Megan Marshman and Paige Payne.",
			AgeGroup:    "18+",
			Gender:      "Female",
			PricingOptions: []PricingOption{
				{Name: "Event Only", Price: 349, Description: "Ages 18 and older"},
				{Name: "Economy Housing", Price: 389, Description: "Ages 18 and older"},
				{Name: "Standard Housing", Price: 419, Description: "Ages 18 and older"},
				{Name: "Deluxe Housing", Price: 479, Description: "Ages 18 and older"},
			},
		},
		{
			Title:       "Spring Women's Retreat 2",
			StartDate:   date(2026, time.April, 24),
			EndDate:     date(2026, time.April, 26),
			EventType:   "Women's Retreat",
			Description: "Spring renewal retreat for women featuring inspiring speakers and worship.",
			AgeGroup:    "18+",
			Gender:      "Female",
			PricingOptions: []PricingOption{
				{Name: "Event Only", Price: 349, Description: "Ages 18 and older"},
				{Name: "Economy Housing", Price: 389, Description: "Ages 18 and older"},
				{Name: "Standard Housing", Price: 419, Description: "Ages 18 and older"},
				{Name: "Deluxe Housing", Price: 479, Description: "Ages 18 and older"},
			},
		},
	}

	for i := range events {
		events[i] = seedEvent(events[i])
	}
	return events
}
