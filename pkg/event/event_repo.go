package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrEventNotFound = errors.New("event not found")

type Repo interface {
	GetEvents(ctx context.Context) ([]Event, error)
	GetEvent(ctx context.Context, id string) (Event, error)
	GetEventsByDateRange(ctx context.Context, from, to time.Time) ([]Event, error)
	GetEventsByType(ctx context.Context, eventType string) ([]Event, error)
	CountEvents(ctx context.Context) (int, error)
	StoreEvent(ctx context.Context, event Event) (Event, error)
}

type EventRepoImpl struct {
	db *pgxpool.Pool
}

func NewEventRepo(db *pgxpool.Pool) *EventRepoImpl {
	return &EventRepoImpl{db: db}
}

const eventColumns = `id, title, start_date, end_date, event_type, description, age_group,
				age_min, age_max, gender, location, pricing_options`

func (r *EventRepoImpl) GetEvents(ctx context.Context) ([]Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY start_date`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query events: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (r *EventRepoImpl) GetEvent(ctx context.Context, id string) (Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	event, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Event{}, ErrEventNotFound
	} else if err != nil {
		err := fmt.Errorf("could not query event %s: %w", id, err)
		log.Error(err)
		return Event{}, err
	}
	return event, nil
}

// GetEventsByDateRange returns events whose inclusive date range overlaps the
// inclusive [from, to] range.
func (r *EventRepoImpl) GetEventsByDateRange(ctx context.Context, from, to time.Time) ([]Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events
				WHERE start_date <= $1 AND end_date >= $2
				ORDER BY start_date`
	rows, err := r.db.Query(ctx, query, to, from)
	if err != nil {
		err := fmt.Errorf("could not query events by date range: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (r *EventRepoImpl) GetEventsByType(ctx context.Context, eventType string) ([]Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_type = $1 ORDER BY start_date`
	rows, err := r.db.Query(ctx, query, eventType)
	if err != nil {
		err := fmt.Errorf("could not query events by type: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (r *EventRepoImpl) CountEvents(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM events`).Scan(&count)
	if err != nil {
		err := fmt.Errorf("could not count events: %w", err)
		log.Error(err)
		return 0, err
	}
	return count, nil
}

func (r *EventRepoImpl) StoreEvent(ctx context.Context, event Event) (Event, error) {
	pricing, err := json.Marshal(event.PricingOptions)
	if err != nil {
		return Event{}, fmt.Errorf("could not marshal pricing options: %w", err)
	}
	if event.Id == "" {
		event.Id = uuid.New().String()
	}
	if event.Location == "" {
		event.Location = DefaultLocation
	}
	query := `INSERT INTO events (id, title, start_date, end_date, event_type, description, age_group,
					age_min, age_max, gender, location, pricing_options)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.db.Exec(ctx, query,
		event.Id,
		event.Title,
		event.StartDate,
		event.EndDate,
		event.EventType,
		nullIfEmpty(event.Description),
		event.AgeGroup,
		event.AgeMin,
		event.AgeMax,
		nullIfEmpty(event.Gender),
		event.Location,
		pricing,
	)
	if err != nil {
		err := fmt.Errorf("could not store event: %w", err)
		log.Error(err)
		return Event{}, err
	}
	return event, nil
}

func scanEvents(rows pgx.Rows) ([]Event, error) {
	events := make([]Event, 0, 16)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			err := fmt.Errorf("could not scan event row: %w", err)
			log.Error(err)
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func scanEvent(row pgx.Row) (Event, error) {
	var event Event
	var description, gender, location *string
	var pricing []byte
	err := row.Scan(
		&event.Id,
		&event.Title,
		&event.StartDate,
		&event.EndDate,
		&event.EventType,
		&description,
		&event.AgeGroup,
		&event.AgeMin,
		&event.AgeMax,
		&gender,
		&location,
		&pricing,
	)
	if err != nil {
		return Event{}, err
	}
	if description != nil {
		event.Description = *description
	}
	if gender != nil {
		event.Gender = *gender
	}
	if location != nil {
		event.Location = *location
	}
	if err := json.Unmarshal(pricing, &event.PricingOptions); err != nil {
		return Event{}, fmt.Errorf("could not unmarshal pricing options: %w", err)
	}
	return event, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
