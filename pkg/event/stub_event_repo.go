package event

import (
	"context"
	"sort"
	"strconv"
	"time"
)

type StubEventRepo struct {
	Events []Event
	nextId int
}

func NewStubEventRepo(events ...Event) *StubEventRepo {
	return &StubEventRepo{Events: events}
}

func (s *StubEventRepo) GetEvents(ctx context.Context) ([]Event, error) {
	result := make([]Event, len(s.Events))
	copy(result, s.Events)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartDate.Before(result[j].StartDate)
	})
	return result, nil
}

func (s *StubEventRepo) GetEvent(ctx context.Context, id string) (Event, error) {
	for _, e := range s.Events {
		if e.Id == id {
			return e, nil
		}
	}
	return Event{}, ErrEventNotFound
}

func (s *StubEventRepo) GetEventsByDateRange(ctx context.Context, from, to time.Time) ([]Event, error) {
	all, _ := s.GetEvents(ctx)
	result := make([]Event, 0, len(all))
	for _, e := range all {
		if !e.StartDate.After(to) && !e.EndDate.Before(from) {
			result = append(result, e)
		}
	}
	return result, nil
}

func (s *StubEventRepo) GetEventsByType(ctx context.Context, eventType string) ([]Event, error) {
	all, _ := s.GetEvents(ctx)
	result := make([]Event, 0, len(all))
	for _, e := range all {
		if e.EventType == eventType {
			result = append(result, e)
		}
	}
	return result, nil
}

func (s *StubEventRepo) CountEvents(ctx context.Context) (int, error) {
	return len(s.Events), nil
}

func (s *StubEventRepo) StoreEvent(ctx context.Context, event Event) (Event, error) {
	if event.Id == "" {
		s.nextId++
		event.Id = "event-" + strconv.Itoa(s.nextId)
	}
	if event.Location == "" {
		event.Location = DefaultLocation
	}
	s.Events = append(s.Events, event)
	return event, nil
}
