package event

import (
	"context"
	"time"
)

type Service interface {
	GetEvents(ctx context.Context) ([]Event, error)
	GetEvent(ctx context.Context, id string) (Event, error)
	GetEventsByDateRange(ctx context.Context, from, to time.Time) ([]Event, error)
	GetEventsByType(ctx context.Context, eventType string) ([]Event, error)
}

type EventServiceImpl struct {
	repo Repo
}

func NewEventService(repo Repo) *EventServiceImpl {
	return &EventServiceImpl{repo: repo}
}

func (s *EventServiceImpl) GetEvents(ctx context.Context) ([]Event, error) {
	return s.repo.GetEvents(ctx)
}

func (s *EventServiceImpl) GetEvent(ctx context.Context, id string) (Event, error) {
	return s.repo.GetEvent(ctx, id)
}

func (s *EventServiceImpl) GetEventsByDateRange(ctx context.Context, from, to time.Time) ([]Event, error) {
	return s.repo.GetEventsByDateRange(ctx, from, to)
}

func (s *EventServiceImpl) GetEventsByType(ctx context.Context, eventType string) ([]Event, error) {
	return s.repo.GetEventsByType(ctx, eventType)
}
