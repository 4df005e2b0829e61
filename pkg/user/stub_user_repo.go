package user

import (
	"context"
	"strconv"
)

type StubUserRepo struct {
	Users  map[string]User // id -> user
	nextId int
}

func NewStubUserRepo() *StubUserRepo {
	return &StubUserRepo{Users: make(map[string]User)}
}

func (s *StubUserRepo) UpsertUser(ctx context.Context, user User) (User, error) {
	for id, existing := range s.Users {
		if existing.Sub == user.Sub {
			existing.Email = user.Email
			existing.DisplayName = user.DisplayName
			existing.PhotoUrl = user.PhotoUrl
			s.Users[id] = existing
			return existing, nil
		}
	}
	s.nextId++
	user.Id = "user-" + strconv.Itoa(s.nextId)
	s.Users[user.Id] = user
	return user, nil
}

func (s *StubUserRepo) GetUser(ctx context.Context, id string) (User, error) {
	u, ok := s.Users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

func (s *StubUserRepo) UpdateCalendarSync(ctx context.Context, userId string, settings CalendarSyncSettings) (User, error) {
	u, ok := s.Users[userId]
	if !ok {
		return User{}, ErrUserNotFound
	}
	u.Settings = settings
	s.Users[userId] = u
	return u, nil
}
