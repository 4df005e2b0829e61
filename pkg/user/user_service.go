package user

import (
	"context"
	"fmt"
)

type Service interface {
	GetCurrentUser(ctx context.Context) (User, error)
	GetUser(ctx context.Context, id string) (User, error)
	UpsertUser(ctx context.Context, user User) (User, error)
	UpdateCalendarSync(ctx context.Context, settings CalendarSyncSettings) (User, error)
}

type UserServiceImpl struct {
	repo Repo
}

func NewUserService(repo Repo) *UserServiceImpl {
	return &UserServiceImpl{repo: repo}
}

func (u *UserServiceImpl) GetCurrentUser(ctx context.Context) (User, error) {
	userId, err := CurrentId(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return u.GetUser(ctx, userId)
}

func (u *UserServiceImpl) GetUser(ctx context.Context, id string) (User, error) {
	return u.repo.GetUser(ctx, id)
}

func (u *UserServiceImpl) UpsertUser(ctx context.Context, user User) (User, error) {
	return u.repo.UpsertUser(ctx, user)
}

// UpdateCalendarSync updates the calling user's external-calendar preferences.
func (u *UserServiceImpl) UpdateCalendarSync(ctx context.Context, settings CalendarSyncSettings) (User, error) {
	userId, err := CurrentId(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return u.repo.UpdateCalendarSync(ctx, userId, settings)
}
