package session

import (
	"errors"
	"time"
)

// CookieName carries the session id issued by the auth callback.
const CookieName = "campcal_session"

var ErrSessionNotFound = errors.New("session not found")

type Session struct {
	Sid       string
	UserId    string
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
