package session

import (
	"context"
	"strconv"
	"sync"
	"time"
)

type RepositoryStub struct {
	mu       sync.RWMutex
	sessions map[string]Session
	nextId   int
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{sessions: make(map[string]Session)}
}

func (r *RepositoryStub) CreateSession(ctx context.Context, userId string, expiresAt time.Time) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextId++
	session := Session{
		Sid:       "session-" + strconv.Itoa(r.nextId),
		UserId:    userId,
		ExpiresAt: expiresAt,
	}
	r.sessions[session.Sid] = session
	return session, nil
}

func (r *RepositoryStub) GetSession(ctx context.Context, sid string) (Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sid]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return session, nil
}

func (r *RepositoryStub) DeleteSession(ctx context.Context, sid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sid)
	return nil
}

func (r *RepositoryStub) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for sid, session := range r.sessions {
		if session.Expired(now) {
			delete(r.sessions, sid)
			deleted++
		}
	}
	return deleted, nil
}

// Put stores a session directly, for test setup.
func (r *RepositoryStub) Put(session Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.Sid] = session
}
