package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	CreateSession(ctx context.Context, userId string, expiresAt time.Time) (Session, error)
	GetSession(ctx context.Context, sid string) (Session, error)
	DeleteSession(ctx context.Context, sid string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) CreateSession(ctx context.Context, userId string, expiresAt time.Time) (Session, error) {
	session := Session{
		Sid:       uuid.New().String(),
		UserId:    userId,
		ExpiresAt: expiresAt,
	}
	query := `INSERT INTO sessions (sid, user_id, expires_at) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, query, session.Sid, session.UserId, session.ExpiresAt)
	if err != nil {
		err := fmt.Errorf("could not create session: %w", err)
		log.Error(err)
		return Session{}, err
	}
	return session, nil
}

func (r *RepositoryImpl) GetSession(ctx context.Context, sid string) (Session, error) {
	query := `SELECT sid, user_id, expires_at FROM sessions WHERE sid = $1`
	var session Session
	err := r.db.QueryRow(ctx, query, sid).Scan(&session.Sid, &session.UserId, &session.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Session{}, ErrSessionNotFound
	} else if err != nil {
		err := fmt.Errorf("could not query session: %w", err)
		log.Error(err)
		return Session{}, err
	}
	return session, nil
}

func (r *RepositoryImpl) DeleteSession(ctx context.Context, sid string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE sid = $1`, sid)
	if err != nil {
		err := fmt.Errorf("could not delete session: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		err := fmt.Errorf("could not delete expired sessions: %w", err)
		log.Error(err)
		return 0, err
	}
	return tag.RowsAffected(), nil
}
